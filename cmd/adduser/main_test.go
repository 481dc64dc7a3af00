package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/logger"
	"fintrack/internal/services"
	"fintrack/internal/testutil"
)

func init() {
	logger.Init("test")
}

// useTestDB points openUsers at an in-memory database for one test.
func useTestDB(t *testing.T) services.UserServicer {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	users := services.NewUserService(db)
	orig := openUsers
	openUsers = func() (services.UserServicer, func() error, error) {
		return users, func() error { return nil }, nil
	}
	t.Cleanup(func() { openUsers = orig })
	return users
}

func TestRun_Success(t *testing.T) {
	users := useTestDB(t)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	args := []string{"-email", "Admin@Example.com", "-name", "Admin", "-password", "password123"}
	require.NoError(t, run(context.Background(), args, new(bytes.Buffer), stdout, stderr))
	assert.Contains(t, stdout.String(), "User admin@example.com created successfully")

	_, err := users.Authenticate(context.Background(), "admin@example.com", "password123")
	assert.NoError(t, err)
}

func TestRun_PromptsForPassword(t *testing.T) {
	users := useTestDB(t)
	stdout := new(bytes.Buffer)

	stdin := strings.NewReader("password123\n")
	require.NoError(t, run(context.Background(), []string{"-email", "prompt@example.com"}, stdin, stdout, new(bytes.Buffer)))
	assert.Contains(t, stdout.String(), "Password: ")

	_, err := users.Authenticate(context.Background(), "prompt@example.com", "password123")
	assert.NoError(t, err)
}

func TestRun_DuplicateUser(t *testing.T) {
	useTestDB(t)
	args := []string{"-email", "dup@example.com", "-password", "password123"}

	require.NoError(t, run(context.Background(), args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)))
	err := run(context.Background(), args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRun_InvalidInput(t *testing.T) {
	useTestDB(t)

	t.Run("missing_email", func(t *testing.T) {
		stdout := new(bytes.Buffer)
		err := run(context.Background(), []string{"-password", "password123"}, new(bytes.Buffer), stdout, new(bytes.Buffer))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required flags: email")
		assert.Contains(t, stdout.String(), "Usage: adduser")
	})

	t.Run("empty_prompted_password", func(t *testing.T) {
		err := run(context.Background(), []string{"-email", "x@example.com"}, strings.NewReader("   \n"), new(bytes.Buffer), new(bytes.Buffer))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password cannot be empty")
	})

	t.Run("no_input", func(t *testing.T) {
		err := run(context.Background(), []string{"-email", "x@example.com"}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read password")
	})

	t.Run("short_password", func(t *testing.T) {
		err := run(context.Background(), []string{"-email", "x@example.com", "-password", "short"}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create user")
	})

	t.Run("unknown_flag", func(t *testing.T) {
		err := run(context.Background(), []string{"-user", "legacy"}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
		assert.Error(t, err)
	})
}
