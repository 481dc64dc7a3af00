package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openUsers connects to the configured database. Tests replace it.
var openUsers = func() (services.UserServicer, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := dbManager.RunMigrations(); err != nil {
		_ = dbManager.Close()
		return nil, nil, err
	}
	return services.NewUserService(dbManager.DB()), dbManager.Close, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	email := fs.String("email", "", "Email address")
	name := fs.String("name", "", "Display name")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		fmt.Fprintln(stdout, "Usage: adduser -email <email> [-name <name>] [-password <password>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	users, closeDB, err := openUsers()
	if err != nil {
		return err
	}
	defer closeDB()

	user, err := users.CreateUser(ctx, *email, password, *name)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %s\n", user.Email, user.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// Pipes and tests.
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
