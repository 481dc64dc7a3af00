package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/pagination"
	"fintrack/internal/uuid"
	appvalidator "fintrack/internal/validator"
)

// ErrorResponse documents the error body for swagger.
type ErrorResponse = middleware.ErrorBody

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthenticated if not present.
func getUserID(c *gin.Context) (string, error) {
	id, err := middleware.CurrentIdentity(c)
	if err != nil {
		return "", err
	}
	return id.UserID, nil
}

// parseRecordID reads the :id path parameter. Malformed identifiers are
// rejected before any store access.
func parseRecordID(c *gin.Context) (string, error) {
	id, err := uuid.Normalize(c.Param("id"))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid id")
	}
	return id, nil
}

// parsePage binds optional page/page_size query parameters.
func parsePage(c *gin.Context) (pagination.PageRequest, error) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, bindingError(err)
	}
	return page, nil
}

// setTotalCount exposes the unpaged total when the client asked for a page.
func setTotalCount(c *gin.Context, page pagination.PageRequest, total int64) {
	if page.IsSet() {
		c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	}
}

// parseFlexibleTime accepts YYYY-MM-DD or RFC 3339 timestamps.
func parseFlexibleTime(s string) (time.Time, error) {
	t, ok := appvalidator.ParseDate(s)
	if !ok {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be YYYY-MM-DD or RFC 3339")
	}
	return t, nil
}

// patchDate converts an optional update date. A supplied blank string
// becomes the zero time so the merge policy decides whether it applies.
func patchDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	if strings.TrimSpace(*s) == "" {
		return &time.Time{}, nil
	}
	t, err := parseFlexibleTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// bindingError turns a gin binding failure into an INVALID_INPUT error
// naming the first offending field.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid value for "+fe.Field()+" ("+fe.Tag()+")")
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, "malformed request body")
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.RespondError(c, err)
}
