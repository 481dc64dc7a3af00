package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Code    string `json:"code" example:"RECORD_NOT_FOUND"`
	Message string `json:"message" example:"Record not found"`
}

// RespondError writes err as an ErrorBody. AppErrors keep their status, code
// and message; anything else is logged and answered with a generic internal
// error so store details never reach the client.
func RespondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(appErr.StatusCode, ErrorBody{Code: appErr.Code, Message: appErr.Message})
}

// AbortWithError writes err and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	RespondError(c, err)
	c.Abort()
}

// ErrorHandler converts errors attached with c.Error into an error response
// when no handler has written one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		RespondError(c, c.Errors.Last().Err)
	}
}

// Recovery turns panics into a logged internal error response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Get().Errorw("panic recovered",
			"panic", recovered,
			"path", c.Request.URL.Path,
		)
		AbortWithError(c, apperrors.ErrInternalServer)
	})
}
