package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// recordHandler holds the request plumbing shared by every record kind.
type recordHandler[T any] struct {
	service services.RecordServicer[T]
	// noun names the kind in client messages ("Expense", "Income").
	noun string
	// deleted is the confirmation message for a successful delete.
	deleted string
}

// describe replaces the generic not-found message with one naming the kind.
func (h *recordHandler[T]) describe(err error) error {
	if errors.Is(err, apperrors.ErrRecordNotFound) {
		return apperrors.WithMessage(apperrors.ErrRecordNotFound, h.noun+" not found")
	}
	return err
}

func (h *recordHandler[T]) create(c *gin.Context, rec *T) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, rec)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *recordHandler[T]) list(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := parsePage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	records, total, err := h.service.List(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	setTotalCount(c, page, total)
	c.JSON(http.StatusOK, records)
}

func (h *recordHandler[T]) get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rec, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondWithError(c, h.describe(err))
		return
	}
	c.JSON(http.StatusOK, rec)
}

// update runs after the caller bound and converted the kind-specific body.
func (h *recordHandler[T]) update(c *gin.Context, userID, id string, patch models.Patch[T]) {
	rec, err := h.service.Update(c.Request.Context(), userID, id, patch)
	if err != nil {
		respondWithError(c, h.describe(err))
		return
	}
	c.JSON(http.StatusOK, rec)
}

// target resolves the caller and record id for update-style requests.
func (h *recordHandler[T]) target(c *gin.Context) (userID, id string, ok bool) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return "", "", false
	}
	id, err = parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return "", "", false
	}
	return userID, id, true
}

func (h *recordHandler[T]) delete(c *gin.Context) {
	userID, id, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		respondWithError(c, h.describe(err))
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: h.deleted, ID: id})
}
