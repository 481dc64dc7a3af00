package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/services"
)

// IncomeHandler handles income record requests
type IncomeHandler struct {
	recordHandler[models.Income]
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(service services.RecordServicer[models.Income]) *IncomeHandler {
	return &IncomeHandler{recordHandler[models.Income]{service: service, noun: "Income", deleted: "Income removed"}}
}

// CreateIncomeRequest represents the request body for creating an income
type CreateIncomeRequest struct {
	Source string           `json:"source" binding:"max=100" example:"Salary"`
	Amount *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"1500"`
	Date   string           `json:"date" binding:"required,record_date" example:"2024-01-31"`
}

// UpdateIncomeRequest carries the fields to change; omitted fields are left as stored.
type UpdateIncomeRequest struct {
	Source *string          `json:"source" binding:"omitempty,max=100"`
	Amount *decimal.Decimal `json:"amount" swaggertype:"number"`
	Date   *string          `json:"date"`
}

// CreateIncome handles income creation
// @Summary     Create income
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIncomeRequest true "Income data"
// @Success     201 {object} models.Income "Created income"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.create(c, &models.Income{Source: req.Source, Amount: *req.Amount, Date: date})
}

// ListIncomes handles listing the caller's incomes
// @Summary     List incomes
// @Tags        incomes
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Page size (max 100)"
// @Success     200 {array}  models.Income "Incomes"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/income [get]
func (h *IncomeHandler) ListIncomes(c *gin.Context) {
	h.list(c)
}

// GetIncome handles fetching one income
// @Summary     Get income
// @Tags        incomes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Success     200 {object} models.Income "Income"
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /records/income/{id} [get]
func (h *IncomeHandler) GetIncome(c *gin.Context) {
	h.get(c)
}

// UpdateIncome handles partial income updates
// @Summary     Update income
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Income ID"
// @Param       request body UpdateIncomeRequest true "Fields to change"
// @Success     200 {object} models.Income "Updated income"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /records/income/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	userID, id, ok := h.target(c)
	if !ok {
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	patch := models.IncomePatch{Source: req.Source, Amount: req.Amount}
	date, err := patchDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	patch.Date = date

	h.update(c, userID, id, patch)
}

// DeleteIncome handles income deletion
// @Summary     Delete income
// @Tags        incomes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Success     200 {object} MessageResponse "Removed"
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /records/income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	h.delete(c)
}
