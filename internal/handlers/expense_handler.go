package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/services"
)

// ExpenseHandler handles expense record requests
type ExpenseHandler struct {
	recordHandler[models.Expense]
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(service services.RecordServicer[models.Expense]) *ExpenseHandler {
	return &ExpenseHandler{recordHandler[models.Expense]{service: service, noun: "Expense", deleted: "Expense deleted"}}
}

// CreateExpenseRequest represents the request body for creating an expense
type CreateExpenseRequest struct {
	Date        string           `json:"date" binding:"required,record_date" example:"2024-01-01"`
	Category    string           `json:"category" binding:"max=50" example:"Food"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"42.5"`
	Description string           `json:"description" binding:"max=1000" example:"lunch"`
}

// UpdateExpenseRequest carries the fields to change; omitted fields are left as stored.
type UpdateExpenseRequest struct {
	Date        *string          `json:"date" example:"2024-01-02"`
	Category    *string          `json:"category" binding:"omitempty,max=50" example:"Travel"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"number" example:"10"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
}

// CreateExpense handles expense creation
// @Summary     Create expense
// @Description Record a new expense owned by the caller
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense data"
// @Success     201 {object} models.Expense "Created expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/expense [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.create(c, &models.Expense{
		Date:        date,
		Category:    req.Category,
		Amount:      *req.Amount,
		Description: req.Description,
	})
}

// ListExpenses handles listing the caller's expenses
// @Summary     List expenses
// @Description List the caller's expenses, newest first
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Page size (max 100)"
// @Success     200 {array}  models.Expense "Expenses"
// @Header      200 {integer} X-Total-Count "Total records when paged"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/expense [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	h.list(c)
}

// GetExpense handles fetching one expense
// @Summary     Get expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense "Expense"
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /records/expense/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	h.get(c)
}

// UpdateExpense handles partial expense updates
// @Summary     Update expense
// @Description Change any subset of date, category, amount and description
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to change"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/expense/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, id, ok := h.target(c)
	if !ok {
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	patch := models.ExpensePatch{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	date, err := patchDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	patch.Date = date

	h.update(c, userID, id, patch)
}

// DeleteExpense handles expense deletion
// @Summary     Delete expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/expense/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	h.delete(c)
}
