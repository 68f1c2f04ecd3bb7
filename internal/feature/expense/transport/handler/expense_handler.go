// Package handler provides the HTTP handlers for the expense feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"budget_backend/internal/api"
	"budget_backend/internal/feature/expense/domain/entity"
	"budget_backend/internal/feature/expense/transport/http/dto"
	"budget_backend/internal/feature/expense/usecase"
)

// ExpenseUsecase is the set of expense operations the handler depends on.
type ExpenseUsecase interface {
	Create(ctx context.Context, e *entity.Expense) error
	List(ctx context.Context) ([]entity.Expense, error)
	Get(ctx context.Context, id uint) (*entity.Expense, error)
	Update(ctx context.Context, id uint, e *entity.Expense) (bool, error)
	Delete(ctx context.Context, id uint) error
}

// ExpenseHandler serves the /api/expenses routes.
type ExpenseHandler struct {
	uc ExpenseUsecase
}

// NewExpenseHandler creates an ExpenseHandler.
func NewExpenseHandler(uc ExpenseUsecase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create handles POST /api/expenses. An empty body is rejected before the store is touched.
func (h *ExpenseHandler) Create(c *gin.Context) {
	req, ok := bindExpense(c)
	if !ok {
		return
	}
	e := req.ToEntity()
	if err := h.uc.Create(c.Request.Context(), e); err != nil {
		api.StoreFailure(c, err)
		return
	}
	slog.Info("expense created", "id", e.ID, "remote_addr", c.ClientIP())
	api.Created(c, "Expense created successfully", dto.NewExpenseItem(e))
}

// List handles GET /api/expenses.
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.uc.List(c.Request.Context())
	if err != nil {
		api.StoreFailure(c, err)
		return
	}
	out := make([]dto.ExpenseItem, 0, len(expenses))
	for i := range expenses {
		out = append(out, dto.NewExpenseItem(&expenses[i]))
	}
	api.OK(c, "Expenses retrieved successfully", out)
}

// Get handles GET /api/expenses/:id and returns the full record.
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := api.PathID(c)
	if !ok {
		return
	}
	e, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	api.OK(c, "Expense retrieved successfully", dto.NewExpenseItem(e))
}

// Update handles PUT /api/expenses/:id as a full replace.
// Empty body and constraint violations are 400; statement and other store errors are 500.
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := api.PathID(c)
	if !ok {
		return
	}
	req, ok := bindExpense(c)
	if !ok {
		return
	}
	matched, err := h.uc.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		api.StoreFailure(c, err)
		return
	}
	if !matched {
		slog.Warn("update expense matched no rows", "id", id)
	}
	api.OK(c, "Expense updated successfully", nil)
}

// Delete handles DELETE /api/expenses/:id.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := api.PathID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	slog.Info("expense deleted", "id", id)
	api.OK(c, "Expense deleted successfully", nil)
}

func (h *ExpenseHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrExpenseNotFound) {
		api.Fail(c, http.StatusNotFound, "Expense not found")
		return
	}
	api.StoreFailure(c, err)
}

// bindExpense decodes the body and rejects absent, null or field-less bodies.
func bindExpense(c *gin.Context) (dto.ExpenseReq, bool) {
	var req dto.ExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			slog.Warn("expense request without body", "path", c.FullPath(), "remote_addr", c.ClientIP())
			api.Fail(c, http.StatusBadRequest, "Request body is empty")
			return req, false
		}
		slog.Warn("expense request with invalid body", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if req.IsEmpty() {
		slog.Warn("expense request with empty body", "path", c.FullPath(), "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "Request body is empty")
		return req, false
	}
	return req, true
}
