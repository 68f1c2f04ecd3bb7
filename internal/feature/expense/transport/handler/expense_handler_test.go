package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget_backend/internal/feature/expense/domain/entity"
	"budget_backend/internal/feature/expense/usecase"
	platformdb "budget_backend/internal/platform/db"
)

// mockExpenseUsecase is a mock implementation of ExpenseUsecase.
type mockExpenseUsecase struct {
	CreateFunc func(ctx context.Context, e *entity.Expense) error
	ListFunc   func(ctx context.Context) ([]entity.Expense, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Expense, error)
	UpdateFunc func(ctx context.Context, id uint, e *entity.Expense) (bool, error)
	DeleteFunc func(ctx context.Context, id uint) error

	calls int
}

func (m *mockExpenseUsecase) Create(ctx context.Context, e *entity.Expense) error {
	m.calls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	e.ID = 1
	return nil
}

func (m *mockExpenseUsecase) List(ctx context.Context) ([]entity.Expense, error) {
	m.calls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockExpenseUsecase) Get(ctx context.Context, id uint) (*entity.Expense, error) {
	m.calls++
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrExpenseNotFound
}

func (m *mockExpenseUsecase) Update(ctx context.Context, id uint, e *entity.Expense) (bool, error) {
	m.calls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, e)
	}
	return true, nil
}

func (m *mockExpenseUsecase) Delete(ctx context.Context, id uint) error {
	m.calls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func str(s string) *string { return &s }
func i64(n int64) *int64   { return &n }
func uid(n uint) *uint     { return &n }

func newRouter(h *ExpenseHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/expenses", h.Create)
	r.GET("/api/expenses", h.List)
	r.GET("/api/expenses/:id", h.Get)
	r.PUT("/api/expenses/:id", h.Update)
	r.DELETE("/api/expenses/:id", h.Delete)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const lunchJSON = `{"description":"lunch","amount":12,"date":"2024-01-01","category":"food","user_id":1}`

func TestExpenseHandler_Create(t *testing.T) {
	t.Run("success: created with full record", func(t *testing.T) {
		var got *entity.Expense
		mock := &mockExpenseUsecase{CreateFunc: func(ctx context.Context, e *entity.Expense) error {
			got = e
			e.ID = 10
			return nil
		}}
		w := do(newRouter(NewExpenseHandler(mock)), http.MethodPost, "/api/expenses", lunchJSON)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Expense created successfully","data":{"id":10,"title":null,"description":"lunch","amount":12,"date":"2024-01-01","category":"food","user_id":1}}`, w.Body.String())
		require.NotNil(t, got)
		assert.Equal(t, "food", *got.Category)
		assert.Equal(t, uint(1), *got.UserID)
	})

	emptyBodies := []struct {
		name string
		body string
	}{
		{"no body", ""},
		{"empty object", "{}"},
		{"null", "null"},
		{"unknown fields only", `{"colour":"red"}`},
	}
	for _, tt := range emptyBodies {
		t.Run("failure: "+tt.name, func(t *testing.T) {
			mock := &mockExpenseUsecase{}
			w := do(newRouter(NewExpenseHandler(mock)), http.MethodPost, "/api/expenses", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"success":false,"message":"Request body is empty"}`, w.Body.String())
			assert.Zero(t, mock.calls, "store must not be touched")
		})
	}

	t.Run("failure: malformed JSON", func(t *testing.T) {
		mock := &mockExpenseUsecase{}
		w := do(newRouter(NewExpenseHandler(mock)), http.MethodPost, "/api/expenses", `{"amount":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid request body"}`, w.Body.String())
		assert.Zero(t, mock.calls)
	})

	t.Run("failure: not null violation", func(t *testing.T) {
		mock := &mockExpenseUsecase{CreateFunc: func(ctx context.Context, e *entity.Expense) error {
			return &platformdb.StoreError{Kind: platformdb.KindConstraint, Code: "1299", Detail: "NOT NULL constraint failed: expenses.category"}
		}}
		w := do(newRouter(NewExpenseHandler(mock)), http.MethodPost, "/api/expenses", `{"description":"lunch"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "NOT NULL constraint failed")
	})
}

func TestExpenseHandler_List(t *testing.T) {
	mock := &mockExpenseUsecase{ListFunc: func(ctx context.Context) ([]entity.Expense, error) {
		return []entity.Expense{
			{ID: 1, Description: str("lunch"), Amount: i64(12), Date: str("2024-01-01"), Category: str("food"), UserID: uid(1)},
			{ID: 2, Title: str("bus"), Description: str("ticket"), Category: str("transport")},
		}, nil
	}}
	w := do(newRouter(NewExpenseHandler(mock)), http.MethodGet, "/api/expenses", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Expenses retrieved successfully","data":[
		{"id":1,"title":null,"description":"lunch","amount":12,"date":"2024-01-01","category":"food","user_id":1},
		{"id":2,"title":"bus","description":"ticket","amount":null,"date":null,"category":"transport","user_id":null}
	]}`, w.Body.String())
}

func TestExpenseHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		getFunc        func(ctx context.Context, id uint) (*entity.Expense, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: full record",
			path: "/api/expenses/4",
			getFunc: func(ctx context.Context, id uint) (*entity.Expense, error) {
				return &entity.Expense{ID: id, Description: str("lunch"), Amount: i64(12), Date: str("2024-01-01"), Category: str("food"), UserID: uid(1)}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Expense retrieved successfully","data":{"id":4,"title":null,"description":"lunch","amount":12,"date":"2024-01-01","category":"food","user_id":1}}`,
		},
		{
			name:           "failure: not found",
			path:           "/api/expenses/999999",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"message":"Expense not found"}`,
		},
		{
			name:           "failure: invalid id",
			path:           "/api/expenses/one",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Invalid id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(NewExpenseHandler(&mockExpenseUsecase{GetFunc: tt.getFunc})), http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestExpenseHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		updateErr      error
		expectedStatus int
		expectedBody   string
		expectCall     bool
	}{
		{
			name:           "success",
			body:           lunchJSON,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Expense updated successfully"}`,
			expectCall:     true,
		},
		{
			name:           "failure: empty body",
			body:           "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Request body is empty"}`,
		},
		{
			name:           "failure: constraint violation carries store detail",
			body:           lunchJSON,
			updateErr:      &platformdb.StoreError{Kind: platformdb.KindConstraint, Code: "787", Detail: "FOREIGN KEY constraint failed"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Constraint violation","error":{"kind":"constraint_violation","code":"787","detail":"FOREIGN KEY constraint failed"}}`,
			expectCall:     true,
		},
		{
			name:           "failure: statement error",
			body:           lunchJSON,
			updateErr:      &platformdb.StoreError{Kind: platformdb.KindStatement, Code: "1", Detail: "no such column: categry"},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Statement error","error":{"kind":"statement_error","code":"1","detail":"no such column: categry"}}`,
			expectCall:     true,
		},
		{
			name:           "failure: generic store error carries code and message",
			body:           lunchJSON,
			updateErr:      &platformdb.StoreError{Kind: platformdb.KindGeneric, Code: "5", Detail: "database is locked"},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Database error","error":{"kind":"store_error","code":"5","detail":"database is locked"}}`,
			expectCall:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID uint
			mock := &mockExpenseUsecase{UpdateFunc: func(ctx context.Context, id uint, e *entity.Expense) (bool, error) {
				gotID = id
				return tt.updateErr == nil, tt.updateErr
			}}
			w := do(newRouter(NewExpenseHandler(mock)), http.MethodPut, "/api/expenses/8", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			if tt.expectCall {
				assert.Equal(t, uint(8), gotID)
			} else {
				assert.Zero(t, mock.calls)
			}
		})
	}
}

func TestExpenseHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		w := do(newRouter(NewExpenseHandler(&mockExpenseUsecase{})), http.MethodDelete, "/api/expenses/3", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Expense deleted successfully"}`, w.Body.String())
	})

	t.Run("failure: not found", func(t *testing.T) {
		mock := &mockExpenseUsecase{DeleteFunc: func(ctx context.Context, id uint) error { return usecase.ErrExpenseNotFound }}
		w := do(newRouter(NewExpenseHandler(mock)), http.MethodDelete, "/api/expenses/999999", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Expense not found"}`, w.Body.String())
	})
}
