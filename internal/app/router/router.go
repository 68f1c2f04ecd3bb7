package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"budget_backend/internal/api"
	expensehandler "budget_backend/internal/feature/expense/transport/handler"
	userhandler "budget_backend/internal/feature/user/transport/handler"
	"budget_backend/internal/platform/http/handler"
	"budget_backend/internal/platform/http/middleware"
)

// Options tunes the engine without touching the route table.
type Options struct {
	RequestTimeout time.Duration
	CORSEnabled    bool
}

// NewRouter builds the gin engine serving the /api routes.
func NewRouter(users *userhandler.UserHandler, expenses *expensehandler.ExpenseHandler, opts Options) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.NoRoute(api.NotFound)
	r.NoMethod(api.MethodNotAllowed)

	if opts.CORSEnabled {
		r.Use(cors.Default())
	}

	g := r.Group("/api")

	// 導通確認用（ストア非依存）
	g.GET("/health", handler.Health)
	g.HEAD("/health", handler.Health)
	g.OPTIONS("/health", handler.Health)

	g.Use(middleware.RequestTimeout(opts.RequestTimeout))
	{
		g.POST("/register", users.Register)
		g.GET("/users", users.List)
		g.GET("/users/:id", users.Get)
		g.PUT("/users/:id", users.Update)
		g.DELETE("/users/:id", users.Delete)

		g.POST("/expenses", expenses.Create)
		g.GET("/expenses", expenses.List)
		g.GET("/expenses/:id", expenses.Get)
		g.PUT("/expenses/:id", expenses.Update)
		g.DELETE("/expenses/:id", expenses.Delete)
	}

	return r
}
