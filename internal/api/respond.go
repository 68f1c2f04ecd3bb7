package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	platformdb "budget_backend/internal/platform/db"
)

// OK writes a 200 success envelope.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes a failure envelope without store details.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// StoreFailure maps a store error onto the response:
// constraint violations are the client's fault (400), statement and other
// store errors are ours (500). The store's code and message are always attached.
func StoreFailure(c *gin.Context, err error) {
	var se *platformdb.StoreError
	if !errors.As(err, &se) {
		se = &platformdb.StoreError{Kind: platformdb.KindGeneric, Detail: err.Error(), Err: err}
	}

	status := http.StatusInternalServerError
	message := "Database error"
	switch se.Kind {
	case platformdb.KindConstraint:
		status = http.StatusBadRequest
		message = "Constraint violation"
	case platformdb.KindStatement:
		message = "Statement error"
	}

	attrs := []any{
		"kind", se.Kind.String(), "code", se.Code, "detail", se.Detail,
		"method", c.Request.Method, "path", c.FullPath(), "remote_addr", c.ClientIP(),
	}
	if status >= http.StatusInternalServerError {
		slog.Error("store request failed", attrs...)
	} else {
		slog.Warn("store rejected request", attrs...)
	}

	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Error:   &ErrorDetail{Kind: se.Kind.String(), Code: se.Code, Detail: se.Detail},
	})
}

// PathID parses the :id route parameter. On failure it has already written a
// 400 response and returns false.
func PathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		slog.Warn("invalid id parameter", "id", c.Param("id"), "remote_addr", c.ClientIP())
		Fail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// NotFound answers unmatched routes with a JSON body instead of gin's text page.
func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound, "Resource not found")
}

// MethodNotAllowed answers a known path with an unsupported method.
func MethodNotAllowed(c *gin.Context) {
	Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
}
