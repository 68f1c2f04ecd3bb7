// Package handler はuserフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"budget_backend/internal/api"
	"budget_backend/internal/feature/user/domain/entity"
	"budget_backend/internal/feature/user/transport/http/dto"
	"budget_backend/internal/feature/user/usecase"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	Register(ctx context.Context, name, email, password *string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Update(ctx context.Context, id uint, name, email, password *string) (bool, error)
	Delete(ctx context.Context, id uint) error
}

// UserHandler はユーザーリソースのHTTPリクエストを処理します。
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register は POST /api/register を処理します。
// - JSONとして読めないボディは400
// - 制約違反（メール重複、name欠落）は400
// - 成功時は201とid/nameを返却
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.UserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register: invalid body", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.uc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		api.StoreFailure(c, err)
		return
	}
	slog.Info("user registered", "id", user.ID, "remote_addr", c.ClientIP())
	api.Created(c, "User registered successfully", dto.NewUserItem(user))
}

// List は GET /api/users を処理します。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.List(c.Request.Context())
	if err != nil {
		api.StoreFailure(c, err)
		return
	}
	out := make([]dto.UserItem, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserItem(&users[i]))
	}
	api.OK(c, "Users retrieved successfully", out)
}

// Get は GET /api/users/:id を処理します。存在しない場合は404。
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := api.PathID(c)
	if !ok {
		return
	}
	user, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	api.OK(c, "User retrieved successfully", dto.NewUserItem(user))
}

// Update は PUT /api/users/:id を処理します。
// 存在確認は行わず、該当行がなくても成功を返します。
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := api.PathID(c)
	if !ok {
		return
	}
	var req dto.UserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user: invalid body", "error", err, "id", id, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	matched, err := h.uc.Update(c.Request.Context(), id, req.Name, req.Email, req.Password)
	if err != nil {
		api.StoreFailure(c, err)
		return
	}
	if !matched {
		slog.Warn("update user matched no rows", "id", id)
	}
	api.OK(c, "User updated successfully", nil)
}

// Delete は DELETE /api/users/:id を処理します。
// 支出を所有するユーザーの削除は外部キー制約により400になります。
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := api.PathID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	slog.Info("user deleted", "id", id)
	api.OK(c, "User deleted successfully", nil)
}

// fail は未検出エラーを404に、それ以外をストアエラーとして変換します。
func (h *UserHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		api.Fail(c, http.StatusNotFound, "User not found")
		return
	}
	api.StoreFailure(c, err)
}
