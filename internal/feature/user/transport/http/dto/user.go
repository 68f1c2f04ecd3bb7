// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

import "budget_backend/internal/feature/user/domain/entity"

// UserReq is the body of POST /api/register and PUT /api/users/:id.
// Every field is optional; absent fields are stored as NULL.
type UserReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserItem is the public view of a user. Email and password are never returned.
type UserItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewUserItem builds the public view of u.
func NewUserItem(u *entity.User) UserItem {
	item := UserItem{ID: u.ID}
	if u.Name != nil {
		item.Name = *u.Name
	}
	return item
}
