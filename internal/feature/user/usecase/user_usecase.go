// Package usecase implements the business logic for the user feature.
package usecase

import (
	"context"

	"budget_backend/internal/feature/user/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create inserts u and sets its ID and CreatedAt.
	Create(ctx context.Context, u *entity.User) error

	// List returns every user in insertion order.
	List(ctx context.Context) ([]entity.User, error)

	// FindByID returns ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update replaces name, email and password of the row with u.ID.
	// It reports the number of rows the statement matched.
	Update(ctx context.Context, u *entity.User) (int64, error)

	// Delete removes the row and returns ErrUserNotFound if none existed.
	Delete(ctx context.Context, id uint) error
}

// UserUsecase provides the user operations exposed over HTTP.
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a UserUsecase backed by users.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// Register stores a new user as received. No field is validated here;
// the store enforces NOT NULL on name and uniqueness on email.
func (u *UserUsecase) Register(ctx context.Context, name, email, password *string) (*entity.User, error) {
	user := &entity.User{Name: name, Email: email, Password: password}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns all users.
func (u *UserUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// Get returns a single user or ErrUserNotFound.
func (u *UserUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update overwrites name, email and password. Updating an unknown ID is not an
// error; the returned bool reports whether any row matched.
func (u *UserUsecase) Update(ctx context.Context, id uint, name, email, password *string) (bool, error) {
	n, err := u.users.Update(ctx, &entity.User{ID: id, Name: name, Email: email, Password: password})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes a user or returns ErrUserNotFound.
func (u *UserUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}
