// Package adapters provides the gorm-backed repository for the user feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"budget_backend/internal/feature/user/domain/entity"
	"budget_backend/internal/feature/user/usecase"
	platformdb "budget_backend/internal/platform/db"
)

// userGorm implements usecase.UserRepository on top of gorm.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a user repository using the given connection pool.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. Store failures come back as *platformdb.StoreError.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return platformdb.Classify(gorm.ErrInvalidData)
	}
	model := UserModelFromEntity(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return platformdb.Classify(err)
	}
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	return nil
}

// List returns all users ordered by ID.
func (r *userGorm) List(ctx context.Context) ([]entity.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, platformdb.Classify(err)
	}
	users := make([]entity.User, 0, len(models))
	for i := range models {
		users = append(users, *models[i].ToEntity())
	}
	return users, nil
}

// FindByID returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, platformdb.Classify(err)
	}
	return model.ToEntity(), nil
}

// Update overwrites name, email and password in a single statement.
// nil fields become NULL.
func (r *userGorm) Update(ctx context.Context, u *entity.User) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", u.ID).
		Select("name", "email", "password").
		Updates(&UserModel{Name: u.Name, Email: u.Email, Password: u.Password})
	if result.Error != nil {
		return 0, platformdb.Classify(result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes the user with a single conditional statement.
func (r *userGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserModel{})
	if result.Error != nil {
		return platformdb.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
