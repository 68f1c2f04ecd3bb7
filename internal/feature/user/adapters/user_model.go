package adapters

import (
	"time"

	"budget_backend/internal/feature/user/domain/entity"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      *string   `gorm:"not null"`
	Email     *string   `gorm:"uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	Password  *string
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the GORM model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
	}
}

// UserModelFromEntity converts a domain entity to a GORM model.
func UserModelFromEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}
}
