package adapters

import (
	"budget_backend/internal/feature/expense/domain/entity"
	useradapters "budget_backend/internal/feature/user/adapters"
)

// ExpenseModel is the GORM model for the expenses table.
// The User association exists only so AutoMigrate declares the foreign key;
// it is never loaded or saved.
type ExpenseModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Title       *string `gorm:"type:text"`
	Description *string `gorm:"type:text;not null"`
	Amount      *int64
	Date        *string `gorm:"type:text"`
	Category    *string `gorm:"type:text;not null"`
	UserID      *uint   `gorm:"index"`

	User *useradapters.UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// replaceColumns are overwritten by a full-record update.
var replaceColumns = []string{"title", "description", "amount", "date", "category", "user_id"}

// ToEntity converts the GORM model to a domain entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		Category:    m.Category,
		UserID:      m.UserID,
	}
}

// ExpenseModelFromEntity converts a domain entity to a GORM model.
func ExpenseModelFromEntity(e *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Category:    e.Category,
		UserID:      e.UserID,
	}
}
