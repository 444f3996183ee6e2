// internals/features/activities/expense/model/expense_model.go
package model

import "time"

type ExpenseModel struct {
	ExpenseID         int       `gorm:"column:expense_id;primaryKey;autoIncrement" json:"expense_id"`
	ExpenseActivityID int       `gorm:"column:expense_activity_id;not null;index" json:"expense_activity_id"`
	ExpenseConcept    string    `gorm:"column:expense_concept;type:varchar(200);not null" json:"expense_concept"`
	ExpenseAmount     float64   `gorm:"column:expense_amount;not null;default:0" json:"expense_amount"`
	ExpenseCreatedAt  time.Time `gorm:"column:expense_created_at;autoCreateTime" json:"expense_created_at"`
}

func (ExpenseModel) TableName() string {
	return "activity_expenses"
}
