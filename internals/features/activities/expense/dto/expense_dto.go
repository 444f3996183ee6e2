// internals/features/activities/expense/dto/expense_dto.go
package dto

import (
	"strings"

	"acex_backend/internals/features/activities/expense/model"
	"acex_backend/internals/helpers/field"
)

type CreateExpenseRequest struct {
	ExpenseConcept string  `json:"expense_concept" validate:"required,max=200"`
	ExpenseAmount  float64 `json:"expense_amount" validate:"gte=0"`
}

func (r *CreateExpenseRequest) ToModel(activityID int) *model.ExpenseModel {
	return &model.ExpenseModel{
		ExpenseActivityID: activityID,
		ExpenseConcept:    strings.TrimSpace(r.ExpenseConcept),
		ExpenseAmount:     r.ExpenseAmount,
	}
}

type UpdateExpenseRequest struct {
	ExpenseConcept field.Field[string]  `json:"expense_concept"`
	ExpenseAmount  field.Field[float64] `json:"expense_amount"`
}

func (r *UpdateExpenseRequest) ApplyTo(m *model.ExpenseModel) {
	if v, ok := r.ExpenseConcept.Get(); ok {
		m.ExpenseConcept = strings.TrimSpace(v)
	}
	if v, ok := r.ExpenseAmount.Get(); ok {
		m.ExpenseAmount = v
	}
}
