// internals/features/activities/contract/dto/contract_dto.go
package dto

import (
	"strings"
	"time"

	"acex_backend/internals/features/activities/contract/model"
	"acex_backend/internals/helpers/field"
)

type CreateContractRequest struct {
	ContractSupplierName string     `json:"contract_supplier_name" validate:"required,max=200"`
	ContractDescription  *string    `json:"contract_description" validate:"omitempty,max=500"`
	ContractAmount       *float64   `json:"contract_amount" validate:"omitempty,gte=0"`
	ContractDate         *time.Time `json:"contract_date"`
}

func (r *CreateContractRequest) ToModel(activityID int) *model.ContractModel {
	return &model.ContractModel{
		ContractActivityID:   activityID,
		ContractSupplierName: strings.TrimSpace(r.ContractSupplierName),
		ContractDescription:  r.ContractDescription,
		ContractAmount:       r.ContractAmount,
		ContractDate:         r.ContractDate,
	}
}

type UpdateContractRequest struct {
	ContractSupplierName field.Field[string]    `json:"contract_supplier_name"`
	ContractDescription  field.Field[string]    `json:"contract_description"`
	ContractAmount       field.Field[float64]   `json:"contract_amount"`
	ContractDate         field.Field[time.Time] `json:"contract_date"`
}

func (r *UpdateContractRequest) ApplyTo(m *model.ContractModel) {
	if v, ok := r.ContractSupplierName.Get(); ok {
		m.ContractSupplierName = strings.TrimSpace(v)
	}
	if r.ContractDescription.Present {
		m.ContractDescription = r.ContractDescription.Ptr()
	}
	if r.ContractAmount.Present {
		m.ContractAmount = r.ContractAmount.Ptr()
	}
	if r.ContractDate.Present {
		m.ContractDate = r.ContractDate.Ptr()
	}
}
