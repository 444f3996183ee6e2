// internals/features/catalogs/department/dto/department_dto.go
package dto

import (
	"acex_backend/internals/features/catalogs/department/model"
	"acex_backend/internals/helpers/field"
)

type CreateDepartmentRequest struct {
	DepartmentName        string  `json:"department_name" validate:"required,max=100"`
	DepartmentCode        *string `json:"department_code" validate:"omitempty,max=20"`
	DepartmentDescription *string `json:"department_description" validate:"omitempty,max=500"`
}

// UpdateDepartmentRequest: hanya field yang dikirim yang diubah
type UpdateDepartmentRequest struct {
	DepartmentName        field.Field[string] `json:"department_name"`
	DepartmentCode        field.Field[string] `json:"department_code"`
	DepartmentDescription field.Field[string] `json:"department_description"`
}

func (r *CreateDepartmentRequest) ToModel() *model.DepartmentModel {
	return &model.DepartmentModel{
		DepartmentName:        r.DepartmentName,
		DepartmentCode:        r.DepartmentCode,
		DepartmentDescription: r.DepartmentDescription,
	}
}

// ApplyTo menerapkan perubahan parsial ke model yang sudah ada
func (r *UpdateDepartmentRequest) ApplyTo(m *model.DepartmentModel) {
	if v, ok := r.DepartmentName.Get(); ok {
		m.DepartmentName = v
	}
	if r.DepartmentCode.Present {
		m.DepartmentCode = r.DepartmentCode.Ptr()
	}
	if r.DepartmentDescription.Present {
		m.DepartmentDescription = r.DepartmentDescription.Ptr()
	}
}
