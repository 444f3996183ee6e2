// internals/features/teachers/teacher/dto/teacher_dto.go
package dto

import (
	"strings"

	"acex_backend/internals/features/teachers/teacher/model"
	"acex_backend/internals/helpers/field"
)

type CreateTeacherRequest struct {
	TeacherNationalID   string  `json:"teacher_national_id" validate:"required,max=15"`
	TeacherEmail        string  `json:"teacher_email" validate:"required,email,max=150"`
	TeacherFirstName    string  `json:"teacher_first_name" validate:"required,max=100"`
	TeacherLastName     string  `json:"teacher_last_name" validate:"required,max=150"`
	TeacherPhone        *string `json:"teacher_phone" validate:"omitempty,max=20"`
	TeacherDepartmentID *int    `json:"teacher_department_id" validate:"omitempty,gt=0"`
}

type UpdateTeacherRequest struct {
	TeacherNationalID   field.Field[string] `json:"teacher_national_id"`
	TeacherEmail        field.Field[string] `json:"teacher_email"`
	TeacherFirstName    field.Field[string] `json:"teacher_first_name"`
	TeacherLastName     field.Field[string] `json:"teacher_last_name"`
	TeacherPhone        field.Field[string] `json:"teacher_phone"`
	TeacherIsActive     field.Field[bool]   `json:"teacher_is_active"`
	TeacherDepartmentID field.Field[int]    `json:"teacher_department_id"`
}

func (r *CreateTeacherRequest) ToModel() *model.TeacherModel {
	return &model.TeacherModel{
		TeacherNationalID:   strings.ToUpper(strings.TrimSpace(r.TeacherNationalID)),
		TeacherEmail:        strings.ToLower(strings.TrimSpace(r.TeacherEmail)),
		TeacherFirstName:    strings.TrimSpace(r.TeacherFirstName),
		TeacherLastName:     strings.TrimSpace(r.TeacherLastName),
		TeacherPhone:        r.TeacherPhone,
		TeacherIsActive:     true,
		TeacherDepartmentID: r.TeacherDepartmentID,
	}
}

func (r *UpdateTeacherRequest) ApplyTo(m *model.TeacherModel) {
	if v, ok := r.TeacherNationalID.Get(); ok {
		m.TeacherNationalID = strings.ToUpper(strings.TrimSpace(v))
	}
	if v, ok := r.TeacherEmail.Get(); ok {
		m.TeacherEmail = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := r.TeacherFirstName.Get(); ok {
		m.TeacherFirstName = strings.TrimSpace(v)
	}
	if v, ok := r.TeacherLastName.Get(); ok {
		m.TeacherLastName = strings.TrimSpace(v)
	}
	if r.TeacherPhone.Present {
		m.TeacherPhone = r.TeacherPhone.Ptr()
	}
	if v, ok := r.TeacherIsActive.Get(); ok {
		m.TeacherIsActive = v
	}
	if r.TeacherDepartmentID.Present {
		m.TeacherDepartmentID = r.TeacherDepartmentID.Ptr()
	}
}
