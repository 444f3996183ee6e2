// internals/features/users/user/dto/user_dto.go
package dto

import (
	"github.com/google/uuid"

	"acex_backend/internals/helpers/field"
)

type CreateUserRequest struct {
	Username  string     `json:"username" validate:"required,min=3,max=50"`
	Password  string     `json:"password" validate:"required,min=8,max=100"`
	Role      string     `json:"role" validate:"required"`
	TeacherID *uuid.UUID `json:"teacher_id"`
}

type UpdateUserRequest struct {
	Username  field.Field[string]    `json:"username"`
	Password  field.Field[string]    `json:"password"`
	Role      field.Field[string]    `json:"role"`
	TeacherID field.Field[uuid.UUID] `json:"teacher_id"`
	IsActive  field.Field[bool]      `json:"is_active"`
}
