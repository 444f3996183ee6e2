// internals/features/users/auth/dto/auth_dto.go
package dto

import "github.com/google/uuid"

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=150"`
	Password   string `json:"password" validate:"required,max=100"`
}

type RegisterRequest struct {
	Username  string     `json:"username" validate:"required,min=3,max=50"`
	Password  string     `json:"password" validate:"required,min=8,max=100"`
	TeacherID *uuid.UUID `json:"teacher_id"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,max=100"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=100"`
}

type AuthResponse struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}
