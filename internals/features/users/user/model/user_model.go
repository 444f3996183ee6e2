// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID           uuid.UUID  `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserUsername     string     `gorm:"column:user_username;type:varchar(50);not null;unique" json:"user_username"`
	UserPasswordHash string     `gorm:"column:user_password_hash;type:varchar(100);not null" json:"-"`
	UserRole         string     `gorm:"column:user_role;type:varchar(20);not null;default:user" json:"user_role"`
	UserTeacherID    *uuid.UUID `gorm:"column:user_teacher_id;type:uuid;index" json:"user_teacher_id"`
	UserIsActive     bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt    time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt    time.Time  `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
