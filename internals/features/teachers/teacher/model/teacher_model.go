// internals/features/teachers/teacher/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID           uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey" json:"teacher_id"`
	TeacherNationalID   string    `gorm:"column:teacher_national_id;type:varchar(15);not null;unique" json:"teacher_national_id"`
	TeacherEmail        string    `gorm:"column:teacher_email;type:varchar(150);not null;unique" json:"teacher_email"`
	TeacherFirstName    string    `gorm:"column:teacher_first_name;type:varchar(100);not null" json:"teacher_first_name"`
	TeacherLastName     string    `gorm:"column:teacher_last_name;type:varchar(150);not null" json:"teacher_last_name"`
	TeacherPhone        *string   `gorm:"column:teacher_phone;type:varchar(20)" json:"teacher_phone"`
	TeacherPhotoURL     *string   `gorm:"column:teacher_photo_url;type:varchar(500)" json:"teacher_photo_url"`
	TeacherPhotoThumb   *string   `gorm:"column:teacher_photo_thumb_url;type:varchar(500)" json:"teacher_photo_thumb_url"`
	TeacherIsActive     bool      `gorm:"column:teacher_is_active;not null;default:true" json:"teacher_is_active"`
	TeacherDepartmentID *int      `gorm:"column:teacher_department_id;index" json:"teacher_department_id"`
	TeacherCreatedAt    time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}
