// internals/features/catalogs/course/model/course_model.go
package model

import "time"

type CourseModel struct {
	CourseID        int       `gorm:"column:course_id;primaryKey;autoIncrement" json:"course_id"`
	CourseName      string    `gorm:"column:course_name;type:varchar(100);not null" json:"course_name"`
	CourseLevel     *string   `gorm:"column:course_level;type:varchar(50)" json:"course_level"`
	CourseIsActive  bool      `gorm:"column:course_is_active;not null;default:true" json:"course_is_active"`
	CourseCreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
