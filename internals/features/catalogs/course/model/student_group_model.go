// internals/features/catalogs/course/model/student_group_model.go
package model

import "time"

type StudentGroupModel struct {
	GroupID           int       `gorm:"column:group_id;primaryKey;autoIncrement" json:"group_id"`
	GroupName         string    `gorm:"column:group_name;type:varchar(100);not null" json:"group_name"`
	GroupStudentCount int       `gorm:"column:group_student_count;not null;default:0" json:"group_student_count"`
	GroupCourseID     int       `gorm:"column:group_course_id;not null;index" json:"group_course_id"`
	GroupCreatedAt    time.Time `gorm:"column:group_created_at;autoCreateTime" json:"group_created_at"`

	Course *CourseModel `gorm:"foreignKey:GroupCourseID;references:CourseID" json:"course,omitempty"`
}

func (StudentGroupModel) TableName() string {
	return "student_groups"
}
