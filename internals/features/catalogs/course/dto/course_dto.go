// internals/features/catalogs/course/dto/course_dto.go
package dto

import (
	"acex_backend/internals/features/catalogs/course/model"
	"acex_backend/internals/helpers/field"
)

type CreateCourseRequest struct {
	CourseName  string  `json:"course_name" validate:"required,max=100"`
	CourseLevel *string `json:"course_level" validate:"omitempty,max=50"`
}

type UpdateCourseRequest struct {
	CourseName     field.Field[string] `json:"course_name"`
	CourseLevel    field.Field[string] `json:"course_level"`
	CourseIsActive field.Field[bool]   `json:"course_is_active"`
}

func (r *CreateCourseRequest) ToModel() *model.CourseModel {
	return &model.CourseModel{
		CourseName:     r.CourseName,
		CourseLevel:    r.CourseLevel,
		CourseIsActive: true,
	}
}

func (r *UpdateCourseRequest) ApplyTo(m *model.CourseModel) {
	if v, ok := r.CourseName.Get(); ok {
		m.CourseName = v
	}
	if r.CourseLevel.Present {
		m.CourseLevel = r.CourseLevel.Ptr()
	}
	if v, ok := r.CourseIsActive.Get(); ok {
		m.CourseIsActive = v
	}
}

type CreateStudentGroupRequest struct {
	GroupName         string `json:"group_name" validate:"required,max=100"`
	GroupStudentCount int    `json:"group_student_count" validate:"gte=0"`
	GroupCourseID     int    `json:"group_course_id" validate:"required,gt=0"`
}

type UpdateStudentGroupRequest struct {
	GroupName         field.Field[string] `json:"group_name"`
	GroupStudentCount field.Field[int]    `json:"group_student_count"`
	GroupCourseID     field.Field[int]    `json:"group_course_id"`
}

func (r *CreateStudentGroupRequest) ToModel() *model.StudentGroupModel {
	return &model.StudentGroupModel{
		GroupName:         r.GroupName,
		GroupStudentCount: r.GroupStudentCount,
		GroupCourseID:     r.GroupCourseID,
	}
}

func (r *UpdateStudentGroupRequest) ApplyTo(m *model.StudentGroupModel) {
	if v, ok := r.GroupName.Get(); ok {
		m.GroupName = v
	}
	if v, ok := r.GroupStudentCount.Get(); ok {
		m.GroupStudentCount = v
	}
	if v, ok := r.GroupCourseID.Get(); ok {
		m.GroupCourseID = v
	}
}
