// internals/features/catalogs/department/model/department_model.go
package model

import "time"

type DepartmentModel struct {
	DepartmentID          int       `gorm:"column:department_id;primaryKey;autoIncrement" json:"department_id"`
	DepartmentName        string    `gorm:"column:department_name;type:varchar(100);not null;unique" json:"department_name"`
	DepartmentCode        *string   `gorm:"column:department_code;type:varchar(20)" json:"department_code"`
	DepartmentDescription *string   `gorm:"column:department_description;type:varchar(500)" json:"department_description"`
	DepartmentCreatedAt   time.Time `gorm:"column:department_created_at;autoCreateTime" json:"department_created_at"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
