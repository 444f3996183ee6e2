// internals/features/activities/activity/model/activity_model.go
package model

import "time"

// Status aktivitas. Transisi tidak dibatasi: frontend yang menentukan alur
// approval, backend hanya memvalidasi nilainya dikenal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeComplementary   = "complementary"
	TypeExtracurricular = "extracurricular"
)

func IsKnownStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

func IsKnownType(s string) bool {
	return s == TypeComplementary || s == TypeExtracurricular
}

type ActivityModel struct {
	ActivityID                 int        `gorm:"column:activity_id;primaryKey;autoIncrement" json:"activity_id"`
	ActivityName               string     `gorm:"column:activity_name;type:varchar(200);not null" json:"activity_name"`
	ActivityDescription        *string    `gorm:"column:activity_description;type:varchar(1000)" json:"activity_description"`
	ActivityStartDate          time.Time  `gorm:"column:activity_start_date;not null" json:"activity_start_date"`
	ActivityEndDate            *time.Time `gorm:"column:activity_end_date" json:"activity_end_date"`
	ActivityEstimatedBudget    *float64   `gorm:"column:activity_estimated_budget" json:"activity_estimated_budget"`
	ActivityActualCost         *float64   `gorm:"column:activity_actual_cost" json:"activity_actual_cost"`
	ActivityTransportPrice     *float64   `gorm:"column:activity_transport_price" json:"activity_transport_price"`
	ActivityLodgingPrice       *float64   `gorm:"column:activity_lodging_price" json:"activity_lodging_price"`
	ActivityBrochureURL        *string    `gorm:"column:activity_brochure_url;type:varchar(500)" json:"activity_brochure_url"`
	ActivityStatus             string     `gorm:"column:activity_status;type:varchar(20);not null;default:pending" json:"activity_status"`
	ActivityType               string     `gorm:"column:activity_type;type:varchar(20);not null;default:extracurricular" json:"activity_type"`
	ActivityTransportRequired  bool       `gorm:"column:activity_transport_required;not null;default:false" json:"activity_transport_required"`
	ActivityLodgingRequired    bool       `gorm:"column:activity_lodging_required;not null;default:false" json:"activity_lodging_required"`
	ActivityLodgingID          *int       `gorm:"column:activity_lodging_id;index" json:"activity_lodging_id"`
	ActivityDepartmentID       *int       `gorm:"column:activity_department_id;index" json:"activity_department_id"`
	ActivityLocationID         *int       `gorm:"column:activity_location_id;index" json:"activity_location_id"`
	ActivityTransportCompanyID *int       `gorm:"column:activity_transport_company_id;index" json:"activity_transport_company_id"`
	ActivityCreatedAt          time.Time  `gorm:"column:activity_created_at;autoCreateTime" json:"activity_created_at"`
}

func (ActivityModel) TableName() string {
	return "activities"
}
