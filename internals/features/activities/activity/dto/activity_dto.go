// internals/features/activities/activity/dto/activity_dto.go
package dto

import (
	"time"

	"acex_backend/internals/features/activities/activity/model"
	"acex_backend/internals/helpers/field"
)

type CreateActivityRequest struct {
	ActivityName               string     `json:"activity_name" validate:"required,max=200"`
	ActivityDescription        *string    `json:"activity_description" validate:"omitempty,max=1000"`
	ActivityStartDate          time.Time  `json:"activity_start_date" validate:"required"`
	ActivityEndDate            *time.Time `json:"activity_end_date"`
	ActivityEstimatedBudget    *float64   `json:"activity_estimated_budget" validate:"omitempty,gte=0"`
	ActivityActualCost         *float64   `json:"activity_actual_cost" validate:"omitempty,gte=0"`
	ActivityTransportPrice     *float64   `json:"activity_transport_price" validate:"omitempty,gte=0"`
	ActivityLodgingPrice       *float64   `json:"activity_lodging_price" validate:"omitempty,gte=0"`
	ActivityStatus             *string    `json:"activity_status" validate:"omitempty,oneof=pending approved rejected"`
	ActivityType               *string    `json:"activity_type" validate:"omitempty,oneof=complementary extracurricular"`
	ActivityTransportRequired  bool       `json:"activity_transport_required"`
	ActivityLodgingRequired    bool       `json:"activity_lodging_required"`
	ActivityLodgingID          *int       `json:"activity_lodging_id" validate:"omitempty,gt=0"`
	ActivityDepartmentID       *int       `json:"activity_department_id" validate:"omitempty,gt=0"`
	ActivityLocationID         *int       `json:"activity_location_id" validate:"omitempty,gt=0"`
	ActivityTransportCompanyID *int       `json:"activity_transport_company_id" validate:"omitempty,gt=0"`
}

func (r *CreateActivityRequest) ToModel() *model.ActivityModel {
	m := &model.ActivityModel{
		ActivityName:               r.ActivityName,
		ActivityDescription:        r.ActivityDescription,
		ActivityStartDate:          r.ActivityStartDate,
		ActivityEndDate:            r.ActivityEndDate,
		ActivityEstimatedBudget:    r.ActivityEstimatedBudget,
		ActivityActualCost:         r.ActivityActualCost,
		ActivityTransportPrice:     r.ActivityTransportPrice,
		ActivityLodgingPrice:       r.ActivityLodgingPrice,
		ActivityStatus:             model.StatusPending,
		ActivityType:               model.TypeExtracurricular,
		ActivityTransportRequired:  r.ActivityTransportRequired,
		ActivityLodgingRequired:    r.ActivityLodgingRequired,
		ActivityLodgingID:          r.ActivityLodgingID,
		ActivityDepartmentID:       r.ActivityDepartmentID,
		ActivityLocationID:         r.ActivityLocationID,
		ActivityTransportCompanyID: r.ActivityTransportCompanyID,
	}
	if r.ActivityStatus != nil {
		m.ActivityStatus = *r.ActivityStatus
	}
	if r.ActivityType != nil {
		m.ActivityType = *r.ActivityType
	}
	return m
}

// UpdateActivityRequest: hanya field yang ada di payload yang diubah;
// null eksplisit berarti kosongkan kolomnya.
type UpdateActivityRequest struct {
	ActivityName               field.Field[string]    `json:"activity_name"`
	ActivityDescription        field.Field[string]    `json:"activity_description"`
	ActivityStartDate          field.Field[time.Time] `json:"activity_start_date"`
	ActivityEndDate            field.Field[time.Time] `json:"activity_end_date"`
	ActivityEstimatedBudget    field.Field[float64]   `json:"activity_estimated_budget"`
	ActivityActualCost         field.Field[float64]   `json:"activity_actual_cost"`
	ActivityTransportPrice     field.Field[float64]   `json:"activity_transport_price"`
	ActivityLodgingPrice       field.Field[float64]   `json:"activity_lodging_price"`
	ActivityStatus             field.Field[string]    `json:"activity_status"`
	ActivityType               field.Field[string]    `json:"activity_type"`
	ActivityTransportRequired  field.Field[bool]      `json:"activity_transport_required"`
	ActivityLodgingRequired    field.Field[bool]      `json:"activity_lodging_required"`
	ActivityLodgingID          field.Field[int]       `json:"activity_lodging_id"`
	ActivityDepartmentID       field.Field[int]       `json:"activity_department_id"`
	ActivityLocationID         field.Field[int]       `json:"activity_location_id"`
	ActivityTransportCompanyID field.Field[int]       `json:"activity_transport_company_id"`

	// set pengganti responsible teacher (is_coordinator=true)
	ResponsibleTeacherID field.Field[string] `json:"responsible_teacher_id"`
}

func (r *UpdateActivityRequest) ApplyTo(m *model.ActivityModel) {
	if v, ok := r.ActivityName.Get(); ok {
		m.ActivityName = v
	}
	if r.ActivityDescription.Present {
		m.ActivityDescription = r.ActivityDescription.Ptr()
	}
	if v, ok := r.ActivityStartDate.Get(); ok {
		m.ActivityStartDate = v
	}
	if r.ActivityEndDate.Present {
		m.ActivityEndDate = r.ActivityEndDate.Ptr()
	}
	if r.ActivityEstimatedBudget.Present {
		m.ActivityEstimatedBudget = r.ActivityEstimatedBudget.Ptr()
	}
	if r.ActivityActualCost.Present {
		m.ActivityActualCost = r.ActivityActualCost.Ptr()
	}
	if r.ActivityTransportPrice.Present {
		m.ActivityTransportPrice = r.ActivityTransportPrice.Ptr()
	}
	if r.ActivityLodgingPrice.Present {
		m.ActivityLodgingPrice = r.ActivityLodgingPrice.Ptr()
	}
	if v, ok := r.ActivityStatus.Get(); ok {
		m.ActivityStatus = v
	}
	if v, ok := r.ActivityType.Get(); ok {
		m.ActivityType = v
	}
	if v, ok := r.ActivityTransportRequired.Get(); ok {
		m.ActivityTransportRequired = v
	}
	if v, ok := r.ActivityLodgingRequired.Get(); ok {
		m.ActivityLodgingRequired = v
	}
	if r.ActivityLodgingID.Present {
		m.ActivityLodgingID = r.ActivityLodgingID.Ptr()
	}
	if r.ActivityDepartmentID.Present {
		m.ActivityDepartmentID = r.ActivityDepartmentID.Ptr()
	}
	if r.ActivityLocationID.Present {
		m.ActivityLocationID = r.ActivityLocationID.Ptr()
	}
	if r.ActivityTransportCompanyID.Present {
		m.ActivityTransportCompanyID = r.ActivityTransportCompanyID.Ptr()
	}
}

// AddActivityLocationRequest: tambah lokasi ke aktivitas.
// Icon (opsional) ditulis ke baris lokasi BERSAMA — lihat UpdateLocationIcon.
type AddActivityLocationRequest struct {
	LocationID  int     `json:"location_id" validate:"required,gt=0"`
	IsPrincipal bool    `json:"is_principal"`
	Order       int     `json:"order" validate:"gte=0"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Type        *string `json:"type" validate:"omitempty,max=50"`
	Icon        *string `json:"icon" validate:"omitempty,max=100"`
}

type UpdateActivityLocationRequest struct {
	IsPrincipal field.Field[bool]   `json:"is_principal"`
	Order       field.Field[int]    `json:"order"`
	Description field.Field[string] `json:"description"`
	Type        field.Field[string] `json:"type"`
	Icon        field.Field[string] `json:"icon"`
}

// ReplaceParticipantTeachersRequest: set pengganti; uuid yang tidak bisa
// diparse dilewati diam-diam (perilaku lama yang dipertahankan).
type ReplaceParticipantTeachersRequest struct {
	TeacherIDs []string `json:"teacher_ids"`
}

type GroupAssignment struct {
	GroupID          int  `json:"group_id" validate:"required,gt=0"`
	ParticipantCount *int `json:"participant_count" validate:"omitempty,gte=0"`
}

type ReplaceParticipantGroupsRequest struct {
	Groups []GroupAssignment `json:"groups" validate:"dive"`
}

// ActivityDetailResponse: detail lengkap dengan nama relasi ter-resolve.
type ActivityDetailResponse struct {
	model.ActivityModel
	DepartmentName       *string                                 `json:"department_name"`
	PrimaryLocationName  *string                                 `json:"primary_location_name"`
	LodgingName          *string                                 `json:"lodging_name"`
	TransportCompanyName *string                                 `json:"transport_company_name"`
	Locations            []ActivityLocationWithName              `json:"locations"`
	ResponsibleTeachers  []model.ActivityResponsibleTeacherModel `json:"responsible_teachers"`
}

type ActivityLocationWithName struct {
	model.ActivityLocationModel
	LocationName string  `json:"location_name"`
	LocationIcon *string `json:"location_icon"`
}
