// internals/features/activities/activity/model/activity_relation_models.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLocationModel: join aktivitas ↔ lokasi.
// Maksimal SATU baris is_principal per aktivitas; dijaga oleh service
// dalam transaksi, bukan oleh constraint DB.
type ActivityLocationModel struct {
	ActivityLocationID          int       `gorm:"column:activity_location_id;primaryKey;autoIncrement" json:"activity_location_id"`
	ActivityLocationActivityID  int       `gorm:"column:activity_location_activity_id;not null;index;uniqueIndex:uq_activity_location" json:"activity_location_activity_id"`
	ActivityLocationLocationID  int       `gorm:"column:activity_location_location_id;not null;uniqueIndex:uq_activity_location" json:"activity_location_location_id"`
	ActivityLocationIsPrincipal bool      `gorm:"column:activity_location_is_principal;not null;default:false" json:"activity_location_is_principal"`
	ActivityLocationOrder       int       `gorm:"column:activity_location_order;not null;default:0" json:"activity_location_order"`
	ActivityLocationDescription *string   `gorm:"column:activity_location_description;type:varchar(500)" json:"activity_location_description"`
	ActivityLocationType        *string   `gorm:"column:activity_location_type;type:varchar(50)" json:"activity_location_type"`
	ActivityLocationAssignedAt  time.Time `gorm:"column:activity_location_assigned_at;autoCreateTime" json:"activity_location_assigned_at"`
}

func (ActivityLocationModel) TableName() string {
	return "activity_locations"
}

type ActivityParticipantTeacherModel struct {
	ActivityParticipantTeacherID         int       `gorm:"column:activity_participant_teacher_id;primaryKey;autoIncrement" json:"activity_participant_teacher_id"`
	ActivityParticipantTeacherActivityID int       `gorm:"column:activity_participant_teacher_activity_id;not null;index" json:"activity_participant_teacher_activity_id"`
	ActivityParticipantTeacherTeacherID  uuid.UUID `gorm:"column:activity_participant_teacher_teacher_id;type:uuid;not null" json:"activity_participant_teacher_teacher_id"`
}

func (ActivityParticipantTeacherModel) TableName() string {
	return "activity_participant_teachers"
}

type ActivityResponsibleTeacherModel struct {
	ActivityResponsibleTeacherID            int       `gorm:"column:activity_responsible_teacher_id;primaryKey;autoIncrement" json:"activity_responsible_teacher_id"`
	ActivityResponsibleTeacherActivityID    int       `gorm:"column:activity_responsible_teacher_activity_id;not null;index" json:"activity_responsible_teacher_activity_id"`
	ActivityResponsibleTeacherTeacherID     uuid.UUID `gorm:"column:activity_responsible_teacher_teacher_id;type:uuid;not null" json:"activity_responsible_teacher_teacher_id"`
	ActivityResponsibleTeacherIsCoordinator bool      `gorm:"column:activity_responsible_teacher_is_coordinator;not null;default:true" json:"activity_responsible_teacher_is_coordinator"`
}

func (ActivityResponsibleTeacherModel) TableName() string {
	return "activity_responsible_teachers"
}

type ActivityParticipantGroupModel struct {
	ActivityParticipantGroupID               int  `gorm:"column:activity_participant_group_id;primaryKey;autoIncrement" json:"activity_participant_group_id"`
	ActivityParticipantGroupActivityID       int  `gorm:"column:activity_participant_group_activity_id;not null;index" json:"activity_participant_group_activity_id"`
	ActivityParticipantGroupGroupID          int  `gorm:"column:activity_participant_group_group_id;not null" json:"activity_participant_group_group_id"`
	ActivityParticipantGroupParticipantCount *int `gorm:"column:activity_participant_group_participant_count" json:"activity_participant_group_participant_count"`
}

func (ActivityParticipantGroupModel) TableName() string {
	return "activity_participant_groups"
}
