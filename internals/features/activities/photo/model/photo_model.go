// internals/features/activities/photo/model/photo_model.go
package model

import "time"

type ActivityPhotoModel struct {
	ActivityPhotoID          int       `gorm:"column:activity_photo_id;primaryKey;autoIncrement" json:"activity_photo_id"`
	ActivityPhotoActivityID  int       `gorm:"column:activity_photo_activity_id;not null;index" json:"activity_photo_activity_id"`
	ActivityPhotoURL         string    `gorm:"column:activity_photo_url;type:varchar(500);not null" json:"activity_photo_url"`
	ActivityPhotoThumbURL    *string   `gorm:"column:activity_photo_thumb_url;type:varchar(500)" json:"activity_photo_thumb_url"`
	ActivityPhotoDescription *string   `gorm:"column:activity_photo_description;type:varchar(500)" json:"activity_photo_description"`
	ActivityPhotoSizeBytes   int64     `gorm:"column:activity_photo_size_bytes;not null;default:0" json:"activity_photo_size_bytes"`
	ActivityPhotoUploadedAt  time.Time `gorm:"column:activity_photo_uploaded_at;autoCreateTime" json:"activity_photo_uploaded_at"`
}

func (ActivityPhotoModel) TableName() string {
	return "activity_photos"
}
