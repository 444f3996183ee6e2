// internals/features/notifications/model/fcm_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FCMTokenModel struct {
	FCMTokenID         int            `gorm:"column:fcm_token_id;primaryKey;autoIncrement" json:"fcm_token_id"`
	FCMTokenUserID     uuid.UUID      `gorm:"column:fcm_token_user_id;type:uuid;not null;index" json:"fcm_token_user_id"`
	FCMTokenValue      string         `gorm:"column:fcm_token_value;type:varchar(500);not null" json:"fcm_token_value"`
	FCMTokenDeviceInfo datatypes.JSON `gorm:"column:fcm_token_device_info" json:"fcm_token_device_info"`
	FCMTokenIsActive   bool           `gorm:"column:fcm_token_is_active;not null;default:true" json:"fcm_token_is_active"`
	FCMTokenCreatedAt  time.Time      `gorm:"column:fcm_token_created_at;autoCreateTime" json:"fcm_token_created_at"`
	FCMTokenUpdatedAt  time.Time      `gorm:"column:fcm_token_updated_at;autoUpdateTime" json:"fcm_token_updated_at"`
}

func (FCMTokenModel) TableName() string {
	return "fcm_tokens"
}
