// internals/features/notifications/dto/notification_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RegisterTokenRequest struct {
	Token      string         `json:"token" validate:"required,max=500"`
	DeviceInfo datatypes.JSON `json:"device_info"`
}

type RemoveTokenRequest struct {
	Token string `json:"token" validate:"required,max=500"`
}

type SendToUsersRequest struct {
	UserIDs []uuid.UUID       `json:"user_ids" validate:"required,min=1"`
	Title   string            `json:"title" validate:"required,max=200"`
	Body    string            `json:"body" validate:"required,max=1000"`
	Data    map[string]string `json:"data"`
}

type SendToTopicRequest struct {
	Topic string            `json:"topic" validate:"required,max=100"`
	Title string            `json:"title" validate:"required,max=200"`
	Body  string            `json:"body" validate:"required,max=1000"`
	Data  map[string]string `json:"data"`
}
