// internals/features/notifications/service/notification_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"acex_backend/internals/features/notifications/model"
	"acex_backend/internals/features/notifications/sender"
)

var ErrTokenRequired = errors.New("fcm token must not be empty")

type NotificationService struct {
	DB     *gorm.DB
	Sender sender.Sender // nil = push belum dikonfigurasi, kirim jadi no-op
}

func NewNotificationService(db *gorm.DB, snd sender.Sender) *NotificationService {
	return &NotificationService{DB: db, Sender: snd}
}

// RegisterToken upsert per (user, token); token lama direaktivasi.
func (s *NotificationService) RegisterToken(userID uuid.UUID, token string, deviceInfo datatypes.JSON) (*model.FCMTokenModel, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenRequired
	}

	var existing model.FCMTokenModel
	err := s.DB.First(&existing, "fcm_token_user_id = ? AND fcm_token_value = ?", userID, token).Error
	switch {
	case err == nil:
		existing.FCMTokenIsActive = true
		if len(deviceInfo) > 0 {
			existing.FCMTokenDeviceInfo = deviceInfo
		}
		if err := s.DB.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := &model.FCMTokenModel{
			FCMTokenUserID:     userID,
			FCMTokenValue:      token,
			FCMTokenDeviceInfo: deviceInfo,
			FCMTokenIsActive:   true,
		}
		if err := s.DB.Create(row).Error; err != nil {
			return nil, err
		}
		return row, nil
	default:
		return nil, err
	}
}

func (s *NotificationService) RemoveToken(userID uuid.UUID, token string) error {
	return s.DB.Delete(&model.FCMTokenModel{},
		"fcm_token_user_id = ? AND fcm_token_value = ?", userID, strings.TrimSpace(token)).Error
}

func (s *NotificationService) RemoveAllTokens(userID uuid.UUID) error {
	return s.DB.Delete(&model.FCMTokenModel{}, "fcm_token_user_id = ?", userID).Error
}

// SendToUser kirim push ke semua token aktif milik satu user.
func (s *NotificationService) SendToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) (int, error) {
	return s.SendToUsers(ctx, []uuid.UUID{userID}, title, body, data)
}

// SendToUsers kirim push ke banyak user sekaligus. Token yang dilaporkan
// unregistered/invalid oleh FCM langsung dihapus dari DB (self-healing).
func (s *NotificationService) SendToUsers(ctx context.Context, userIDs []uuid.UUID, title, body string, data map[string]string) (int, error) {
	if s.Sender == nil {
		log.Println("⚠️ Push belum dikonfigurasi, notifikasi dilewati")
		return 0, nil
	}
	if len(userIDs) == 0 {
		return 0, nil
	}

	var tokens []string
	if err := s.DB.Model(&model.FCMTokenModel{}).
		Where("fcm_token_user_id IN ?", userIDs).
		Where("fcm_token_is_active = ?", true).
		Pluck("fcm_token_value", &tokens).Error; err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, nil
	}

	invalid, success, err := s.Sender.Send(ctx, tokens, title, body, data)
	if err != nil {
		return 0, err
	}

	if len(invalid) > 0 {
		if err := s.purgeTokens(invalid); err != nil {
			log.Printf("[WARN] gagal purge %d token invalid: %v", len(invalid), err)
		} else {
			log.Printf("[INFO] purge %d token FCM invalid", len(invalid))
		}
	}
	return success, nil
}

func (s *NotificationService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	if s.Sender == nil {
		log.Println("⚠️ Push belum dikonfigurasi, notifikasi topik dilewati")
		return nil
	}
	return s.Sender.SendToTopic(ctx, topic, title, body, data)
}

func (s *NotificationService) purgeTokens(tokens []string) error {
	return s.DB.Delete(&model.FCMTokenModel{}, "fcm_token_value IN ?", tokens).Error
}
