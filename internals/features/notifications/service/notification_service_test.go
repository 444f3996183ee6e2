package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acex_backend/internals/features/notifications/model"
)

// fakeSender melaporkan sebagian token sebagai invalid tanpa menyentuh FCM.
type fakeSender struct {
	invalid    map[string]bool
	lastTokens []string
	topicSent  string
}

func (f *fakeSender) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]string, int, error) {
	f.lastTokens = tokens
	var invalid []string
	success := 0
	for _, tok := range tokens {
		if f.invalid[tok] {
			invalid = append(invalid, tok)
		} else {
			success++
		}
	}
	return invalid, success, nil
}

func (f *fakeSender) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	f.topicSent = topic
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.FCMTokenModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRegisterTokenUpsertsAndReactivates(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, &fakeSender{})
	userID := uuid.New()

	first, err := svc.RegisterToken(userID, "tok-1", nil)
	if err != nil {
		t.Fatalf("RegisterToken: %v", err)
	}

	// nonaktifkan, lalu daftar ulang token yang sama
	db.Model(&model.FCMTokenModel{}).
		Where("fcm_token_id = ?", first.FCMTokenID).
		Update("fcm_token_is_active", false)

	second, err := svc.RegisterToken(userID, "tok-1", nil)
	if err != nil {
		t.Fatalf("RegisterToken again: %v", err)
	}
	if second.FCMTokenID != first.FCMTokenID {
		t.Fatalf("expected upsert on same row, got new id %d", second.FCMTokenID)
	}
	if !second.FCMTokenIsActive {
		t.Fatal("token should be reactivated")
	}

	var count int64
	db.Model(&model.FCMTokenModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}
}

func TestRegisterTokenRejectsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, &fakeSender{})

	if _, err := svc.RegisterToken(uuid.New(), "   ", nil); !errors.Is(err, ErrTokenRequired) {
		t.Fatalf("expected ErrTokenRequired, got %v", err)
	}
}

func TestSendToUserPurgesInvalidTokens(t *testing.T) {
	db := newTestDB(t)
	snd := &fakeSender{invalid: map[string]bool{"tok-dead": true}}
	svc := NewNotificationService(db, snd)
	userID := uuid.New()

	if _, err := svc.RegisterToken(userID, "tok-live", nil); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.RegisterToken(userID, "tok-dead", nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	success, err := svc.SendToUser(context.Background(), userID, "Hola", "Cuerpo", nil)
	if err != nil {
		t.Fatalf("SendToUser: %v", err)
	}
	if success != 1 {
		t.Fatalf("success = %d, want 1", success)
	}
	if len(snd.lastTokens) != 2 {
		t.Fatalf("sender got %d tokens, want 2", len(snd.lastTokens))
	}

	// token mati harus sudah hilang dari DB
	var remaining []model.FCMTokenModel
	db.Find(&remaining)
	if len(remaining) != 1 || remaining[0].FCMTokenValue != "tok-live" {
		t.Fatalf("remaining tokens = %+v, want only tok-live", remaining)
	}
}

func TestSendSkipsInactiveTokens(t *testing.T) {
	db := newTestDB(t)
	snd := &fakeSender{}
	svc := NewNotificationService(db, snd)
	userID := uuid.New()

	row, _ := svc.RegisterToken(userID, "tok-off", nil)
	db.Model(&model.FCMTokenModel{}).
		Where("fcm_token_id = ?", row.FCMTokenID).
		Update("fcm_token_is_active", false)

	success, err := svc.SendToUser(context.Background(), userID, "T", "B", nil)
	if err != nil {
		t.Fatalf("SendToUser: %v", err)
	}
	if success != 0 || len(snd.lastTokens) != 0 {
		t.Fatalf("inactive token must not be sent (success=%d, tokens=%v)", success, snd.lastTokens)
	}
}

func TestSendWithoutSenderIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, nil)
	userID := uuid.New()
	if _, err := svc.RegisterToken(userID, "tok-1", nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	success, err := svc.SendToUser(context.Background(), userID, "T", "B", nil)
	if err != nil {
		t.Fatalf("unconfigured push must fail soft: %v", err)
	}
	if success != 0 {
		t.Fatalf("success = %d, want 0", success)
	}
}

func TestRemoveTokens(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, &fakeSender{})
	userID := uuid.New()

	svc.RegisterToken(userID, "tok-1", nil)
	svc.RegisterToken(userID, "tok-2", nil)

	if err := svc.RemoveToken(userID, "tok-1"); err != nil {
		t.Fatalf("RemoveToken: %v", err)
	}
	var count int64
	db.Model(&model.FCMTokenModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}

	if err := svc.RemoveAllTokens(userID); err != nil {
		t.Fatalf("RemoveAllTokens: %v", err)
	}
	db.Model(&model.FCMTokenModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("rows = %d, want 0", count)
	}
}
