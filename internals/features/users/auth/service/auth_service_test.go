package service

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acex_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec(`CREATE TABLE IF NOT EXISTS teachers (
		teacher_id TEXT PRIMARY KEY,
		teacher_email TEXT
	)`).Error; err != nil {
		t.Fatalf("create teachers table: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, password string, active bool) *model.UserModel {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &model.UserModel{
		UserUsername:     username,
		UserPasswordHash: hash,
		UserRole:         "user",
		UserIsActive:     active,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestCheckPasswordNeverPanicsOnGarbage(t *testing.T) {
	if CheckPassword("", "secret") {
		t.Fatal("empty hash must not verify")
	}
	if CheckPassword("not-a-bcrypt-hash", "secret") {
		t.Fatal("malformed hash must not verify")
	}
}

func TestLoginWithUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	seedUser(t, db, "jdoe", "s3cret-pass", true)

	user, err := svc.Login("jdoe", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.UserUsername != "jdoe" {
		t.Fatalf("username = %q", user.UserUsername)
	}
}

func TestLoginWithLinkedTeacherEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user := seedUser(t, db, "mlopez", "s3cret-pass", true)
	teacherID := "5f0a1a3e-0000-4000-8000-000000000001"
	if err := db.Exec(`INSERT INTO teachers (teacher_id, teacher_email) VALUES (?, ?)`, teacherID, "maria.lopez@example.edu").Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	if err := db.Exec(`UPDATE users SET user_teacher_id = ? WHERE user_id = ?`, teacherID, user.UserID.String()).Error; err != nil {
		t.Fatalf("link teacher: %v", err)
	}

	got, err := svc.Login("Maria.Lopez@example.edu", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login by teacher email: %v", err)
	}
	if got.UserID != user.UserID {
		t.Fatalf("got user %s, want %s", got.UserID, user.UserID)
	}
}

// Semua kegagalan login harus identik dari luar.
func TestLoginFailuresAreUniform(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	seedUser(t, db, "active", "right-pass", true)
	seedUser(t, db, "inactive", "right-pass", false)

	cases := []struct {
		name       string
		identifier string
		password   string
	}{
		{"unknown user", "nobody", "whatever-pass"},
		{"wrong password", "active", "wrong-pass"},
		{"inactive user", "inactive", "right-pass"},
		{"empty password", "active", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Login(tc.identifier, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}

func TestRegisterValidatesUsernamePattern(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	for _, bad := range []string{"", "with space", "tildes:ñ", "semi;colon", "dot.name"} {
		if _, err := svc.Register(bad, "longenoughpass", nil); !errors.Is(err, ErrInvalidUsername) {
			t.Fatalf("username %q: expected ErrInvalidUsername, got %v", bad, err)
		}
	}

	user, err := svc.Register("valid_user-1", "longenoughpass", nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.UserRole != "user" {
		t.Fatalf("default role = %q, want user", user.UserRole)
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.Register("jdoe", "longenoughpass", nil); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register("jdoe", "otherpassword", nil); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	user := seedUser(t, db, "jdoe", "old-password", true)

	if err := svc.ChangePassword(user.UserID, "wrong-old", "new-password"); !errors.Is(err, ErrWrongOldPassword) {
		t.Fatalf("expected ErrWrongOldPassword, got %v", err)
	}

	if err := svc.ChangePassword(user.UserID, "old-password", "new-password"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.Login("jdoe", "old-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("old password should no longer work")
	}
	if _, err := svc.Login("jdoe", "new-password"); err != nil {
		t.Fatalf("new password should work: %v", err)
	}
}
