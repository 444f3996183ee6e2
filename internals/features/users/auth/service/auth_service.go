// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"acex_backend/internals/constants"
	"acex_backend/internals/features/users/user/model"
)

var (
	// ErrInvalidCredentials dipakai seragam: user tidak ada, nonaktif,
	// password salah, atau hash hilang — tidak boleh bisa dibedakan dari luar.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidUsername    = errors.New("username contains invalid characters")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongOldPassword   = errors.New("old password does not match")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login: identifier bisa username ATAU email guru yang terhubung.
func (s *AuthService) Login(identifier, password string) (*model.UserModel, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user model.UserModel
	err := s.DB.
		Joins("LEFT JOIN teachers ON teachers.teacher_id = users.user_teacher_id").
		Where("users.user_username = ? OR LOWER(teachers.teacher_email) = ?", identifier, strings.ToLower(identifier)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.UserIsActive {
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(user.UserPasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Register: username terbatas [A-Za-z0-9_-], role default user.
func (s *AuthService) Register(username, password string, teacherID *uuid.UUID) (*model.UserModel, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	var exists int64
	if err := s.DB.Model(&model.UserModel{}).
		Where("user_username = ?", username).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, ErrUsernameTaken
	}

	user := &model.UserModel{
		UserUsername:     username,
		UserPasswordHash: hash,
		UserRole:         constants.RoleUser,
		UserTeacherID:    teacherID,
		UserIsActive:     true,
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword: verifikasi password lama dulu.
func (s *AuthService) ChangePassword(userID uuid.UUID, oldPassword, newPassword string) error {
	var user model.UserModel
	if err := s.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !CheckPassword(user.UserPasswordHash, oldPassword) {
		return ErrWrongOldPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.DB.Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password_hash", hash).Error
}
