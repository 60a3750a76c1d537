package services

import (
	"context"
	"errors"

	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/utils"
	"gorm.io/gorm"
)

// UserService handles login and the account queries that go beyond CRUD.
type UserService struct {
	db     *gorm.DB
	hasher utils.PasswordHasher
}

func NewUserService(db *gorm.DB, hasher utils.PasswordHasher) *UserService {
	return &UserService{db: db, hasher: hasher}
}

// Login returns the active user whose email and password match. Inactive
// accounts are reported as not found.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Role").
		Preload("AccessLevel").
		Where("email = ? AND activo = ?", email, true).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Check(password, user.Password) {
		utils.InfoLogger.WithField("user_id", user.ID).Warn("login rejected: password mismatch")
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// ByRole lists active users whose role name equals role, oldest first.
func (s *UserService) ByRole(ctx context.Context, role string) ([]models.User, error) {
	if role == "" {
		return nil, ErrRoleRequired
	}

	db := s.db.WithContext(ctx)
	roleIDs := db.Model(&models.Role{}).Select("id").Where("rol = ?", role)

	var users []models.User
	err := db.
		Preload("Role").
		Preload("AccessLevel").
		Where("id_rol IN (?) AND activo = ?", roleIDs, true).
		Order("fecha_creacion, id").
		Find(&users).Error
	return users, err
}

// HashPassword encodes a plaintext password for storage.
func (s *UserService) HashPassword(password string) (string, error) {
	return s.hasher.Hash(password)
}
