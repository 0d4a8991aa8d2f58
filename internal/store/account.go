package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ndanilkin/minimarket/internal/models"
	"github.com/ndanilkin/minimarket/internal/transport"
)

type AccountStore struct {
	DB *gorm.DB
}

// FindByCredentials matches email and password exactly, as stored.
func (s *AccountStore) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).
		Where("email = ? AND password = ?", email, password).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &user, nil
}

func (s *AccountStore) Register(ctx context.Context, email, password, username string) (*models.User, error) {
	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: password,
		Username: username,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// PatchProfile merges the set fields into the user record. A changed email
// goes through the same uniqueness guard as registration.
func (s *AccountStore) PatchProfile(ctx context.Context, id uint, req transport.PatchProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		var other models.User
		err := s.DB.WithContext(ctx).Where("email = ?", *req.Email).First(&other).Error
		if err == nil {
			return nil, ErrDuplicateAccount
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		user.Password = *req.Password
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := s.DB.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
