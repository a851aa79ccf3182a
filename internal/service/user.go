package service

import (
	"FileHub/model"
	"FileHub/utils"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Users provides account lookups and registration over the metadata
// store.
type Users struct {
	db *gorm.DB
}

// NewUsers creates the user service.
func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Create registers a user with a hashed password. Email uniqueness is
// enforced at write time.
func (u *Users) Create(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	var existing model.User
	err := u.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyExist
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{
		Email:    email,
		Password: utils.HashPassword(password),
	}
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID returns a user by ID.
func (u *Users) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := u.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate returns the user matching email and password, or absent
// on any mismatch.
func (u *Users) Authenticate(ctx context.Context, email, password string) (*model.User, bool) {
	var user model.User
	if err := u.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, false
	}
	if !utils.CheckPassword(password, user.Password) {
		return nil, false
	}
	return &user, true
}

// Count returns the number of registered users.
func (u *Users) Count(ctx context.Context) (int64, error) {
	var count int64
	err := u.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}
