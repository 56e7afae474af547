package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	// ExternalID is the identity provider's subject claim. Exactly one
	// local row exists per subject.
	ExternalID string `gorm:"uniqueIndex;not null"`

	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string
	Name         string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByExternalID(ctx context.Context, externalID string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "external_id = ?", externalID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// Upsert inserts a row for the given external subject, or refreshes email
// and name when the provider's record changed. A concurrent first-sight
// insert loses the unique-constraint race and falls back to re-fetching.
func (d *UserDAO) Upsert(ctx context.Context, user User) (User, error) {
	existing, err := d.FindByExternalID(ctx, user.ExternalID)
	if err == nil {
		if existing.Email == user.Email && existing.Name == user.Name {
			return existing, nil
		}

		existing.Email = user.Email
		existing.Name = user.Name
		if result := d.db.WithContext(ctx).Save(&existing); result.Error != nil {
			return User{}, result.Error
		}

		return existing, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return User{}, err
	}

	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return d.FindByExternalID(ctx, user.ExternalID)
		}

		return User{}, result.Error
	}

	return user, nil
}
