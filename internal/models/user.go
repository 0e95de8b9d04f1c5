package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the legacy admin-facing account record; day-to-day requests carry
// only the identity provider's opaque user id.
type User struct {
	ID        string `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewUser(email string, name string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return User{}, ErrInvalidEmail
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, ErrEmptyName
	}
	return User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}, nil
}
