package domain

import (
	"strings"
	"time"
)

const MinPasswordLength = 8

type User struct {
	ID           string
	Email        string
	Name         *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RegisterUserInput struct {
	Email    string
	Name     *string
	Password string
}

type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (in RegisterUserInput) Validate() error {
	if NormalizeEmail(in.Email) == "" {
		return NewValidationError("email", MsgEmailRequired)
	}
	if len(in.Password) < MinPasswordLength {
		return NewValidationError("password", MsgPasswordTooShort)
	}
	return nil
}
