// Package entities определяет доменные сущности пользователя.
package entities

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Определяем ошибки домена пользователя как константы.
var (
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrUserNotFound     = errors.New("user not found")
)

// MinUsernameLength - минимальная длина имени пользователя после обрезки пробелов.
const MinUsernameLength = 3

// User представляет основную сущность домена пользователя.
type User struct {
	ID             int64
	Email          string
	Username       string
	PasswordDigest PasswordDigest
	CreatedAt      time.Time
}

// NormalizeUsername обрезает пробелы и проверяет минимальную длину имени.
func NormalizeUsername(username string) (string, error) {
	trimmed := strings.TrimSpace(username)
	if utf8.RuneCountInString(trimmed) < MinUsernameLength {
		return "", ErrUsernameTooShort
	}
	return trimmed, nil
}

// NormalizeEmail приводит email к нижнему регистру, обрезает пробелы и проверяет формат.
func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" || !strings.Contains(normalized, "@") {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}
