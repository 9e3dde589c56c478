// Package entities определяет доменные сущности заметок.
package entities

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Ошибки валидации заметки.
var (
	ErrEmptyTitle   = errors.New("note title is required")
	ErrTitleTooLong = errors.New("note title must be less than 200 characters")
)

// MaxTitleLength - максимальная длина заголовка после обрезки пробелов.
const MaxTitleLength = 199

// Note представляет собой заметку пользователя.
type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeTitle обрезает пробелы и проверяет границы длины заголовка.
func NormalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return trimmed, nil
}

// NewNote создает новую заметку с проверкой заголовка. Временные метки
// выставляет база данных при вставке.
func NewNote(userID int64, title, content string) (*Note, error) {
	normalized, err := NormalizeTitle(title)
	if err != nil {
		return nil, err
	}
	return &Note{
		UserID:  userID,
		Title:   normalized,
		Content: content,
	}, nil
}
