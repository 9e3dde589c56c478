// Package repositories определяет интерфейсы хранения для домена заметок.
package repositories

import (
	"context"
	"errors"

	"notewise/internal/notes/domain/entities"
)

// ErrNoteNotFoundOrNotOwned возвращается записывающими операциями, когда
// заметки не существует или она принадлежит другому пользователю. Эти
// случаи намеренно неразличимы.
var ErrNoteNotFoundOrNotOwned = errors.New("note not found or not owned by user")

// NoteRepository определяет интерфейс для работы с репозиторием заметок.
// Каждая операция чтения и записи ограничена владельцем: заметка другого
// пользователя неотличима от несуществующей.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	// GetByID возвращает (nil, nil), если заметки нет или она принадлежит
	// другому пользователю.
	GetByID(ctx context.Context, noteID, userID int64) (*entities.Note, error)

	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*entities.Note, int, error)

	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)

	Delete(ctx context.Context, noteID, userID int64) error
}
