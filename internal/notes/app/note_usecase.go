// Package app реализует бизнес-логику работы с заметками.
package app

import (
	"context"
	"errors"
	"fmt"

	"notewise/internal/notes/domain/entities"
	"notewise/internal/notes/ports/repositories"
)

// Ошибки уровня бизнес-логики.
var (
	// ErrNotFound возвращается и для несуществующей, и для чужой заметки.
	ErrNotFound = errors.New("note not found")
)

// Границы пагинации.
const (
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100
)

// NotesPage представляет страницу заметок пользователя с метаданными пагинации.
type NotesPage struct {
	Notes      []*entities.Note
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NoteUseCase представляет собой бизнес-логику работы с заметками.
// Каждая операция параметризована идентификатором аутентифицированного
// пользователя и никогда не затрагивает чужие заметки.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{noteRepo: noteRepo}
}

// CreateNote создает новую заметку для пользователя.
func (uc *NoteUseCase) CreateNote(ctx context.Context, userID int64, title, content string) (*entities.Note, error) {
	note, err := entities.NewNote(userID, title, content)
	if err != nil {
		return nil, fmt.Errorf("validating note: %w", err)
	}

	created, err := uc.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return created, nil
}

// ClampPage приводит номер страницы и ее размер к допустимым границам.
func ClampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// ListNotes возвращает страницу заметок пользователя. Страница за пределами
// диапазона дает пустой список, а не ошибку.
func (uc *NoteUseCase) ListNotes(ctx context.Context, userID int64, page, pageSize int) (*NotesPage, error) {
	page, pageSize = ClampPage(page, pageSize)
	offset := (page - 1) * pageSize

	notes, total, err := uc.noteRepo.ListByUserID(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	totalPages := (total + pageSize - 1) / pageSize

	return &NotesPage{
		Notes:      notes,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}, nil
}

// GetNote возвращает заметку по ID, если она принадлежит пользователю.
func (uc *NoteUseCase) GetNote(ctx context.Context, userID, noteID int64) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, ErrNotFound
	}

	return note, nil
}

// UpdateNote применяет частичное обновление: nil-поля остаются нетронутыми,
// переданные проходят повторную валидацию. updated_at обновляет база.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, userID, noteID int64, title, content *string) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, ErrNotFound
	}

	if title != nil {
		normalized, err := entities.NormalizeTitle(*title)
		if err != nil {
			return nil, fmt.Errorf("validating note: %w", err)
		}
		note.Title = normalized
	}
	if content != nil {
		note.Content = *content
	}

	updated, err := uc.noteRepo.Update(ctx, note)
	if err != nil {
		// Заметка могла исчезнуть между чтением и записью.
		if errors.Is(err, repositories.ErrNoteNotFoundOrNotOwned) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return updated, nil
}

// DeleteNote удаляет заметку, если она принадлежит пользователю.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, userID, noteID int64) error {
	note, err := uc.noteRepo.GetByID(ctx, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return ErrNotFound
	}

	if err := uc.noteRepo.Delete(ctx, noteID, userID); err != nil {
		// Заметка могла исчезнуть между чтением и записью.
		if errors.Is(err, repositories.ErrNoteNotFoundOrNotOwned) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
