package dto

import (
	"time"

	notesapp "notewise/internal/notes/app"
	"notewise/internal/notes/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// UpdateNoteRequest содержит данные для частичного обновления заметки.
// nil-поле означает "оставить как есть".
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NoteOwner - сокращенное представление владельца внутри заметки.
type NoteOwner struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Note представляет заметку в ответах API.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    int64     `json:"user_id"`
	User      NoteOwner `json:"user"`
}

// NoteResponse содержит информацию о заметке для ответа.
type NoteResponse struct {
	Note *Note `json:"note"`
}

// Pagination содержит метаданные страницы.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ListNotesResponse содержит список заметок и информацию о пагинации.
type ListNotesResponse struct {
	Notes      []*Note    `json:"notes"`
	Pagination Pagination `json:"pagination"`
}

// NoteFromEntity преобразует доменную заметку в DTO с вложенным владельцем.
func NoteFromEntity(note *entities.Note, owner NoteOwner) *Note {
	return &Note{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
		UserID:    note.UserID,
		User:      owner,
	}
}

// ListNotesResponseFromPage преобразует страницу заметок в DTO.
func ListNotesResponseFromPage(page *notesapp.NotesPage, owner NoteOwner) *ListNotesResponse {
	notes := make([]*Note, 0, len(page.Notes))
	for _, note := range page.Notes {
		notes = append(notes, NoteFromEntity(note, owner))
	}
	return &ListNotesResponse{
		Notes: notes,
		Pagination: Pagination{
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
			HasNext:    page.HasNext,
			HasPrev:    page.HasPrev,
		},
	}
}
