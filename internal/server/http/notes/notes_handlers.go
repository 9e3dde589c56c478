// Package notes содержит HTTP обработчики для работы с заметками.
package notes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	notesapp "notewise/internal/notes/app"
	"notewise/internal/notes/domain/entities"
	"notewise/internal/server/dto"
	"notewise/internal/server/http/middleware"
	"notewise/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreateNote = "notes handler: create note"
	LogHandlerListNotes  = "notes handler: list notes"
	LogHandlerGetNote    = "notes handler: get note"
	LogHandlerUpdateNote = "notes handler: update note"
	LogHandlerDeleteNote = "notes handler: delete note"

	ErrorInvalidRequest       = "invalid request"
	ErrorInvalidNoteID        = "invalid note id"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorUnauthorized         = "unauthorized"
)

// Handler содержит HTTP обработчики для заметок.
type Handler struct {
	noteUseCase *notesapp.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase *notesapp.NoteUseCase) *Handler {
	return &Handler{noteUseCase: noteUseCase}
}

// statusFromError транслирует доменные ошибки заметок в HTTP статусы.
// Чужая заметка неотличима от несуществующей.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entities.ErrEmptyTitle),
		errors.Is(err, entities.ErrTitleTooLong):
		return http.StatusUnprocessableEntity
	case errors.Is(err, notesapp.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError отправляет клиенту ошибку с соответствующим статусом.
func respondError(ctx fiber.Ctx, err error) error {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = ErrorFailedToServeRequest
	}
	if sendErr := ctx.Status(status).JSON(fiber.Map{"error": message}); sendErr != nil {
		return fmt.Errorf("sending error response: %w", sendErr)
	}
	return nil
}

// ownerFromClaims строит представление владельца для ответов из claims запроса.
func ownerFromClaims(ctx fiber.Ctx) (dto.NoteOwner, bool) {
	claims, ok := middleware.ClaimsFromCtx(ctx)
	if !ok {
		return dto.NoteOwner{}, false
	}
	return dto.NoteOwner{ID: claims.UserID, Username: claims.Username}, true
}

// noteIDFromPath извлекает идентификатор заметки из пути запроса.
func noteIDFromPath(ctx fiber.Ctx) (int64, error) {
	noteID, err := strconv.ParseInt(ctx.Params("note_id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing note id: %w", err)
	}
	return noteID, nil
}

// CreateNote обрабатывает запрос на создание заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateNote)

	owner, ok := ownerFromClaims(ctx)
	if !ok {
		if sendErr := ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	var req dto.CreateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	note, err := h.noteUseCase.CreateNote(requestCtx, owner.ID, req.Title, req.Content)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.NoteResponse{
		Note: dto.NoteFromEntity(note, owner),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение списка заметок пользователя.
// Параметры page и page_size приводятся к допустимым границам, а не отклоняются.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListNotes)

	owner, ok := ownerFromClaims(ctx)
	if !ok {
		if sendErr := ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	page, err := strconv.Atoi(ctx.Query("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(ctx.Query("page_size", strconv.Itoa(notesapp.DefaultPageSize)))
	if err != nil {
		pageSize = notesapp.DefaultPageSize
	}

	result, err := h.noteUseCase.ListNotes(requestCtx, owner.ID, page, pageSize)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.ListNotesResponseFromPage(result, owner)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение одной заметки.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetNote)

	owner, ok := ownerFromClaims(ctx)
	if !ok {
		if sendErr := ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	noteID, err := noteIDFromPath(ctx)
	if err != nil {
		log.Debug(requestCtx, ErrorInvalidNoteID, zap.Error(err))
		if sendErr := ctx.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": notesapp.ErrNotFound.Error(),
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	note, err := h.noteUseCase.GetNote(requestCtx, owner.ID, noteID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NoteResponse{
		Note: dto.NoteFromEntity(note, owner),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на частичное обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateNote)

	owner, ok := ownerFromClaims(ctx)
	if !ok {
		if sendErr := ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	noteID, err := noteIDFromPath(ctx)
	if err != nil {
		log.Debug(requestCtx, ErrorInvalidNoteID, zap.Error(err))
		if sendErr := ctx.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": notesapp.ErrNotFound.Error(),
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	note, err := h.noteUseCase.UpdateNote(requestCtx, owner.ID, noteID, req.Title, req.Content)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NoteResponse{
		Note: dto.NoteFromEntity(note, owner),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteNote)

	owner, ok := ownerFromClaims(ctx)
	if !ok {
		if sendErr := ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	noteID, err := noteIDFromPath(ctx)
	if err != nil {
		log.Debug(requestCtx, ErrorInvalidNoteID, zap.Error(err))
		if sendErr := ctx.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": notesapp.ErrNotFound.Error(),
		}); sendErr != nil {
			return fmt.Errorf("sending response: %w", sendErr)
		}
		return nil
	}

	if err := h.noteUseCase.DeleteNote(requestCtx, owner.ID, noteID); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respondError(ctx, err)
	}

	if err := ctx.Status(http.StatusNoContent).Send(nil); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
