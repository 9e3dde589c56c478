package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentities "notewise/internal/auth/domain/entities"
	domain "notewise/internal/auth/domain/services"
	notesapp "notewise/internal/notes/app"
	"notewise/internal/notes/domain/entities"
	serverhttp "notewise/internal/server/http"
	authhandler "notewise/internal/server/http/auth"
	noteshandler "notewise/internal/server/http/notes"
)

const validToken = "valid-access-token"

// stubAuthUseCase возвращает заранее заданные результаты.
type stubAuthUseCase struct {
	pair *domain.TokenPair
	err  error
}

func (s *stubAuthUseCase) Register(context.Context, string, string, string) (*domain.TokenPair, error) {
	return s.pair, s.err
}

func (s *stubAuthUseCase) Login(context.Context, string, string) (*domain.TokenPair, error) {
	return s.pair, s.err
}

func (s *stubAuthUseCase) RefreshTokens(context.Context, string) (*domain.TokenPair, error) {
	return s.pair, s.err
}

func (s *stubAuthUseCase) Logout(context.Context, string) error {
	return s.err
}

// fixedUserUseCase обслуживает профиль единственного пользователя.
type fixedUserUseCase struct{}

func (s *fixedUserUseCase) GetProfile(_ context.Context, userID int64) (*authentities.User, error) {
	if userID != 1 {
		return nil, authentities.ErrUserNotFound
	}
	return &authentities.User{ID: 1, Email: "alice@example.com", Username: "alice"}, nil
}

func (s *fixedUserUseCase) DeleteAccount(_ context.Context, userID int64) error {
	if userID != 1 {
		return authentities.ErrUserNotFound
	}
	return nil
}

// stubTokenService принимает ровно один токен.
type stubTokenService struct{}

func (s *stubTokenService) GenerateAccessToken(context.Context, int64, string) (string, time.Time, error) {
	return validToken, time.Now().Add(15 * time.Minute), nil
}

func (s *stubTokenService) GenerateRefreshToken(context.Context, int64) (string, time.Time, error) {
	return "refresh-token", time.Now().Add(24 * time.Hour), nil
}

func (s *stubTokenService) ValidateAccessToken(_ context.Context, token string) (*domain.JWTClaims, error) {
	if token != validToken {
		return nil, domain.ErrInvalidJWTToken
	}
	return &domain.JWTClaims{UserID: 1, Username: "alice"}, nil
}

// fakeNoteRepo хранит заметки в памяти для HTTP тестов.
type fakeNoteRepo struct {
	nextID int64
	notes  map[int64]*entities.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{nextID: 1, notes: make(map[int64]*entities.Note)}
}

func (r *fakeNoteRepo) Create(_ context.Context, note *entities.Note) (*entities.Note, error) {
	stored := *note
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Millisecond)
	stored.UpdatedAt = stored.CreatedAt
	r.nextID++
	r.notes[stored.ID] = &stored
	result := stored
	return &result, nil
}

func (r *fakeNoteRepo) GetByID(_ context.Context, noteID, userID int64) (*entities.Note, error) {
	note, ok := r.notes[noteID]
	if !ok || note.UserID != userID {
		return nil, nil
	}
	result := *note
	return &result, nil
}

func (r *fakeNoteRepo) ListByUserID(_ context.Context, userID int64, limit, offset int) ([]*entities.Note, int, error) {
	var owned []*entities.Note
	for id := r.nextID - 1; id >= 1; id-- {
		if note, ok := r.notes[id]; ok && note.UserID == userID {
			copied := *note
			owned = append(owned, &copied)
		}
	}
	total := len(owned)
	if offset >= total {
		return []*entities.Note{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return owned[offset:end], total, nil
}

func (r *fakeNoteRepo) Update(_ context.Context, note *entities.Note) (*entities.Note, error) {
	stored, ok := r.notes[note.ID]
	if !ok || stored.UserID != note.UserID {
		return nil, notesapp.ErrNotFound
	}
	stored.Title = note.Title
	stored.Content = note.Content
	stored.UpdatedAt = time.Now().Add(time.Hour)
	result := *stored
	return &result, nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, noteID, userID int64) error {
	stored, ok := r.notes[noteID]
	if !ok || stored.UserID != userID {
		return notesapp.ErrNotFound
	}
	delete(r.notes, noteID)
	return nil
}

func setupApp(t *testing.T, authStub *stubAuthUseCase, repo *fakeNoteRepo) *fiber.App {
	t.Helper()

	userStub := &fixedUserUseCase{}
	authH := authhandler.NewHandler(authStub, userStub)
	notesH := noteshandler.NewHandler(notesapp.NewNoteUseCase(repo))

	return serverhttp.NewRouter(authH, notesH, &stubTokenService{})
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("Success - 201 with token pair", func(t *testing.T) {
		authStub := &stubAuthUseCase{pair: &domain.TokenPair{
			UserID: 1, Username: "alice", AccessToken: validToken, RefreshToken: "refresh-token",
		}}
		app := setupApp(t, authStub, newFakeNoteRepo())

		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email": "alice@example.com", "username": "alice", "password": "secret123",
		})

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, validToken, body["access_token"])
	})

	t.Run("Error - missing fields give 400", func(t *testing.T) {
		app := setupApp(t, &stubAuthUseCase{}, newFakeNoteRepo())

		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email": "alice@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Error - duplicate username gives 409", func(t *testing.T) {
		authStub := &stubAuthUseCase{err: fmt.Errorf("creating user: %w", domain.ErrUsernameAlreadyExists)}
		app := setupApp(t, authStub, newFakeNoteRepo())

		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email": "alice@example.com", "username": "alice", "password": "secret123",
		})

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("Error - bad credentials give 401", func(t *testing.T) {
		authStub := &stubAuthUseCase{err: fmt.Errorf("invalid credentials: %w", domain.ErrInvalidCredentials)}
		app := setupApp(t, authStub, newFakeNoteRepo())

		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"username": "alice", "password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestNotesEndpointsRequireAuth(t *testing.T) {
	app := setupApp(t, &stubAuthUseCase{}, newFakeNoteRepo())

	t.Run("no token gives 401", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/notes/", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("bad token gives 401", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/notes/", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestNotesCRUDOverHTTP(t *testing.T) {
	repo := newFakeNoteRepo()
	app := setupApp(t, &stubAuthUseCase{}, repo)

	t.Run("create returns 201 with owner attached", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/notes/", validToken, map[string]string{
			"title": "First note", "content": "hello",
		})

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var body struct {
			Note struct {
				ID    int64  `json:"id"`
				Title string `json:"title"`
				User  struct {
					ID       int64  `json:"id"`
					Username string `json:"username"`
				} `json:"user"`
			} `json:"note"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "First note", body.Note.Title)
		assert.Equal(t, int64(1), body.Note.User.ID)
		assert.Equal(t, "alice", body.Note.User.Username)
	})

	t.Run("invalid title gives 422", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/notes/", validToken, map[string]string{
			"title": "   ",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("list returns pagination metadata", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/notes/?page=1&page_size=10", validToken, nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Notes      []json.RawMessage `json:"notes"`
			Pagination struct {
				Page     int `json:"page"`
				PageSize int `json:"page_size"`
				Total    int `json:"total"`
			} `json:"pagination"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, 1, body.Pagination.Page)
		assert.Equal(t, 10, body.Pagination.PageSize)
		assert.Equal(t, 1, body.Pagination.Total)
		assert.Len(t, body.Notes, 1)
	})

	t.Run("unknown note gives 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/notes/9999", validToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-numeric note id gives 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/notes/abc", validToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("patch updates only provided fields", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/api/v1/notes/1", validToken, map[string]string{
			"title": "Renamed",
		})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Note struct {
				Title   string `json:"title"`
				Content string `json:"content"`
			} `json:"note"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "Renamed", body.Note.Title)
		assert.Equal(t, "hello", body.Note.Content)
	})

	t.Run("delete returns 204 and the note disappears", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/api/v1/notes/1", validToken, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, "/api/v1/notes/1", validToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestProfileEndpoints(t *testing.T) {
	app := setupApp(t, &stubAuthUseCase{}, newFakeNoteRepo())

	t.Run("profile requires auth", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/user/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("profile returned without password material", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/user/profile", validToken, nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "alice", body["username"])
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("account deletion returns 204", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/api/v1/user/", validToken, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestForeignNotesAreInvisibleOverHTTP(t *testing.T) {
	repo := newFakeNoteRepo()
	// Заметка другого пользователя.
	_, err := repo.Create(context.Background(), &entities.Note{UserID: 2, Title: "Bob's note"})
	require.NoError(t, err)

	app := setupApp(t, &stubAuthUseCase{}, repo)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/notes/1", validToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/notes/1", validToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
