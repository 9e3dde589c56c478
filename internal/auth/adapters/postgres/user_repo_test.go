package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "notewise/internal/auth/adapters/postgres"
	"notewise/internal/auth/domain/entities"
	"notewise/internal/auth/domain/services"
)

// Шаблоны запросов для pgxmock.
const (
	selectUserPattern  = `SELECT id, email, username, password_hash, created_at`
	insertUserPattern  = `INSERT INTO users`
	deleteNotesPattern = `DELETE FROM notes WHERE user_id`
	deleteUserPattern  = `DELETE FROM users WHERE id`
)

func userColumns() []string {
	return []string{"id", "email", "username", "password_hash", "created_at"}
}

func TestUserRepositoryFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - user found", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		now := time.Now()
		mockPool.ExpectQuery(selectUserPattern).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(userColumns()).
				AddRow(int64(1), "alice@example.com", "alice", "$2a$10$hash", now))

		userRepo := repo.NewUserRepository(mockPool)

		user, err := userRepo.FindByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "alice", user.Username)
		assert.False(t, user.PasswordDigest.IsZero())
		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Error - user not found", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery(selectUserPattern).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		userRepo := repo.NewUserRepository(mockPool)

		user, err := userRepo.FindByID(ctx, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserRepositoryFindByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - user found", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery(selectUserPattern).
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(userColumns()).
				AddRow(int64(1), "alice@example.com", "alice", "$2a$10$hash", time.Now()))

		userRepo := repo.NewUserRepository(mockPool)

		user, err := userRepo.FindByUsername(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Error - unknown username", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery(selectUserPattern).
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		userRepo := repo.NewUserRepository(mockPool)

		user, err := userRepo.FindByUsername(ctx, "nobody")

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	digest := entities.DigestFromHash("$2a$10$hash")

	newUser := &entities.User{
		Email:          "alice@example.com",
		Username:       "alice",
		PasswordDigest: digest,
	}

	t.Run("Success - user created with generated id", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery(insertUserPattern).
			WithArgs("alice@example.com", "alice", digest).
			WillReturnRows(pgxmock.NewRows(userColumns()).
				AddRow(int64(1), "alice@example.com", "alice", "$2a$10$hash", time.Now()))

		userRepo := repo.NewUserRepository(mockPool)

		created, err := userRepo.Create(ctx, newUser)

		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Error - duplicate username maps to conflict", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery(insertUserPattern).
			WithArgs("alice@example.com", "alice", digest).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		userRepo := repo.NewUserRepository(mockPool)

		created, err := userRepo.Create(ctx, newUser)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrUsernameAlreadyExists)
		assert.Nil(t, created)
	})

	t.Run("Error - duplicate email maps to conflict", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery(insertUserPattern).
			WithArgs("alice@example.com", "alice", digest).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		userRepo := repo.NewUserRepository(mockPool)

		created, err := userRepo.Create(ctx, newUser)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)
		assert.Nil(t, created)
	})
}

func TestUserRepositoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - notes and user removed in one transaction", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectBegin()
		mockPool.ExpectExec(deleteNotesPattern).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		mockPool.ExpectExec(deleteUserPattern).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mockPool.ExpectCommit()
		mockPool.ExpectRollback()

		userRepo := repo.NewUserRepository(mockPool)

		require.NoError(t, userRepo.Delete(ctx, 1))
		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Error - unknown user rolls back", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectBegin()
		mockPool.ExpectExec(deleteNotesPattern).
			WithArgs(int64(99)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mockPool.ExpectExec(deleteUserPattern).
			WithArgs(int64(99)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mockPool.ExpectRollback()

		userRepo := repo.NewUserRepository(mockPool)

		err = userRepo.Delete(ctx, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		require.NoError(t, mockPool.ExpectationsWereMet())
	})
}
