package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/database"
	"trinh-cafe/internal/models"
)

const uniqueViolation = "23505"

// PostgresStore implements Store against the shared pool.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates the store.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.QueryRow(ctx, database.InsertUserSQL,
		user.FullName, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperr.New(apperr.KindInvalidArgument, "Email already in use")
		}
		return apperr.Wrap(apperr.KindInternal, "failed to insert user", err)
	}
	return nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx, database.GetUserByEmailSQL, email).
		Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Newf(apperr.KindNotFound, "user %s not found", email)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load user", err)
	}
	return &user, nil
}
