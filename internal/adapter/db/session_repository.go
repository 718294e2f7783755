package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jongwon/todo-app/internal/core/domain"
	"github.com/jongwon/todo-app/internal/core/ports"
)

type SessionRepository struct {
	db *sqlx.DB
}

type sessionRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) CreateSession(ctx context.Context, session domain.Session) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES (:id, :user_id, :expires_at, :created_at)`,
		sessionRow{
			ID:        session.ID,
			UserID:    session.UserID,
			ExpiresAt: session.ExpiresAt.UTC(),
			CreatedAt: session.CreatedAt.UTC(),
		},
	)
	if err != nil {
		return domain.NewStorageError("create session", err)
	}
	return nil
}

func (r *SessionRepository) FindSession(ctx context.Context, id string) (domain.Session, error) {
	var row sessionRow
	err := r.db.GetContext(ctx, &row, `SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Session{}, domain.ErrSessionNotFound
		}
		return domain.Session{}, domain.NewStorageError("find session", err)
	}
	return domain.Session{
		ID:        row.ID,
		UserID:    row.UserID,
		ExpiresAt: row.ExpiresAt.UTC(),
		CreatedAt: row.CreatedAt.UTC(),
	}, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return domain.NewStorageError("delete session", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return domain.NewStorageError("delete session", err)
	}
	if affected == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now.UTC())
	if err != nil {
		return 0, domain.NewStorageError("delete expired sessions", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, domain.NewStorageError("delete expired sessions", err)
	}
	return affected, nil
}
