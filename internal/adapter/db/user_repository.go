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

const insertUserQuery = `
INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
VALUES (:id, :email, :name, :password_hash, :created_at, :updated_at);
`

const selectUserQuery = `SELECT id, email, name, password_hash, created_at, updated_at FROM users `

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	Name         sql.NullString `db:"name"`
	PasswordHash string         `db:"password_hash"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) error {
	row := userRow{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UTC(),
		UpdatedAt:    user.UpdatedAt.UTC(),
	}
	if user.Name != nil {
		row.Name = sql.NullString{String: *user.Name, Valid: true}
	}
	if _, err := r.db.NamedExecContext(ctx, insertUserQuery, row); err != nil {
		return domain.NewStorageError("create user", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.findUser(ctx, "find user", selectUserQuery+`WHERE id = ?`, id)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findUser(ctx, "find user by email", selectUserQuery+`WHERE email = ?`, email)
}

func (r *UserRepository) findUser(ctx context.Context, op, query string, arg any) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, domain.NewStorageError(op, err)
	}

	user := domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
	if row.Name.Valid {
		value := row.Name.String
		user.Name = &value
	}
	return user, nil
}
