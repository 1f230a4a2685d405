package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nominamx/payroll-backend-go/internal/domain/user"
	"github.com/nominamx/payroll-backend-go/internal/pkg/database"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetActiveByUsername(ctx context.Context, username string) (user.User, error) {
	query := `
		SELECT id, username, password_hash, status_user, created_at, updated_at
		FROM users
		WHERE username = $1 AND status_user = true`

	var u user.User
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}
