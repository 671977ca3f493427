package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"bebit-api/core/database"
	"bebit-api/core/logger"
	"bebit-api/modules/user/entity"

	"github.com/google/uuid"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, username, password *string) (*entity.User, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*entity.User, error)
}

type UserRepository struct {
	db database.Database
}

func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, password, role, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	row := r.db.QueryRowContext(ctx, query,
		user.Username,
		user.Password,
		user.Role,
		user.IsVerified,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err := row.Scan(&user.ID); err != nil {
		logger.Error("UserRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, username, password, role, is_verified, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID:Error:", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, password, role, is_verified, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByUsername:Error:", err)
		return nil, err
	}
	return &user, nil
}

// Update mutates only the provided fields.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, username, password *string) (*entity.User, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	argIndex := 1

	if username != nil {
		sets = append(sets, fmt.Sprintf("username = $%d", argIndex))
		args = append(args, *username)
		argIndex++
	}
	if password != nil {
		sets = append(sets, fmt.Sprintf("password = $%d", argIndex))
		args = append(args, *password)
		argIndex++
	}

	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE id = $%d
		RETURNING id, username, password, role, is_verified, created_at, updated_at
	`, strings.Join(sets, ", "), argIndex)
	args = append(args, id)

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:Update:Error:", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*entity.User, error) {
	query := `
		UPDATE users SET is_verified = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, username, password, role, is_verified, created_at, updated_at
	`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, verified, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:SetVerified:Error:", err)
		return nil, err
	}
	return &user, nil
}
