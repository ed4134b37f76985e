package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"event-management-api/internal/apperr"
	"event-management-api/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, profile_photo)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.ProfilePhoto,
	)
	if isUniqueViolation(err) {
		return apperr.Conflict("email already registered")
	}
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userBy(ctx, `email = $1`, email)
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	return s.userBy(ctx, `id = $1`, id)
}

func (s *Store) userBy(ctx context.Context, cond string, arg any) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, profile_photo, created_at, updated_at
		 FROM users WHERE `+cond, arg,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.ProfilePhoto, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateProfile mutates name and profile photo only; email and role are
// fixed at registration.
func (s *Store) UpdateProfile(ctx context.Context, id, name string, profilePhoto *string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET name=$1, profile_photo=$2, updated_at=NOW() WHERE id=$3`,
		name, profilePhoto, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}
