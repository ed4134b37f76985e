package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"event-management-api/internal/apperr"
	"event-management-api/internal/model"
)

func (s *Store) CreateComment(ctx context.Context, c *model.Comment) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO comments (id, user_id, event_id, content)
		 VALUES ($1,$2,$3,$4)
		 RETURNING created_at`,
		c.ID, c.UserID, c.EventID, c.Content,
	).Scan(&c.CreatedAt)
}

// ListComments returns an event's comments most-recent-first with the
// author's name joined in.
func (s *Store) ListComments(ctx context.Context, eventID string) ([]model.Comment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT c.id, c.user_id, c.event_id, c.content, c.created_at, u.name
		 FROM comments c JOIN users u ON u.id = c.user_id
		 WHERE c.event_id = $1
		 ORDER BY c.created_at DESC`, eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.EventID, &c.Content, &c.CreatedAt, &c.UserName); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetComment also returns the organizer of the comment's event, which the
// deletion permission check needs.
func (s *Store) GetComment(ctx context.Context, id string) (*model.Comment, string, error) {
	c := &model.Comment{}
	var organizerID string
	err := s.pool.QueryRow(ctx,
		`SELECT c.id, c.user_id, c.event_id, c.content, c.created_at, e.organizer_id
		 FROM comments c JOIN events e ON e.id = c.event_id
		 WHERE c.id = $1`, id,
	).Scan(&c.ID, &c.UserID, &c.EventID, &c.Content, &c.CreatedAt, &organizerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", apperr.NotFound("comment not found")
	}
	if err != nil {
		return nil, "", err
	}
	return c, organizerID, nil
}

func (s *Store) DeleteComment(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("comment not found")
	}
	return nil
}
