package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"event-management-api/internal/apperr"
	"event-management-api/internal/model"
)

// CreateRSVP inserts the RSVP row and bumps the event's attendee_count in
// one transaction, so the count can never drift from the rows. The unique
// index on (user_id, event_id) closes the race between two concurrent
// RSVPs for the same pair.
func (s *Store) CreateRSVP(ctx context.Context, r *model.RSVP) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO rsvps (id, user_id, event_id, payment_status)
		 VALUES ($1,$2,$3,$4)`,
		r.ID, r.UserID, r.EventID, r.PaymentStatus,
	)
	if isUniqueViolation(err) {
		return apperr.Conflict("already RSVP'd to this event")
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE events SET attendee_count = attendee_count + 1, updated_at = NOW()
		 WHERE id = $1`, r.EventID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// DeleteRSVP removes the row and decrements the count in one transaction.
func (s *Store) DeleteRSVP(ctx context.Context, userID, eventID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM rsvps WHERE user_id=$1 AND event_id=$2`,
		userID, eventID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("RSVP not found")
	}

	_, err = tx.Exec(ctx,
		`UPDATE events SET attendee_count = attendee_count - 1, updated_at = NOW()
		 WHERE id = $1`, eventID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) GetRSVP(ctx context.Context, userID, eventID string) (*model.RSVP, error) {
	r := &model.RSVP{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, event_id, payment_status, created_at
		 FROM rsvps WHERE user_id=$1 AND event_id=$2`,
		userID, eventID,
	).Scan(&r.ID, &r.UserID, &r.EventID, &r.PaymentStatus, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("RSVP not found")
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListRSVPsForEvent is the organizer roster: RSVPs joined with attendee
// name and email.
func (s *Store) ListRSVPsForEvent(ctx context.Context, eventID string) ([]model.RSVP, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT r.id, r.user_id, r.event_id, r.payment_status, r.created_at, u.name, u.email
		 FROM rsvps r JOIN users u ON u.id = r.user_id
		 WHERE r.event_id = $1
		 ORDER BY r.created_at ASC`, eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RSVP
	for rows.Next() {
		var r model.RSVP
		if err := rows.Scan(&r.ID, &r.UserID, &r.EventID, &r.PaymentStatus, &r.CreatedAt,
			&r.UserName, &r.UserEmail); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
