package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"event-management-api/internal/apperr"
	"event-management-api/internal/model"
)

const eventColumns = `e.id, e.title, e.description, e.date, e.location, e.price,
	e.banner, e.organizer_id, e.attendee_count, e.created_at, e.updated_at, u.name`

func scanEvent(row pgx.Row) (*model.Event, error) {
	e := &model.Event{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Price,
		&e.Banner, &e.OrganizerID, &e.AttendeeCount, &e.CreatedAt, &e.UpdatedAt, &e.OrganizerName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("event not found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Store) CreateEvent(ctx context.Context, e *model.Event) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO events (id, title, description, date, location, price, banner, organizer_id)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		e.ID, e.Title, e.Description, e.Date, e.Location, e.Price, e.Banner, e.OrganizerID,
	)
	return err
}

func (s *Store) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	return scanEvent(s.pool.QueryRow(ctx,
		`SELECT `+eventColumns+`
		 FROM events e JOIN users u ON u.id = e.organizer_id
		 WHERE e.id = $1`, id,
	))
}

// ListEvents returns every event ascending by date; filtering and sorting
// beyond that is a client concern.
func (s *Store) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.listEvents(ctx,
		`SELECT `+eventColumns+`
		 FROM events e JOIN users u ON u.id = e.organizer_id
		 ORDER BY e.date ASC`)
}

func (s *Store) ListEventsByOrganizer(ctx context.Context, organizerID string) ([]model.Event, error) {
	return s.listEvents(ctx,
		`SELECT `+eventColumns+`
		 FROM events e JOIN users u ON u.id = e.organizer_id
		 WHERE e.organizer_id = $1
		 ORDER BY e.date ASC`, organizerID)
}

func (s *Store) listEvents(ctx context.Context, q string, args ...any) ([]model.Event, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (s *Store) UpdateEvent(ctx context.Context, e *model.Event) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE events
		 SET title=$1, description=$2, date=$3, location=$4, price=$5, banner=$6, updated_at=NOW()
		 WHERE id=$7`,
		e.Title, e.Description, e.Date, e.Location, e.Price, e.Banner, e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("event not found")
	}
	return nil
}

// DeleteEvent removes the event; RSVPs and comments go with it via the
// ON DELETE CASCADE constraints, so no orphans survive.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("event not found")
	}
	return nil
}
