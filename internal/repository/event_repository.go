package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"comitefd/internal/models"
)

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context, from, to *time.Time) ([]models.Event, error) {
	query := `SELECT * FROM events`
	args := []interface{}{}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" WHERE start_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += fmt.Sprintf(" AND start_date <= $%d", len(args))
		} else {
			query += fmt.Sprintf(" WHERE start_date <= $%d", len(args))
		}
	}
	query += ` ORDER BY start_date ASC`

	var events []models.Event
	err := r.db.SelectContext(ctx, &events, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list events: %w", err)
	}

	return events, nil
}

func (r *eventRepository) getByID(ctx context.Context, eventID string) (*models.Event, error) {
	query := `SELECT * FROM events WHERE event_id = $1`

	var event models.Event
	err := r.db.GetContext(ctx, &event, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch event: %w", err)
	}

	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}

	query := `
		INSERT INTO events (event_id, title, description, start_date, end_date)
		VALUES (:event_id, :title, :description, :start_date, :end_date)
	`

	_, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("could not create event: %w", err)
	}

	return nil
}

func (r *eventRepository) Update(ctx context.Context, req models.UpdateEventRequest) (*models.Event, error) {
	var b updateBuilder
	if req.Title.Set {
		b.add("title", req.Title.Value)
	}
	if req.Description.Set {
		b.add("description", req.Description.Ptr())
	}
	if req.StartDate.Set {
		b.add("start_date", req.StartDate.Value)
	}
	if req.EndDate.Set {
		b.add("end_date", req.EndDate.Ptr())
	}

	if b.empty() {
		return r.getByID(ctx, req.ID)
	}

	b.args = append(b.args, req.ID)
	query := fmt.Sprintf("UPDATE events SET %s WHERE event_id = $%d",
		joinClauses(b.sets), len(b.args))

	result, err := r.db.ExecContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("could not update event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("event %s: %w", req.ID, ErrNotFound)
	}

	return r.getByID(ctx, req.ID)
}

func (r *eventRepository) Delete(ctx context.Context, eventID string) error {
	query := `DELETE FROM events WHERE event_id = $1`

	result, err := r.db.ExecContext(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("could not delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("event %s: %w", eventID, ErrNotFound)
	}

	return nil
}
