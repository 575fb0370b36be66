package notify

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tobiajayi/daily-verse-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInternalServer = errors.New("internal server error")
)

// StateRepo persists small key/value app state, such as the last open date
// used for scheduler dedup.
type StateRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ScheduleRepo persists scheduled notifications.
type ScheduleRepo interface {
	Create(ctx context.Context, n Notification) error
	CancelPending(ctx context.Context) error
	GetPending(ctx context.Context) ([]Notification, error)
	MarkDelivered(ctx context.Context, id string, at time.Time) error
	GetAll(ctx context.Context, limit int) ([]Notification, error)
}

type stateRepo struct {
	db *sql.DB
}

func NewStateRepo(dbService database.Service) StateRepo {
	return &stateRepo{db: dbService.DB()}
}

func (r *stateRepo) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM app_state WHERE key = $1`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", ErrInternalServer
	}
	return value, nil
}

func (r *stateRepo) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := r.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

type scheduleRepo struct {
	db *sql.DB
}

func NewScheduleRepo(dbService database.Service) ScheduleRepo {
	return &scheduleRepo{db: dbService.DB()}
}

func (r *scheduleRepo) Create(ctx context.Context, n Notification) error {
	query := `
		INSERT INTO notifications (id, title, body, reference, fire_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.Title, n.Body, n.Reference, n.FireAt, n.Status, n.CreatedAt)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *scheduleRepo) CancelPending(ctx context.Context) error {
	query := `UPDATE notifications SET status = $1 WHERE status = $2`
	_, err := r.db.ExecContext(ctx, query, StatusCancelled, StatusPending)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *scheduleRepo) GetPending(ctx context.Context) ([]Notification, error) {
	query := `
		SELECT id, title, body, reference, fire_at, status, created_at, delivered_at
		FROM notifications
		WHERE status = $1
		ORDER BY fire_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, StatusPending)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	return scanNotifications(rows)
}

func (r *scheduleRepo) MarkDelivered(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE notifications SET status = $1, delivered_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, StatusDelivered, at, id)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *scheduleRepo) GetAll(ctx context.Context, limit int) ([]Notification, error) {
	query := `
		SELECT id, title, body, reference, fire_at, status, created_at, delivered_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	return scanNotifications(rows)
}

func scanNotifications(rows *sql.Rows) ([]Notification, error) {
	var list []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Body, &n.Reference,
			&n.FireAt, &n.Status, &n.CreatedAt, &n.DeliveredAt,
		); err != nil {
			return nil, ErrInternalServer
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, ErrInternalServer
	}
	return list, nil
}
