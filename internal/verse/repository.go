package verse

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tobiajayi/daily-verse-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInternalServer = errors.New("internal server error")
)

type HistoryRepo interface {
	SaveFetchedVerse(ctx context.Context, v Verse) error
	GetHistory(ctx context.Context, limit int) ([]HistoryEntry, error)
	GetLastFetched(ctx context.Context) (*HistoryEntry, error)
}

type historyRepo struct {
	db *sql.DB
}

func NewHistoryRepo(dbService database.Service) HistoryRepo {
	return &historyRepo{db: dbService.DB()}
}

func (r *historyRepo) SaveFetchedVerse(ctx context.Context, v Verse) error {
	query := `
		INSERT INTO verse_history (reference, body, translation, fetched_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, v.Reference, v.Text, v.Translation, v.FetchedAt)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *historyRepo) GetHistory(ctx context.Context, limit int) ([]HistoryEntry, error) {
	query := `
		SELECT id, reference, body, translation, fetched_at
		FROM verse_history
		ORDER BY fetched_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Reference, &e.Body, &e.Translation, &e.FetchedAt); err != nil {
			return nil, ErrInternalServer
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}

	return entries, nil
}

func (r *historyRepo) GetLastFetched(ctx context.Context) (*HistoryEntry, error) {
	query := `
		SELECT id, reference, body, translation, fetched_at
		FROM verse_history
		ORDER BY fetched_at DESC
		LIMIT 1
	`

	var e HistoryEntry
	err := r.db.QueryRowContext(ctx, query).Scan(&e.ID, &e.Reference, &e.Body, &e.Translation, &e.FetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ErrInternalServer
	}
	return &e, nil
}
