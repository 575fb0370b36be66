package verse

import "time"

type Verse struct {
	Text        string    `json:"text"`
	Reference   string    `json:"reference"`
	Translation string    `json:"translation"`
	FetchedAt   time.Time `json:"fetched_at"`
}

type HistoryEntry struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference"`
	Body        string    `json:"body"`
	Translation string    `json:"translation"`
	FetchedAt   time.Time `json:"fetched_at"`
}
