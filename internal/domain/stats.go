package domain

import "time"

// DiscoveryStats summarises one keyword discovery run.
type DiscoveryStats struct {
	Fetched      int
	Offered      int
	Duplicates   int
	UsedFallback bool
	Errors       int
	Duration     time.Duration
}

// IngestStats summarises one feed ingestion run.
type IngestStats struct {
	FeedURL  string
	Fetched  int
	Created  int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// FeedState is what the ingester remembers about a feed between fetches.
type FeedState struct {
	FeedURL       string    `db:"feed_url"`
	LastFetchedAt time.Time `db:"last_fetched_at"`
	LastEntryURL  *string   `db:"last_entry_url"`
	TotalCreated  int64     `db:"total_created"`
}
