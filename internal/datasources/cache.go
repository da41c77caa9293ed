package datasources

import (
	"context"
	"time"
)

// SummaryCache is an expiring key/value store. Entries are absent once their TTL has passed.
type SummaryCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
