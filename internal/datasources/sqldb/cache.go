package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
)

var _ datasources.SummaryCache = (*CacheStore)(nil)

// CacheStore keeps expiring cache entries in the cache_entries table, partitioned by namespace.
// Every process sharing the database shares the cache.
type CacheStore struct {
	db        *DB
	namespace string
	now       func() time.Time
}

func NewCacheStore(db *DB, namespace string) *CacheStore {
	return &CacheStore{db: db, namespace: namespace, now: time.Now}
}

// WithClock returns a copy of the store that reads the current time from now.
func (c *CacheStore) WithClock(now func() time.Time) *CacheStore {
	cp := *c
	cp.now = now
	return &cp
}

func (c *CacheStore) Get(ctx context.Context, key string) (string, bool, error) {
	sb := c.db.Flavor.NewSelectBuilder()
	sb.Select("value", "expires_at")
	sb.From("cache_entries")
	sb.Where(
		sb.Equal("namespace", c.namespace),
		sb.Equal("cache_key", key),
	)

	query, args := sb.Build()

	var value string
	var expiresAt int64
	err := c.db.QueryRowContext(ctx, query, args...).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading cache entry: %w", err)
	}

	if !c.now().Before(time.Unix(0, expiresAt)) {
		return "", false, nil
	}

	return value, true, nil
}

func (c *CacheStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	expiresAt := c.now().Add(ttl).UnixNano()

	ib := c.db.Flavor.NewInsertBuilder()
	ib.InsertInto("cache_entries")
	ib.Cols("namespace", "cache_key", "value", "expires_at")
	ib.Values(c.namespace, key, value, expiresAt)
	ib.SQL(upsertSuffix(c.db.Flavor, []string{"namespace", "cache_key"}, []string{"value", "expires_at"}))

	query, args := ib.Build()
	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}

	return nil
}
