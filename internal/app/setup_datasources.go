package app

import (
	"context"
	"fmt"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/datasources/gemini"
	"github.com/news-summarizer/news-summarizer/internal/datasources/kafka"
	"github.com/news-summarizer/news-summarizer/internal/datasources/memcache"
	"github.com/news-summarizer/news-summarizer/internal/datasources/memqueue"
	"github.com/news-summarizer/news-summarizer/internal/datasources/newsapi"
	"github.com/news-summarizer/news-summarizer/internal/datasources/openai"
	"github.com/news-summarizer/news-summarizer/internal/datasources/rssfeed"
	"github.com/news-summarizer/news-summarizer/internal/datasources/sqldb"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

// Placeholder keys are treated the same as an unset key.
const (
	DefaultOpenAIKeyPlaceholder = "YOUR_DEFAULT_OPENAI_KEY"
	DefaultGeminiKeyPlaceholder = "YOUR_DEFAULT_GEMINI_KEY"
)

// ArticleQueue is a queue that also runs as a component and can be closed once no more
// items will be enqueued.
type ArticleQueue interface {
	datasources.ArticleQueue
	Component
	Close(ctx context.Context)
}

func setupDatabase(ctx context.Context) (*sqldb.DB, error) {
	var db *sqldb.DB
	var err error

	switch driver := MustGetEnvAsString(ctx, "DATABASE_DRIVER"); driver {
	case "mysql":
		db, err = sqldb.ConnectMySQL(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
	case "sqlite":
		db, err = sqldb.OpenSQLite(ctx, MustGetEnvAsString(ctx, "SQLITE_PATH"))
		if err != nil {
			return nil, fmt.Errorf("opening SQLite database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown database driver [%s]", driver)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}
	return db, nil
}

func setupDatasetRepository(db *sqldb.DB) datasources.DatasetRepository {
	return sqldb.New(db)
}

func setupSummaryCache(ctx context.Context, db *sqldb.DB) (datasources.SummaryCache, error) {
	switch driver := GetEnvAsStringOrDefault("CACHE_DRIVER", "memory"); driver {
	case "memory":
		return memcache.NewCaches().Namespace(domain.SummaryCacheNamespace), nil
	case "sql":
		return sqldb.NewCacheStore(db, domain.SummaryCacheNamespace), nil
	default:
		return nil, fmt.Errorf("unknown cache driver [%s]", driver)
	}
}

// setupSummarizer decides once whether a live provider is usable. Without a credential the
// pipeline still works, returning fallback summaries.
func setupSummarizer(ctx context.Context) (datasources.Summarizer, error) {
	logger := domain.LoggerFromContext(ctx)
	timeout := MustGetEnvAsDurationOrDefault(ctx, "SUMMARIZER_TIMEOUT", openai.DefaultTimeout)

	switch driver := GetEnvAsStringOrDefault("SUMMARIZER_DRIVER", "openai"); driver {
	case "null":
		return datasources.UnavailableSummarizer{Reason: "summarizer disabled"}, nil
	case "openai":
		key := GetEnvAsStringOrDefault("OPENAI_API_KEY", "")
		placeholder := GetEnvAsStringOrDefault("OPENAI_API_KEY_PLACEHOLDER", DefaultOpenAIKeyPlaceholder)
		if key == "" || key == placeholder {
			logger.WarnContext(ctx, "OpenAI API key not configured, summaries will use fallback text")
			return datasources.UnavailableSummarizer{Reason: "OPENAI_API_KEY not configured"}, nil
		}

		client, err := openai.NewClient(openai.Config{
			APIKey:  key,
			Model:   GetEnvAsStringOrDefault("OPENAI_MODEL", openai.DefaultModel),
			BaseURL: GetEnvAsStringOrDefault("OPENAI_BASE_URL", ""),
			Timeout: timeout,
		})
		if err != nil {
			return unavailableOnError(ctx, "OpenAI", err), nil
		}
		return client, nil
	case "gemini":
		key := GetEnvAsStringOrDefault("GEMINI_API_KEY", "")
		placeholder := GetEnvAsStringOrDefault("GEMINI_API_KEY_PLACEHOLDER", DefaultGeminiKeyPlaceholder)
		if key == "" || key == placeholder {
			logger.WarnContext(ctx, "Gemini API key not configured, summaries will use fallback text")
			return datasources.UnavailableSummarizer{Reason: "GEMINI_API_KEY not configured"}, nil
		}

		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:  key,
			Model:   GetEnvAsStringOrDefault("GEMINI_MODEL", gemini.DefaultModel),
			Timeout: timeout,
		})
		if err != nil {
			return unavailableOnError(ctx, "Gemini", err), nil
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown summarizer driver [%s]", driver)
	}
}

func unavailableOnError(ctx context.Context, provider string, err error) datasources.Summarizer {
	logger := domain.LoggerFromContext(ctx)
	logger.WarnContext(ctx, "unable to create summarizer client, summaries will use fallback text",
		"provider", provider, "error", err)
	return datasources.UnavailableSummarizer{Reason: fmt.Sprintf("creating %s client: %v", provider, err)}
}

func setupFeedFetcher(ctx context.Context) (datasources.FeedFetcher, error) {
	switch driver := GetEnvAsStringOrDefault("FEED_DRIVER", "newsapi"); driver {
	case "newsapi":
		return newsapi.NewClient(
			GetEnvAsStringOrDefault("NEWS_API_URL", newsapi.DefaultURL),
			GetEnvAsStringOrDefault("NEWS_API_KEY", ""),
			GetEnvAsStringOrDefault("NEWS_API_QUERY", newsapi.DefaultQuery),
		), nil
	case "rss":
		return rssfeed.NewClient(MustGetEnvAsString(ctx, "RSS_FEED_URL")), nil
	default:
		return nil, fmt.Errorf("unknown feed driver [%s]", driver)
	}
}

func setupArticleQueue(
	ctx context.Context, cfg IngestionConfig, handler datasources.FeedItemHandler,
) (ArticleQueue, error) {
	switch driver := GetEnvAsStringOrDefault("QUEUE_DRIVER", "memory"); driver {
	case "memory":
		return memqueue.New(cfg.QueueCapacity, cfg.QueueWorkers, handler), nil
	case "kafka":
		q, err := kafka.NewQueue(ctx, kafka.Config{
			Brokers: MustGetEnvAsString(ctx, "KAFKA_BROKERS"),
			Topic:   GetEnvAsStringOrDefault("KAFKA_TOPIC", kafka.DefaultTopic),
			GroupID: GetEnvAsStringOrDefault("KAFKA_GROUP_ID", kafka.DefaultGroupID),
		}, handler)
		if err != nil {
			return nil, fmt.Errorf("connecting to Kafka: %w", err)
		}
		return q, nil
	default:
		return nil, fmt.Errorf("unknown queue driver [%s]", driver)
	}
}
