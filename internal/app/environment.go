package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// GetEnvAsStringOrDefault returns def when the variable is unset or empty.
func GetEnvAsStringOrDefault(name, def string) string {
	if s := os.Getenv(name); s != "" {
		return s
	}
	return def
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	return parseEnvAsInt(ctx, name, MustGetEnvAsString(ctx, name))
}

func MustGetEnvAsIntOrDefault(ctx context.Context, name string, def int) int {
	s := os.Getenv(name)
	if s == "" {
		return def
	}
	return parseEnvAsInt(ctx, name, s)
}

func parseEnvAsInt(ctx context.Context, name, s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as integer",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as integer [%s]: %s", name, s))
	}

	return v
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	s := MustGetEnvAsString(ctx, name)

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean ('true'/'false')",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean ('true'/'false') [%s]: %s", name, s))
	}
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	return parseEnvAsDuration(ctx, name, MustGetEnvAsString(ctx, name))
}

func MustGetEnvAsDurationOrDefault(ctx context.Context, name string, def time.Duration) time.Duration {
	s := os.Getenv(name)
	if s == "" {
		return def
	}
	return parseEnvAsDuration(ctx, name, s)
}

func parseEnvAsDuration(ctx context.Context, name, s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}

// MustGetLogLevel parses LOG_LEVEL, using def when it is unset.
func MustGetLogLevel(def slog.Level) slog.Level {
	s := os.Getenv("LOG_LEVEL")
	if s == "" {
		return def
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		panic(fmt.Sprintf("unable to setup logger, LOG_LEVEL not recognised [%s]", s))
	}
	return level
}
