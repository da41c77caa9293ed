package sqldb

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

const mysqlDriverParamStr string = "?parseTime=true"

//go:embed schema/*.sql
var schemaFS embed.FS

// DB is a database handle together with the SQL flavor used to build its queries.
type DB struct {
	*sql.DB
	Flavor sqlbuilder.Flavor
}

func ConnectMySQL(ctx context.Context, uri string) (*DB, error) {
	db, err := sql.Open("mysql", uri+mysqlDriverParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return &DB{DB: db, Flavor: sqlbuilder.MySQL}, nil
}

// OpenSQLite opens a SQLite database file, or an in-memory database for ":memory:".
func OpenSQLite(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite DB: %w", err)
	}

	// An in-memory database exists per connection, and SQLite serialises writers anyway.
	db.SetMaxOpenConns(1)

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking SQLite DB connection: %w", err)
	}

	return &DB{DB: db, Flavor: sqlbuilder.SQLite}, nil
}

// EnsureSchema creates the articles and cache tables if they do not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	var file string
	switch db.Flavor {
	case sqlbuilder.MySQL:
		file = "schema/mysql.sql"
	case sqlbuilder.SQLite:
		file = "schema/sqlite.sql"
	default:
		return fmt.Errorf("no schema for SQL flavor [%s]", db.Flavor)
	}

	schema, err := schemaFS.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading schema file %s: %w", file, err)
	}

	for _, stmt := range strings.Split(string(schema), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema statement: %w", err)
		}
	}

	return nil
}

// upsertSuffix returns the clause that turns an insert into an update when the conflict columns collide.
func upsertSuffix(flavor sqlbuilder.Flavor, conflictCols, updateCols []string) string {
	assignments := make([]string, 0, len(updateCols))

	switch flavor {
	case sqlbuilder.SQLite:
		for _, col := range updateCols {
			assignments = append(assignments, col+" = excluded."+col)
		}
		return "ON CONFLICT (" + strings.Join(conflictCols, ", ") + ") DO UPDATE SET " +
			strings.Join(assignments, ", ")
	default:
		for _, col := range updateCols {
			assignments = append(assignments, col+" = VALUES("+col+")")
		}
		return "ON DUPLICATE KEY UPDATE " + strings.Join(assignments, ", ")
	}
}
