package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/edubench/internal/store/common"
	"github.com/Rana718/edubench/internal/store/docsql"
	_ "github.com/mattn/go-sqlite3"
)

type Adapter struct {
	*docsql.Store
}

type dialect struct{}

func (dialect) CreateTableSQL(table string) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id TEXT PRIMARY KEY, doc TEXT NOT NULL)", table)
}

func (dialect) Upsert(qb squirrel.StatementBuilderType, table, id string, doc []byte) squirrel.Sqlizer {
	return qb.Insert(table).Options("OR REPLACE").Columns("id", "doc").Values(id, doc)
}

func New(opts common.Options) *Adapter {
	return &Adapter{Store: docsql.NewStore(dialect{}, squirrel.Question, opts)}
}

func (a *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?cache=shared&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// The harness is a single sequential client.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping SQLite: %w", err)
	}

	a.SetDB(db)
	return nil
}
