package store

import (
	"context"
	"fmt"

	"github.com/Rana718/edubench/internal/store/common"
	"github.com/Rana718/edubench/internal/store/memory"
	"github.com/Rana718/edubench/internal/store/mongodb"
	"github.com/Rana718/edubench/internal/store/mysql"
	"github.com/Rana718/edubench/internal/store/postgres"
	"github.com/Rana718/edubench/internal/store/sqlite"
)

// Record is one document as the store hands it back: plain Go values
// only (strings, []interface{}, time.Time), regardless of provider.
type Record = map[string]interface{}

// Store is the opaque document store the benchmark drives. Every
// operation is issued and awaited synchronously; the harness never
// pipelines requests.
type Store interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// Schema DDL. Both calls honor the admission-control budget the
	// adapter was built with and are the only retried operation class.
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Put inserts or fully replaces the record keyed by rec["id"].
	Put(ctx context.Context, table string, rec Record) error
	// Query is a full scan: every row of the table, no filter.
	Query(ctx context.Context, table string) ([]Record, error)
	Delete(ctx context.Context, table, id string) error
}

func New(provider string, opts common.Options) (Store, error) {
	switch provider {
	case "mongodb", "mongo":
		return mongodb.New(opts), nil
	case "postgresql", "postgres":
		return postgres.New(opts), nil
	case "mysql":
		return mysql.New(opts), nil
	case "sqlite", "sqlite3":
		return sqlite.New(opts), nil
	case "memory":
		return memory.New(opts), nil
	default:
		return nil, fmt.Errorf("unsupported store provider: %s", provider)
	}
}
