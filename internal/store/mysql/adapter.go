package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/edubench/internal/store/common"
	"github.com/Rana718/edubench/internal/store/docsql"
	_ "github.com/go-sql-driver/mysql"
)

type Adapter struct {
	*docsql.Store
}

type dialect struct{}

func (dialect) CreateTableSQL(table string) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id VARCHAR(36) PRIMARY KEY, doc JSON NOT NULL)", table)
}

func (dialect) Upsert(qb squirrel.StatementBuilderType, table, id string, doc []byte) squirrel.Sqlizer {
	return qb.Replace(table).Columns("id", "doc").Values(id, doc)
}

func New(opts common.Options) *Adapter {
	return &Adapter{Store: docsql.NewStore(dialect{}, squirrel.Question, opts)}
}

func (a *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("mysql", url)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(15 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping MySQL: %w", err)
	}

	a.SetDB(db)
	return nil
}
