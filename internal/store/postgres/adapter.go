package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/edubench/internal/store/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Adapter struct {
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
	opts common.Options
}

func New(opts common.Options) *Adapter {
	return &Adapter{
		qb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		opts: opts.Normalized(),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	// One sequential client; a pool of two leaves headroom for Ping.
	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Adapter) CreateSchema(ctx context.Context) error {
	for _, table := range p.opts.Tables {
		ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id TEXT PRIMARY KEY, doc JSONB NOT NULL)", table)
		err := common.RetryDDL(ctx, p.opts, func(ctx context.Context) error {
			_, err := p.pool.Exec(ctx, ddl)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}
	return nil
}

func (p *Adapter) DropSchema(ctx context.Context) error {
	for _, table := range p.opts.Tables {
		ddl := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		err := common.RetryDDL(ctx, p.opts, func(ctx context.Context) error {
			_, err := p.pool.Exec(ctx, ddl)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}

func (p *Adapter) Put(ctx context.Context, table string, rec map[string]interface{}) error {
	id, ok := rec["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("record for %s has no id", table)
	}

	doc, err := common.EncodeDoc(rec)
	if err != nil {
		return err
	}

	query, args, err := p.qb.Insert(table).
		Columns("id", "doc").
		Values(id, doc).
		Suffix("ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build put statement for %s: %w", table, err)
	}

	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to put record into %s: %w", table, err)
	}
	return nil
}

func (p *Adapter) Query(ctx context.Context, table string) ([]map[string]interface{}, error) {
	query, args, err := p.qb.Select("doc").From(table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query for %s: %w", table, err)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var records []map[string]interface{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", table, err)
		}
		rec, err := common.DecodeDoc(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed on %s: %w", table, err)
	}

	return records, nil
}

func (p *Adapter) Delete(ctx context.Context, table, id string) error {
	query, args, err := p.qb.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete for %s: %w", table, err)
	}

	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", id, table, err)
	}
	return nil
}
