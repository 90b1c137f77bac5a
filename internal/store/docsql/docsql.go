// Package docsql implements the document-store contract on top of a
// database/sql connection: each table is (id PRIMARY KEY, doc JSON),
// with the whole record serialized into the doc column.
package docsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/edubench/internal/store/common"
)

// Dialect captures the per-engine differences: the DDL text and the
// insert-or-replace statement shape.
type Dialect interface {
	CreateTableSQL(table string) string
	Upsert(qb squirrel.StatementBuilderType, table, id string, doc []byte) squirrel.Sqlizer
}

type Store struct {
	db      *sql.DB
	qb      squirrel.StatementBuilderType
	dialect Dialect
	opts    common.Options
}

func NewStore(dialect Dialect, placeholder squirrel.PlaceholderFormat, opts common.Options) *Store {
	return &Store{
		qb:      squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		dialect: dialect,
		opts:    opts.Normalized(),
	}
}

// SetDB attaches the live connection; the provider's Connect owns
// driver-specific URL handling.
func (s *Store) SetDB(db *sql.DB) {
	s.db = db
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) CreateSchema(ctx context.Context) error {
	for _, table := range s.opts.Tables {
		ddl := s.dialect.CreateTableSQL(table)
		err := common.RetryDDL(ctx, s.opts, func(ctx context.Context) error {
			_, err := s.db.ExecContext(ctx, ddl)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}
	return nil
}

func (s *Store) DropSchema(ctx context.Context) error {
	for _, table := range s.opts.Tables {
		ddl := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		err := common.RetryDDL(ctx, s.opts, func(ctx context.Context) error {
			_, err := s.db.ExecContext(ctx, ddl)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}

func (s *Store) Put(ctx context.Context, table string, rec map[string]interface{}) error {
	id, ok := rec["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("record for %s has no id", table)
	}

	doc, err := common.EncodeDoc(rec)
	if err != nil {
		return err
	}

	query, args, err := s.dialect.Upsert(s.qb, table, id, doc).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build put statement for %s: %w", table, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to put record into %s: %w", table, err)
	}
	return nil
}

func (s *Store) Query(ctx context.Context, table string) ([]map[string]interface{}, error) {
	query, args, err := s.qb.Select("doc").From(table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query for %s: %w", table, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
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

func (s *Store) Delete(ctx context.Context, table, id string) error {
	query, args, err := s.qb.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete for %s: %w", table, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", id, table, err)
	}
	return nil
}
