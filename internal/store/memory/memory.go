// Package memory is an in-process store used by tests and dry runs. It
// honors the same contract as the real adapters, including failing on
// tables that were never created.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Rana718/edubench/internal/store/common"
)

type table struct {
	order   []string
	records map[string]map[string]interface{}
}

type Adapter struct {
	mu     sync.Mutex
	opts   common.Options
	tables map[string]*table
}

func New(opts common.Options) *Adapter {
	return &Adapter{opts: opts.Normalized()}
}

func (a *Adapter) Connect(ctx context.Context, url string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tables = make(map[string]*table)
	return nil
}

func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tables = nil
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.tables == nil {
		return fmt.Errorf("store not connected")
	}
	return nil
}

func (a *Adapter) CreateSchema(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, name := range a.opts.Tables {
		if _, exists := a.tables[name]; !exists {
			a.tables[name] = &table{records: make(map[string]map[string]interface{})}
		}
	}
	return nil
}

func (a *Adapter) DropSchema(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, name := range a.opts.Tables {
		delete(a.tables, name)
	}
	return nil
}

func (a *Adapter) Put(ctx context.Context, tableName string, rec map[string]interface{}) error {
	id, ok := rec["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("record for %s has no id", tableName)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	t, err := a.table(tableName)
	if err != nil {
		return err
	}

	if _, exists := t.records[id]; !exists {
		t.order = append(t.order, id)
	}
	t.records[id] = copyRecord(rec)
	return nil
}

func (a *Adapter) Query(ctx context.Context, tableName string) ([]map[string]interface{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, err := a.table(tableName)
	if err != nil {
		return nil, err
	}

	var records []map[string]interface{}
	for _, id := range t.order {
		records = append(records, copyRecord(t.records[id]))
	}
	return records, nil
}

func (a *Adapter) Delete(ctx context.Context, tableName, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, err := a.table(tableName)
	if err != nil {
		return err
	}

	if _, exists := t.records[id]; !exists {
		return fmt.Errorf("record %s not found in %s", id, tableName)
	}
	delete(t.records, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (a *Adapter) table(name string) (*table, error) {
	if a.tables == nil {
		return nil, fmt.Errorf("store not connected")
	}
	t, exists := a.tables[name]
	if !exists {
		return nil, fmt.Errorf("table %s does not exist", name)
	}
	return t, nil
}

func copyRecord(rec map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(rec))
	for k, v := range rec {
		if vals, ok := v.([]string); ok {
			copied := make([]string, len(vals))
			copy(copied, vals)
			out[k] = copied
			continue
		}
		out[k] = v
	}
	return out
}
