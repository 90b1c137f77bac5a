package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Rana718/edubench/internal/store/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()

	a := New(common.Options{Tables: []string{"Users", "Enrollments"}})
	url := "sqlite://" + filepath.Join(t.TempDir(), "bench.db")
	require.NoError(t, a.Connect(context.Background(), url))
	t.Cleanup(func() { a.Close() })

	require.NoError(t, a.CreateSchema(context.Background()))
	return a
}

func TestSQLitePutQueryDelete(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	rec := map[string]interface{}{
		"id":              "u1",
		"name":            "Alice Smith",
		"role":            "student",
		"enrolledCourses": []string{"c1", "c2"},
	}
	require.NoError(t, a.Put(ctx, "Users", rec))

	rows, err := a.Query(ctx, "Users")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "u1", rows[0]["id"])
	assert.Equal(t, "Alice Smith", rows[0]["name"])

	// Arrays come back as []interface{} after the JSON round trip.
	courses, ok := rows[0]["enrolledCourses"].([]interface{})
	require.True(t, ok)
	assert.Len(t, courses, 2)

	require.NoError(t, a.Delete(ctx, "Users", "u1"))
	rows, err = a.Query(ctx, "Users")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSQLitePutReplaces(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	require.NoError(t, a.Put(ctx, "Users", map[string]interface{}{"id": "u1", "name": "before"}))
	require.NoError(t, a.Put(ctx, "Users", map[string]interface{}{"id": "u1", "name": "after"}))

	rows, err := a.Query(ctx, "Users")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "after", rows[0]["name"])
}

func TestSQLiteCreateSchemaIdempotent(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	require.NoError(t, a.Put(ctx, "Users", map[string]interface{}{"id": "u1"}))

	// A second create must not wipe existing rows.
	require.NoError(t, a.CreateSchema(ctx))
	rows, err := a.Query(ctx, "Users")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSQLiteDropSchema(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t)

	require.NoError(t, a.Put(ctx, "Users", map[string]interface{}{"id": "u1"}))
	require.NoError(t, a.DropSchema(ctx))

	_, err := a.Query(ctx, "Users")
	assert.Error(t, err, "query against a dropped table must fail")
}
