package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB records executed SQL and tracks schema_migrations in memory.
type fakeDB struct {
	execs   []string
	applied map[string]bool
}

type boolRow struct{ v bool }

func (r boolRow) Scan(dest ...any) error {
	*dest[0].(*bool) = r.v
	return nil
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if strings.HasPrefix(sql, "INSERT INTO schema_migrations") {
		if f.applied == nil {
			f.applied = make(map[string]bool)
		}
		f.applied[args[0].(string)] = true
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return boolRow{v: f.applied[args[0].(string)]}
}

func writeMigrations(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestCollectUpFiles_SortedAndFiltered(t *testing.T) {
	dir := writeMigrations(t, map[string]string{
		"002_b.up.sql":         "b",
		"001_a.up.sql":         "a",
		"000_drop_all.sql":     "drop",
		"000_consolidated.sql": "all",
		"README.md":            "x",
	})

	files, err := collectUpFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_a.up.sql", "002_b.up.sql"}, files)
}

func TestRunIncremental_AppliesOnlyNew(t *testing.T) {
	dir := writeMigrations(t, map[string]string{
		"001_a.up.sql": "CREATE TABLE a ()",
		"002_b.up.sql": "CREATE TABLE b ()",
	})
	db := &fakeDB{applied: map[string]bool{"001_a": true}}

	require.NoError(t, runIncremental(context.Background(), db, dir))

	assert.NotContains(t, db.execs, "CREATE TABLE a ()")
	assert.Contains(t, db.execs, "CREATE TABLE b ()")
	assert.True(t, db.applied["002_b"])
}

func TestRunConsolidated_MarksAllApplied(t *testing.T) {
	dir := writeMigrations(t, map[string]string{
		"000_consolidated.sql": "CREATE TABLE everything ()",
		"001_a.up.sql":         "CREATE TABLE a ()",
		"002_b.up.sql":         "CREATE TABLE b ()",
	})
	db := &fakeDB{}

	require.NoError(t, runConsolidated(context.Background(), db, dir))

	assert.Equal(t, "CREATE TABLE everything ()", db.execs[0])
	assert.True(t, db.applied["001_a"])
	assert.True(t, db.applied["002_b"])
	assert.NotContains(t, db.execs, "CREATE TABLE a ()")
}

func TestRunDropAll_MissingFile(t *testing.T) {
	err := runDropAll(context.Background(), &fakeDB{}, t.TempDir())
	assert.ErrorContains(t, err, "000_drop_all.sql")
}

func TestShippedMigrations(t *testing.T) {
	files, err := collectUpFiles(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	assert.Contains(t, files, "001_create_enquiries.up.sql")
}
