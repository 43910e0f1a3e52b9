package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/restopos/backend/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add stock limits", "add_stock_limits"},
		{"Add-Stock-Limits", "add_stock_limits"},
		{"ADD_STOCK_LIMITS", "add_stock_limits"},
		{"add__stock__limits", "add_stock_limits"},
		{"Add Batch 123", "add_batch_123"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	mf, err := CreateMigration(dir, "add stock limits", "Track min and max per row")
	require.NoError(t, err)

	// YYYYMMDDHHMMSS
	assert.Len(t, mf.Version, 14)
	upBase := strings.TrimSuffix(filepath.Base(mf.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(mf.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)
	assert.Equal(t, mf.Version+"_add_stock_limits", upBase)

	upContent, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(upContent), "add stock limits")
	assert.Contains(t, string(upContent), "Track min and max per row")

	downContent, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(downContent), "Rollback")
}

func TestCreateMigration_RejectsEmptyName(t *testing.T) {
	_, err := CreateMigration(t.TempDir(), "!!!", "")
	assert.Error(t, err)
}

func TestListMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"000002_add_stock.up.sql":   {Data: []byte("-- up")},
		"000002_add_stock.down.sql": {Data: []byte("-- down")},
		"000001_init.up.sql":        {Data: []byte("-- up")},
		"000001_init.down.sql":      {Data: []byte("-- down")},
		"000003_no_down.up.sql":     {Data: []byte("-- up")},
		"README.md":                 {Data: []byte("notes")},
	}

	list, err := ListMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, Migration{Name: "000001_init", HasDown: true}, list[0])
	assert.Equal(t, Migration{Name: "000002_add_stock", HasDown: true}, list[1])
	assert.Equal(t, Migration{Name: "000003_no_down", HasDown: false}, list[2])
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	list, err := ListMigrations(os.DirFS(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmbeddedMigrations(t *testing.T) {
	list, err := ListMigrations(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, list)

	for _, m := range list {
		assert.True(t, m.HasDown, "%s has no rollback", m.Name)
	}

	stock, err := migrations.FS.ReadFile("20260901100100_create_stock.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(stock), "WHERE branch_id IS NULL")
	assert.Contains(t, string(stock), "WHERE branch_id IS NOT NULL")
}
