package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SheetStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database", "data.xlsx")
	return NewSheetStore(func() string { return path }), path
}

func TestInitCreatesWorkbook(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.Init())
	_, err := os.Stat(path)
	require.NoError(t, err)

	// All three collections exist and are empty.
	for _, name := range []string{SheetProducts, SheetCategories, SheetStorage} {
		assert.Empty(t, store.ReadSheet(name))
	}

	// Init on an existing workbook is a no-op.
	require.NoError(t, store.AppendRow(SheetCategories, Row{"id": "c1", "name": "Tools"}))
	require.NoError(t, store.Init())
	assert.Len(t, store.ReadSheet(SheetCategories), 1)
}

func TestReadSheetFailsSoft(t *testing.T) {
	store, path := newTestStore(t)

	// Missing workbook: created on first read, empty result, no panic.
	rows := store.ReadSheet(SheetProducts)
	assert.Empty(t, rows)
	_, err := os.Stat(path)
	assert.NoError(t, err)

	// Unknown sheet name: empty result.
	assert.Empty(t, store.ReadSheet("Suppliers"))
}

func TestAppendAndReadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	row := Row{
		"id": "p1", "name": "Hammer", "category": "Tools",
		"price": "9.99", "stock": "5", "sku": "H",
		"createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z",
	}
	require.NoError(t, store.AppendRow(SheetProducts, row))
	require.NoError(t, store.AppendRow(SheetProducts, Row{"id": "p2", "name": "Saw", "category": "Tools"}))

	rows := store.ReadSheet(SheetProducts)
	require.Len(t, rows, 2)
	assert.Equal(t, "Hammer", rows[0]["name"])
	assert.Equal(t, "9.99", rows[0]["price"])
	assert.Equal(t, "5", rows[0]["stock"])
	assert.Equal(t, "p2", rows[1]["id"])
	// Columns never written come back as empty strings.
	assert.Equal(t, "", rows[1]["sku"])
}

func TestAppendRowUnknownSheet(t *testing.T) {
	store, _ := newTestStore(t)
	err := store.AppendRow("Suppliers", Row{"id": "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreError)
}

func TestUpdateRowMergesPatch(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.AppendRow(SheetProducts, Row{
		"id": "p1", "name": "Hammer", "category": "Tools",
		"price": "9.99", "stock": "5", "sku": "H",
		"updatedAt": "2024-01-01T00:00:00Z",
	}))

	// Keys absent from the patch stay; zero-ish values overwrite.
	updated, err := store.UpdateRow(SheetProducts, "p1", Row{"stock": "0", "sku": ""})
	require.NoError(t, err)
	assert.Equal(t, "0", updated["stock"])
	assert.Equal(t, "", updated["sku"])
	assert.Equal(t, "Hammer", updated["name"])
	assert.Equal(t, "9.99", updated["price"])
	assert.NotEqual(t, "2024-01-01T00:00:00Z", updated["updatedAt"])

	// The merge is durable.
	row, err := store.GetRowByID(SheetProducts, "p1")
	require.NoError(t, err)
	assert.Equal(t, "0", row["stock"])
	assert.Equal(t, "Hammer", row["name"])
}

func TestUpdateRowExplicitUpdatedAt(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.AppendRow(SheetProducts, Row{
		"id": "p1", "name": "Hammer", "updatedAt": "2024-01-01T00:00:00Z",
	}))

	updated, err := store.UpdateRow(SheetProducts, "p1", Row{
		"qrCodePath": "/tmp/qr.png",
		"updatedAt":  "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00Z", updated["updatedAt"])
}

func TestUpdateRowNotFound(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Init())

	_, err := store.UpdateRow(SheetProducts, "missing", Row{"name": "x"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteRow(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.AppendRow(SheetCategories, Row{"id": "c1", "name": "Tools"}))
	require.NoError(t, store.AppendRow(SheetCategories, Row{"id": "c2", "name": "Paint"}))

	require.NoError(t, store.DeleteRow(SheetCategories, "c1"))
	rows := store.ReadSheet(SheetCategories)
	require.Len(t, rows, 1)
	assert.Equal(t, "c2", rows[0]["id"])

	err := store.DeleteRow(SheetCategories, "c1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetRowByID(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.AppendRow(SheetStorage, Row{"id": "s1", "name": "Shelf A", "location": "Basement"}))

	row, err := store.GetRowByID(SheetStorage, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Shelf A", row["name"])

	_, err = store.GetRowByID(SheetStorage, "s2")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWriteSheetReplacesContents(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.AppendRow(SheetCategories, Row{"id": "c1", "name": "Tools"}))
	require.NoError(t, store.AppendRow(SheetStorage, Row{"id": "s1", "name": "Shelf A"}))

	require.NoError(t, store.WriteSheet(SheetCategories, []Row{
		{"id": "c9", "name": "Garden"},
	}))

	rows := store.ReadSheet(SheetCategories)
	require.Len(t, rows, 1)
	assert.Equal(t, "c9", rows[0]["id"])

	// Other sheets are untouched by a single-sheet rewrite.
	assert.Len(t, store.ReadSheet(SheetStorage), 1)
}
