package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"inventoria_backend/pkg/utils"
)

// Sheet names of the three record collections.
const (
	SheetProducts   = "Products"
	SheetCategories = "Categories"
	SheetStorage    = "Storage"
)

// sheetOrder fixes the sheet layout of the workbook.
var sheetOrder = []string{SheetProducts, SheetCategories, SheetStorage}

// sheetHeaders maps each sheet to its column schema. Rows are serialized in
// this column order and read back keyed by these names.
var sheetHeaders = map[string][]string{
	SheetProducts: {
		"id", "name", "category", "price", "stock", "sku",
		"qrCodePath", "barcodePath", "barcodeType",
		"description", "location", "createdAt", "updatedAt",
	},
	SheetCategories: {"id", "name", "createdAt", "updatedAt"},
	SheetStorage:    {"id", "name", "location", "createdAt", "updatedAt"},
}

var (
	// ErrNotFound is returned when a row with the requested id does not exist.
	ErrNotFound = errors.New("requested row not found")

	// ErrStoreError is returned for unexpected workbook I/O failures.
	// It wraps the underlying excelize or filesystem error.
	ErrStoreError = errors.New("sheet store error")
)

// Row is one record of a collection, keyed by column name. Values are the
// raw cell contents; numeric fields are parsed by the repositories.
type Row = map[string]string

// SheetStore persists the three record collections in a single xlsx
// workbook. Every mutation reads the whole workbook, changes one sheet and
// rewrites the file; a single mutex serializes that read-modify-write cycle
// so concurrent mutations cannot clobber each other.
//
// The workbook path is resolved through resolvePath on every operation, so
// the user can repoint the store at a different file at runtime.
type SheetStore struct {
	mu          sync.Mutex
	resolvePath func() string
}

// NewSheetStore creates a store over the workbook returned by resolvePath.
func NewSheetStore(resolvePath func() string) *SheetStore {
	return &SheetStore{resolvePath: resolvePath}
}

// Init creates the workbook with headed, empty sheets if it does not exist.
func (s *SheetStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.resolvePath()
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return s.saveAll(path, map[string][]Row{})
}

// ReadSheet returns every row of the named sheet. It fails soft: a missing
// workbook is created empty and a missing sheet or read failure is logged
// and yields an empty result, never an error.
func (s *SheetStore) ReadSheet(name string) []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readSheet(name)
}

// WriteSheet replaces the entire contents of the named sheet, leaving the
// other sheets untouched.
func (s *SheetStore) WriteSheet(name string, rows []Row) error {
	if _, ok := sheetHeaders[name]; !ok {
		return fmt.Errorf("%w: unknown sheet %q", ErrStoreError, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.resolvePath()
	all := s.readAll()
	all[name] = rows
	return s.saveAll(path, all)
}

// AppendRow adds one row to the end of the named sheet.
func (s *SheetStore) AppendRow(name string, row Row) error {
	if _, ok := sheetHeaders[name]; !ok {
		return fmt.Errorf("%w: unknown sheet %q", ErrStoreError, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.resolvePath()
	all := s.readAll()
	all[name] = append(all[name], row)
	return s.saveAll(path, all)
}

// UpdateRow merges patch onto the row with the given id. Keys absent from
// patch are left untouched; keys present with empty or zero values
// overwrite. updatedAt is stamped unless the patch supplies one explicitly.
// Returns the updated row, or ErrNotFound.
func (s *SheetStore) UpdateRow(name, id string, patch Row) (Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.resolvePath()
	all := s.readAll()

	idx := indexByID(all[name], id)
	if idx < 0 {
		utils.LogWarn(nil, fmt.Sprintf("Row %s not found in sheet %s, update skipped", id, name))
		return nil, fmt.Errorf("%w: id %s in sheet %s", ErrNotFound, id, name)
	}

	row := all[name][idx]
	for k, v := range patch {
		row[k] = v
	}
	if _, ok := patch["updatedAt"]; !ok {
		row["updatedAt"] = Now()
	}

	if err := s.saveAll(path, all); err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteRow removes the row with the given id, or returns ErrNotFound.
func (s *SheetStore) DeleteRow(name, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.resolvePath()
	all := s.readAll()

	idx := indexByID(all[name], id)
	if idx < 0 {
		utils.LogWarn(nil, fmt.Sprintf("Row %s not found in sheet %s, delete skipped", id, name))
		return fmt.Errorf("%w: id %s in sheet %s", ErrNotFound, id, name)
	}

	all[name] = append(all[name][:idx], all[name][idx+1:]...)
	return s.saveAll(path, all)
}

// GetRowByID returns the row with the given id, or ErrNotFound.
func (s *SheetStore) GetRowByID(name, id string) (Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.readSheet(name)
	idx := indexByID(rows, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: id %s in sheet %s", ErrNotFound, id, name)
	}
	return rows[idx], nil
}

// Now returns the timestamp format stored in createdAt/updatedAt cells.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// --- internals (callers must hold s.mu) ---

func indexByID(rows []Row, id string) int {
	for i, row := range rows {
		if row["id"] == id {
			return i
		}
	}
	return -1
}

// readSheet reads one sheet fail-soft, initializing the workbook if missing.
func (s *SheetStore) readSheet(name string) []Row {
	if _, ok := sheetHeaders[name]; !ok {
		utils.LogWarn(nil, fmt.Sprintf("Sheet '%s' does not exist", name))
		return []Row{}
	}
	return s.readAll()[name]
}

// readAll loads every known sheet from the workbook. A missing workbook is
// created with empty sheets; unreadable sheets are logged and come back empty.
func (s *SheetStore) readAll() map[string][]Row {
	all := map[string][]Row{}
	for _, name := range sheetOrder {
		all[name] = []Row{}
	}

	path := s.resolvePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.saveAll(path, all); err != nil {
			utils.LogError(err, "Failed to initialize workbook "+path)
		}
		return all
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		utils.LogError(err, "Failed to open workbook "+path)
		return all
	}
	defer f.Close()

	for _, name := range sheetOrder {
		if idx, _ := f.GetSheetIndex(name); idx < 0 {
			utils.LogWarn(nil, fmt.Sprintf("Sheet '%s' missing from workbook", name))
			continue
		}
		cells, err := f.GetRows(name)
		if err != nil {
			utils.LogError(err, "Failed to read sheet "+name)
			continue
		}
		if len(cells) < 2 {
			continue // header only, or blank sheet
		}
		header := cells[0]
		rows := make([]Row, 0, len(cells)-1)
		for _, line := range cells[1:] {
			row := Row{}
			for i, col := range header {
				if i < len(line) {
					row[col] = line[i]
				} else {
					row[col] = "" // excelize trims trailing empty cells
				}
			}
			rows = append(rows, row)
		}
		all[name] = rows
	}
	return all
}

// saveAll serializes every collection into a fresh workbook and writes it to
// path, replacing the previous file.
func (s *SheetStore) saveAll(path string, all map[string][]Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: creating workbook directory: %v", ErrStoreError, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range sheetOrder {
		if i == 0 {
			// Reuse the default sheet so the workbook never ends up empty.
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("%w: naming sheet %s: %v", ErrStoreError, name, err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return fmt.Errorf("%w: creating sheet %s: %v", ErrStoreError, name, err)
			}
		}

		header := sheetHeaders[name]
		if err := setRow(f, name, 1, header); err != nil {
			return err
		}
		for j, row := range all[name] {
			line := make([]string, len(header))
			for k, col := range header {
				line[k] = row[col]
			}
			if err := setRow(f, name, j+2, line); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: saving workbook %s: %v", ErrStoreError, path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("%w: addressing row %d: %v", ErrStoreError, rowNum, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("%w: writing row %d of %s: %v", ErrStoreError, rowNum, sheet, err)
	}
	return nil
}
