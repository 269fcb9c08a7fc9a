// Package store owns the authoritative in-memory copy of the four POS
// tables for the lifetime of the process. Reads hand out defensive copies;
// the only mutation path replaces a whole table and write-through flushes
// that one sheet to the workbook.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"go-hardware-pos/internal/model"
	"go-hardware-pos/pkg/workbook"
)

// Store is created once in main and injected into every service. No
// package-level cache exists; ownership and initialization order are
// explicit at the composition root.
type Store struct {
	path string

	inv       table[model.InventoryItem]
	sales     table[model.SaleLine]
	purchases table[model.PurchaseRecord]
	summaries table[model.DailySummary]
}

func New(path string) *Store {
	return &Store{
		path:      path,
		inv:       table[model.InventoryItem]{sheet: SheetInventory, header: inventoryHeader, encode: encodeItem, decode: decodeItem},
		sales:     table[model.SaleLine]{sheet: SheetSales, header: salesHeader, encode: encodeSaleLine, decode: decodeSaleLine},
		purchases: table[model.PurchaseRecord]{sheet: SheetPurchases, header: purchasesHeader, encode: encodePurchase, decode: decodePurchase},
		summaries: table[model.DailySummary]{sheet: SheetDailySummary, header: summaryHeader, encode: encodeSummary, decode: decodeSummary},
	}
}

// LoadAll warms every table from the workbook. A missing file is not an
// error: first run starts with empty tables and the workbook appears on
// the first flush (or via init).
func (s *Store) LoadAll() error {
	if err := s.inv.loadNow(s.path); err != nil {
		return err
	}
	if err := s.sales.loadNow(s.path); err != nil {
		return err
	}
	if err := s.purchases.loadNow(s.path); err != nil {
		return err
	}
	return s.summaries.loadNow(s.path)
}

// Inventory returns a copy of the inventory table. Mutating the returned
// slice never touches the cache; changes land only via SetInventory or
// MutateInventory.
func (s *Store) Inventory() ([]model.InventoryItem, error) {
	return s.inv.snapshot(s.path)
}

// SetInventory replaces the inventory table wholesale and flushes it.
func (s *Store) SetInventory(items []model.InventoryItem) error {
	return s.inv.replace(s.path, items)
}

// MutateInventory runs fn on a working copy of the inventory table under
// the table's lock, then installs and flushes fn's result. If fn errors,
// neither cache nor disk changes. This serializes the whole
// read-modify-write sequence, which the whole-table-replace model needs
// once requests run concurrently.
func (s *Store) MutateInventory(fn func([]model.InventoryItem) ([]model.InventoryItem, error)) error {
	return s.inv.mutate(s.path, fn)
}

func (s *Store) Sales() ([]model.SaleLine, error) {
	return s.sales.snapshot(s.path)
}

// AppendSales appends ledger lines; the Sales table is append-only.
func (s *Store) AppendSales(lines []model.SaleLine) error {
	return s.sales.append(s.path, lines...)
}

func (s *Store) Purchases() ([]model.PurchaseRecord, error) {
	return s.purchases.snapshot(s.path)
}

// AppendPurchase appends one ledger row; the Purchases table is append-only.
func (s *Store) AppendPurchase(rec model.PurchaseRecord) error {
	return s.purchases.append(s.path, rec)
}

func (s *Store) DailySummaries() ([]model.DailySummary, error) {
	return s.summaries.snapshot(s.path)
}

// MutateDailySummaries is the write path for the Daily Summary table; the
// upsert-by-date rule lives in the service on top of it.
func (s *Store) MutateDailySummaries(fn func([]model.DailySummary) ([]model.DailySummary, error)) error {
	return s.summaries.mutate(s.path, fn)
}

// table is one cached sheet plus its codec. The mutex serializes every
// read-modify-cache-flush sequence for that table; different tables do not
// block each other.
type table[T any] struct {
	mu     sync.Mutex
	rows   []T
	loaded bool

	sheet  string
	header []string
	encode func(T) []interface{}
	decode func([]string) (T, error)
}

// ensureLoaded reads through to the workbook on first access. Caller holds mu.
func (t *table[T]) ensureLoaded(path string) error {
	if t.loaded {
		return nil
	}

	raw, err := workbook.Load(path, t.sheet)
	if errors.Is(err, fs.ErrNotExist) {
		t.rows = nil
		t.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("load sheet %q: %w", t.sheet, err)
	}

	rows := make([]T, 0, len(raw))
	for i, r := range raw {
		v, err := t.decode(r)
		if err != nil {
			return fmt.Errorf("sheet %q row %d: %w", t.sheet, i+2, err)
		}
		rows = append(rows, v)
	}
	t.rows = rows
	t.loaded = true
	return nil
}

func (t *table[T]) loadNow(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ensureLoaded(path)
}

func (t *table[T]) snapshot(path string) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.ensureLoaded(path); err != nil {
		return nil, err
	}
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out, nil
}

func (t *table[T]) replace(path string, rows []T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Cache first, flush second: on flush failure memory is ahead of disk
	// until the next successful flush. Accepted single-writer tradeoff.
	t.rows = make([]T, len(rows))
	copy(t.rows, rows)
	t.loaded = true
	return t.flush(path)
}

func (t *table[T]) append(path string, rows ...T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.ensureLoaded(path); err != nil {
		return err
	}
	t.rows = append(t.rows, rows...)
	return t.flush(path)
}

func (t *table[T]) mutate(path string, fn func([]T) ([]T, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.ensureLoaded(path); err != nil {
		return err
	}

	working := make([]T, len(t.rows))
	copy(working, t.rows)
	updated, err := fn(working)
	if err != nil {
		return err
	}
	t.rows = updated
	return t.flush(path)
}

// flush rewrites this table's sheet. Caller holds mu.
func (t *table[T]) flush(path string) error {
	rows := make([][]interface{}, len(t.rows))
	for i, r := range t.rows {
		rows[i] = t.encode(r)
	}
	return workbook.ReplaceSheet(path, workbook.Sheet{Name: t.sheet, Header: t.header, Rows: rows})
}
