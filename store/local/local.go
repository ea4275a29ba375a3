// Package local implements the single-tenant local backend: one JSON array
// per fixed collection key, stored in a sqlite key-value table. Layout and
// keys mirror the browser-local store this ledger originally synced from, so
// export files and transfers see identical field values on both backends.
package local

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
)

// Fixed collection keys.
const (
	keyClients     = "clients"
	keyInvoices    = "invoices"
	keyQuotations  = "quotations"
	keyReceipts    = "receipts"
	keyContracts   = "contracts"
	keyTimeEntries = "time_entries"
	keyResumes     = "resumes"
	keySettings    = "invoice_settings"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Store is the local backend. Access is serialized by a single mutex; the
// store has exactly one writer (the local process), so no finer locking is
// needed.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

var _ store.Store = (*Store)(nil)

// New prepares the key-value schema and returns the store.
func New(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating kv table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) read(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) write(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, key, value)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// loadList decodes the collection stored under key; a missing key is an
// empty collection.
func loadList[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, err := s.read(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decoding collection %q: %w", key, err)
	}
	return list, nil
}

func storeList[T any](ctx context.Context, s *Store, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding collection %q: %w", key, err)
	}
	return s.write(ctx, key, raw)
}

// upsert replaces the element with the same id or appends.
func upsert[T any](ctx context.Context, s *Store, key string, item T, idOf func(T) string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := loadList[T](ctx, s, key)
	if err != nil {
		return err
	}
	replaced := false
	for i := range list {
		if idOf(list[i]) == idOf(item) {
			list[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, item)
	}
	return storeList(ctx, s, key, list)
}

func getByID[T any](ctx context.Context, s *Store, key, id string, idOf func(T) string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	list, err := loadList[T](ctx, s, key)
	if err != nil {
		return zero, err
	}
	for i := range list {
		if idOf(list[i]) == id {
			return list[i], nil
		}
	}
	return zero, store.ErrNotFound
}

func deleteByID[T any](ctx context.Context, s *Store, key, id string, idOf func(T) string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := loadList[T](ctx, s, key)
	if err != nil {
		return err
	}
	for i := range list {
		if idOf(list[i]) == id {
			list = append(list[:i], list[i+1:]...)
			return storeList(ctx, s, key, list)
		}
	}
	return store.ErrNotFound
}

func listAll[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadList[T](ctx, s, key)
}

func clientID(c models.Client) string       { return c.ID }
func invoiceID(i models.Invoice) string     { return i.ID }
func quotationID(q models.Quotation) string { return q.ID }
func receiptID(r models.Receipt) string     { return r.ID }
func contractID(c models.Contract) string   { return c.ID }
func timeEntryID(e models.TimeEntry) string { return e.ID }
func resumeID(r models.Resume) string       { return r.ID }

func (s *Store) PutClient(ctx context.Context, c models.Client) error {
	return upsert(ctx, s, keyClients, c, clientID)
}

func (s *Store) GetClient(ctx context.Context, id string) (models.Client, error) {
	return getByID(ctx, s, keyClients, id, clientID)
}

func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	return listAll[models.Client](ctx, s, keyClients)
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	return deleteByID(ctx, s, keyClients, id, clientID)
}

func (s *Store) PutInvoice(ctx context.Context, inv models.Invoice) error {
	return upsert(ctx, s, keyInvoices, inv, invoiceID)
}

func (s *Store) GetInvoice(ctx context.Context, id string) (models.Invoice, error) {
	return getByID(ctx, s, keyInvoices, id, invoiceID)
}

func (s *Store) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	return listAll[models.Invoice](ctx, s, keyInvoices)
}

func (s *Store) DeleteInvoice(ctx context.Context, id string) error {
	return deleteByID(ctx, s, keyInvoices, id, invoiceID)
}

func (s *Store) PutQuotation(ctx context.Context, q models.Quotation) error {
	return upsert(ctx, s, keyQuotations, q, quotationID)
}

func (s *Store) GetQuotation(ctx context.Context, id string) (models.Quotation, error) {
	return getByID(ctx, s, keyQuotations, id, quotationID)
}

func (s *Store) ListQuotations(ctx context.Context) ([]models.Quotation, error) {
	return listAll[models.Quotation](ctx, s, keyQuotations)
}

func (s *Store) DeleteQuotation(ctx context.Context, id string) error {
	return deleteByID(ctx, s, keyQuotations, id, quotationID)
}

func (s *Store) PutReceipt(ctx context.Context, r models.Receipt) error {
	return upsert(ctx, s, keyReceipts, r, receiptID)
}

func (s *Store) GetReceipt(ctx context.Context, id string) (models.Receipt, error) {
	return getByID(ctx, s, keyReceipts, id, receiptID)
}

func (s *Store) ListReceipts(ctx context.Context) ([]models.Receipt, error) {
	return listAll[models.Receipt](ctx, s, keyReceipts)
}

func (s *Store) DeleteReceipt(ctx context.Context, id string) error {
	return deleteByID(ctx, s, keyReceipts, id, receiptID)
}

func (s *Store) PutContract(ctx context.Context, c models.Contract) error {
	return upsert(ctx, s, keyContracts, c, contractID)
}

func (s *Store) GetContract(ctx context.Context, id string) (models.Contract, error) {
	return getByID(ctx, s, keyContracts, id, contractID)
}

func (s *Store) ListContracts(ctx context.Context) ([]models.Contract, error) {
	return listAll[models.Contract](ctx, s, keyContracts)
}

func (s *Store) DeleteContract(ctx context.Context, id string) error {
	return deleteByID(ctx, s, keyContracts, id, contractID)
}

func (s *Store) PutTimeEntry(ctx context.Context, e models.TimeEntry) error {
	return upsert(ctx, s, keyTimeEntries, e, timeEntryID)
}

func (s *Store) GetTimeEntry(ctx context.Context, id string) (models.TimeEntry, error) {
	return getByID(ctx, s, keyTimeEntries, id, timeEntryID)
}

func (s *Store) ListTimeEntries(ctx context.Context) ([]models.TimeEntry, error) {
	return listAll[models.TimeEntry](ctx, s, keyTimeEntries)
}

func (s *Store) DeleteTimeEntry(ctx context.Context, id string) error {
	return deleteByID(ctx, s, keyTimeEntries, id, timeEntryID)
}

func (s *Store) PutResume(ctx context.Context, r models.Resume) error {
	return upsert(ctx, s, keyResumes, r, resumeID)
}

func (s *Store) GetResume(ctx context.Context, id string) (models.Resume, error) {
	return getByID(ctx, s, keyResumes, id, resumeID)
}

func (s *Store) ListResumes(ctx context.Context) ([]models.Resume, error) {
	return listAll[models.Resume](ctx, s, keyResumes)
}

func (s *Store) DeleteResume(ctx context.Context, id string) error {
	return deleteByID(ctx, s, keyResumes, id, resumeID)
}

func (s *Store) GetSettings(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settingsLocked(ctx)
}

// settingsLocked reads the settings, creating the defaults on first access.
// Caller holds s.mu.
func (s *Store) settingsLocked(ctx context.Context) (models.Settings, error) {
	raw, err := s.read(ctx, keySettings)
	if err != nil {
		return models.Settings{}, err
	}
	if raw == nil {
		defaults := models.DefaultSettings()
		if err := s.writeSettingsLocked(ctx, defaults); err != nil {
			return models.Settings{}, err
		}
		return defaults, nil
	}
	var settings models.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return settings, nil
}

func (s *Store) writeSettingsLocked(ctx context.Context, settings models.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return s.write(ctx, keySettings, raw)
}

func (s *Store) PutSettings(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Counters only move forward, even if the caller submits stale ones.
	current, err := s.settingsLocked(ctx)
	if err != nil {
		return err
	}
	settings.NextInvoiceNumber = max(settings.NextInvoiceNumber, current.NextInvoiceNumber)
	settings.NextQuotationNumber = max(settings.NextQuotationNumber, current.NextQuotationNumber)
	settings.NextReceiptNumber = max(settings.NextReceiptNumber, current.NextReceiptNumber)
	settings.NextContractNumber = max(settings.NextContractNumber, current.NextContractNumber)
	return s.writeSettingsLocked(ctx, settings)
}

func (s *Store) NextSequence(ctx context.Context, t store.DocType) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.settingsLocked(ctx)
	if err != nil {
		return 0, err
	}

	var assigned int
	switch t {
	case store.DocInvoice:
		assigned = settings.NextInvoiceNumber
		settings.NextInvoiceNumber++
	case store.DocQuotation:
		assigned = settings.NextQuotationNumber
		settings.NextQuotationNumber++
	case store.DocReceipt:
		assigned = settings.NextReceiptNumber
		settings.NextReceiptNumber++
	case store.DocContract:
		assigned = settings.NextContractNumber
		settings.NextContractNumber++
	default:
		return 0, fmt.Errorf("unknown document type %q", t)
	}

	if err := s.writeSettingsLocked(ctx, settings); err != nil {
		return 0, err
	}
	return assigned, nil
}
