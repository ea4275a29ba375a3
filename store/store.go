// Package store defines the persistence contract the document ledger runs
// on. Two backends implement it: a single-tenant local key-value store
// (store/local) and a multi-tenant relational backend (store/postgres).
package store

import (
	"context"
	"errors"

	"github.com/nikhilps/docledger/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// DocType identifies a numbered document collection.
type DocType string

const (
	DocInvoice   DocType = "invoice"
	DocQuotation DocType = "quotation"
	DocReceipt   DocType = "receipt"
	DocContract  DocType = "contract"
)

// Store is the persistence backend for one tenant's ledger. Put operations
// are upserts keyed by id and must be atomic per document: backends that
// normalize line items replace them wholesale inside the same transaction as
// the document row.
type Store interface {
	PutClient(ctx context.Context, c models.Client) error
	GetClient(ctx context.Context, id string) (models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	DeleteClient(ctx context.Context, id string) error

	PutInvoice(ctx context.Context, inv models.Invoice) error
	GetInvoice(ctx context.Context, id string) (models.Invoice, error)
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error

	PutQuotation(ctx context.Context, q models.Quotation) error
	GetQuotation(ctx context.Context, id string) (models.Quotation, error)
	ListQuotations(ctx context.Context) ([]models.Quotation, error)
	DeleteQuotation(ctx context.Context, id string) error

	PutReceipt(ctx context.Context, r models.Receipt) error
	GetReceipt(ctx context.Context, id string) (models.Receipt, error)
	ListReceipts(ctx context.Context) ([]models.Receipt, error)
	DeleteReceipt(ctx context.Context, id string) error

	PutContract(ctx context.Context, c models.Contract) error
	GetContract(ctx context.Context, id string) (models.Contract, error)
	ListContracts(ctx context.Context) ([]models.Contract, error)
	DeleteContract(ctx context.Context, id string) error

	PutTimeEntry(ctx context.Context, e models.TimeEntry) error
	GetTimeEntry(ctx context.Context, id string) (models.TimeEntry, error)
	ListTimeEntries(ctx context.Context) ([]models.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, id string) error

	PutResume(ctx context.Context, r models.Resume) error
	GetResume(ctx context.Context, id string) (models.Resume, error)
	ListResumes(ctx context.Context) ([]models.Resume, error)
	DeleteResume(ctx context.Context, id string) error

	// GetSettings creates the per-tenant defaults on first access.
	GetSettings(ctx context.Context) (models.Settings, error)
	PutSettings(ctx context.Context, s models.Settings) error

	// NextSequence atomically increments the counter for the given document
	// type and returns the value it held before the increment. Assigned
	// values are strictly increasing and never reused.
	NextSequence(ctx context.Context, t DocType) (int, error)

	Close() error
}
