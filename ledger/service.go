// Package ledger is the document ledger: it creates, updates, retrieves,
// lists, and deletes business documents, keeps derived totals consistent
// with their line items, and assigns sequential human-readable numbers.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
)

// Service runs the ledger on top of a storage backend.
type Service struct {
	store store.Store
	now   func() time.Time
}

func New(s store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

// FormatNumber renders a document number: prefix plus the sequence
// zero-padded to four digits. Sequences past 9999 simply grow wider.
func FormatNumber(prefix string, seq int) string {
	return fmt.Sprintf("%s%04d", prefix, seq)
}

// PeekNumber is a pure read of the number the given document type would be
// assigned next. It makes no reservation; the number actually assigned at
// save time comes from the atomic sequence and may differ.
func (s *Service) PeekNumber(ctx context.Context, t store.DocType) (string, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return "", err
	}
	switch t {
	case store.DocInvoice:
		return FormatNumber(settings.InvoicePrefix, settings.NextInvoiceNumber), nil
	case store.DocQuotation:
		return FormatNumber(settings.QuotationPrefix, settings.NextQuotationNumber), nil
	case store.DocReceipt:
		return FormatNumber(settings.ReceiptPrefix, settings.NextReceiptNumber), nil
	case store.DocContract:
		return FormatNumber(settings.ContractPrefix, settings.NextContractNumber), nil
	default:
		return "", &ValidationError{Msg: fmt.Sprintf("unknown document type %q", t)}
	}
}

// assignNumber draws the next sequence value and formats it with the
// type's prefix. The increment is atomic inside the store, so two
// concurrent saves never share a number.
func (s *Service) assignNumber(ctx context.Context, t store.DocType) (string, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return "", err
	}
	seq, err := s.store.NextSequence(ctx, t)
	if err != nil {
		return "", &StorageError{Op: "advancing number sequence", Err: err}
	}
	var prefix string
	switch t {
	case store.DocInvoice:
		prefix = settings.InvoicePrefix
	case store.DocQuotation:
		prefix = settings.QuotationPrefix
	case store.DocReceipt:
		prefix = settings.ReceiptPrefix
	case store.DocContract:
		prefix = settings.ContractPrefix
	}
	return FormatNumber(prefix, seq), nil
}

// resolveClient attaches a value copy of the referenced client so responses
// and the local store carry the snapshot. A dangling reference is left as-is;
// the document keeps whatever snapshot it already had.
func (s *Service) resolveClient(ctx context.Context, clientID *string, snapshot **models.Client) error {
	if *clientID == "" && *snapshot != nil {
		*clientID = (*snapshot).ID
	}
	if *clientID == "" {
		return &ValidationError{Msg: "client is required"}
	}
	c, err := s.store.GetClient(ctx, *clientID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return &StorageError{Op: "resolving client", Err: err}
	}
	*snapshot = &c
	return nil
}

func (s *Service) stamp(createdAt *time.Time, updatedAt *time.Time) {
	now := s.now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

// --- clients ---

func (s *Service) SaveClient(ctx context.Context, c *models.Client) error {
	if msg := c.Validate(); msg != "" {
		return &ValidationError{Msg: msg}
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.stamp(&c.CreatedAt, &c.UpdatedAt)
	if err := s.store.PutClient(ctx, *c); err != nil {
		return &StorageError{Op: "saving client", Err: err}
	}
	return nil
}

func (s *Service) Client(ctx context.Context, id string) (models.Client, error) {
	c, err := s.store.GetClient(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return c, &NotFoundError{Kind: "client", ID: id}
	}
	if err != nil {
		return c, &StorageError{Op: "fetching client", Err: err}
	}
	return c, nil
}

func (s *Service) Clients(ctx context.Context) ([]models.Client, error) {
	clients, err := s.store.ListClients(ctx)
	if err != nil {
		return nil, &StorageError{Op: "listing clients", Err: err}
	}
	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].CreatedAt.After(clients[j].CreatedAt)
	})
	return clients, nil
}

// DeleteClient refuses to delete a client still referenced by invoices
// unless force is set.
func (s *Service) DeleteClient(ctx context.Context, id string, force bool) error {
	if !force {
		invoices, err := s.store.ListInvoices(ctx)
		if err != nil {
			return &StorageError{Op: "checking client references", Err: err}
		}
		referenced := 0
		for _, inv := range invoices {
			if inv.ClientID == id {
				referenced++
			}
		}
		if referenced > 0 {
			return &ClientInUseError{ID: id, Invoices: referenced}
		}
	}
	err := s.store.DeleteClient(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Kind: "client", ID: id}
	}
	if err != nil {
		return &StorageError{Op: "deleting client", Err: err}
	}
	return nil
}

// --- invoices ---

func (s *Service) SaveInvoice(ctx context.Context, inv *models.Invoice) error {
	if err := s.resolveClient(ctx, &inv.ClientID, &inv.Client); err != nil {
		return err
	}
	inv.Recalculate(inv.Items)
	if msg := inv.Validate(); msg != "" {
		return &ValidationError{Msg: msg}
	}
	if err := s.applyDefaults(ctx, &inv.Currency); err != nil {
		return err
	}
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if inv.Number == "" {
		number, err := s.assignNumber(ctx, store.DocInvoice)
		if err != nil {
			return err
		}
		inv.Number = number
	}
	s.stamp(&inv.CreatedAt, &inv.UpdatedAt)
	if err := s.store.PutInvoice(ctx, *inv); err != nil {
		return &StorageError{Op: "saving invoice", Err: err}
	}
	return nil
}

func (s *Service) Invoice(ctx context.Context, id string) (models.Invoice, error) {
	inv, err := s.store.GetInvoice(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return inv, &NotFoundError{Kind: "invoice", ID: id}
	}
	if err != nil {
		return inv, &StorageError{Op: "fetching invoice", Err: err}
	}
	return inv, nil
}

func (s *Service) Invoices(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := s.store.ListInvoices(ctx)
	if err != nil {
		return nil, &StorageError{Op: "listing invoices", Err: err}
	}
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	return invoices, nil
}

func (s *Service) DeleteInvoice(ctx context.Context, id string) error {
	err := s.store.DeleteInvoice(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Kind: "invoice", ID: id}
	}
	if err != nil {
		return &StorageError{Op: "deleting invoice", Err: err}
	}
	return nil
}

// --- quotations ---

func (s *Service) SaveQuotation(ctx context.Context, q *models.Quotation) error {
	if err := s.resolveClient(ctx, &q.ClientID, &q.Client); err != nil {
		return err
	}
	q.Recalculate(q.Items)
	if msg := q.Validate(); msg != "" {
		return &ValidationError{Msg: msg}
	}
	if err := s.applyDefaults(ctx, &q.Currency); err != nil {
		return err
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Number == "" {
		number, err := s.assignNumber(ctx, store.DocQuotation)
		if err != nil {
			return err
		}
		q.Number = number
	}
	s.stamp(&q.CreatedAt, &q.UpdatedAt)
	if err := s.store.PutQuotation(ctx, *q); err != nil {
		return &StorageError{Op: "saving quotation", Err: err}
	}
	return nil
}

func (s *Service) Quotation(ctx context.Context, id string) (models.Quotation, error) {
	q, err := s.store.GetQuotation(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return q, &NotFoundError{Kind: "quotation", ID: id}
	}
	if err != nil {
		return q, &StorageError{Op: "fetching quotation", Err: err}
	}
	return q, nil
}

func (s *Service) Quotations(ctx context.Context) ([]models.Quotation, error) {
	quotations, err := s.store.ListQuotations(ctx)
	if err != nil {
		return nil, &StorageError{Op: "listing quotations", Err: err}
	}
	sort.SliceStable(quotations, func(i, j int) bool {
		return quotations[i].CreatedAt.After(quotations[j].CreatedAt)
	})
	return quotations, nil
}

func (s *Service) DeleteQuotation(ctx context.Context, id string) error {
	err := s.store.DeleteQuotation(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Kind: "quotation", ID: id}
	}
	if err != nil {
		return &StorageError{Op: "deleting quotation", Err: err}
	}
	return nil
}

// --- receipts ---

func (s *Service) SaveReceipt(ctx context.Context, r *models.Receipt) error {
	if err := s.resolveClient(ctx, &r.ClientID, &r.Client); err != nil {
		return err
	}
	// Totals are derived only when the receipt carries its own items; a
	// receipt referencing an invoice keeps the totals copied from it.
	if len(r.Items) > 0 {
		r.Recalculate(r.Items)
	}
	if msg := r.Validate(); msg != "" {
		return &ValidationError{Msg: msg}
	}
	if err := s.applyDefaults(ctx, &r.Currency); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Number == "" {
		number, err := s.assignNumber(ctx, store.DocReceipt)
		if err != nil {
			return err
		}
		r.Number = number
	}
	s.stamp(&r.CreatedAt, &r.UpdatedAt)
	if err := s.store.PutReceipt(ctx, *r); err != nil {
		return &StorageError{Op: "saving receipt", Err: err}
	}
	return nil
}

func (s *Service) Receipt(ctx context.Context, id string) (models.Receipt, error) {
	r, err := s.store.GetReceipt(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return r, &NotFoundError{Kind: "receipt", ID: id}
	}
	if err != nil {
		return r, &StorageError{Op: "fetching receipt", Err: err}
	}
	return r, nil
}

func (s *Service) Receipts(ctx context.Context) ([]models.Receipt, error) {
	receipts, err := s.store.ListReceipts(ctx)
	if err != nil {
		return nil, &StorageError{Op: "listing receipts", Err: err}
	}
	sort.SliceStable(receipts, func(i, j int) bool {
		return receipts[i].CreatedAt.After(receipts[j].CreatedAt)
	})
	return receipts, nil
}

func (s *Service) DeleteReceipt(ctx context.Context, id string) error {
	err := s.store.DeleteReceipt(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Kind: "receipt", ID: id}
	}
	if err != nil {
		return &StorageError{Op: "deleting receipt", Err: err}
	}
	return nil
}

// --- contracts ---

func (s *Service) SaveContract(ctx context.Context, c *models.Contract) error {
	if err := s.resolveClient(ctx, &c.ClientID, &c.Client); err != nil {
		return err
	}
	if msg := c.Validate(); msg != "" {
		return &ValidationError{Msg: msg}
	}
	if err := s.applyDefaults(ctx, &c.Currency); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Number == "" {
		number, err := s.assignNumber(ctx, store.DocContract)
		if err != nil {
			return err
		}
		c.Number = number
	}
	s.stamp(&c.CreatedAt, &c.UpdatedAt)
	if err := s.store.PutContract(ctx, *c); err != nil {
		return &StorageError{Op: "saving contract", Err: err}
	}
	return nil
}

func (s *Service) Contract(ctx context.Context, id string) (models.Contract, error) {
	c, err := s.store.GetContract(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return c, &NotFoundError{Kind: "contract", ID: id}
	}
	if err != nil {
		return c, &StorageError{Op: "fetching contract", Err: err}
	}
	return c, nil
}

func (s *Service) Contracts(ctx context.Context) ([]models.Contract, error) {
	contracts, err := s.store.ListContracts(ctx)
	if err != nil {
		return nil, &StorageError{Op: "listing contracts", Err: err}
	}
	sort.SliceStable(contracts, func(i, j int) bool {
		return contracts[i].CreatedAt.After(contracts[j].CreatedAt)
	})
	return contracts, nil
}

func (s *Service) DeleteContract(ctx context.Context, id string) error {
	err := s.store.DeleteContract(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Kind: "contract", ID: id}
	}
	if err != nil {
		return &StorageError{Op: "deleting contract", Err: err}
	}
	return nil
}

// --- time entries ---

func (s *Service) SaveTimeEntry(ctx context.Context, e *models.TimeEntry) error {
	if msg := e.Validate(); msg != "" {
		return &ValidationError{Msg: msg}
	}
	if e.ClientName == "" {
		if c, err := s.store.GetClient(ctx, e.ClientID); err == nil {
			e.ClientName = c.Name
		}
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	s.stamp(&e.CreatedAt, &e.UpdatedAt)
	if err := s.store.PutTimeEntry(ctx, *e); err != nil {
		return &StorageError{Op: "saving time entry", Err: err}
	}
	return nil
}

func (s *Service) TimeEntry(ctx context.Context, id string) (models.TimeEntry, error) {
	e, err := s.store.GetTimeEntry(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return e, &NotFoundError{Kind: "time entry", ID: id}
	}
	if err != nil {
		return e, &StorageError{Op: "fetching time entry", Err: err}
	}
	return e, nil
}

func (s *Service) TimeEntries(ctx context.Context) ([]models.TimeEntry, error) {
	entries, err := s.store.ListTimeEntries(ctx)
	if err != nil {
		return nil, &StorageError{Op: "listing time entries", Err: err}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (s *Service) DeleteTimeEntry(ctx context.Context, id string) error {
	err := s.store.DeleteTimeEntry(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Kind: "time entry", ID: id}
	}
	if err != nil {
		return &StorageError{Op: "deleting time entry", Err: err}
	}
	return nil
}

// --- resumes ---

func (s *Service) SaveResume(ctx context.Context, r *models.Resume) error {
	if msg := r.Validate(); msg != "" {
		return &ValidationError{Msg: msg}
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.stamp(&r.CreatedAt, &r.UpdatedAt)
	if err := s.store.PutResume(ctx, *r); err != nil {
		return &StorageError{Op: "saving resume", Err: err}
	}
	return nil
}

func (s *Service) Resume(ctx context.Context, id string) (models.Resume, error) {
	r, err := s.store.GetResume(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return r, &NotFoundError{Kind: "resume", ID: id}
	}
	if err != nil {
		return r, &StorageError{Op: "fetching resume", Err: err}
	}
	return r, nil
}

func (s *Service) Resumes(ctx context.Context) ([]models.Resume, error) {
	resumes, err := s.store.ListResumes(ctx)
	if err != nil {
		return nil, &StorageError{Op: "listing resumes", Err: err}
	}
	sort.SliceStable(resumes, func(i, j int) bool {
		return resumes[i].CreatedAt.After(resumes[j].CreatedAt)
	})
	return resumes, nil
}

func (s *Service) DeleteResume(ctx context.Context, id string) error {
	err := s.store.DeleteResume(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Kind: "resume", ID: id}
	}
	if err != nil {
		return &StorageError{Op: "deleting resume", Err: err}
	}
	return nil
}

// --- settings ---

func (s *Service) Settings(ctx context.Context) (models.Settings, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return settings, &StorageError{Op: "fetching settings", Err: err}
	}
	return settings, nil
}

func (s *Service) SaveSettings(ctx context.Context, settings *models.Settings) error {
	if msg := settings.Validate(); msg != "" {
		return &ValidationError{Msg: msg}
	}
	settings.UpdatedAt = s.now()
	if err := s.store.PutSettings(ctx, *settings); err != nil {
		return &StorageError{Op: "saving settings", Err: err}
	}
	return nil
}

// applyDefaults fills the document currency from settings when unset.
func (s *Service) applyDefaults(ctx context.Context, currency *string) error {
	if *currency != "" {
		return nil
	}
	settings, err := s.Settings(ctx)
	if err != nil {
		return err
	}
	*currency = settings.DefaultCurrency
	return nil
}
