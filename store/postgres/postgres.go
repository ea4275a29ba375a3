// Package postgres implements the remote, multi-tenant backend. Documents
// are normalized: clients are referenced by id and resolved on read, line
// items live in their own table and are replaced wholesale inside the same
// transaction as the parent document.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
)

// Store is the remote backend, scoped to a single tenant (owner).
type Store struct {
	db    *sql.DB
	owner string
}

var _ store.Store = (*Store)(nil)

// New returns a store scoped to the given owner. All queries filter on the
// owner column; rows from other tenants are invisible.
func New(db *sql.DB, owner string) *Store {
	return &Store{db: db, owner: owner}
}

func (s *Store) Close() error { return s.db.Close() }

// --- clients ---

const clientColumns = "id, name, email, phone, address, city, state, zip_code, country, tax_id, created_at, updated_at"

func scanClient(scanner interface{ Scan(...any) error }) (models.Client, error) {
	var c models.Client
	err := scanner.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City,
		&c.State, &c.ZipCode, &c.Country, &c.TaxID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *Store) PutClient(ctx context.Context, c models.Client) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO clients
		(id, owner, name, email, phone, address, city, state, zip_code, country, tax_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name, email = excluded.email, phone = excluded.phone,
			address = excluded.address, city = excluded.city, state = excluded.state,
			zip_code = excluded.zip_code, country = excluded.country, tax_id = excluded.tax_id,
			updated_at = excluded.updated_at`,
		c.ID, s.owner, c.Name, c.Email, c.Phone, c.Address, c.City, c.State,
		c.ZipCode, c.Country, c.TaxID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting client: %w", err)
	}
	return nil
}

func (s *Store) GetClient(ctx context.Context, id string) (models.Client, error) {
	c, err := scanClient(s.db.QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE owner = $1 AND id = $2", s.owner, id))
	if err == sql.ErrNoRows {
		return models.Client{}, store.ErrNotFound
	}
	if err != nil {
		return models.Client{}, fmt.Errorf("fetching client: %w", err)
	}
	return c, nil
}

func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE owner = $1 ORDER BY created_at DESC", s.owner)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	return s.deleteRow(ctx, "clients", id)
}

// clientsByID fetches every client for the tenant, keyed by id, for
// denormalizing list responses in one query.
func (s *Store) clientsByID(ctx context.Context) (map[string]models.Client, error) {
	clients, err := s.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}
	return byID, nil
}

// resolveClient returns a value copy for embedding, or nil when the client
// has been deleted out from under the document.
func (s *Store) resolveClient(ctx context.Context, id string) (*models.Client, error) {
	if id == "" {
		return nil, nil
	}
	c, err := s.GetClient(ctx, id)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// --- line items ---

// replaceItems deletes and reinserts the document's line items. Runs inside
// the caller's transaction so a failed save never leaves a document without
// its items.
func (s *Store) replaceItems(ctx context.Context, tx *sql.Tx, docType store.DocType, docID string, items []models.LineItem) error {
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM line_items WHERE owner = $1 AND document_type = $2 AND document_id = $3",
		s.owner, string(docType), docID); err != nil {
		return fmt.Errorf("clearing line items: %w", err)
	}
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO line_items
			(id, owner, document_type, document_id, position, description, quantity, rate, amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			id, s.owner, string(docType), docID, i, item.Description, item.Quantity, item.Rate, item.Amount); err != nil {
			return fmt.Errorf("inserting line item: %w", err)
		}
	}
	return nil
}

func (s *Store) loadItems(ctx context.Context, docType store.DocType, docID string) ([]models.LineItem, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, description, quantity, rate, amount
		FROM line_items WHERE owner = $1 AND document_type = $2 AND document_id = $3
		ORDER BY position`, s.owner, string(docType), docID)
	if err != nil {
		return nil, fmt.Errorf("loading line items: %w", err)
	}
	defer rows.Close()

	var items []models.LineItem
	for rows.Next() {
		var item models.LineItem
		if err := rows.Scan(&item.ID, &item.Description, &item.Quantity, &item.Rate, &item.Amount); err != nil {
			return nil, fmt.Errorf("scanning line item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// itemsByDocument loads every line item of one document type, grouped by
// document id, for list responses.
func (s *Store) itemsByDocument(ctx context.Context, docType store.DocType) (map[string][]models.LineItem, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT document_id, id, description, quantity, rate, amount
		FROM line_items WHERE owner = $1 AND document_type = $2
		ORDER BY document_id, position`, s.owner, string(docType))
	if err != nil {
		return nil, fmt.Errorf("loading line items: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.LineItem)
	for rows.Next() {
		var docID string
		var item models.LineItem
		if err := rows.Scan(&docID, &item.ID, &item.Description, &item.Quantity, &item.Rate, &item.Amount); err != nil {
			return nil, fmt.Errorf("scanning line item: %w", err)
		}
		grouped[docID] = append(grouped[docID], item)
	}
	return grouped, rows.Err()
}

// --- invoices ---

func (s *Store) PutInvoice(ctx context.Context, inv models.Invoice) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO invoices
		(id, owner, number, client_id, issue_date, due_date, status,
		 subtotal, tax_rate, tax_amount, discount, discount_type, total,
		 currency, notes, terms, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			number = excluded.number, client_id = excluded.client_id,
			issue_date = excluded.issue_date, due_date = excluded.due_date,
			status = excluded.status, subtotal = excluded.subtotal,
			tax_rate = excluded.tax_rate, tax_amount = excluded.tax_amount,
			discount = excluded.discount, discount_type = excluded.discount_type,
			total = excluded.total, currency = excluded.currency,
			notes = excluded.notes, terms = excluded.terms,
			updated_at = excluded.updated_at`,
		inv.ID, s.owner, inv.Number, inv.ClientID, inv.IssueDate, inv.DueDate, inv.Status,
		inv.Subtotal, inv.TaxRate, inv.TaxAmount, inv.Discount, inv.DiscountType, inv.Total,
		inv.Currency, inv.Notes, inv.Terms, inv.CreatedAt, inv.UpdatedAt); err != nil {
		return fmt.Errorf("upserting invoice: %w", err)
	}
	if err := s.replaceItems(ctx, tx, store.DocInvoice, inv.ID, inv.Items); err != nil {
		return err
	}
	return tx.Commit()
}

func scanInvoice(scanner interface{ Scan(...any) error }) (models.Invoice, error) {
	var inv models.Invoice
	err := scanner.Scan(&inv.ID, &inv.Number, &inv.ClientID, &inv.IssueDate, &inv.DueDate,
		&inv.Status, &inv.Subtotal, &inv.TaxRate, &inv.TaxAmount, &inv.Discount,
		&inv.DiscountType, &inv.Total, &inv.Currency, &inv.Notes, &inv.Terms,
		&inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

const invoiceColumns = `id, number, client_id, issue_date, due_date, status,
	subtotal, tax_rate, tax_amount, discount, discount_type, total,
	currency, notes, terms, created_at, updated_at`

func (s *Store) GetInvoice(ctx context.Context, id string) (models.Invoice, error) {
	inv, err := scanInvoice(s.db.QueryRowContext(ctx,
		"SELECT "+invoiceColumns+" FROM invoices WHERE owner = $1 AND id = $2", s.owner, id))
	if err == sql.ErrNoRows {
		return models.Invoice{}, store.ErrNotFound
	}
	if err != nil {
		return models.Invoice{}, fmt.Errorf("fetching invoice: %w", err)
	}
	if inv.Items, err = s.loadItems(ctx, store.DocInvoice, inv.ID); err != nil {
		return models.Invoice{}, err
	}
	if inv.Client, err = s.resolveClient(ctx, inv.ClientID); err != nil {
		return models.Invoice{}, err
	}
	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+invoiceColumns+" FROM invoices WHERE owner = $1 ORDER BY created_at DESC", s.owner)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := s.itemsByDocument(ctx, store.DocInvoice)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientsByID(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Items = items[invoices[i].ID]
		if c, ok := clients[invoices[i].ClientID]; ok {
			c := c
			invoices[i].Client = &c
		}
	}
	return invoices, nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id string) error {
	return s.deleteDocument(ctx, "invoices", store.DocInvoice, id)
}

// --- quotations ---

func (s *Store) PutQuotation(ctx context.Context, q models.Quotation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO quotations
		(id, owner, number, client_id, issue_date, valid_until, status,
		 subtotal, tax_rate, tax_amount, discount, discount_type, total,
		 currency, notes, terms, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			number = excluded.number, client_id = excluded.client_id,
			issue_date = excluded.issue_date, valid_until = excluded.valid_until,
			status = excluded.status, subtotal = excluded.subtotal,
			tax_rate = excluded.tax_rate, tax_amount = excluded.tax_amount,
			discount = excluded.discount, discount_type = excluded.discount_type,
			total = excluded.total, currency = excluded.currency,
			notes = excluded.notes, terms = excluded.terms,
			updated_at = excluded.updated_at`,
		q.ID, s.owner, q.Number, q.ClientID, q.IssueDate, q.ValidUntil, q.Status,
		q.Subtotal, q.TaxRate, q.TaxAmount, q.Discount, q.DiscountType, q.Total,
		q.Currency, q.Notes, q.Terms, q.CreatedAt, q.UpdatedAt); err != nil {
		return fmt.Errorf("upserting quotation: %w", err)
	}
	if err := s.replaceItems(ctx, tx, store.DocQuotation, q.ID, q.Items); err != nil {
		return err
	}
	return tx.Commit()
}

const quotationColumns = `id, number, client_id, issue_date, valid_until, status,
	subtotal, tax_rate, tax_amount, discount, discount_type, total,
	currency, notes, terms, created_at, updated_at`

func scanQuotation(scanner interface{ Scan(...any) error }) (models.Quotation, error) {
	var q models.Quotation
	err := scanner.Scan(&q.ID, &q.Number, &q.ClientID, &q.IssueDate, &q.ValidUntil,
		&q.Status, &q.Subtotal, &q.TaxRate, &q.TaxAmount, &q.Discount,
		&q.DiscountType, &q.Total, &q.Currency, &q.Notes, &q.Terms,
		&q.CreatedAt, &q.UpdatedAt)
	return q, err
}

func (s *Store) GetQuotation(ctx context.Context, id string) (models.Quotation, error) {
	q, err := scanQuotation(s.db.QueryRowContext(ctx,
		"SELECT "+quotationColumns+" FROM quotations WHERE owner = $1 AND id = $2", s.owner, id))
	if err == sql.ErrNoRows {
		return models.Quotation{}, store.ErrNotFound
	}
	if err != nil {
		return models.Quotation{}, fmt.Errorf("fetching quotation: %w", err)
	}
	if q.Items, err = s.loadItems(ctx, store.DocQuotation, q.ID); err != nil {
		return models.Quotation{}, err
	}
	if q.Client, err = s.resolveClient(ctx, q.ClientID); err != nil {
		return models.Quotation{}, err
	}
	return q, nil
}

func (s *Store) ListQuotations(ctx context.Context) ([]models.Quotation, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+quotationColumns+" FROM quotations WHERE owner = $1 ORDER BY created_at DESC", s.owner)
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}
	defer rows.Close()

	var quotations []models.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quotation: %w", err)
		}
		quotations = append(quotations, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := s.itemsByDocument(ctx, store.DocQuotation)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientsByID(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quotations {
		quotations[i].Items = items[quotations[i].ID]
		if c, ok := clients[quotations[i].ClientID]; ok {
			c := c
			quotations[i].Client = &c
		}
	}
	return quotations, nil
}

func (s *Store) DeleteQuotation(ctx context.Context, id string) error {
	return s.deleteDocument(ctx, "quotations", store.DocQuotation, id)
}

// --- receipts ---

func (s *Store) PutReceipt(ctx context.Context, r models.Receipt) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO receipts
		(id, owner, number, client_id, invoice_number, payment_date, payment_method, status,
		 subtotal, tax_rate, tax_amount, discount, discount_type, total,
		 currency, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			number = excluded.number, client_id = excluded.client_id,
			invoice_number = excluded.invoice_number, payment_date = excluded.payment_date,
			payment_method = excluded.payment_method, status = excluded.status,
			subtotal = excluded.subtotal, tax_rate = excluded.tax_rate,
			tax_amount = excluded.tax_amount, discount = excluded.discount,
			discount_type = excluded.discount_type, total = excluded.total,
			currency = excluded.currency, notes = excluded.notes,
			updated_at = excluded.updated_at`,
		r.ID, s.owner, r.Number, r.ClientID, r.InvoiceNumber, r.PaymentDate, r.PaymentMethod, r.Status,
		r.Subtotal, r.TaxRate, r.TaxAmount, r.Discount, r.DiscountType, r.Total,
		r.Currency, r.Notes, r.CreatedAt, r.UpdatedAt); err != nil {
		return fmt.Errorf("upserting receipt: %w", err)
	}
	if err := s.replaceItems(ctx, tx, store.DocReceipt, r.ID, r.Items); err != nil {
		return err
	}
	return tx.Commit()
}

const receiptColumns = `id, number, client_id, invoice_number, payment_date, payment_method, status,
	subtotal, tax_rate, tax_amount, discount, discount_type, total,
	currency, notes, created_at, updated_at`

func scanReceipt(scanner interface{ Scan(...any) error }) (models.Receipt, error) {
	var r models.Receipt
	err := scanner.Scan(&r.ID, &r.Number, &r.ClientID, &r.InvoiceNumber, &r.PaymentDate,
		&r.PaymentMethod, &r.Status, &r.Subtotal, &r.TaxRate, &r.TaxAmount,
		&r.Discount, &r.DiscountType, &r.Total, &r.Currency, &r.Notes,
		&r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (s *Store) GetReceipt(ctx context.Context, id string) (models.Receipt, error) {
	r, err := scanReceipt(s.db.QueryRowContext(ctx,
		"SELECT "+receiptColumns+" FROM receipts WHERE owner = $1 AND id = $2", s.owner, id))
	if err == sql.ErrNoRows {
		return models.Receipt{}, store.ErrNotFound
	}
	if err != nil {
		return models.Receipt{}, fmt.Errorf("fetching receipt: %w", err)
	}
	if r.Items, err = s.loadItems(ctx, store.DocReceipt, r.ID); err != nil {
		return models.Receipt{}, err
	}
	if r.Client, err = s.resolveClient(ctx, r.ClientID); err != nil {
		return models.Receipt{}, err
	}
	return r, nil
}

func (s *Store) ListReceipts(ctx context.Context) ([]models.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+receiptColumns+" FROM receipts WHERE owner = $1 ORDER BY created_at DESC", s.owner)
	if err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}
	defer rows.Close()

	var receipts []models.Receipt
	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning receipt: %w", err)
		}
		receipts = append(receipts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := s.itemsByDocument(ctx, store.DocReceipt)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientsByID(ctx)
	if err != nil {
		return nil, err
	}
	for i := range receipts {
		receipts[i].Items = items[receipts[i].ID]
		if c, ok := clients[receipts[i].ClientID]; ok {
			c := c
			receipts[i].Client = &c
		}
	}
	return receipts, nil
}

func (s *Store) DeleteReceipt(ctx context.Context, id string) error {
	return s.deleteDocument(ctx, "receipts", store.DocReceipt, id)
}

// --- contracts ---

func (s *Store) PutContract(ctx context.Context, c models.Contract) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO contracts
		(id, owner, number, client_id, title, body, start_date, end_date, signature_date,
		 value, currency, status, client_signature, client_signature_type,
		 owner_signature, owner_signature_type, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (id) DO UPDATE SET
			number = excluded.number, client_id = excluded.client_id,
			title = excluded.title, body = excluded.body,
			start_date = excluded.start_date, end_date = excluded.end_date,
			signature_date = excluded.signature_date, value = excluded.value,
			currency = excluded.currency, status = excluded.status,
			client_signature = excluded.client_signature,
			client_signature_type = excluded.client_signature_type,
			owner_signature = excluded.owner_signature,
			owner_signature_type = excluded.owner_signature_type,
			notes = excluded.notes, updated_at = excluded.updated_at`,
		c.ID, s.owner, c.Number, c.ClientID, c.Title, c.Body, c.StartDate, c.EndDate, c.SignatureDate,
		c.Value, c.Currency, c.Status, c.ClientSignature, c.ClientSignatureType,
		c.OwnerSignature, c.OwnerSignatureType, c.Notes, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting contract: %w", err)
	}
	return nil
}

const contractColumns = `id, number, client_id, title, body, start_date, end_date, signature_date,
	value, currency, status, client_signature, client_signature_type,
	owner_signature, owner_signature_type, notes, created_at, updated_at`

func scanContract(scanner interface{ Scan(...any) error }) (models.Contract, error) {
	var c models.Contract
	err := scanner.Scan(&c.ID, &c.Number, &c.ClientID, &c.Title, &c.Body,
		&c.StartDate, &c.EndDate, &c.SignatureDate, &c.Value, &c.Currency,
		&c.Status, &c.ClientSignature, &c.ClientSignatureType,
		&c.OwnerSignature, &c.OwnerSignatureType, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *Store) GetContract(ctx context.Context, id string) (models.Contract, error) {
	c, err := scanContract(s.db.QueryRowContext(ctx,
		"SELECT "+contractColumns+" FROM contracts WHERE owner = $1 AND id = $2", s.owner, id))
	if err == sql.ErrNoRows {
		return models.Contract{}, store.ErrNotFound
	}
	if err != nil {
		return models.Contract{}, fmt.Errorf("fetching contract: %w", err)
	}
	if c.Client, err = s.resolveClient(ctx, c.ClientID); err != nil {
		return models.Contract{}, err
	}
	return c, nil
}

func (s *Store) ListContracts(ctx context.Context) ([]models.Contract, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+contractColumns+" FROM contracts WHERE owner = $1 ORDER BY created_at DESC", s.owner)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	defer rows.Close()

	var contracts []models.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	clients, err := s.clientsByID(ctx)
	if err != nil {
		return nil, err
	}
	for i := range contracts {
		if c, ok := clients[contracts[i].ClientID]; ok {
			c := c
			contracts[i].Client = &c
		}
	}
	return contracts, nil
}

func (s *Store) DeleteContract(ctx context.Context, id string) error {
	return s.deleteRow(ctx, "contracts", id)
}

// --- time entries ---

func (s *Store) PutTimeEntry(ctx context.Context, e models.TimeEntry) error {
	tags, err := json.Marshal(e.Tags)
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO time_entries
		(id, owner, client_id, client_name, project, description, entry_date,
		 start_time, end_time, duration_minutes, hourly_rate, amount,
		 billable, invoiced, invoice_id, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			client_id = excluded.client_id, client_name = excluded.client_name,
			project = excluded.project, description = excluded.description,
			entry_date = excluded.entry_date, start_time = excluded.start_time,
			end_time = excluded.end_time, duration_minutes = excluded.duration_minutes,
			hourly_rate = excluded.hourly_rate, amount = excluded.amount,
			billable = excluded.billable, invoiced = excluded.invoiced,
			invoice_id = excluded.invoice_id, tags = excluded.tags,
			updated_at = excluded.updated_at`,
		e.ID, s.owner, e.ClientID, e.ClientName, e.Project, e.Description, e.Date,
		e.StartTime, e.EndTime, e.DurationMinutes, e.HourlyRate, e.Amount,
		e.Billable, e.Invoiced, e.InvoiceID, tags, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting time entry: %w", err)
	}
	return nil
}

const timeEntryColumns = `id, client_id, client_name, project, description, entry_date,
	start_time, end_time, duration_minutes, hourly_rate, amount,
	billable, invoiced, invoice_id, tags, created_at, updated_at`

func scanTimeEntry(scanner interface{ Scan(...any) error }) (models.TimeEntry, error) {
	var e models.TimeEntry
	var tags []byte
	err := scanner.Scan(&e.ID, &e.ClientID, &e.ClientName, &e.Project, &e.Description,
		&e.Date, &e.StartTime, &e.EndTime, &e.DurationMinutes, &e.HourlyRate,
		&e.Amount, &e.Billable, &e.Invoiced, &e.InvoiceID, &tags, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(tags, &e.Tags); err != nil {
		return e, fmt.Errorf("decoding tags: %w", err)
	}
	return e, nil
}

func (s *Store) GetTimeEntry(ctx context.Context, id string) (models.TimeEntry, error) {
	e, err := scanTimeEntry(s.db.QueryRowContext(ctx,
		"SELECT "+timeEntryColumns+" FROM time_entries WHERE owner = $1 AND id = $2", s.owner, id))
	if err == sql.ErrNoRows {
		return models.TimeEntry{}, store.ErrNotFound
	}
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("fetching time entry: %w", err)
	}
	return e, nil
}

func (s *Store) ListTimeEntries(ctx context.Context) ([]models.TimeEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+timeEntryColumns+" FROM time_entries WHERE owner = $1 ORDER BY created_at DESC", s.owner)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()

	var entries []models.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning time entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteTimeEntry(ctx context.Context, id string) error {
	return s.deleteRow(ctx, "time_entries", id)
}

// --- resumes ---

func (s *Store) PutResume(ctx context.Context, r models.Resume) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO resumes
		(id, owner, name, data, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name, data = excluded.data,
			is_default = excluded.is_default, updated_at = excluded.updated_at`,
		r.ID, s.owner, r.Name, []byte(r.Data), r.IsDefault, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting resume: %w", err)
	}
	return nil
}

func scanResume(scanner interface{ Scan(...any) error }) (models.Resume, error) {
	var r models.Resume
	var data []byte
	err := scanner.Scan(&r.ID, &r.Name, &data, &r.IsDefault, &r.CreatedAt, &r.UpdatedAt)
	r.Data = data
	return r, err
}

func (s *Store) GetResume(ctx context.Context, id string) (models.Resume, error) {
	r, err := scanResume(s.db.QueryRowContext(ctx,
		"SELECT id, name, data, is_default, created_at, updated_at FROM resumes WHERE owner = $1 AND id = $2",
		s.owner, id))
	if err == sql.ErrNoRows {
		return models.Resume{}, store.ErrNotFound
	}
	if err != nil {
		return models.Resume{}, fmt.Errorf("fetching resume: %w", err)
	}
	return r, nil
}

func (s *Store) ListResumes(ctx context.Context) ([]models.Resume, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, data, is_default, created_at, updated_at FROM resumes WHERE owner = $1 ORDER BY created_at DESC",
		s.owner)
	if err != nil {
		return nil, fmt.Errorf("listing resumes: %w", err)
	}
	defer rows.Close()

	var resumes []models.Resume
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, rows.Err()
}

func (s *Store) DeleteResume(ctx context.Context, id string) error {
	return s.deleteRow(ctx, "resumes", id)
}

// --- settings and sequences ---

// ensureSettings creates the tenant's settings row with defaults if absent.
func (s *Store) ensureSettings(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO settings (owner, updated_at) VALUES ($1, now()) ON CONFLICT (owner) DO NOTHING", s.owner)
	if err != nil {
		return fmt.Errorf("ensuring settings row: %w", err)
	}
	return nil
}

func (s *Store) GetSettings(ctx context.Context) (models.Settings, error) {
	if err := s.ensureSettings(ctx); err != nil {
		return models.Settings{}, err
	}
	var out models.Settings
	err := s.db.QueryRowContext(ctx, `SELECT business_name, business_email, business_phone,
		address, city, state, zip_code, country, tax_id, logo_url,
		default_currency, default_tax_rate, default_payment_terms,
		invoice_prefix, quotation_prefix, receipt_prefix, contract_prefix,
		invoice_seq, quotation_seq, receipt_seq, contract_seq, updated_at
		FROM settings WHERE owner = $1`, s.owner).Scan(
		&out.BusinessName, &out.BusinessEmail, &out.BusinessPhone,
		&out.Address, &out.City, &out.State, &out.ZipCode, &out.Country, &out.TaxID, &out.LogoURL,
		&out.DefaultCurrency, &out.DefaultTaxRate, &out.DefaultPaymentTerms,
		&out.InvoicePrefix, &out.QuotationPrefix, &out.ReceiptPrefix, &out.ContractPrefix,
		&out.NextInvoiceNumber, &out.NextQuotationNumber, &out.NextReceiptNumber, &out.NextContractNumber,
		&out.UpdatedAt)
	if err != nil {
		return models.Settings{}, fmt.Errorf("fetching settings: %w", err)
	}
	return out, nil
}

func (s *Store) PutSettings(ctx context.Context, settings models.Settings) error {
	if err := s.ensureSettings(ctx); err != nil {
		return err
	}
	// GREATEST keeps the counters monotonic even against a stale submission.
	_, err := s.db.ExecContext(ctx, `UPDATE settings SET
		business_name = $2, business_email = $3, business_phone = $4,
		address = $5, city = $6, state = $7, zip_code = $8, country = $9,
		tax_id = $10, logo_url = $11, default_currency = $12,
		default_tax_rate = $13, default_payment_terms = $14,
		invoice_prefix = $15, quotation_prefix = $16, receipt_prefix = $17, contract_prefix = $18,
		invoice_seq = GREATEST(invoice_seq, $19),
		quotation_seq = GREATEST(quotation_seq, $20),
		receipt_seq = GREATEST(receipt_seq, $21),
		contract_seq = GREATEST(contract_seq, $22),
		updated_at = $23
		WHERE owner = $1`,
		s.owner, settings.BusinessName, settings.BusinessEmail, settings.BusinessPhone,
		settings.Address, settings.City, settings.State, settings.ZipCode, settings.Country,
		settings.TaxID, settings.LogoURL, settings.DefaultCurrency,
		settings.DefaultTaxRate, settings.DefaultPaymentTerms,
		settings.InvoicePrefix, settings.QuotationPrefix, settings.ReceiptPrefix, settings.ContractPrefix,
		settings.NextInvoiceNumber, settings.NextQuotationNumber,
		settings.NextReceiptNumber, settings.NextContractNumber,
		settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating settings: %w", err)
	}
	return nil
}

var sequenceColumns = map[store.DocType]string{
	store.DocInvoice:   "invoice_seq",
	store.DocQuotation: "quotation_seq",
	store.DocReceipt:   "receipt_seq",
	store.DocContract:  "contract_seq",
}

// NextSequence is a single increment-and-fetch: the UPDATE ... RETURNING
// closes the read-then-increment race, so concurrent saves never share a
// number.
func (s *Store) NextSequence(ctx context.Context, t store.DocType) (int, error) {
	column, ok := sequenceColumns[t]
	if !ok {
		return 0, fmt.Errorf("unknown document type %q", t)
	}
	if err := s.ensureSettings(ctx); err != nil {
		return 0, err
	}
	var assigned int
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("UPDATE settings SET %s = %s + 1 WHERE owner = $1 RETURNING %s - 1", column, column, column),
		s.owner).Scan(&assigned)
	if err != nil {
		return 0, fmt.Errorf("advancing %s sequence: %w", t, err)
	}
	return assigned, nil
}

// --- shared helpers ---

func (s *Store) deleteRow(ctx context.Context, table, id string) error {
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE owner = $1 AND id = $2", table), s.owner, id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// deleteDocument removes an item-bearing document and its line items in one
// transaction.
func (s *Store) deleteDocument(ctx context.Context, table string, docType store.DocType, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE owner = $1 AND id = $2", table), s.owner, id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM line_items WHERE owner = $1 AND document_type = $2 AND document_id = $3",
		s.owner, string(docType), id); err != nil {
		return fmt.Errorf("deleting line items: %w", err)
	}
	return tx.Commit()
}
