// Package backup reads and writes the single-file JSON snapshot of a
// tenant's ledger. The same shape serves as export and import format, so a
// round trip must be lossless for every field.
package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
)

// Snapshot is the export file: one array per collection, the settings
// singleton, and the export timestamp.
type Snapshot struct {
	Clients     []models.Client    `json:"clients"`
	Invoices    []models.Invoice   `json:"invoices"`
	Quotations  []models.Quotation `json:"quotations"`
	Receipts    []models.Receipt   `json:"receipts"`
	Contracts   []models.Contract  `json:"contracts"`
	TimeEntries []models.TimeEntry `json:"timeEntries"`
	Resumes     []models.Resume    `json:"resumes"`
	Settings    models.Settings    `json:"settings"`
	ExportedAt  time.Time          `json:"exportedAt"`
}

// Export reads every collection from the store into a snapshot.
func Export(ctx context.Context, s store.Store) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: time.Now().UTC()}
	var err error

	if snap.Clients, err = s.ListClients(ctx); err != nil {
		return nil, fmt.Errorf("exporting clients: %w", err)
	}
	if snap.Invoices, err = s.ListInvoices(ctx); err != nil {
		return nil, fmt.Errorf("exporting invoices: %w", err)
	}
	if snap.Quotations, err = s.ListQuotations(ctx); err != nil {
		return nil, fmt.Errorf("exporting quotations: %w", err)
	}
	if snap.Receipts, err = s.ListReceipts(ctx); err != nil {
		return nil, fmt.Errorf("exporting receipts: %w", err)
	}
	if snap.Contracts, err = s.ListContracts(ctx); err != nil {
		return nil, fmt.Errorf("exporting contracts: %w", err)
	}
	if snap.TimeEntries, err = s.ListTimeEntries(ctx); err != nil {
		return nil, fmt.Errorf("exporting time entries: %w", err)
	}
	if snap.Resumes, err = s.ListResumes(ctx); err != nil {
		return nil, fmt.Errorf("exporting resumes: %w", err)
	}
	if snap.Settings, err = s.GetSettings(ctx); err != nil {
		return nil, fmt.Errorf("exporting settings: %w", err)
	}

	// Empty collections serialize as [] rather than null.
	if snap.Clients == nil {
		snap.Clients = []models.Client{}
	}
	if snap.Invoices == nil {
		snap.Invoices = []models.Invoice{}
	}
	if snap.Quotations == nil {
		snap.Quotations = []models.Quotation{}
	}
	if snap.Receipts == nil {
		snap.Receipts = []models.Receipt{}
	}
	if snap.Contracts == nil {
		snap.Contracts = []models.Contract{}
	}
	if snap.TimeEntries == nil {
		snap.TimeEntries = []models.TimeEntry{}
	}
	if snap.Resumes == nil {
		snap.Resumes = []models.Resume{}
	}
	return snap, nil
}

// Import writes every record of the snapshot into the store, preserving all
// field values including ids and timestamps. Settings go first so prefixes
// and sequences are in place before documents; clients precede the documents
// that reference them.
func Import(ctx context.Context, s store.Store, snap *Snapshot) error {
	if err := s.PutSettings(ctx, snap.Settings); err != nil {
		return fmt.Errorf("importing settings: %w", err)
	}
	for _, c := range snap.Clients {
		if err := s.PutClient(ctx, c); err != nil {
			return fmt.Errorf("importing client %s: %w", c.ID, err)
		}
	}
	for _, inv := range snap.Invoices {
		if err := s.PutInvoice(ctx, inv); err != nil {
			return fmt.Errorf("importing invoice %s: %w", inv.ID, err)
		}
	}
	for _, q := range snap.Quotations {
		if err := s.PutQuotation(ctx, q); err != nil {
			return fmt.Errorf("importing quotation %s: %w", q.ID, err)
		}
	}
	for _, r := range snap.Receipts {
		if err := s.PutReceipt(ctx, r); err != nil {
			return fmt.Errorf("importing receipt %s: %w", r.ID, err)
		}
	}
	for _, c := range snap.Contracts {
		if err := s.PutContract(ctx, c); err != nil {
			return fmt.Errorf("importing contract %s: %w", c.ID, err)
		}
	}
	for _, e := range snap.TimeEntries {
		if err := s.PutTimeEntry(ctx, e); err != nil {
			return fmt.Errorf("importing time entry %s: %w", e.ID, err)
		}
	}
	for _, r := range snap.Resumes {
		if err := s.PutResume(ctx, r); err != nil {
			return fmt.Errorf("importing resume %s: %w", r.ID, err)
		}
	}
	return nil
}
