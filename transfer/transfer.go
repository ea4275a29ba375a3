// Package transfer copies a ledger from the local store to the remote
// backend. Collections move in dependency order; records within one
// collection are upserted concurrently since they are independent rows.
// Every write is an idempotent upsert keyed by id, so rerunning the whole
// transfer after a partial failure is the recovery path.
package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nikhilps/docledger/backup"
	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
)

const (
	// mainPhaseTimeout bounds clients through settings, respecting the
	// hosting platform's transaction-time limit.
	mainPhaseTimeout = 15 * time.Second

	// Resumes carry large opaque payloads and are deliberately excluded
	// from the main phase: they move in small batches, each under its own
	// deadline, at the cost of weaker atomicity.
	resumeBatchSize    = 3
	resumeBatchTimeout = 8 * time.Second

	maxConcurrentUpserts = 8
)

// RecordResult reports the outcome of one record's upsert. A bulk run never
// swallows individual failures; callers get the full list.
type RecordResult struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Error      string `json:"error,omitempty"`
}

// Summary is the result of one transfer run.
type Summary struct {
	Results   []RecordResult `json:"results"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

func (s *Summary) add(collection, id string, err error) {
	r := RecordResult{Collection: collection, ID: id}
	if err != nil {
		r.Error = err.Error()
		s.Failed++
	} else {
		s.Succeeded++
	}
	s.Results = append(s.Results, r)
}

// Run snapshots the source store and upserts everything into the
// destination. Failed records are reported in the summary; the run only
// returns an error when it cannot proceed at all (snapshot or settings
// failure, context expiry).
func Run(ctx context.Context, src, dst store.Store) (*Summary, error) {
	snap, err := backup.Export(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("reading source store: %w", err)
	}

	sum := &Summary{}
	var mu sync.Mutex

	record := func(collection, id string, err error) {
		mu.Lock()
		defer mu.Unlock()
		sum.add(collection, id, err)
	}

	phaseCtx, cancel := context.WithTimeout(ctx, mainPhaseTimeout)
	defer cancel()

	// Clients must land before the documents that reference them; the
	// remaining collections are independent of each other but are still
	// processed one at a time to keep failures attributable.
	upsertAll(phaseCtx, record, "clients", snap.Clients,
		func(c models.Client) string { return c.ID }, dst.PutClient)
	upsertAll(phaseCtx, record, "invoices", snap.Invoices,
		func(i models.Invoice) string { return i.ID }, dst.PutInvoice)
	upsertAll(phaseCtx, record, "quotations", snap.Quotations,
		func(q models.Quotation) string { return q.ID }, dst.PutQuotation)
	upsertAll(phaseCtx, record, "receipts", snap.Receipts,
		func(r models.Receipt) string { return r.ID }, dst.PutReceipt)
	upsertAll(phaseCtx, record, "contracts", snap.Contracts,
		func(c models.Contract) string { return c.ID }, dst.PutContract)
	upsertAll(phaseCtx, record, "timeEntries", snap.TimeEntries,
		func(e models.TimeEntry) string { return e.ID }, dst.PutTimeEntry)

	if err := dst.PutSettings(phaseCtx, snap.Settings); err != nil {
		record("settings", "settings", err)
	} else {
		record("settings", "settings", nil)
	}

	if err := phaseCtx.Err(); err != nil {
		return sum, fmt.Errorf("main phase exceeded %s: %w", mainPhaseTimeout, err)
	}

	// Resume batches run after the main phase, each under its own deadline.
	for start := 0; start < len(snap.Resumes); start += resumeBatchSize {
		end := min(start+resumeBatchSize, len(snap.Resumes))
		batch := snap.Resumes[start:end]

		batchCtx, cancelBatch := context.WithTimeout(ctx, resumeBatchTimeout)
		upsertAll(batchCtx, record, "resumes", batch,
			func(r models.Resume) string { return r.ID }, dst.PutResume)
		cancelBatch()

		slog.Debug("resume batch transferred", "from", start, "to", end)
	}

	slog.Info("transfer complete", "succeeded", sum.Succeeded, "failed", sum.Failed)
	return sum, nil
}

// upsertAll writes one collection's records concurrently. Individual
// failures are recorded and do not stop the rest of the collection.
func upsertAll[T any](ctx context.Context, record func(string, string, error), collection string, items []T, idOf func(T) string, put func(context.Context, T) error) {
	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentUpserts)
	for _, item := range items {
		item := item
		g.Go(func() error {
			record(collection, idOf(item), put(ctx, item))
			return nil
		})
	}
	g.Wait()
}
