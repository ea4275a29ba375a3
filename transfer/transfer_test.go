package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilps/docledger/db"
	"github.com/nikhilps/docledger/ledger"
	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
	"github.com/nikhilps/docledger/store/local"
)

func newLocalStore(t *testing.T) store.Store {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	s, err := local.New(database)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

// populate seeds the source with one record per collection plus enough
// resumes to span two batches.
func populate(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	svc := ledger.New(s)

	client := models.Client{Name: "Acme", Email: "billing@acme.test"}
	require.NoError(t, svc.SaveClient(ctx, &client))

	inv := models.Invoice{
		ClientID: client.ID,
		Items:    []models.LineItem{{Quantity: dec(t, "2"), Rate: dec(t, "50")}},
	}
	require.NoError(t, svc.SaveInvoice(ctx, &inv))

	q := models.Quotation{
		ClientID: client.ID,
		Items:    []models.LineItem{{Quantity: dec(t, "1"), Rate: dec(t, "800")}},
	}
	require.NoError(t, svc.SaveQuotation(ctx, &q))

	r := models.Receipt{ClientID: client.ID, InvoiceNumber: inv.Number, PaymentDate: "2026-03-10"}
	require.NoError(t, svc.SaveReceipt(ctx, &r))

	c := models.Contract{ClientID: client.ID, Title: "Retainer", StartDate: "2026-01-01"}
	require.NoError(t, svc.SaveContract(ctx, &c))

	e := models.TimeEntry{
		ClientID: client.ID, Project: "Website", Date: "2026-03-02",
		StartTime: "09:00", EndTime: "10:00", HourlyRate: dec(t, "80"), Billable: true,
	}
	require.NoError(t, svc.SaveTimeEntry(ctx, &e))

	for i := 0; i < 4; i++ {
		res := models.Resume{
			Name: fmt.Sprintf("Resume %d", i+1),
			Data: json.RawMessage(`{"sections":[]}`),
		}
		require.NoError(t, svc.SaveResume(ctx, &res))
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	src := newLocalStore(t)
	populate(t, src)
	dst := newLocalStore(t)

	sum, err := Run(ctx, src, dst)
	require.NoError(t, err)

	// 1 each of client/invoice/quotation/receipt/contract/time entry,
	// settings, and 4 resumes.
	assert.Equal(t, 11, sum.Succeeded)
	assert.Equal(t, 0, sum.Failed)
	assert.Len(t, sum.Results, 11)

	clients, err := dst.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)
	resumes, err := dst.ListResumes(ctx)
	require.NoError(t, err)
	assert.Len(t, resumes, 4)

	srcInvoices, err := src.ListInvoices(ctx)
	require.NoError(t, err)
	got, err := dst.GetInvoice(ctx, srcInvoices[0].ID)
	require.NoError(t, err)
	assert.Equal(t, srcInvoices[0].Number, got.Number)
	assert.Equal(t, srcInvoices[0].Total.StringFixed(2), got.Total.StringFixed(2))
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	src := newLocalStore(t)
	populate(t, src)
	dst := newLocalStore(t)

	_, err := Run(ctx, src, dst)
	require.NoError(t, err)
	sum, err := Run(ctx, src, dst)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Failed)

	// Reruns overwrite by id instead of duplicating.
	clients, err := dst.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)
	resumes, err := dst.ListResumes(ctx)
	require.NoError(t, err)
	assert.Len(t, resumes, 4)
}

// failingStore wraps a store and fails every invoice write.
type failingStore struct {
	store.Store
}

func (f *failingStore) PutInvoice(ctx context.Context, inv models.Invoice) error {
	return errors.New("connection reset")
}

func TestRunReportsPerRecordFailures(t *testing.T) {
	ctx := context.Background()
	src := newLocalStore(t)
	populate(t, src)
	dst := &failingStore{Store: newLocalStore(t)}

	sum, err := Run(ctx, src, dst)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 10, sum.Succeeded)

	var failed []RecordResult
	for _, res := range sum.Results {
		if res.Error != "" {
			failed = append(failed, res)
		}
	}
	require.Len(t, failed, 1)
	assert.Equal(t, "invoices", failed[0].Collection)
	assert.Equal(t, "connection reset", failed[0].Error)

	// The failure does not block later collections.
	contracts, err := dst.ListContracts(ctx)
	require.NoError(t, err)
	assert.Len(t, contracts, 1)
}
