package backup

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

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

// populate fills the store through the ledger service so every record has
// real ids, numbers, and derived totals.
func populate(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	svc := ledger.New(s)

	client := models.Client{Name: "Acme", Email: "billing@acme.test", Country: "DE"}
	require.NoError(t, svc.SaveClient(ctx, &client))

	inv := models.Invoice{
		ClientID:  client.ID,
		Items:     []models.LineItem{{Description: "Design", Quantity: dec(t, "2"), Rate: dec(t, "50")}},
		IssueDate: "2026-03-01",
		Status:    "sent",
	}
	inv.TaxRate = dec(t, "19")
	require.NoError(t, svc.SaveInvoice(ctx, &inv))

	q := models.Quotation{
		ClientID:   client.ID,
		Items:      []models.LineItem{{Description: "Audit", Quantity: dec(t, "1"), Rate: dec(t, "800")}},
		ValidUntil: "2026-04-01",
	}
	require.NoError(t, svc.SaveQuotation(ctx, &q))

	r := models.Receipt{ClientID: client.ID, InvoiceNumber: inv.Number, PaymentDate: "2026-03-10"}
	require.NoError(t, svc.SaveReceipt(ctx, &r))

	c := models.Contract{ClientID: client.ID, Title: "Retainer", StartDate: "2026-01-01", Value: dec(t, "5000")}
	require.NoError(t, svc.SaveContract(ctx, &c))

	e := models.TimeEntry{
		ClientID: client.ID, Project: "Website", Date: "2026-03-02",
		StartTime: "09:00", EndTime: "10:30", HourlyRate: dec(t, "80"), Billable: true,
		Tags: []string{"frontend"},
	}
	require.NoError(t, svc.SaveTimeEntry(ctx, &e))

	res := models.Resume{Name: "Main", Data: json.RawMessage(`{"sections":["intro"]}`)}
	require.NoError(t, svc.SaveResume(ctx, &res))

	settings, err := svc.Settings(ctx)
	require.NoError(t, err)
	settings.BusinessName = "Freelance Co"
	require.NoError(t, svc.SaveSettings(ctx, &settings))
}

// normalize strips the export timestamp so snapshots can be compared.
func normalize(t *testing.T, snap *Snapshot) string {
	t.Helper()
	copied := *snap
	copied.ExportedAt = time.Time{}
	raw, err := json.Marshal(copied)
	require.NoError(t, err)
	return string(raw)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newLocalStore(t)
	populate(t, src)

	snap, err := Export(ctx, src)
	require.NoError(t, err)
	require.Len(t, snap.Clients, 1)
	require.Len(t, snap.Invoices, 1)
	assert.Equal(t, "Freelance Co", snap.Settings.BusinessName)
	assert.False(t, snap.ExportedAt.IsZero())

	dst := newLocalStore(t)
	require.NoError(t, Import(ctx, dst, snap))

	restored, err := Export(ctx, dst)
	require.NoError(t, err)
	assert.JSONEq(t, normalize(t, snap), normalize(t, restored))

	// Ids, numbers, and timestamps survive the trip untouched.
	got, err := dst.GetInvoice(ctx, snap.Invoices[0].ID)
	require.NoError(t, err)
	assert.Equal(t, snap.Invoices[0].Number, got.Number)
	assert.True(t, got.CreatedAt.Equal(snap.Invoices[0].CreatedAt))
}

func TestExportEmptyLedger(t *testing.T) {
	ctx := context.Background()
	snap, err := Export(ctx, newLocalStore(t))
	require.NoError(t, err)

	// Empty collections marshal as [], never null.
	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"clients":[]`)
	assert.Contains(t, string(raw), `"resumes":[]`)
	assert.NotContains(t, string(raw), "null")

	// Exporting an untouched ledger materializes the default settings.
	assert.Equal(t, "INV-", snap.Settings.InvoicePrefix)
}

func TestImportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	src := newLocalStore(t)
	populate(t, src)

	snap, err := Export(ctx, src)
	require.NoError(t, err)

	dst := newLocalStore(t)
	require.NoError(t, Import(ctx, dst, snap))
	require.NoError(t, Import(ctx, dst, snap))

	clients, err := dst.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)
	invoices, err := dst.ListInvoices(ctx)
	require.NoError(t, err)
	assert.Len(t, invoices, 1)
}
