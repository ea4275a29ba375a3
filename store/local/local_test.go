package local

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilps/docledger/db"
	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	s, err := New(database)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestClientRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := models.Client{ID: "c1", Name: "Acme", Email: "billing@acme.test"}
	require.NoError(t, s.PutClient(ctx, c))

	got, err := s.GetClient(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	// Same id overwrites in place.
	c.Name = "Acme Corp"
	require.NoError(t, s.PutClient(ctx, c))
	list, err := s.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme Corp", list[0].Name)

	require.NoError(t, s.DeleteClient(ctx, "c1"))
	_, err = s.GetClient(ctx, "c1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetInvoice(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteInvoice(ctx, "missing"), store.ErrNotFound)
}

func TestSettingsDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-", settings.InvoicePrefix)
	assert.Equal(t, 1, settings.NextInvoiceNumber)
	assert.Equal(t, "USD", settings.DefaultCurrency)
}

func TestNextSequence(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		got, err := s.NextSequence(ctx, store.DocInvoice)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Each type draws from its own counter.
	got, err := s.NextSequence(ctx, store.DocQuotation)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, settings.NextInvoiceNumber)
	assert.Equal(t, 2, settings.NextQuotationNumber)
}

func TestPutSettingsKeepsCountersMonotonic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.NextSequence(ctx, store.DocInvoice)
	require.NoError(t, err)
	_, err = s.NextSequence(ctx, store.DocInvoice)
	require.NoError(t, err)

	// A stale submission cannot rewind the counter.
	stale := models.DefaultSettings()
	stale.BusinessName = "Freelance Co"
	require.NoError(t, s.PutSettings(ctx, stale))

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Freelance Co", settings.BusinessName)
	assert.Equal(t, 3, settings.NextInvoiceNumber)

	// Zero-valued counters (omitted fields) leave the stored ones alone.
	stale.NextInvoiceNumber = 0
	stale.NextQuotationNumber = 0
	stale.NextReceiptNumber = 0
	stale.NextContractNumber = 0
	require.NoError(t, s.PutSettings(ctx, stale))

	settings, err = s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, settings.NextInvoiceNumber)
	assert.Equal(t, 1, settings.NextQuotationNumber)
}

func TestEmptyCollections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	list, err := s.ListResumes(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
