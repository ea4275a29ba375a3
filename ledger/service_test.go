package ledger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilps/docledger/db"
	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
	"github.com/nikhilps/docledger/store/local"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	s, err := local.New(database)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s)
}

func saveClient(t *testing.T, svc *Service) models.Client {
	t.Helper()
	c := models.Client{Name: "Acme", Email: "billing@acme.test"}
	require.NoError(t, svc.SaveClient(context.Background(), &c))
	return c
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func TestSaveClient(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		c := saveClient(t, svc)
		assert.NotEmpty(t, c.ID)
		assert.False(t, c.CreatedAt.IsZero())
		assert.Equal(t, c.CreatedAt, c.UpdatedAt)
	})

	t.Run("rejects missing email", func(t *testing.T) {
		c := models.Client{Name: "No Email"}
		err := svc.SaveClient(ctx, &c)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "email is required", verr.Msg)
	})

	t.Run("not found maps to NotFoundError", func(t *testing.T) {
		_, err := svc.Client(ctx, "missing")
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "client", nf.Kind)
	})
}

func TestSaveInvoice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	client := saveClient(t, svc)

	newInvoice := func() models.Invoice {
		inv := models.Invoice{
			ClientID: client.ID,
			Items: []models.LineItem{
				{Description: "Design", Quantity: dec(t, "2"), Rate: dec(t, "50")},
				{Description: "Hosting", Quantity: dec(t, "1"), Rate: dec(t, "25")},
			},
			IssueDate: "2026-03-01",
			DueDate:   "2026-03-31",
		}
		inv.TaxRate = dec(t, "10")
		return inv
	}

	t.Run("derives totals and assigns sequential numbers", func(t *testing.T) {
		first := newInvoice()
		require.NoError(t, svc.SaveInvoice(ctx, &first))
		assert.Equal(t, "INV-0001", first.Number)
		assert.Equal(t, "125.00", first.Subtotal.StringFixed(2))
		assert.Equal(t, "12.50", first.TaxAmount.StringFixed(2))
		assert.Equal(t, "137.50", first.Total.StringFixed(2))
		assert.Equal(t, "draft", first.Status)
		assert.Equal(t, "USD", first.Currency)
		require.NotNil(t, first.Client)
		assert.Equal(t, client.Name, first.Client.Name)

		second := newInvoice()
		require.NoError(t, svc.SaveInvoice(ctx, &second))
		assert.Equal(t, "INV-0002", second.Number)
	})

	t.Run("update keeps the assigned number", func(t *testing.T) {
		inv := newInvoice()
		require.NoError(t, svc.SaveInvoice(ctx, &inv))
		number := inv.Number

		inv.Status = "sent"
		require.NoError(t, svc.SaveInvoice(ctx, &inv))
		assert.Equal(t, number, inv.Number)

		got, err := svc.Invoice(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, "sent", got.Status)
	})

	t.Run("deleted numbers are never reused", func(t *testing.T) {
		inv := newInvoice()
		require.NoError(t, svc.SaveInvoice(ctx, &inv))
		burned := inv.Number
		require.NoError(t, svc.DeleteInvoice(ctx, inv.ID))

		next := newInvoice()
		require.NoError(t, svc.SaveInvoice(ctx, &next))
		assert.NotEqual(t, burned, next.Number)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		inv := newInvoice()
		inv.Status = "archived"
		var verr *ValidationError
		require.ErrorAs(t, svc.SaveInvoice(ctx, &inv), &verr)
	})

	t.Run("rejects missing client", func(t *testing.T) {
		inv := newInvoice()
		inv.ClientID = ""
		var verr *ValidationError
		require.ErrorAs(t, svc.SaveInvoice(ctx, &inv), &verr)
		assert.Equal(t, "client is required", verr.Msg)
	})

	t.Run("rejects discount larger than subtotal", func(t *testing.T) {
		inv := newInvoice()
		inv.Discount = dec(t, "200")
		var verr *ValidationError
		require.ErrorAs(t, svc.SaveInvoice(ctx, &inv), &verr)
		assert.Equal(t, "discount cannot exceed subtotal", verr.Msg)
	})
}

func TestPeekNumber(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	client := saveClient(t, svc)

	number, err := svc.PeekNumber(ctx, store.DocQuotation)
	require.NoError(t, err)
	assert.Equal(t, "QUO-0001", number)

	// Peek makes no reservation.
	again, err := svc.PeekNumber(ctx, store.DocQuotation)
	require.NoError(t, err)
	assert.Equal(t, number, again)

	q := models.Quotation{
		ClientID: client.ID,
		Items:    []models.LineItem{{Quantity: dec(t, "1"), Rate: dec(t, "100")}},
	}
	require.NoError(t, svc.SaveQuotation(ctx, &q))
	assert.Equal(t, "QUO-0001", q.Number)
}

func TestDeleteClientInUse(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	client := saveClient(t, svc)

	inv := models.Invoice{
		ClientID: client.ID,
		Items:    []models.LineItem{{Quantity: dec(t, "1"), Rate: dec(t, "100")}},
	}
	require.NoError(t, svc.SaveInvoice(ctx, &inv))

	err := svc.DeleteClient(ctx, client.ID, false)
	var inUse *ClientInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, 1, inUse.Invoices)

	require.NoError(t, svc.DeleteClient(ctx, client.ID, true))
	_, err = svc.Client(ctx, client.ID)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestSaveReceipt(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	client := saveClient(t, svc)

	t.Run("invoice-backed receipt keeps supplied totals", func(t *testing.T) {
		r := models.Receipt{
			ClientID:      client.ID,
			InvoiceNumber: "INV-0042",
			PaymentDate:   "2026-03-05",
		}
		r.Total = dec(t, "137.50")
		require.NoError(t, svc.SaveReceipt(ctx, &r))
		assert.Equal(t, "REC-0001", r.Number)
		assert.Equal(t, "paid", r.Status)
		assert.Equal(t, "137.50", r.Total.StringFixed(2))
	})

	t.Run("itemized receipt derives totals", func(t *testing.T) {
		r := models.Receipt{
			ClientID:    client.ID,
			Items:       []models.LineItem{{Quantity: dec(t, "3"), Rate: dec(t, "40")}},
			PaymentDate: "2026-03-06",
		}
		require.NoError(t, svc.SaveReceipt(ctx, &r))
		assert.Equal(t, "120.00", r.Total.StringFixed(2))
	})
}

func TestSaveTimeEntry(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	client := saveClient(t, svc)

	e := models.TimeEntry{
		ClientID:   client.ID,
		Project:    "Website",
		Date:       "2026-03-01",
		StartTime:  "09:00",
		EndTime:    "11:00",
		HourlyRate: dec(t, "90"),
		Billable:   true,
	}
	require.NoError(t, svc.SaveTimeEntry(ctx, &e))
	assert.Equal(t, 120, e.DurationMinutes)
	assert.Equal(t, "180.00", e.Amount.StringFixed(2))
	assert.Equal(t, client.Name, e.ClientName)
	assert.NotNil(t, e.Tags)
}

func TestSettings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	settings, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-", settings.InvoicePrefix)

	settings.BusinessName = "Freelance Co"
	settings.InvoicePrefix = "FC-"
	require.NoError(t, svc.SaveSettings(ctx, &settings))

	number, err := svc.PeekNumber(ctx, store.DocInvoice)
	require.NoError(t, err)
	assert.Equal(t, "FC-0001", number)

	t.Run("zero sequences leave counters unchanged", func(t *testing.T) {
		advanced := settings
		advanced.NextInvoiceNumber = 7
		require.NoError(t, svc.SaveSettings(ctx, &advanced))

		// A submission with omitted counters (zero values) must not rewind.
		partial := settings
		partial.NextInvoiceNumber = 0
		partial.NextQuotationNumber = 0
		partial.NextReceiptNumber = 0
		partial.NextContractNumber = 0
		require.NoError(t, svc.SaveSettings(ctx, &partial))

		number, err := svc.PeekNumber(ctx, store.DocInvoice)
		require.NoError(t, err)
		assert.Equal(t, "FC-0007", number)
	})

	t.Run("rejects negative sequences", func(t *testing.T) {
		bad := settings
		bad.NextInvoiceNumber = -1
		var verr *ValidationError
		require.ErrorAs(t, svc.SaveSettings(ctx, &bad), &verr)
	})
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV-0001", FormatNumber("INV-", 1))
	assert.Equal(t, "INV-0042", FormatNumber("INV-", 42))
	assert.Equal(t, "INV-10000", FormatNumber("INV-", 10000))
}
