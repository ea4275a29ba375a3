package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilps/docledger/db"
	"github.com/nikhilps/docledger/ledger"
	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store/local"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	s, err := local.New(database)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	Store = s
	Ledger = ledger.New(s)
	BasicAuthCredentials.User = ""
	BasicAuthCredentials.Pass = ""

	r := chi.NewRouter()
	r.Use(BasicAuth)
	r.Get("/clients", ListClients)
	r.Post("/clients", CreateClient)
	r.Get("/clients/{id}", GetClient)
	r.Delete("/clients/{id}", DeleteClient)
	r.Get("/invoices", ListInvoices)
	r.Post("/invoices", CreateInvoice)
	r.Get("/invoices/next-number", NextInvoiceNumber)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestClientEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("empty list is an array", func(t *testing.T) {
		rec, _ := doJSON(t, r, http.MethodGet, "/clients", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})

	var clientID string
	t.Run("create returns 201", func(t *testing.T) {
		rec, resp := doJSON(t, r, http.MethodPost, "/clients", models.Client{Name: "Acme", Email: "a@acme.test"})
		require.Equal(t, http.StatusCreated, rec.Code)
		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		var created models.Client
		require.NoError(t, json.Unmarshal(data, &created))
		assert.NotEmpty(t, created.ID)
		clientID = created.ID
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		rec, resp := doJSON(t, r, http.MethodPost, "/clients", models.Client{Name: "No Email"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email is required", resp.Error)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing record maps to 404", func(t *testing.T) {
		rec, _ := doJSON(t, r, http.MethodGet, "/clients/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("referenced client delete maps to 409", func(t *testing.T) {
		inv := models.Invoice{
			ClientID: clientID,
			Items:    []models.LineItem{{Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100)}},
		}
		rec, _ := doJSON(t, r, http.MethodPost, "/invoices", inv)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec, resp := doJSON(t, r, http.MethodDelete, "/clients/"+clientID, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, resp.Error, "referenced by 1 invoice")

		rec, _ = doJSON(t, r, http.MethodDelete, "/clients/"+clientID+"?force=true", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestNextNumberPreview(t *testing.T) {
	r := newTestRouter(t)

	rec, resp := doJSON(t, r, http.MethodGet, "/invoices/next-number", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INV-0001", data["number"])

	// The preview reserves nothing.
	rec, resp = doJSON(t, r, http.MethodGet, "/invoices/next-number", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = resp.Data.(map[string]any)
	assert.Equal(t, "INV-0001", data["number"])
}

func TestBasicAuth(t *testing.T) {
	// Credentials are configured after the router has been built; the
	// middleware must pick them up per request rather than freezing the
	// decision at route registration.
	r := newTestRouter(t)
	BasicAuthCredentials.User = "admin"
	BasicAuthCredentials.Pass = "secret"
	t.Cleanup(func() {
		BasicAuthCredentials.User = ""
		BasicAuthCredentials.Pass = ""
	})

	get := func(setAuth func(*http.Request)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/clients", nil)
		if setAuth != nil {
			setAuth(req)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing credentials rejected", func(t *testing.T) {
		rec := get(nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, `Basic realm="docledger"`, rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("wrong credentials rejected", func(t *testing.T) {
		rec := get(func(req *http.Request) { req.SetBasicAuth("admin", "wrong") })
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid credentials accepted", func(t *testing.T) {
		rec := get(func(req *http.Request) { req.SetBasicAuth("admin", "secret") })
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("clearing credentials disables auth", func(t *testing.T) {
		BasicAuthCredentials.User = ""
		BasicAuthCredentials.Pass = ""
		rec := get(nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

