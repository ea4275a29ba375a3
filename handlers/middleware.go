package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikhilps/docledger/ledger"
	"github.com/nikhilps/docledger/store"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

// Ledger is the shared document-ledger service used by all handlers.
var Ledger *ledger.Service

// Store is the raw backend, used where handlers bypass the ledger
// (export/import).
var Store store.Store

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}

// writeServiceError maps ledger errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var validation *ledger.ValidationError
	if errors.As(err, &validation) {
		writeError(w, http.StatusBadRequest, validation.Msg)
		return
	}
	var notFound *ledger.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, notFound.Error())
		return
	}
	var inUse *ledger.ClientInUseError
	if errors.As(err, &inUse) {
		writeError(w, http.StatusConflict, inUse.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// BasicAuthCredentials configures BasicAuth; when both are empty the API
// runs unauthenticated.
var BasicAuthCredentials struct {
	User string
	Pass string
}

// BasicAuth is middleware that enforces HTTP Basic Authentication. The
// credentials are read per request, not when the middleware chain is built,
// so configuring them after router construction still takes effect.
func BasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := BasicAuthCredentials.User
		pass := BasicAuthCredentials.Pass

		if user == "" && pass == "" {
			next.ServeHTTP(w, r)
			return
		}

		u, p, ok := r.BasicAuth()
		if !ok || u != user || p != pass {
			w.Header().Set("WWW-Authenticate", `Basic realm="docledger"`)
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
