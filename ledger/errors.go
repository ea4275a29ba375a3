package ledger

import "fmt"

// ValidationError reports a missing or invalid field, caught before any
// write reaches the store.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports a requested record that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ClientInUseError reports an attempt to delete a client still referenced by
// documents. Callers may retry with force to delete anyway.
type ClientInUseError struct {
	ID       string
	Invoices int
}

func (e *ClientInUseError) Error() string {
	return fmt.Sprintf("client %s is referenced by %d invoice(s)", e.ID, e.Invoices)
}

// StorageError wraps a backend failure. The underlying message is surfaced
// as-is; no transient/permanent classification and no automatic retry.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }
