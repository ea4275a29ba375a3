package models

import (
	"encoding/json"
	"time"
)

// Resume is a stored resume document. Data is an opaque JSON payload owned by
// the editor UI; the ledger never inspects it.
type Resume struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	IsDefault bool            `json:"isDefault"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (r *Resume) Validate() string {
	if r.Name == "" {
		return "name is required"
	}
	if len(r.Data) == 0 {
		return "data is required"
	}
	if !json.Valid(r.Data) {
		return "data must be valid JSON"
	}
	return ""
}
