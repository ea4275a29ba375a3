package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// TimeEntry is a tracked block of work, optionally billable against a client.
// DurationMinutes and Amount are cached projections recomputed on every save.
type TimeEntry struct {
	ID         string `json:"id"`
	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName,omitempty"`

	Project     string `json:"project"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"` // HH:MM
	EndTime     string `json:"endTime"`   // HH:MM

	DurationMinutes int             `json:"durationMinutes"`
	HourlyRate      decimal.Decimal `json:"hourlyRate"`
	Amount          decimal.Decimal `json:"amount"`

	Billable  bool     `json:"billable"`
	Invoiced  bool     `json:"invoiced"`
	InvoiceID string   `json:"invoiceId,omitempty"`
	Tags      []string `json:"tags"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks required fields and recomputes the derived duration and
// amount. Entries with a non-positive duration are rejected before any write.
func (e *TimeEntry) Validate() string {
	if e.ClientID == "" {
		return "clientId is required"
	}
	if e.Project == "" {
		return "project is required"
	}
	if e.HourlyRate.IsNegative() {
		return "hourlyRate must be non-negative"
	}
	start, err := parseClock(e.StartTime)
	if err != nil {
		return "startTime must be in HH:MM format"
	}
	end, err := parseClock(e.EndTime)
	if err != nil {
		return "endTime must be in HH:MM format"
	}
	if end <= start {
		return "endTime must be after startTime"
	}
	e.DurationMinutes = end - start
	if e.Billable {
		minutes := decimal.NewFromInt(int64(e.DurationMinutes))
		e.Amount = Round2(e.HourlyRate.Mul(minutes).Div(sixty))
	} else {
		e.Amount = decimal.Zero
	}
	return ""
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hours*60 + minutes, nil
}
