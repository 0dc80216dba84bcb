package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	historyEntrySeparator = ";"
	historyFieldSeparator = "_"
)

// ResponseEntry is one recorded status change.
type ResponseEntry struct {
	Date   time.Time         `json:"date"`
	Status ApplicationStatus `json:"status"`

	// raw keeps a persisted token that could not be decoded so that it is
	// written back unchanged.
	raw string
}

// String renders the entry in its persisted "dd/MM/yyyy_STATUS" form.
func (e ResponseEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	return FormatDate(e.Date) + historyFieldSeparator + string(e.Status)
}

func (e ResponseEntry) MarshalJSON() ([]byte, error) {
	out := struct {
		Date   string            `json:"date,omitempty"`
		Status ApplicationStatus `json:"status,omitempty"`
		Token  string            `json:"token"`
	}{Token: e.String()}
	if e.raw == "" {
		out.Date = FormatDate(e.Date)
		out.Status = e.Status
	}
	return json.Marshal(out)
}

// ResponseHistory is the append-only audit trail of an application's status changes.
type ResponseHistory []ResponseEntry

// Append records status on date. Existing entries are never touched.
func (h *ResponseHistory) Append(status ApplicationStatus, date time.Time) ResponseEntry {
	entry := ResponseEntry{Date: Today(date), Status: status}
	*h = append(*h, entry)
	return entry
}

// Latest returns the most recently appended entry.
func (h ResponseHistory) Latest() (ResponseEntry, bool) {
	if len(h) == 0 {
		return ResponseEntry{}, false
	}
	return h[len(h)-1], true
}

// LatestString returns the latest entry's token, or "" for an empty history.
func (h ResponseHistory) LatestString() string {
	entry, ok := h.Latest()
	if !ok {
		return ""
	}
	return entry.String()
}

// Encode joins the entries with ";".
func (h ResponseHistory) Encode() string {
	tokens := make([]string, 0, len(h))
	for _, entry := range h {
		tokens = append(tokens, entry.String())
	}
	return strings.Join(tokens, historyEntrySeparator)
}

// DecodeResponseHistory parses the persisted form strictly. Empty input is an
// empty history.
func DecodeResponseHistory(encoded string) (ResponseHistory, error) {
	history := ResponseHistory{}
	if strings.TrimSpace(encoded) == "" {
		return history, nil
	}
	for _, token := range strings.Split(encoded, historyEntrySeparator) {
		if token == "" {
			continue
		}
		entry, err := decodeResponseEntry(token)
		if err != nil {
			return nil, err
		}
		history = append(history, entry)
	}
	return history, nil
}

// decodeResponseEntry matches the status against the known names from the
// right, since both the status names and some date layouts contain "_".
func decodeResponseEntry(token string) (ResponseEntry, error) {
	var (
		matched ApplicationStatus
		cut     = -1
	)
	for _, status := range ApplicationStatuses {
		suffix := historyFieldSeparator + string(status)
		if strings.HasSuffix(token, suffix) && len(status) > len(matched) {
			matched = status
			cut = len(token) - len(suffix)
		}
	}
	if cut < 0 {
		return ResponseEntry{}, fmt.Errorf("response history entry %q: unknown status", token)
	}
	date, err := ParseDate(token[:cut])
	if err != nil {
		return ResponseEntry{}, fmt.Errorf("response history entry %q: %w", token, err)
	}
	return ResponseEntry{Date: date, Status: matched}, nil
}

// Scan implements sql.Scanner. Tokens that cannot be decoded are kept verbatim.
func (h *ResponseHistory) Scan(value interface{}) error {
	var encoded string
	switch v := value.(type) {
	case nil:
	case []byte:
		encoded = string(v)
	case string:
		encoded = v
	default:
		return fmt.Errorf("unsupported response history type %T", value)
	}

	history := ResponseHistory{}
	if strings.TrimSpace(encoded) != "" {
		for _, token := range strings.Split(encoded, historyEntrySeparator) {
			if token == "" {
				continue
			}
			entry, err := decodeResponseEntry(token)
			if err != nil {
				entry = ResponseEntry{raw: token}
			}
			history = append(history, entry)
		}
	}
	*h = history
	return nil
}

// Value implements driver.Valuer.
func (h ResponseHistory) Value() (driver.Value, error) {
	return h.Encode(), nil
}
