package models

import (
	"time"
)

// Record is the persisted, on-disk shape of an Entry: six plain key/value
// text fields, kept human-readable so the store file is safe to inspect and
// edit by hand.
type Record struct {
	Site              string `json:"site"`
	Username          string `json:"username"`
	PasswordHash      string `json:"password_hash"`
	PasswordEncrypted string `json:"password_encrypted"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// timestampLayouts lists the accepted created_at/updated_at forms, most
// recent writer first. The zone-less layouts cover files written by the
// original Python tool (datetime.isoformat without offset).
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ToRecord converts the entry to its persisted form. Timestamps are written
// as RFC 3339 UTC.
func (e *Entry) ToRecord() Record {
	return Record{
		Site:              e.Site,
		Username:          e.Username,
		PasswordHash:      e.PasswordHash,
		PasswordEncrypted: e.PasswordEncrypted,
		CreatedAt:         e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// FromRecord converts a persisted record back into an Entry. Partially
// corrupt records are tolerated rather than rejected: missing text fields
// stay empty and missing or unparseable timestamps default to the current
// time.
func FromRecord(r Record) Entry {
	return Entry{
		Site:              r.Site,
		Username:          r.Username,
		PasswordHash:      r.PasswordHash,
		PasswordEncrypted: r.PasswordEncrypted,
		CreatedAt:         parseTimestamp(r.CreatedAt),
		UpdatedAt:         parseTimestamp(r.UpdatedAt),
	}
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return now()
}
