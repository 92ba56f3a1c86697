package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avidalv/passvault/internal/models"
	"github.com/avidalv/passvault/internal/service"
)

func listing(entries ...models.Entry) []service.ListedEntry {
	rows := make([]service.ListedEntry, len(entries))
	for i, e := range entries {
		rows[i] = service.ListedEntry{Entry: e}
	}
	return rows
}

func sites(rows []service.ListedEntry) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Entry.Site
	}
	return out
}

func TestSortRows(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := models.Entry{Site: "bravo.com", Username: "zoe", CreatedAt: t0, UpdatedAt: t0.Add(2 * time.Hour)}
	b := models.Entry{Site: "Alpha.com", Username: "amy", CreatedAt: t0.Add(time.Hour), UpdatedAt: t0}

	tests := []struct {
		name   string
		option string
		want   []string
	}{
		{"by site case-insensitive", "1", []string{"Alpha.com", "bravo.com"}},
		{"by username", "2", []string{"Alpha.com", "bravo.com"}},
		{"newest created first", "3", []string{"Alpha.com", "bravo.com"}},
		{"newest updated first", "4", []string{"bravo.com", "Alpha.com"}},
		{"unknown option keeps order", "9", []string{"bravo.com", "Alpha.com"}},
		{"empty option keeps order", "", []string{"bravo.com", "Alpha.com"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := listing(a, b)
			sortRows(rows, tc.option)
			assert.Equal(t, tc.want, sites(rows))
		})
	}
}

func TestFilterRows(t *testing.T) {
	rows := listing(
		models.Entry{Site: "github.com", Username: "alice"},
		models.Entry{Site: "gitlab.com", Username: "bob"},
		models.Entry{Site: "example.org", Username: "Alice"},
	)

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty keeps all", "", []string{"github.com", "gitlab.com", "example.org"}},
		{"whitespace keeps all", "   ", []string{"github.com", "gitlab.com", "example.org"}},
		{"matches site", "hub", []string{"github.com"}},
		{"matches username case-insensitive", "ALICE", []string{"github.com", "example.org"}},
		{"no matches", "zzz", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sites(filterRows(rows, tc.term)))
		})
	}
}
