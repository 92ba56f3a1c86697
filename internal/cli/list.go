package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/avidalv/passvault/internal/common"
	"github.com/avidalv/passvault/internal/service"
)

// displayTime is the timestamp format used in listings.
const displayTime = "02/01/2006 15:04"

// List shows the stored credentials with optional sorting and filtering,
// passwords decrypted with the session secret. Rows whose ciphertext does
// not decode are marked instead of aborting the listing.
func (a *App) List(ctx context.Context) error {
	listed, err := a.vault.List(ctx, a.secret)
	if err != nil {
		if errors.Is(err, common.ErrorStorageCorrupt) {
			fmt.Fprintln(a.out, warnStyle.Render("Warning: store file is unreadable; showing an empty vault."))
		} else {
			fmt.Fprintln(a.out, errorStyle.Render("Could not list credentials: "+err.Error()))
			return err
		}
	}
	if len(listed) == 0 {
		fmt.Fprintln(a.out, warnStyle.Render("No credentials stored yet."))
		return nil
	}

	fmt.Fprintln(a.out, titleStyle.Render("Sort options"))
	fmt.Fprintln(a.out, "1. Site (A-Z)")
	fmt.Fprintln(a.out, "2. Username (A-Z)")
	fmt.Fprintln(a.out, "3. Newest created first")
	fmt.Fprintln(a.out, "4. Newest updated first")
	option, err := getSimpleText(a.reader, "Choose an option (Enter to skip)", a.out)
	if err != nil {
		return err
	}
	sortRows(listed, option)

	term, err := getSimpleText(a.reader, "Filter by text (Enter for all)", a.out)
	if err != nil {
		return err
	}
	listed = filterRows(listed, term)

	a.renderTable(listed)
	return nil
}

// sortRows orders the listing in place according to the chosen option.
// Unknown options keep the stored order.
func sortRows(rows []service.ListedEntry, option string) {
	switch option {
	case "1":
		sort.SliceStable(rows, func(i, j int) bool {
			return strings.ToLower(rows[i].Entry.Site) < strings.ToLower(rows[j].Entry.Site)
		})
	case "2":
		sort.SliceStable(rows, func(i, j int) bool {
			return strings.ToLower(rows[i].Entry.Username) < strings.ToLower(rows[j].Entry.Username)
		})
	case "3":
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Entry.CreatedAt.After(rows[j].Entry.CreatedAt)
		})
	case "4":
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Entry.UpdatedAt.After(rows[j].Entry.UpdatedAt)
		})
	}
}

// filterRows keeps the rows whose site or username contains term
// (case-insensitive). An empty term keeps everything.
func filterRows(rows []service.ListedEntry, term string) []service.ListedEntry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return rows
	}
	filtered := make([]service.ListedEntry, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Entry.Site), term) ||
			strings.Contains(strings.ToLower(r.Entry.Username), term) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (a *App) renderTable(rows []service.ListedEntry) {
	if len(rows) == 0 {
		fmt.Fprintln(a.out, warnStyle.Render("No records to show."))
		return
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("#", "SITE", "USERNAME", "PASSWORD", "UPDATED")

	for i, r := range rows {
		password := r.Password
		if r.Err != nil {
			password = errorStyle.Render("<decrypt error>")
		}
		tbl.Row(
			strconv.Itoa(i+1),
			r.Entry.Site,
			r.Entry.Username,
			password,
			r.Entry.UpdatedAt.Format(displayTime),
		)
	}

	fmt.Fprintln(a.out, tbl.Render())
}
