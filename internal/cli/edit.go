package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avidalv/passvault/internal/common"
	"github.com/avidalv/passvault/internal/models"
)

// selectEntry shows a numbered summary of the vault and asks for a row.
// It returns the 0-based index, or -1 when the vault is empty or the user
// cancels.
func (a *App) selectEntry(ctx context.Context) (int, error) {
	listed, err := a.vault.List(ctx, a.secret)
	if err != nil && !errors.Is(err, common.ErrorStorageCorrupt) {
		return -1, err
	}
	if len(listed) == 0 {
		fmt.Fprintln(a.out, warnStyle.Render("No records available."))
		return -1, nil
	}

	for i, r := range listed {
		fmt.Fprintf(a.out, "%s - %s (%s)\n",
			titleStyle.Render(fmt.Sprintf("%d", i+1)), r.Entry.Site, r.Entry.Username)
	}

	n, err := getSelection(a.reader, "Select a record (0 to cancel)", a.out)
	if err != nil {
		return -1, err
	}
	if n < 0 {
		fmt.Fprintln(a.out, errorStyle.Render("Invalid selection."))
		return -1, nil
	}
	if n == 0 {
		return -1, nil
	}
	if n > len(listed) {
		fmt.Fprintln(a.out, errorStyle.Render("Selection out of range."))
		return -1, nil
	}
	return n - 1, nil
}

// Edit lets the user modify an existing credential. Empty inputs keep the
// current values.
func (a *App) Edit(ctx context.Context) error {
	fmt.Fprintln(a.out, titleStyle.Render("Edit credential"))

	index, err := a.selectEntry(ctx)
	if err != nil || index < 0 {
		return err
	}

	current, err := a.currentEntry(ctx, index)
	if err != nil {
		return err
	}

	newSite, err := getSimpleText(a.reader, fmt.Sprintf("New site [%s]", current.Site), a.out)
	if err != nil {
		return err
	}
	newUsername, err := getSimpleText(a.reader, fmt.Sprintf("New username [%s]", current.Username), a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password (leave empty to keep)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if _, err := a.vault.Edit(ctx, index, newSite, newUsername, string(newPassword), a.secret); err != nil {
		a.reportVaultError(err)
		return err
	}

	fmt.Fprintln(a.out, successStyle.Render("Credential updated."))
	return nil
}

// Delete removes the selected credential.
func (a *App) Delete(ctx context.Context) error {
	fmt.Fprintln(a.out, titleStyle.Render("Delete credential"))

	index, err := a.selectEntry(ctx)
	if err != nil || index < 0 {
		return err
	}

	removed, err := a.vault.Remove(ctx, index)
	if err != nil {
		a.reportVaultError(err)
		return err
	}

	fmt.Fprintln(a.out, successStyle.Render(
		fmt.Sprintf("Removed credential for %s (%s).", removed.Site, removed.Username)))
	return nil
}

// currentEntry re-reads the entry at index for prompt defaults.
func (a *App) currentEntry(ctx context.Context, index int) (models.Entry, error) {
	listed, err := a.vault.List(ctx, a.secret)
	if err != nil && !errors.Is(err, common.ErrorStorageCorrupt) {
		return models.Entry{}, err
	}
	if index < 0 || index >= len(listed) {
		return models.Entry{}, fmt.Errorf("entry %d: %w", index, common.ErrorNotFound)
	}
	return listed[index].Entry, nil
}

func (a *App) reportVaultError(err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, errorStyle.Render("Selection out of range."))
	case errors.Is(err, common.ErrorValidation):
		fmt.Fprintln(a.out, errorStyle.Render("All fields are required: "+err.Error()))
	default:
		fmt.Fprintln(a.out, errorStyle.Render("Operation failed: "+err.Error()))
	}
}
