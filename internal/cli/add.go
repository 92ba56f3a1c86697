package cli

import (
	"context"
	"fmt"

	"github.com/avidalv/passvault/internal/common"
)

// Add prompts for a new credential and stores it.
func (a *App) Add(ctx context.Context) error {
	fmt.Fprintln(a.out, titleStyle.Render("Add credential"))

	site, err := getSimpleText(a.reader, "Site / application", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Username / email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.vault.Add(ctx, site, username, string(password), a.secret); err != nil {
		fmt.Fprintln(a.out, errorStyle.Render("Could not store credential: "+err.Error()))
		return err
	}

	fmt.Fprintln(a.out, successStyle.Render("Credential stored."))
	return nil
}
