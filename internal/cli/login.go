package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avidalv/passvault/internal/common"
)

// login authenticates the administrator and keeps the verified password as
// the session secret. Per-attempt feedback is printed here; the bounded
// retry itself lives in the auth package.
func (a *App) login(ctx context.Context) error {
	fmt.Fprintln(a.out, banner())
	fmt.Fprintln(a.out, warnStyle.Render("Administrator login is required to continue."))
	fmt.Fprintln(a.out)

	first := true
	provider := func(ctx context.Context) (string, []byte, error) {
		if !first {
			fmt.Fprintln(a.out, errorStyle.Render("Invalid credentials."))
		}
		first = false

		username, err := getSimpleText(a.reader, "Username", a.out)
		if err != nil {
			return "", nil, err
		}
		password, err := getPassword("Password", a.out)
		if err != nil {
			return "", nil, err
		}
		return username, password, nil
	}

	secret, err := a.auth.Login(ctx, provider, a.config.MaxLoginAttempts)
	if err != nil {
		if errors.Is(err, common.ErrorAuthExhausted) {
			fmt.Fprintln(a.out, errorStyle.Render("Login attempts exhausted. Exiting."))
		}
		return err
	}

	a.secret = secret
	fmt.Fprintln(a.out, successStyle.Render("Access granted."))
	fmt.Fprintln(a.out)
	return nil
}
