// Package auth verifies the administrator identity and produces the session
// secret that keys every encrypt/decrypt call for the rest of the session.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/avidalv/passvault/internal/common"
	"github.com/avidalv/passvault/internal/cryptox"
	"github.com/avidalv/passvault/internal/logging"
)

// AdminUsername is the fixed administrator identity.
const AdminUsername = "admin"

// adminPasswordHash is the hex SHA-256 digest of the administrator password.
const adminPasswordHash = "03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4"

// CredentialProvider supplies one username/password candidate per call,
// typically by prompting the user. The password slice is owned by the
// authenticator afterwards.
type CredentialProvider func(ctx context.Context) (username string, password []byte, err error)

// Authenticator gates access to the vault's plaintext secrets.
type Authenticator struct {
	log logging.Logger
}

func New(log logging.Logger) *Authenticator {
	return &Authenticator{log: log}
}

// Verify reports whether the credentials belong to the administrator. The
// digest comparison is constant-time.
func (a *Authenticator) Verify(username string, password []byte) bool {
	if username != AdminUsername {
		return false
	}
	digest := cryptox.HashText(string(password))
	return subtle.ConstantTimeCompare([]byte(digest), []byte(adminPasswordHash)) == 1
}

// Login calls the provider up to maxAttempts times and returns the verified
// plaintext password on success. The plaintext is the session secret: it is
// the key material for every subsequent encrypt/decrypt call, which is why a
// boolean would not do.
//
// Rejected candidates are wiped. When the attempts are exhausted, or the
// provider fails, no secret is produced and the error wraps
// common.ErrorAuthExhausted.
func (a *Authenticator) Login(ctx context.Context, provider CredentialProvider, maxAttempts int) ([]byte, error) {
	for attempt := maxAttempts; attempt > 0; attempt-- {
		username, password, err := provider(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading credentials: %v: %w", err, common.ErrorAuthExhausted)
		}

		if a.Verify(username, password) {
			a.log.Info(ctx, "administrator authenticated")
			return password, nil
		}

		common.WipeByteArray(password)
		a.log.Warn(ctx, "invalid credentials", "attempts_remaining", attempt-1)
	}
	return nil, common.ErrorAuthExhausted
}
