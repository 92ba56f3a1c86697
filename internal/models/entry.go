// Package models defines the credential record type and its construction and
// mutation rules.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/avidalv/passvault/internal/common"
	"github.com/avidalv/passvault/internal/cryptox"
)

// Entry is one stored credential record.
//
// PasswordHash and PasswordEncrypted always describe the same underlying
// plaintext password: they are computed together on creation and on every
// password update, never independently. CreatedAt is set once; UpdatedAt is
// bumped on every mutation of site, username, or password.
type Entry struct {
	Site              string
	Username          string
	PasswordHash      string
	PasswordEncrypted string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// now is a test seam for the clock.
var now = func() time.Time { return time.Now().UTC() }

// NewEntry builds a vault entry ready for storage. Site and username are
// trimmed; an empty site, username, or password is a validation error.
// The password is fingerprinted with HashText and encrypted with the
// administrator secret in one step.
func NewEntry(site, username, password string, secret []byte) (*Entry, error) {
	site = strings.TrimSpace(site)
	username = strings.TrimSpace(username)

	switch {
	case site == "":
		return nil, fmt.Errorf("site is required: %w", common.ErrorValidation)
	case username == "":
		return nil, fmt.Errorf("username is required: %w", common.ErrorValidation)
	case password == "":
		return nil, fmt.Errorf("password is required: %w", common.ErrorValidation)
	}

	ts := now()
	return &Entry{
		Site:              site,
		Username:          username,
		PasswordHash:      cryptox.HashText(password),
		PasswordEncrypted: cryptox.EncryptPassword(password, secret),
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}, nil
}

// UpdatePassword recomputes the password hash and ciphertext together and
// bumps UpdatedAt. An empty password is a validation error and leaves the
// entry untouched.
func (e *Entry) UpdatePassword(newPassword string, secret []byte) error {
	if newPassword == "" {
		return fmt.Errorf("password is required: %w", common.ErrorValidation)
	}
	e.PasswordHash = cryptox.HashText(newPassword)
	e.PasswordEncrypted = cryptox.EncryptPassword(newPassword, secret)
	e.UpdatedAt = now()
	return nil
}

// UpdateIdentity replaces the site and/or username with the trimmed new
// values. Empty arguments keep the current value. UpdatedAt is bumped only
// when at least one field was provided.
func (e *Entry) UpdateIdentity(newSite, newUsername string) {
	newSite = strings.TrimSpace(newSite)
	newUsername = strings.TrimSpace(newUsername)

	changed := false
	if newSite != "" {
		e.Site = newSite
		changed = true
	}
	if newUsername != "" {
		e.Username = newUsername
		changed = true
	}
	if changed {
		e.UpdatedAt = now()
	}
}
