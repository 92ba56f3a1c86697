// Package common defines shared sentinel errors and small utilities used
// across the vault layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Entry/index lookup errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors (empty or missing required fields).
	ErrorValidation = errors.New("validation error")

	// Ciphertext failed to decode to valid text under the supplied secret.
	ErrorDecryption = errors.New("decryption error")

	// Store file exists but is not parseable; the vault is treated as empty.
	ErrorStorageCorrupt = errors.New("storage corrupt")

	// Administrator login attempts exhausted; no session secret produced.
	ErrorAuthExhausted = errors.New("authentication attempts exhausted")
)
