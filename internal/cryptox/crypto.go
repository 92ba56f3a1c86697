// Package cryptox implements the hashing and reversible password encryption
// used by the vault.
//
// Passwords are fingerprinted with SHA-256 for verification and, separately,
// encrypted with a repeating-key XOR stream keyed by the administrator
// secret, so they can be displayed in plain text once the administrator has
// authenticated. The scheme is intentionally kept compatible with vault
// files produced by earlier versions of the tool: the key is the SHA-256
// digest of the secret and the ciphertext is URL-safe base64.
//
// Note that repeating-key XOR carries no integrity check. Decrypting with
// the wrong secret does not fail cleanly; it produces garbage bytes that are
// only rejected when they fail UTF-8 validation. See DecryptPassword.
package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/avidalv/passvault/internal/common"
)

// HashText returns the lowercase hex SHA-256 digest of text.
// It is used both to verify the administrator secret and to fingerprint
// stored passwords; it is never reversed.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// DeriveKey expands the administrator secret into a fixed-length symmetric
// key (the raw SHA-256 digest, 32 bytes). The derivation is deterministic:
// the same secret always yields the same key.
func DeriveKey(secret []byte) []byte {
	sum := sha256.Sum256(secret)
	return sum[:]
}

// EncryptPassword encrypts plain with a repeating-key XOR stream derived
// from secret and returns the result as URL-safe base64 text.
//
// The transform is its own inverse: DecryptPassword with the same secret
// reproduces plain exactly.
func EncryptPassword(plain string, secret []byte) string {
	key := DeriveKey(secret)
	data := []byte(plain)
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return base64.URLEncoding.EncodeToString(out)
}

// DecryptPassword reverses EncryptPassword.
//
// It fails with an error wrapping common.ErrorDecryption when encoded is not
// valid base64 or when the decrypted bytes are not valid UTF-8 (the usual
// symptom of a wrong secret or corrupted ciphertext). A wrong secret whose
// XOR output happens to be valid UTF-8 succeeds silently and returns
// unrelated text; the cipher has no way to detect that case.
func DecryptPassword(encoded string, secret []byte) (string, error) {
	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %v: %w", err, common.ErrorDecryption)
	}
	key := DeriveKey(secret)
	for i := range data {
		data[i] ^= key[i%len(key)]
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decrypted bytes are not valid text: %w", common.ErrorDecryption)
	}
	return string(data), nil
}
