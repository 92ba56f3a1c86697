// Package service exposes the vault operations the presentation layer calls:
// Add, List, Edit, Remove, and session bootstrap (Init).
//
// The service is stateless. The session secret obtained from
// internal/auth.Login is threaded explicitly through every operation that
// encrypts or decrypts; it is never stored here or anywhere else. Results
// and errors are structured — no formatted text, colors, or tables — so any
// front end can render them.
package service
