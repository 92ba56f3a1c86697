// Package store provides the persistence layer for vault entries.
//
// # Overview
//
// FileStore keeps the whole vault in a single human-readable JSON file: an
// ordered array of six-field records (see internal/models.Record). Every
// mutation rewrites the file wholesale; there is no partial or streaming
// state. The file location is injected, which keeps the store testable and
// lets configuration override the default path.
//
// # Failure policy
//
// Load fails open: a corrupt store file is reported via
// common.ErrorStorageCorrupt but yields an empty vault instead of blocking
// the tool. This deliberately trades potential silent data loss for
// usability after a bad write. Save writes through a uniquely named
// temporary file and renames it into place so no torn file is ever
// observable.
//
// # Concurrency
//
// The file is not locked against other processes. Two writers racing a save
// clobber each other last-writer-wins; this is an accepted limitation for a
// single-operator local tool.
//
// # Migration
//
// EnsureInitialized consumes an older line-oriented text store once,
// re-encrypting its records with the session secret and renaming the old
// file to *.bak.
package store
