// Package kvstore is the persistent key-value layer every habitkeeper record
// lives in: string keys mapped to textual values, with get/set/delete plus
// enumeration for export and snapshot replacement for import.
//
// Backends
//
//   - SQLStore over SQLite (modernc.org/sqlite), the default: one local file.
//   - SQLStore over PostgreSQL (pgx stdlib driver).
//   - MemoryStore: process-local map, used by tests and ephemeral runs.
//
// Open picks a backend by driver name and applies the embedded goose
// migrations for the SQL dialects.
//
// Get returns (nil, nil) for an absent key. Callers treat an empty value the
// same as an absent one.
package kvstore
