// Package sqlite provides a SQLite-backed build ledger.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files;
// only the up files are applied.
//
// # Data Location
//
// The database path comes from the ledger.path setting, resolved against the
// project root by the CLI.
package sqlite
