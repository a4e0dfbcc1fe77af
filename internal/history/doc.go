// Package history persists a log of reconciliation runs in SQLite so past
// checks can be listed from the CLI. Each run records its register and
// output paths plus the classification tallies.
package history
