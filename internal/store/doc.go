// Package store provides SQLite access for the refined CLI.
//
// It has two roles:
//   - Open creates or opens a run log, where check runs and their
//     violations are recorded (see schema.sql)
//   - OpenSource opens an existing database read-only so a column can be
//     audited against a rule with ReadColumn
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Runs are ordered by seq, a logical clock, never by wall time.
package store
