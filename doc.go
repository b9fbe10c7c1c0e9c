// Package spend provides the types and functions of a single-user expense
// ledger. It is designed to be local-first: all the data lives in memory
// while a command runs and is persisted to a file on the user's disk.
//
// The core functionalities include:
//   - Store: an ordered collection of [Expense] records with identifiers
//     that are never reused, and a bounded vocabulary of categories.
//   - Queries: filtered listings (category, inclusive date range,
//     description substring), totals grouped by category and monthly
//     summaries.
//   - Persistence: a compact binary snapshot of the exact store state
//     (see [SaveSnapshot]) and a human-readable CSV import/export format
//     (see [ExportCSV] and [ImportCSV]).
//
// Dates are kept as text in the DD-MM-YYYY form. Text fields have fixed
// bounds inherited from the snapshot layout, longer values are silently
// truncated.
//
// A Store is not safe for concurrent use. It is meant to be owned by a
// single caller, typically the `spend` command line tool.
package spend
