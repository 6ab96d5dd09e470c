// Package dashboard implements the core of a project-portfolio dashboard:
// a local, single-writer store of project records with an append-only audit
// trail, plus the spreadsheet ingestion that seeds it.
//
// The main pieces are:
//   - Persistence & Audit Store: create/update/delete operations over a
//     key-value blob of two JSON collections (projects, audit log), where
//     every successful mutation appends exactly one immutable audit entry.
//   - Ingestion Mapper: heuristic mapping of an arbitrary workbook (sheet
//     names, headers, date and status spellings all chosen by spreadsheet
//     authors) onto the canonical project schema, committed all-or-nothing.
//   - Reports & Notifications: KPI aggregates and read-only deadline alerts
//     recomputed from the stored projects.
//   - Interchange: xlsx export of filtered project lists and versioned JSON
//     backup/restore of the whole store.
//
// This package is the foundation of the `wrd` command-line tool; all
// presentation lives there and in the renderer package.
package dashboard
