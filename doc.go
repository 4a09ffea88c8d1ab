// Package costbasis computes realized and unrealized capital gains of
// securities held across several accounts, matching disposals against
// acquisitions in first-in first-out order.
//
// The core functionalities include:
//   - Lots: every acquisition becomes a Lot that keeps its acquisition date and
//     cost basis, even when moved to another account by a transfer.
//   - Sales: every disposal is matched against the oldest lots of its account,
//     producing one Sale per lot touched. Disposals that no lot can cover are
//     kept as pending sales and retried on the next acquisition.
//   - Splits: applied to every account at the right point in time, keeping
//     equities to a whole number of shares.
//   - Reporting: capital gains by holding period, open lots grouped by
//     security type and by security, and pending sales as data-integrity
//     warnings.
//   - Data Persistence: a human-readable, version-controllable JSONL ledger
//     format and quotes extracted from any JSON document.
//
// This package serves as the foundational logic for the `cgt` command-line
// tool.
package costbasis
