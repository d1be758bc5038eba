// Package diag defines the diagnostic model shared by all tool adapters.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by external linter / type-checker / security
//     tool runs.
//   - Offer light-weight utilities (Bag, Group, Report) that let tool
//     adapters emit diagnostics without coupling to concrete rendering
//     layers.
//
// # Scope
//
// Package diag performs no IO, subprocess management, or CLI
// integration. Rendering lives in internal/diagfmt, tool invocation in
// internal/runner, and per-tool output parsing in internal/toolchain.
//
// # Data model
//
// Diagnostic is the central record: tool name, file position, rule
// identifier, severity, and message. Bag accumulates diagnostics from a
// run up to a cap and supports sorting, deduplication, and target-file
// filtering.
//
// Report is the aggregated, order-preserving view handed to renderers:
// diagnostics scoped to the edited file, collapsed into Groups keyed by
// (rule, normalized message). The pipeline is intentionally strict
// about two invariants: every group member belongs to the report
// target, and grouping is stable regardless of input order.
package diag
