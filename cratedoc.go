// Package cratedoc resolves Rust symbol paths (e.g. serde::Deserialize::deserialize)
// against published crate documentation, extracts the matching page into a
// structured document, and supports stateful drill-down into its sections.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package cratedoc
