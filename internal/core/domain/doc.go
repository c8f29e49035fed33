// Package domain defines the core business entities for Tenure.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ProfileID: An opaque handle for one external profile
//   - ProfileDocument: Exported document bytes for one profile
//   - LayoutElement: A positioned text fragment inside a document
//   - PersonRecord: Extracted career history for one person
//   - RunSummary: Per-run outcome counters
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
