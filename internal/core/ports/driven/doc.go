// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ProfileSearcher: Yields profile identifiers from paged searches
//   - DocumentExporter: Triggers remote export and downloads document bytes
//   - DocumentArchive: Write-once durable storage for exported documents
//   - DocumentDecoder: Turns document bytes into positioned layout elements
//   - Extractor: Classifies layout elements into a person record
//   - Repository: Persists the employee/experience/education tables
//   - SettingsStore: Pipeline configuration
//
// # Optional Interfaces
//
//   - RetryPolicy: Wraps transient-failure operations. A nil policy means
//     a single attempt with no retries.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or extractor package
package driven
