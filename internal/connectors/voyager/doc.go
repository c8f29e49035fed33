// Package voyager implements the connector for the external profile
// source's voyager-style API.
//
// The connector covers three endpoints:
//
//   - People search: paged GraphQL queries yielding profile identifiers
//   - Export trigger: requests a server-side document export for one
//     profile and returns a transient download URL
//   - Document fetch: downloads the exported bytes
//
// All requests carry the configured session cookie and a CSRF token
// pair, and pass through a proactive rate limiter. The connector has no
// intrinsic retry logic; retries are a pipeline-level policy.
package voyager
