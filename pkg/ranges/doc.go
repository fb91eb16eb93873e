// Package ranges normalizes npm-style version ranges for comparison.
//
// # Overview
//
// Manifests declare dependencies as range strings ("^17.0.0", ">=1.2.3 <2",
// "workspace:*"). The checkers in this module need three things from them:
//
//   - [IsLocal]: whether a range points at a sibling package or a path
//     rather than a registry version
//   - [Clean]: a single concrete MAJOR.MINOR.PATCH version extracted from a
//     range, used as "the version that is provided"
//   - [Satisfies]: whether a concrete version falls inside a range
//
// All helpers are permissive. Input that cannot be understood is reported as
// unresolvable ([Clean]) or compatible ([Satisfies]) instead of an error, so
// callers never raise findings for manifests they cannot reason about.
//
// # Drift
//
// [Classify] compares a declared range against a registry version and reports
// how far ahead the registry is, for freshness reports.
package ranges
