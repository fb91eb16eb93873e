// Package integrations provides the HTTP client shared by package registry
// API clients.
//
// # Overview
//
// Registry subpackages build on [Client], which handles:
//   - a request timeout on every call ([DefaultTimeout] unless configured)
//   - DNS caching for the registry host
//   - optional retry of transient failures (see [httputil.Retry])
//   - an optional circuit breaker that stops calling a failing registry
//
// Currently implemented:
//
//   - [npm]: latest-version lookups against the npm registry
//
// # Errors
//
// Failures are classified with sentinel errors so callers can branch with
// [errors.Is]:
//
//   - [ErrNotFound]: the registry has no such package (HTTP 404)
//   - [ErrNetwork]: transport failures, unexpected statuses, undecodable
//     bodies and an open circuit ([ErrCircuitOpen] is wrapped as well)
//
// A 404 never counts as a breaker failure: a workspace full of private
// packages must not take the public registry offline for the whole run.
//
// [npm]: github.com/matzehuels/depaudit/pkg/integrations/npm
// [httputil.Retry]: github.com/matzehuels/depaudit/pkg/httputil.Retry
package integrations
