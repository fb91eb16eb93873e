// Package pkg provides the libraries behind depaudit, a dependency auditor
// for npm workspaces.
//
// # Overview
//
// depaudit answers two questions about a monorepo:
//
//  1. Are the peer dependencies each workspace member declares actually
//     provided, and at a compatible version? See [peers].
//  2. How far behind the registry's latest release is every declared
//     dependency? See [versions].
//
// # Layout
//
//   - [workspace]: package.json and "workspaces" loading
//   - [peers]: peer dependency checker (pure, no I/O)
//   - [versions]: latest-version checker with an owned cache
//   - [ranges]: version cleaning, range satisfaction and drift
//   - [pool]: bounded-concurrency driver used by the version checker
//   - [integrations]: registry HTTP clients (npm)
//   - [httputil]: retry helpers for registry clients
//   - [observability]: optional hooks for registry, cache and HTTP events
//   - [errors]: structured errors with machine-readable codes
//   - [buildinfo]: version information injected at build time
//
// # Quick Start
//
//	ws, err := workspace.Load(".")
//	if err != nil {
//	    return err
//	}
//
//	for _, issue := range peers.NewChecker().Check(ws.Members, &ws.Root) {
//	    fmt.Println(issue.Package, issue.Detail)
//	}
//
//	checker := versions.NewChecker(npm.NewClient("", integrations.Options{}), versions.Options{})
//	checker.Prefetch(ctx, ws.DependencyNames())
//	for _, v := range checker.CheckVersions(ctx, ws.Root.DeclaredDependencies()) {
//	    fmt.Println(v.Package, v.Current, v.Latest, v.Drift())
//	}
//
// [workspace]: github.com/matzehuels/depaudit/pkg/workspace
// [peers]: github.com/matzehuels/depaudit/pkg/peers
// [versions]: github.com/matzehuels/depaudit/pkg/versions
// [ranges]: github.com/matzehuels/depaudit/pkg/ranges
// [pool]: github.com/matzehuels/depaudit/pkg/pool
// [integrations]: github.com/matzehuels/depaudit/pkg/integrations
// [httputil]: github.com/matzehuels/depaudit/pkg/httputil
// [observability]: github.com/matzehuels/depaudit/pkg/observability
// [errors]: github.com/matzehuels/depaudit/pkg/errors
// [buildinfo]: github.com/matzehuels/depaudit/pkg/buildinfo
package pkg
