// Package versions compares declared dependency versions with the latest
// versions published to a registry.
//
// # Overview
//
// A [Checker] owns a [Cache] of latest versions keyed by package name. The
// usual flow is one bulk [Checker.Prefetch] over every dependency name in a
// workspace, followed by one [Checker.CheckVersions] call per package:
//
//	checker := versions.NewChecker(npm.NewClient("", integrations.Options{}), versions.Options{})
//	checker.Prefetch(ctx, ws.DependencyNames())
//	for _, pkg := range ws.Packages() {
//	    for _, v := range checker.CheckVersions(ctx, pkg.DeclaredDependencies()) {
//	        fmt.Println(v.Package, v.Current, "->", v.Latest, v.Drift())
//	    }
//	}
//
// Prefetch de-duplicates names and fetches them concurrently, never more
// than Options.Concurrency at a time. After it returns, CheckVersions answers
// from the cache and only contacts the registry for names it has never seen
// resolved.
//
// # Failures
//
// Neither operation returns an error. A package the registry does not know,
// and a package whose lookup failed in transit, are both simply absent from
// the results and from the cache, so the next call tries again. The cause is
// passed to Options.Logger and to the registry hooks of the observability
// package.
package versions
