// Package peers checks declared peer dependencies against what a workspace
// provides.
//
// # Overview
//
// A package's peerDependencies name packages it expects its consumer to
// install. [Checker.Check] looks up every declared peer in the package's own
// dependencies and devDependencies, then in the root package, and reports:
//
//   - [MissingPeer] when nothing provides the peer
//   - [IncompatiblePeer] when the provided version falls outside the
//     declared range
//
// Peers declared with a workspace: or file: range are skipped, and provided
// ranges without a concrete version triple ("*", "latest") are assumed
// compatible. Check is pure: it performs no I/O and never fails.
//
// # Usage
//
//	checker := peers.NewChecker(peers.WithSkipOptional())
//	for _, issue := range checker.Check(ws.Members, &ws.Root) {
//	    fmt.Printf("%s: %s\n", issue.Package, issue.Detail)
//	}
package peers
