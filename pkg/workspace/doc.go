// Package workspace loads npm-style workspaces from package.json manifests.
//
// # Overview
//
// A workspace is a root project plus the member packages listed by its
// "workspaces" field:
//
//	{
//	  "name": "my-monorepo",
//	  "private": true,
//	  "workspaces": ["packages/*", "apps/web"]
//	}
//
// The object form used by Yarn ({"packages": [...]}) is accepted too. Each
// glob is resolved relative to the root directory; a match becomes a member
// when it contains a package.json. Globs starting with "!" exclude matches.
//
// # Usage
//
//	ws, err := workspace.Load("path/to/repo")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, pkg := range ws.Members {
//	    fmt.Println(pkg.Name, len(pkg.PeerDependencies))
//	}
//
// # PackageInfo
//
// [PackageInfo] is the read-only input of the peer and version checkers. It
// keeps dependencies, devDependencies, peerDependencies and
// peerDependenciesMeta as declared; nothing is resolved or normalized here.
package workspace
