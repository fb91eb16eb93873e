package peers

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/depaudit/pkg/ranges"
	"github.com/matzehuels/depaudit/pkg/workspace"
)

// IssueType classifies a peer dependency problem.
type IssueType string

const (
	MissingPeer      IssueType = "missing-peer"
	IncompatiblePeer IssueType = "incompatible-peer"
)

// Issue is a single unmet or violated peer requirement.
type Issue struct {
	Package    string    `json:"package"`
	Dependency string    `json:"dependency"` // the package declaring the peer
	Peer       string    `json:"peer"`
	Type       IssueType `json:"type"`
	Detail     string    `json:"detail"`
}

// Checker evaluates peer requirements. The zero value is ready to use.
type Checker struct {
	skipOptional bool
	ignore       map[string]bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithSkipOptional suppresses missing-peer issues for peers marked optional
// in peerDependenciesMeta. Incompatible versions are still reported.
func WithSkipOptional() Option {
	return func(c *Checker) { c.skipOptional = true }
}

// WithIgnore excludes the named peers from checking.
func WithIgnore(names ...string) Option {
	return func(c *Checker) {
		if c.ignore == nil {
			c.ignore = make(map[string]bool, len(names))
		}
		for _, n := range names {
			c.ignore[n] = true
		}
	}
}

// NewChecker returns a Checker configured by opts.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns the peer issues of packages, in package order and then peer
// name order. root may be nil.
func (c *Checker) Check(packages []workspace.PackageInfo, root *workspace.PackageInfo) []Issue {
	available := rootPool(root)

	var issues []Issue
	for i := range packages {
		pkg := &packages[i]
		local := pkg.DeclaredDependencies()

		for _, peer := range slices.Sorted(maps.Keys(pkg.PeerDependencies)) {
			want := pkg.PeerDependencies[peer]
			if ranges.IsLocal(want) || c.ignore[peer] {
				continue
			}

			provided := local[peer]
			if provided == "" {
				provided = available[peer]
			}

			if provided == "" {
				if c.skipOptional && pkg.IsOptionalPeer(peer) {
					continue
				}
				issues = append(issues, Issue{
					Package:    pkg.Name,
					Dependency: pkg.Name,
					Peer:       peer,
					Type:       MissingPeer,
					Detail:     fmt.Sprintf("Peer dependency %s@%s is not installed", peer, want),
				})
				continue
			}

			version, ok := ranges.Clean(provided)
			if !ok || ranges.Satisfies(version, want) {
				continue
			}
			issues = append(issues, Issue{
				Package:    pkg.Name,
				Dependency: pkg.Name,
				Peer:       peer,
				Type:       IncompatiblePeer,
				Detail:     fmt.Sprintf("Peer requires %s@%s but found %s", peer, want, provided),
			})
		}
	}
	return issues
}

// CheckInstalledPeers validates pkg's peers against an installed
// node_modules tree. Reading installed packages is not supported yet, so it
// always reports no issues.
func (c *Checker) CheckInstalledPeers(ctx context.Context, pkg workspace.PackageInfo) ([]Issue, error) {
	return []Issue{}, nil
}

// rootPool returns the root's dependencies with devDependencies filling in
// names the regular dependencies do not declare.
func rootPool(root *workspace.PackageInfo) map[string]string {
	pool := make(map[string]string)
	if root == nil {
		return pool
	}
	maps.Copy(pool, root.Dependencies)
	for name, rng := range root.DevDependencies {
		if _, ok := pool[name]; !ok {
			pool[name] = rng
		}
	}
	return pool
}
