package workspace

import (
	"maps"
	"slices"
)

// PackageInfo is the dependency declaration of a single package.json.
type PackageInfo struct {
	Name                 string              `json:"name"`
	Version              string              `json:"version,omitempty"`
	Path                 string              `json:"-"` // manifest path on disk
	Dependencies         map[string]string   `json:"dependencies,omitempty"`
	DevDependencies      map[string]string   `json:"devDependencies,omitempty"`
	PeerDependencies     map[string]string   `json:"peerDependencies,omitempty"`
	PeerDependenciesMeta map[string]PeerMeta `json:"peerDependenciesMeta,omitempty"`
}

// PeerMeta holds the per-peer flags of peerDependenciesMeta.
type PeerMeta struct {
	Optional bool `json:"optional"`
}

// IsOptionalPeer reports whether peer is flagged optional.
func (p *PackageInfo) IsOptionalPeer(peer string) bool {
	return p.PeerDependenciesMeta[peer].Optional
}

// DeclaredDependencies returns dependencies and devDependencies in one map.
// A devDependency replaces a dependency of the same name.
func (p *PackageInfo) DeclaredDependencies() map[string]string {
	out := make(map[string]string, len(p.Dependencies)+len(p.DevDependencies))
	maps.Copy(out, p.Dependencies)
	maps.Copy(out, p.DevDependencies)
	return out
}

// DependencyNames returns the sorted names of all dependencies and
// devDependencies.
func (p *PackageInfo) DependencyNames() []string {
	return slices.Sorted(maps.Keys(p.DeclaredDependencies()))
}
