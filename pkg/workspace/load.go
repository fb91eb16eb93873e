package workspace

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/depaudit/pkg/errors"
)

// ManifestName is the file name of an npm package manifest.
const ManifestName = "package.json"

// Workspace is a root package and its members.
type Workspace struct {
	Dir     string        // absolute root directory
	Root    PackageInfo   // root package.json
	Members []PackageInfo // members sorted by manifest path
}

// Packages returns the root followed by all members.
func (w *Workspace) Packages() []PackageInfo {
	return append([]PackageInfo{w.Root}, w.Members...)
}

// Member returns the member with the given package name.
func (w *Workspace) Member(name string) (PackageInfo, bool) {
	for _, m := range w.Members {
		if m.Name == name {
			return m, true
		}
	}
	return PackageInfo{}, false
}

// DependencyNames returns the sorted, de-duplicated dependency names declared
// anywhere in the workspace.
func (w *Workspace) DependencyNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range w.Packages() {
		for _, n := range p.DependencyNames() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	slices.Sort(names)
	return names
}

// Load reads dir/package.json and every member it lists.
func Load(dir string) (*Workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", dir)
	}

	root, globs, err := parseManifest(filepath.Join(abs, ManifestName))
	if err != nil {
		return nil, err
	}

	dirs, err := expandGlobs(abs, globs)
	if err != nil {
		return nil, err
	}

	ws := &Workspace{Dir: abs, Root: *root}
	for _, d := range dirs {
		m, _, err := parseManifest(filepath.Join(d, ManifestName))
		if err != nil {
			return nil, err
		}
		ws.Members = append(ws.Members, *m)
	}
	return ws, nil
}

// ParseManifest reads a single package.json.
func ParseManifest(path string) (*PackageInfo, error) {
	p, _, err := parseManifest(path)
	return p, err
}

func parseManifest(path string) (*PackageInfo, []string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found", path)
	}
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}

	var f packageFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}
	f.PackageInfo.Path = path
	if f.PackageInfo.Name == "" {
		f.PackageInfo.Name = filepath.Base(filepath.Dir(path))
	}
	return &f.PackageInfo, f.Workspaces.Patterns, nil
}

// expandGlobs resolves workspace globs to member directories holding a
// package.json. Negated patterns remove earlier matches.
func expandGlobs(root string, globs []string) ([]string, error) {
	set := make(map[string]bool)
	for _, g := range globs {
		negate := strings.HasPrefix(g, "!")
		pattern := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(g, "!")))

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "workspace pattern %q", g)
		}
		for _, m := range matches {
			if negate {
				delete(set, m)
				continue
			}
			if m == root {
				continue
			}
			if info, err := os.Stat(filepath.Join(m, ManifestName)); err == nil && !info.IsDir() {
				set[m] = true
			}
		}
	}

	dirs := make([]string, 0, len(set))
	for d := range set {
		dirs = append(dirs, d)
	}
	slices.Sort(dirs)
	return dirs, nil
}

type packageFile struct {
	PackageInfo
	Workspaces workspaces `json:"workspaces"`
}

// workspaces accepts both the array form and the {"packages": [...]} form.
type workspaces struct {
	Patterns []string
}

func (w *workspaces) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &w.Patterns)
	}
	var obj struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	w.Patterns = obj.Packages
	return nil
}
