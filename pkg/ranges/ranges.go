package ranges

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Local range protocols. Ranges using them are not registry versions.
const (
	WorkspacePrefix = "workspace:"
	FilePrefix      = "file:"
)

var (
	leadingOperators = regexp.MustCompile(`^[\^~>=<]+`)
	versionTriple    = regexp.MustCompile(`\d+\.\d+\.\d+`)
	whitespace       = regexp.MustCompile(`\s+`)
)

// IsLocal reports whether rng links to a workspace sibling or a file path.
func IsLocal(rng string) bool {
	return strings.HasPrefix(rng, WorkspacePrefix) || strings.HasPrefix(rng, FilePrefix)
}

// Clean extracts a bare MAJOR.MINOR.PATCH version from a range string.
//
// Leading comparison, caret and tilde operators are stripped and the first
// version triple found is returned. For complex ranges such as
// ">=1.2.3 <2.0.0" that is the lower bound. ok is false for local ranges and
// for ranges without a full version triple ("*", "latest", "1.x").
func Clean(rng string) (version string, ok bool) {
	if IsLocal(rng) {
		return "", false
	}
	stripped := leadingOperators.ReplaceAllString(rng, "")
	m := versionTriple.FindString(stripped)
	if m == "" {
		return "", false
	}
	return m, true
}

// Normalize spaces out the OR separator and collapses whitespace.
func Normalize(rng string) string {
	rng = strings.ReplaceAll(rng, "||", " || ")
	return strings.TrimSpace(whitespace.ReplaceAllString(rng, " "))
}

// Satisfies reports whether version lies within rng.
// It returns true when either side cannot be parsed.
func Satisfies(version, rng string) bool {
	c, err := semver.NewConstraint(Normalize(rng))
	if err != nil {
		return true
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return true
	}
	return c.Check(v)
}
