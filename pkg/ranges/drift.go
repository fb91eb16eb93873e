package ranges

import "github.com/Masterminds/semver/v3"

// Drift describes how far a registry version is ahead of a declared one.
type Drift string

const (
	DriftNone    Drift = "none"
	DriftPatch   Drift = "patch"
	DriftMinor   Drift = "minor"
	DriftMajor   Drift = "major"
	DriftUnknown Drift = "unknown"
)

// Classify compares the version cleaned from current against latest.
// DriftUnknown is returned when either side is not a usable version.
func Classify(current, latest string) Drift {
	cleaned, ok := Clean(current)
	if !ok {
		return DriftUnknown
	}
	cur, err := semver.NewVersion(cleaned)
	if err != nil {
		return DriftUnknown
	}
	lat, err := semver.NewVersion(latest)
	if err != nil {
		return DriftUnknown
	}

	switch {
	case !lat.GreaterThan(cur):
		return DriftNone
	case lat.Major() != cur.Major():
		return DriftMajor
	case lat.Minor() != cur.Minor():
		return DriftMinor
	default:
		return DriftPatch
	}
}

// Outdated reports whether the drift means a newer release exists.
func (d Drift) Outdated() bool {
	return d == DriftPatch || d == DriftMinor || d == DriftMajor
}
