package ranges

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    Drift
	}{
		{"^1.2.3", "1.2.3", DriftNone},
		{"^2.0.0", "1.9.9", DriftNone},
		{"^1.2.3", "1.2.4", DriftPatch},
		{"~1.2.3", "1.3.0", DriftMinor},
		{"^17.0.2", "18.3.1", DriftMajor},
		{"*", "1.0.0", DriftUnknown},
		{"workspace:*", "1.0.0", DriftUnknown},
		{"^1.0.0", "garbage", DriftUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.current+"->"+tt.latest, func(t *testing.T) {
			if got := Classify(tt.current, tt.latest); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}

func TestDriftOutdated(t *testing.T) {
	for _, d := range []Drift{DriftPatch, DriftMinor, DriftMajor} {
		if !d.Outdated() {
			t.Errorf("%q.Outdated() = false, want true", d)
		}
	}
	for _, d := range []Drift{DriftNone, DriftUnknown} {
		if d.Outdated() {
			t.Errorf("%q.Outdated() = true, want false", d)
		}
	}
}
