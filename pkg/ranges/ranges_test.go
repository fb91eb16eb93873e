package ranges

import "testing"

func TestIsLocal(t *testing.T) {
	tests := []struct {
		rng  string
		want bool
	}{
		{"workspace:*", true},
		{"workspace:^1.0.0", true},
		{"file:../shared", true},
		{"^1.0.0", false},
		{"", false},
		{"link:../x", false},
	}

	for _, tt := range tests {
		t.Run(tt.rng, func(t *testing.T) {
			if got := IsLocal(tt.rng); got != tt.want {
				t.Errorf("IsLocal(%q) = %v, want %v", tt.rng, got, tt.want)
			}
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name   string
		rng    string
		want   string
		wantOK bool
	}{
		{"exact", "18.2.0", "18.2.0", true},
		{"caret", "^18.2.0", "18.2.0", true},
		{"tilde", "~1.2.3", "1.2.3", true},
		{"comparator", ">=1.2.3", "1.2.3", true},
		{"compound takes lower bound", ">=1.2.3 <2.0.0", "1.2.3", true},
		{"prerelease dropped", "^1.2.3-beta.1", "1.2.3", true},
		{"v prefix", "v2.0.1", "2.0.1", true},
		{"or range takes first", "^16.8.0 || ^17.0.0", "16.8.0", true},
		{"workspace", "workspace:^1.0.0", "", false},
		{"file", "file:../pkg", "", false},
		{"star", "*", "", false},
		{"tag", "latest", "", false},
		{"x-range", "1.x", "", false},
		{"partial", "^17.0", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Clean(tt.rng)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Clean(%q) = (%q, %v), want (%q, %v)", tt.rng, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"^16.8.0||^17.0.0", "^16.8.0 || ^17.0.0"},
		{"  >=1.0.0    <2.0.0 ", ">=1.0.0 <2.0.0"},
		{"^1.0.0 ||  ^2.0.0", "^1.0.0 || ^2.0.0"},
		{"^1.0.0", "^1.0.0"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version string
		rng     string
		want    bool
	}{
		{"17.1.0", "^17.0.0", true},
		{"18.2.0", "^17.0.0", false},
		{"17.0.2", "^16.8.0||^17.0.0", true},
		{"15.0.0", "^16.8.0||^17.0.0", false},
		{"1.5.0", ">=1.0.0 <2.0.0", true},
		{"2.0.0", ">=1.0.0 <2.0.0", false},
		{"1.2.9", "~1.2.0", true},
		{"1.3.0", "~1.2.0", false},
		{"1.4.0", "1.x", true},
		{"3.0.0", "*", true},

		// unparseable input is compatible
		{"1.0.0", "not-a-range", true},
		{"1.0.0", "latest", true},
		{"garbage", "^1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.version+" in "+tt.rng, func(t *testing.T) {
			if got := Satisfies(tt.version, tt.rng); got != tt.want {
				t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.version, tt.rng, got, tt.want)
			}
		})
	}
}
