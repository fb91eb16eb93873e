package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	got := fill(Info{Version: "dev", Commit: "none", Date: "unknown"}, bi)
	want := Info{Version: "v0.3.0", Commit: "abc123", Date: "2026-01-02T03:04:05Z"}
	if got != want {
		t.Errorf("fill() = %+v, want %+v", got, want)
	}
}

func TestFillKeepsLdflags(t *testing.T) {
	bi := &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	}
	in := Info{Version: "v1.0.0", Commit: "fff", Date: "2026-10-01"}
	if got := fill(in, bi); got != in {
		t.Errorf("fill() = %+v, want ldflags values %+v", got, in)
	}
}

func TestFillDevelBuild(t *testing.T) {
	bi := &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}
	if got := fill(Info{Version: "dev"}, bi); got.Version != "dev" {
		t.Errorf("Version = %q, want dev", got.Version)
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") || !strings.Contains(tmpl, "commit: ") {
		t.Errorf("Template() = %q", tmpl)
	}
}
