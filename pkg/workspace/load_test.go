package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/depaudit/pkg/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{
		"name": "mono",
		"private": true,
		"workspaces": ["packages/*", "apps/web"],
		"devDependencies": {"typescript": "^5.4.0"}
	}`)
	writeFile(t, filepath.Join(dir, "packages/ui/package.json"), `{
		"name": "@mono/ui",
		"version": "1.0.0",
		"dependencies": {"clsx": "^2.0.0"},
		"peerDependencies": {"react": "^18.0.0", "react-dom": "^18.0.0"},
		"peerDependenciesMeta": {"react-dom": {"optional": true}}
	}`)
	writeFile(t, filepath.Join(dir, "packages/core/package.json"), `{"name": "@mono/core"}`)
	writeFile(t, filepath.Join(dir, "packages/notes/README.md"), "no manifest here")
	writeFile(t, filepath.Join(dir, "apps/web/package.json"), `{"name": "web", "dependencies": {"next": "14.1.0"}}`)

	ws, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ws.Root.Name != "mono" {
		t.Errorf("Root.Name = %q, want mono", ws.Root.Name)
	}
	if got := ws.Root.DevDependencies["typescript"]; got != "^5.4.0" {
		t.Errorf("root typescript = %q", got)
	}

	var names []string
	for _, m := range ws.Members {
		names = append(names, m.Name)
	}
	want := []string{"web", "@mono/core", "@mono/ui"}
	if len(names) != len(want) {
		t.Fatalf("members = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("members[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	ui, ok := ws.Member("@mono/ui")
	if !ok {
		t.Fatal("Member(@mono/ui) not found")
	}
	if !ui.IsOptionalPeer("react-dom") || ui.IsOptionalPeer("react") {
		t.Error("peerDependenciesMeta not parsed")
	}
	if ui.Path != filepath.Join(ws.Dir, "packages", "ui", "package.json") {
		t.Errorf("Path = %q", ui.Path)
	}
	if _, ok := ws.Member("missing"); ok {
		t.Error("Member(missing) should not be found")
	}

	deps := ws.DependencyNames()
	wantDeps := []string{"clsx", "next", "typescript"}
	if len(deps) != len(wantDeps) {
		t.Fatalf("DependencyNames = %v, want %v", deps, wantDeps)
	}
	for i := range wantDeps {
		if deps[i] != wantDeps[i] {
			t.Errorf("DependencyNames[%d] = %q, want %q", i, deps[i], wantDeps[i])
		}
	}

	if got := len(ws.Packages()); got != 4 {
		t.Errorf("Packages() has %d entries, want 4", got)
	}
}

func TestLoadWorkspacesObjectForm(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{
		"name": "mono",
		"workspaces": {"packages": ["libs/*", "!libs/legacy"]}
	}`)
	writeFile(t, filepath.Join(dir, "libs/a/package.json"), `{"name": "a"}`)
	writeFile(t, filepath.Join(dir, "libs/legacy/package.json"), `{"name": "legacy"}`)

	ws, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ws.Members) != 1 || ws.Members[0].Name != "a" {
		t.Errorf("members = %+v, want only a", ws.Members)
	}
}

func TestLoadWithoutWorkspaces(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"name": "single", "dependencies": {"lodash": "4.17.21"}}`)

	ws, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ws.Members) != 0 {
		t.Errorf("members = %d, want 0", len(ws.Members))
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := Load(t.TempDir())
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("err = %v, want FILE_NOT_FOUND", err)
		}
	})

	t.Run("malformed root", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "package.json"), `{"name": `)
		_, err := Load(dir)
		if !errors.Is(err, errors.ErrCodeInvalidManifest) {
			t.Errorf("err = %v, want INVALID_MANIFEST", err)
		}
	})

	t.Run("malformed member", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "package.json"), `{"workspaces": ["pkgs/*"]}`)
		writeFile(t, filepath.Join(dir, "pkgs/bad/package.json"), `[]`)
		_, err := Load(dir)
		if !errors.Is(err, errors.ErrCodeInvalidManifest) {
			t.Errorf("err = %v, want INVALID_MANIFEST", err)
		}
	})
}

func TestParseManifestDefaultsName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools", "package.json")
	writeFile(t, path, `{"version": "0.1.0"}`)

	pkg, err := ParseManifest(path)
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if pkg.Name != "tools" {
		t.Errorf("Name = %q, want tools", pkg.Name)
	}
}
