package settings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
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

func TestOverridePath(t *testing.T) {
	got := OverridePath("/src/app", "mn")
	if want := filepath.Join("/src/app", "gradle", "mn-override.versions.toml"); got != want {
		t.Errorf("OverridePath() = %q, want %q", got, want)
	}

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/src/app/gradle/mn-override.versions.toml", "mn", true},
		{"libs-override.versions.toml", "libs", true},
		{"-override.versions.toml", "", false},
		{"override.versions.toml", "", false},
		{"libs.versions.toml", "", false},
	}
	for _, tt := range tests {
		got, ok := CatalogOf(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CatalogOf(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, OverridePath(dir, "mn"), `
[versions]
micronaut-core = "4.1.0"
`)
	writeFile(t, OverridePath(dir, "broken"), `[versions`)

	m, ok, err := LoadOverride(dir, "mn")
	if err != nil || !ok {
		t.Fatalf("LoadOverride(mn) = %v, %v", ok, err)
	}
	if v, found := m.FindVersion("micronaut-core"); !found || v.Version.Require != "4.1.0" {
		t.Errorf("FindVersion() = %+v, %v", v, found)
	}

	m, ok, err = LoadOverride(dir, "missing")
	if m != nil || ok || err != nil {
		t.Errorf("LoadOverride(missing) = %v, %v, %v; want nil, false, nil", m, ok, err)
	}

	if _, _, err := LoadOverride(dir, "broken"); !errors.Is(err, versioncatalog.ErrMalformedCatalog) {
		t.Errorf("LoadOverride(broken) error = %v, want ErrMalformedCatalog", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, OverridePath(dir, "mn"), "[versions]\na = \"1\"\n")
	writeFile(t, OverridePath(dir, "libs"), "[versions]\nb = \"2\"\n")

	got, err := LoadOverrides(context.Background(), dir, []string{"mn", "libs", "other"})
	if err != nil {
		t.Fatalf("LoadOverrides() error: %v", err)
	}
	if len(got) != 2 || got["mn"] == nil || got["libs"] == nil {
		t.Errorf("LoadOverrides() = %v", got)
	}

	writeFile(t, OverridePath(dir, "broken"), "[versions")
	if _, err := LoadOverrides(context.Background(), dir, []string{"mn", "broken"}); !errors.Is(err, versioncatalog.ErrMalformedCatalog) {
		t.Errorf("LoadOverrides() error = %v, want ErrMalformedCatalog", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LoadOverrides(ctx, dir, []string{"mn"}); !errors.Is(err, context.Canceled) {
		t.Errorf("LoadOverrides(canceled) error = %v", err)
	}

	catalogs, err := DiscoverCatalogs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"broken", "libs", "mn"}; !slices.Equal(catalogs, want) {
		t.Errorf("DiscoverCatalogs() = %v, want %v", catalogs, want)
	}
}

func TestPlatformVersion(t *testing.T) {
	tests := []struct {
		name       string
		properties string
		catalog    string
		want       string
		wantErr    error
	}{
		{
			name:       "gradle property",
			properties: "org.gradle.caching=true\nmicronautVersion=4.2.0\n",
			catalog:    "[versions]\nmicronaut = \"4.0.0\"\n",
			want:       "4.2.0",
		},
		{
			name:    "catalog entry",
			catalog: "[versions]\nmicronaut = \"4.0.0\"\n",
			want:    "4.0.0",
		},
		{
			name:       "property without version",
			properties: "org.gradle.caching=true\n",
			catalog:    "[versions]\nmicronaut = \"4.0.0\"\n",
			want:       "4.0.0",
		},
		{
			name:    "catalog table entry",
			catalog: "[versions]\nmicronaut = { strictly = \"4.0.0\" }\n",
			wantErr: ErrPlatformVersionNotFound,
		},
		{
			name:    "invalid catalog",
			catalog: "[versions",
			wantErr: ErrPlatformVersionNotFound,
		},
		{
			name:    "nothing",
			wantErr: ErrPlatformVersionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.properties != "" {
				writeFile(t, filepath.Join(dir, "gradle.properties"), tt.properties)
			}
			if tt.catalog != "" {
				writeFile(t, filepath.Join(dir, "gradle", "libs.versions.toml"), tt.catalog)
			}
			got, err := PlatformVersion(dir)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("PlatformVersion() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("PlatformVersion() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("PlatformVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlatformVersion_Environment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "gradle.properties"), "micronautVersion=4.2.0\n")
	t.Setenv("ORG_GRADLE_PROJECT_micronautVersion", "4.3.0")

	got, err := PlatformVersion(dir)
	if err != nil || got != "4.3.0" {
		t.Errorf("PlatformVersion() = %q, %v; want 4.3.0", got, err)
	}
}

func TestRepositories(t *testing.T) {
	if got := PlatformCoordinates("4.0.0"); got != "io.micronaut.platform:micronaut-platform:4.0.0" {
		t.Errorf("PlatformCoordinates() = %q", got)
	}

	release := Repositories("4.0.0")
	if want := []string{MavenCentralURL}; !slices.Equal(RepositoryURLs(release), want) {
		t.Errorf("Repositories(release) = %v", release)
	}
	snapshot := Repositories("4.1.0-SNAPSHOT")
	if want := []string{MavenCentralURL, SnapshotsURL}; !slices.Equal(RepositoryURLs(snapshot), want) {
		t.Errorf("Repositories(snapshot) = %v", snapshot)
	}
}

func TestFindProjectRoot(t *testing.T) {
	t.Run("settings script", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "settings.gradle.kts"), "")
		sub := filepath.Join(root, "app", "src")
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		got, err := FindProjectRoot(sub)
		if err != nil {
			t.Fatalf("FindProjectRoot() error: %v", err)
		}
		if got != root {
			t.Errorf("FindProjectRoot() = %q, want %q", got, root)
		}
	})

	t.Run("git worktree", func(t *testing.T) {
		root := t.TempDir()
		if _, err := git.PlainInit(root, false); err != nil {
			t.Fatal(err)
		}
		sub := filepath.Join(root, "module")
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		got, err := FindProjectRoot(sub)
		if err != nil {
			t.Fatalf("FindProjectRoot() error: %v", err)
		}
		wantReal, _ := filepath.EvalSymlinks(root)
		gotReal, _ := filepath.EvalSymlinks(got)
		if gotReal != wantReal {
			t.Errorf("FindProjectRoot() = %q, want %q", got, root)
		}
	})
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, CatalogDir), 0o755); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(dir, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer w.Stop()

	writeFile(t, filepath.Join(dir, CatalogDir, "libs.versions.toml"), "[versions]\n")
	writeFile(t, OverridePath(dir, "mn"), "[versions]\na = \"1\"\n")

	select {
	case change := <-w.Changes:
		if change.Catalog != "mn" || change.Removed {
			t.Errorf("change = %+v, want mn written", change)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcher_Stop(t *testing.T) {
	tests := []struct {
		name  string
		start bool
	}{
		{"without start", false},
		{"after start", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.MkdirAll(filepath.Join(dir, CatalogDir), 0o755); err != nil {
				t.Fatal(err)
			}
			w, err := NewWatcher(dir)
			if err != nil {
				t.Fatalf("NewWatcher() error: %v", err)
			}
			if tt.start {
				if err := w.Start(); err != nil {
					t.Fatalf("Start() error: %v", err)
				}
			}

			stopped := make(chan struct{})
			go func() {
				w.Stop()
				w.Stop()
				close(stopped)
			}()
			select {
			case <-stopped:
			case <-time.After(5 * time.Second):
				t.Fatal("Stop() did not return")
			}
			if _, ok := <-w.Changes; ok {
				t.Error("Changes still open after Stop()")
			}
		})
	}
}

func TestWatcher_StartMissingDir(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Start(); err == nil {
		t.Error("Start() error = nil, want error for missing catalog dir")
	}
	w.Stop()
}
