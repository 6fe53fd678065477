package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Format", cfg.Format, "text"},
		{"Verbose", cfg.Verbose, false},
		{"ProjectDir", cfg.ProjectDir, "."},
		{"Strategy", cfg.Strategy, "prefer-override"},
		{"Bazel.RepoName", cfg.Bazel.RepoName, "maven"},
		{"Bazel.FetchSources", cfg.Bazel.FetchSources, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
	if len(cfg.Catalogs) != 0 {
		t.Errorf("Catalogs = %v, want empty", cfg.Catalogs)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	content := `format: json
catalogs: [mn, libs]
bazel:
  repo_name: jvm
  repositories:
    - https://repo.example.com/maven
`
	if err := os.WriteFile(filepath.Join(dir, ".vercat.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Format != "json" || cfg.Bazel.RepoName != "jvm" {
		t.Errorf("Load() = %+v", cfg)
	}
	if !slices.Equal(cfg.Catalogs, []string{"mn", "libs"}) {
		t.Errorf("Catalogs = %v", cfg.Catalogs)
	}
	if !slices.Equal(cfg.Bazel.Repositories, []string{"https://repo.example.com/maven"}) {
		t.Errorf("Bazel.Repositories = %v", cfg.Bazel.Repositories)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VERCAT_FORMAT", "yaml")
	t.Setenv("VERCAT_BAZEL_REPO_NAME", "deps")

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Format != "yaml" {
		t.Errorf("Format = %q, want yaml", cfg.Format)
	}
	if cfg.Bazel.RepoName != "deps" {
		t.Errorf("Bazel.RepoName = %q, want deps", cfg.Bazel.RepoName)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	if _, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing explicit file should fail")
	}

	t.Setenv("VERCAT_FORMAT", "xml")
	if _, err := Load(New(), ""); err == nil {
		t.Error("Load() with an invalid format should fail")
	}
}
