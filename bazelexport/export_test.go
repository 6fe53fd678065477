package bazelexport

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
)

const catalog = `
[versions]
netty = "4.1.100.Final"
strict = { strictly = "[2.0,3.0)", prefer = "2.5" }
nothing = { rejectAll = true }

[libraries]
netty-handler = { module = "io.netty:netty-handler", version.ref = "netty" }
netty-codec = { module = "io.netty:netty-codec", version.ref = "netty" }
pinned = { module = "com.example:pinned", version = "[2.0,3.0)!!2.5" }
preferred = { module = "com.example:preferred", version = { prefer = "1.2" } }
rejected = { module = "com.example:rejected", version.ref = "nothing" }
dangling = { module = "com.example:dangling", version.ref = "missing" }
versionless = { module = "com.example:versionless", version = {} }
duplicate = { module = "io.netty:netty-codec", version.ref = "netty" }
`

func parse(t *testing.T, content string) *versioncatalog.Model {
	t.Helper()
	m, err := versioncatalog.ParseContent([]byte(content))
	if err != nil {
		t.Fatalf("ParseContent() error: %v", err)
	}
	return m
}

func TestArtifacts(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	got := Artifacts(parse(t, catalog), WithLogger(logger))
	want := []string{
		"com.example:pinned:[2.0,3.0)",
		"com.example:preferred:1.2",
		"io.netty:netty-codec:4.1.100.Final",
		"io.netty:netty-handler:4.1.100.Final",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Artifacts() = %v, want %v", got, want)
	}

	for _, msg := range []string{
		"skipping library rejecting all versions",
		"skipping library with unresolved version reference",
		"skipping library without version",
	} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("log output missing %q:\n%s", msg, logs.String())
		}
	}
}

func TestExport(t *testing.T) {
	out, err := Export(parse(t, catalog), WithRepositories("https://repo.example.com/maven"), WithFetchSources(true))
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	text := string(out)
	for _, want := range []string{
		`maven = use_extension("@rules_jvm_external//:extensions.bzl", "maven")`,
		`"io.netty:netty-handler:4.1.100.Final",`,
		`repositories = ["https://repo.example.com/maven"]`,
		`fetch_sources = True`,
		`use_repo(maven, "maven")`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Export() output missing %q:\n%s", want, text)
		}
	}

	got, err := ReadArtifacts(out)
	if err != nil {
		t.Fatalf("ReadArtifacts() error: %v", err)
	}
	if want := Artifacts(parse(t, catalog)); !slices.Equal(got, want) {
		t.Errorf("ReadArtifacts(Export()) = %v, want %v", got, want)
	}
}

func TestExport_Defaults(t *testing.T) {
	out, err := Export(versioncatalog.NewModel(), WithRepoName("jvm"))
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	text := string(out)
	for _, want := range []string{DefaultRepository, "jvm.install(", `use_repo(jvm, "jvm")`, "artifacts = []"} {
		if !strings.Contains(text, want) {
			t.Errorf("Export() output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "fetch_sources") {
		t.Error("fetch_sources should be omitted by default")
	}

	if _, err := Export(nil); err == nil {
		t.Error("Export(nil) should fail")
	}
}

func TestReadArtifacts(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name: "install tags",
			content: `
maven = use_extension("@rules_jvm_external//:extensions.bzl", "maven")
maven.install(artifacts = ["b:b:1", "a:a:1"])
maven.install(name = "other", artifacts = ["a:a:1", "c:c:2"])
`,
			want: []string{"a:a:1", "b:b:1", "c:c:2"},
		},
		{
			name: "other extension",
			content: `
other = use_extension("//:ext.bzl", "other")
other.install(artifacts = ["x:x:1"])
`,
		},
		{
			name:    "syntax error",
			content: `maven.install(`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadArtifacts([]byte(tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatal("ReadArtifacts() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadArtifacts() error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ReadArtifacts() = %v, want %v", got, tt.want)
			}
		})
	}
}
