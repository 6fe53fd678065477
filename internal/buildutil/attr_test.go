package buildutil

import (
	"slices"
	"testing"

	"github.com/bazelbuild/buildtools/build"
)

func parseCall(t *testing.T, content string) *build.CallExpr {
	t.Helper()
	f, err := build.ParseModule("MODULE.bazel", []byte(content))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	calls := Calls(f)
	if len(calls) == 0 {
		t.Fatal("no calls parsed")
	}
	return calls[0]
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		attrName string
		want     string
	}{
		{"named string", `foo(name = "bar")`, "name", "bar"},
		{"missing", `foo(other = "value")`, "name", ""},
		{"not a string", `foo(name = 1)`, "name", ""},
		{"positional ignored", `foo("bar")`, "name", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(parseCall(t, tt.input), tt.attrName); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`foo(fetch_sources = True)`, true},
		{`foo(fetch_sources = False)`, false},
		{`foo(fetch_sources = "True")`, false},
		{`foo()`, false},
	}
	for _, tt := range tests {
		if got := Bool(parseCall(t, tt.input), "fetch_sources"); got != tt.want {
			t.Errorf("Bool(%s) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStringList(t *testing.T) {
	call := parseCall(t, `foo(a = ["x", 1, "y"], b = "z")`)
	if got := StringList(call, "a"); !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("StringList(a) = %v", got)
	}
	if got := StringList(call, "b"); got != nil {
		t.Errorf("StringList(b) = %v, want nil", got)
	}
	if got := StringList(call, "missing"); got != nil {
		t.Errorf("StringList(missing) = %v, want nil", got)
	}
}

func TestCallNames(t *testing.T) {
	f, err := build.ParseModule("MODULE.bazel", []byte(`
maven = use_extension("@rules_jvm_external//:extensions.bzl", "maven")
maven.install(artifacts = [])
use_repo(maven, "maven")
`))
	if err != nil {
		t.Fatal(err)
	}
	calls := Calls(f)
	if len(calls) != 3 {
		t.Fatalf("len(Calls()) = %d, want 3", len(calls))
	}
	if got := FuncName(calls[0]); got != "use_extension" {
		t.Errorf("FuncName() = %q", got)
	}
	recv, method, ok := MethodName(calls[1])
	if !ok || recv != "maven" || method != "install" {
		t.Errorf("MethodName() = %q, %q, %v", recv, method, ok)
	}
	if FuncName(calls[1]) != "" {
		t.Error("FuncName() of a method call should be empty")
	}
	if _, _, ok := MethodName(calls[2]); ok {
		t.Error("MethodName() of a plain call should fail")
	}
}

func TestBuilders(t *testing.T) {
	call := &build.CallExpr{
		X:    &build.Ident{Name: "foo"},
		List: []build.Expr{Kwarg("deps", Strings([]string{"a", "b"}))},
	}
	if got := StringList(call, "deps"); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("StringList() = %v", got)
	}
	if !Strings([]string{"a", "b"}).ForceMultiLine || Strings([]string{"a"}).ForceMultiLine {
		t.Error("Strings() multi-line mismatch")
	}
}
