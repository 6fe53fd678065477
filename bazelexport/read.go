package bazelexport

import (
	"fmt"
	"slices"

	"github.com/bazelbuild/buildtools/build"

	"github.com/albertocavalcante/go-versioncatalog/internal/buildutil"
)

// ReadArtifacts returns the artifacts of every maven install tag in a
// MODULE.bazel file, sorted and deduplicated. A receiver is a maven
// extension when it is bound to use_extension of rules_jvm_external.
func ReadArtifacts(content []byte) ([]string, error) {
	f, err := build.ParseModule("MODULE.bazel", content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MODULE.bazel: %w", err)
	}

	extensions := make(map[string]bool)
	for _, stmt := range f.Stmt {
		assign, ok := stmt.(*build.AssignExpr)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*build.Ident)
		call, isCall := assign.RHS.(*build.CallExpr)
		if !ok || !isCall || buildutil.FuncName(call) != "use_extension" || len(call.List) == 0 {
			continue
		}
		if label, ok := call.List[0].(*build.StringExpr); ok && label.Value == extensionLabel {
			extensions[lhs.Name] = true
		}
	}

	var out []string
	for _, call := range buildutil.Calls(f) {
		recv, method, ok := buildutil.MethodName(call)
		if !ok || method != "install" || !extensions[recv] {
			continue
		}
		out = append(out, buildutil.StringList(call, "artifacts")...)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}
