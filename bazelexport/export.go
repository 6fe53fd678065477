package bazelexport

import (
	"fmt"
	"slices"

	"github.com/bazelbuild/buildtools/build"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
	"github.com/albertocavalcante/go-versioncatalog/internal/buildutil"
)

const extensionLabel = "@rules_jvm_external//:extensions.bzl"

// Artifacts returns the sorted, deduplicated "group:name:version" artifacts of m.
func Artifacts(m *versioncatalog.Model, opts ...Option) []string {
	return artifacts(m, newConfig(opts))
}

func artifacts(m *versioncatalog.Model, cfg config) []string {
	var out []string
	for _, lib := range m.Libraries() {
		logger := cfg.logger.With("alias", lib.Alias, "module", lib.Module())

		rv, ok := m.ResolveVersion(lib)
		if !ok {
			logger.Warn("skipping library with unresolved version reference", "ref", lib.Version.Reference)
			continue
		}
		if rv.RejectAll {
			logger.Warn("skipping library rejecting all versions")
			continue
		}
		version := rv.Effective()
		if version == "" {
			logger.Warn("skipping library without version")
			continue
		}
		out = append(out, lib.Module()+":"+version)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Export renders m as a MODULE.bazel fragment:
//
//	maven = use_extension("@rules_jvm_external//:extensions.bzl", "maven")
//	maven.install(
//	    artifacts = [...],
//	    repositories = [...],
//	)
//	use_repo(maven, "maven")
func Export(m *versioncatalog.Model, opts ...Option) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", versioncatalog.ErrIllegalArgument)
	}
	cfg := newConfig(opts)

	ext := &build.Ident{Name: cfg.repoName}
	install := &build.CallExpr{
		X: &build.DotExpr{X: ext, Name: "install"},
		List: []build.Expr{
			buildutil.Kwarg("name", &build.StringExpr{Value: cfg.repoName}),
			buildutil.Kwarg("artifacts", buildutil.Strings(artifacts(m, cfg))),
			buildutil.Kwarg("repositories", buildutil.Strings(cfg.repositories)),
		},
		ForceMultiLine: true,
	}
	if cfg.fetchSources {
		install.List = append(install.List, buildutil.Kwarg("fetch_sources", &build.Ident{Name: "True"}))
	}

	f := &build.File{
		Path: "MODULE.bazel",
		Type: build.TypeModule,
		Stmt: []build.Expr{
			&build.AssignExpr{
				LHS: ext,
				Op:  "=",
				RHS: &build.CallExpr{
					X: &build.Ident{Name: "use_extension"},
					List: []build.Expr{
						&build.StringExpr{Value: extensionLabel},
						&build.StringExpr{Value: "maven"},
					},
					ForceCompact: true,
				},
			},
			install,
			&build.CallExpr{
				X:            &build.Ident{Name: "use_repo"},
				List:         []build.Expr{ext, &build.StringExpr{Value: cfg.repoName}},
				ForceCompact: true,
			},
		},
	}
	return build.Format(f), nil
}
