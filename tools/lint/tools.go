//go:build tools

// Package lint pins the linters used on go-versioncatalog. It is a separate
// module so the library's go.mod stays free of tool dependencies.
//
// Run from the repository root:
//
//	make lint
//	make staticcheck
//
// which expand to:
//
//	go run -modfile=tools/lint/go.mod github.com/golangci/golangci-lint/v2/cmd/golangci-lint run ./...
//	go run -modfile=tools/lint/go.mod honnef.co/go/tools/cmd/staticcheck ./...
package lint
