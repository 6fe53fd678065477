// Package versioncatalog provides a Go library for Gradle version catalogs
// (libs.versions.toml) and version override files.
//
// The parser is lenient: it reads the [libraries] and [versions] tables, accepts
// every shorthand the build tool accepts, and silently drops entries it does not
// understand instead of failing the build.
//
// # Overview
//
// The package provides three main components:
//
//   - RichVersion: a version constraint (require, strictly, prefer, reject, rejectAll)
//   - LenientParser: reads TOML into a Model
//   - Model: libraries indexed by coordinate and alias, versions indexed by alias,
//     and a reverse index from version alias to the libraries referencing it
//
// # Quick Start
//
//	model, err := versioncatalog.ParseFile("gradle/libs.versions.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, lib := range model.FindLibrariesForVersionReference("micronaut") {
//	    fmt.Println(lib.Module())
//	}
//
// # Supported Notations
//
//	[versions]
//	some-alias = "1.2.3"
//	strict = "1.0!!1.5"            # strictly 1.0, prefer 1.5
//	other-alias = { require = "1.0", prefer = "1.5", reject = ["1.1"] }
//
//	[libraries]
//	some-lib = "com.example:artifact:1.2.3"
//	other-lib = { group = "com.example", name = "artifact2", version.ref = "some-alias" }
//	third-lib = { module = "com.example:artifact3", version = "2.0" }
//
// Library references to version aliases are not resolved during parsing; use
// Model.ResolveVersion or the override package to apply them.
//
// # Thread Safety
//
// A LenientParser and the Model it fills belong to one parse-then-read
// operation. A Model may be read from several goroutines once no more writes occur.
package versioncatalog

import (
	"fmt"
	"os"
)

// ParseContent parses catalog content into a new Model.
func ParseContent(content []byte, opts ...Option) (*Model, error) {
	p := NewLenientParser(opts...)
	if err := p.ParseBytes(content); err != nil {
		return nil, err
	}
	return p.Model(), nil
}

// ParseFile reads and parses a catalog file from disk.
func ParseFile(path string, opts ...Option) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read version catalog: %w", err)
	}
	opts = append([]Option{WithSourceName(path)}, opts...)
	model, err := ParseContent(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return model, nil
}
