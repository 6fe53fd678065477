package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	versioncatalog "github.com/albertocavalcante/go-versioncatalog"
)

const (
	// OverrideFileName is the suffix of every override catalog file.
	OverrideFileName = "override.versions.toml"

	// CatalogDir is the project directory holding catalog files.
	CatalogDir = "gradle"
)

// OverridePath returns the override file of catalog in projectDir.
//
//	OverridePath("/src/app", "mn") = "/src/app/gradle/mn-override.versions.toml"
func OverridePath(projectDir, catalog string) string {
	return filepath.Join(projectDir, CatalogDir, catalog+"-"+OverrideFileName)
}

// CatalogOf returns the catalog name an override file belongs to.
func CatalogOf(path string) (string, bool) {
	catalog, ok := strings.CutSuffix(filepath.Base(path), "-"+OverrideFileName)
	if !ok || catalog == "" {
		return "", false
	}
	return catalog, true
}

// LoadOverride parses the override file of catalog. A missing file is not an
// error: it returns (nil, false, nil).
func LoadOverride(projectDir, catalog string, opts ...versioncatalog.Option) (*versioncatalog.Model, bool, error) {
	path := OverridePath(projectDir, catalog)
	m, err := versioncatalog.ParseFile(path, opts...)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return m, true, nil
}

// LoadOverrides loads the override files of several catalogs concurrently.
// Catalogs without an override file are absent from the result. The first
// error cancels the remaining loads.
func LoadOverrides(ctx context.Context, projectDir string, catalogs []string, opts ...versioncatalog.Option) (map[string]*versioncatalog.Model, error) {
	g, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	result := make(map[string]*versioncatalog.Model)

	for _, catalog := range catalogs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, ok, err := LoadOverride(projectDir, catalog, opts...)
			if err != nil {
				return fmt.Errorf("failed to load %s override: %w", catalog, err)
			}
			if ok {
				mu.Lock()
				result[catalog] = m
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// DiscoverCatalogs returns the names of the catalogs that have an override
// file in projectDir, sorted.
func DiscoverCatalogs(projectDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(projectDir, CatalogDir, "*-"+OverrideFileName))
	if err != nil {
		return nil, err
	}
	var catalogs []string
	for _, path := range matches {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		if catalog, ok := CatalogOf(path); ok {
			catalogs = append(catalogs, catalog)
		}
	}
	return catalogs, nil
}
