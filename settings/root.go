package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

var settingsScripts = []string{"settings.gradle", "settings.gradle.kts"}

// FindProjectRoot returns the nearest directory at or above start holding a
// settings script. Without one, the root of the enclosing git worktree is
// returned.
func FindProjectRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for dir := abs; ; {
		for _, name := range settingsScripts {
			if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrProjectRootNotFound, start, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrProjectRootNotFound, start, err)
	}
	return wt.Filesystem.Root(), nil
}
