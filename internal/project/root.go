package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the project configuration file.
const ConfigFileName = "slof.toml"

// repoMarkers end the upward search: a slof.toml above the enclosing
// repository does not configure it.
var repoMarkers = []string{".git", ".hg", ".jj"}

// location is the outcome of one upward walk.
type location struct {
	config string // path of slof.toml, "" when none applies
	repo   string // nearest repository root, "" when none
}

// locate walks from startDir towards the filesystem root. It stops at the
// first slof.toml or at the first repository root, whichever comes first;
// a slof.toml next to the repository marker still counts.
func locate(startDir string) (location, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return location{}, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		found, err := exists(candidate)
		if err != nil {
			return location{}, err
		}
		if found {
			return location{config: candidate}, nil
		}
		for _, marker := range repoMarkers {
			isRepo, err := exists(filepath.Join(dir, marker))
			if err != nil {
				return location{}, err
			}
			if isRepo {
				return location{repo: dir}, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return location{}, nil
		}
		dir = parent
	}
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat %q: %w", path, err)
	}
}

// FindConfig locates the slof.toml governing startDir. The search does not
// leave the enclosing repository.
func FindConfig(startDir string) (path string, ok bool, err error) {
	loc, err := locate(startDir)
	if err != nil {
		return "", false, err
	}
	return loc.config, loc.config != "", nil
}

// FindProjectRoot returns the directory `slof tokenize` walks when no path
// is given: the directory of slof.toml, else the repository root.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	loc, err := locate(startDir)
	switch {
	case err != nil:
		return "", false, err
	case loc.config != "":
		return filepath.Dir(loc.config), true, nil
	case loc.repo != "":
		return loc.repo, true, nil
	}
	return "", false, nil
}
