// Package ingest discovers input documents on disk.
package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/luochenwei/impact-scout/constants"
	"github.com/luochenwei/impact-scout/internal/common"
)

// Discover returns the sorted PDF paths under root. When recursive is
// false only the top directory level is scanned. Hidden files and
// directories are skipped. A missing root wraps common.ErrDirNotFound and
// is fatal to a run.
func Discover(root string, recursive bool) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, common.NewAppError("DISCOVER_ROOT", "root directory is required", common.ErrDirNotFound)
	}
	fi, err := os.Stat(root)
	if err != nil {
		return nil, common.NewAppError("DISCOVER_ROOT",
			fmt.Sprintf("directory %q: %v", root, err), common.ErrDirNotFound)
	}
	if !fi.IsDir() {
		return nil, common.NewAppError("DISCOVER_ROOT",
			fmt.Sprintf("%q is not a directory", root), common.ErrDirNotFound)
	}

	var paths []string
	if recursive {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				// Unreadable subtree: skip it, keep walking.
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if isHidden(d.Name()) && path != root {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && wanted(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, common.WrapError(err, "walk directory")
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, common.WrapError(err, "read directory")
		}
		for _, e := range entries {
			if e.IsDir() || isHidden(e.Name()) {
				continue
			}
			path := filepath.Join(root, e.Name())
			if wanted(path) {
				paths = append(paths, path)
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func wanted(path string) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
