package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"audiotools/internal/curation"
)

// ListFiles returns every file under root whose extension matches ext,
// case-insensitively. ext is given without the leading dot ("wav", "flac").
// The result is sorted lexicographically by full path. An empty result is not
// an error; the caller decides whether that means "nothing to do".
func ListFiles(root, ext string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, curation.Wrap(curation.ErrInvalidInput, "list corpus",
			fmt.Sprintf("path %q must be an existing directory", root), nil)
	}
	if !info.IsDir() {
		return nil, curation.Wrap(curation.ErrInvalidInput, "list corpus",
			fmt.Sprintf("path %q is not a directory", root), nil)
	}

	suffix := "." + strings.ToLower(strings.TrimPrefix(ext, "."))
	var paths []string
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), suffix) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk corpus %q: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// ListSubdirs returns the immediate subdirectory names of root in sorted
// order. Used for the model/speaker directory layouts.
func ListSubdirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, curation.Wrap(curation.ErrInvalidInput, "list directories",
			fmt.Sprintf("path %q must be an existing directory", root), nil)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// MirrorPath maps a source file under srcRoot to the equivalent path under
// dstRoot, preserving the relative layout.
func MirrorPath(srcRoot, dstRoot, srcFile string) (string, error) {
	rel, err := filepath.Rel(srcRoot, srcFile)
	if err != nil {
		return "", fmt.Errorf("relativize %q under %q: %w", srcFile, srcRoot, err)
	}
	return filepath.Join(dstRoot, rel), nil
}
