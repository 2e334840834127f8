package fs

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Walker finds text files for batch summarization using include and
// exclude glob patterns matched against root-relative paths.
type Walker struct {
	includes []string
	excludes []string
	maxBytes int64
}

// NewWalker creates a Walker. Files larger than maxBytes are skipped;
// maxBytes <= 0 disables the size guard.
func NewWalker(includes, excludes []string, maxBytes int64) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*.txt"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
		maxBytes: maxBytes,
	}
}

// FileInfo describes one matched file.
type FileInfo struct {
	Path    string
	RelPath string
	Size    int64
}

// Walk returns matching files under root in walk order.
func (w *Walker) Walk(root string) ([]FileInfo, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if w.matches(w.excludes, relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !w.matches(w.includes, relPath) || w.matches(w.excludes, relPath) {
			return nil
		}
		if w.maxBytes > 0 && info.Size() > w.maxBytes {
			return nil
		}

		files = append(files, FileInfo{
			Path:    path,
			RelPath: relPath,
			Size:    info.Size(),
		})
		return nil
	})

	return files, err
}

func (w *Walker) matches(patterns []string, path string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// ReadFile reads a file as a string.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
