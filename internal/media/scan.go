package media

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/jakoblorz/clipdeck/internal/filesystem"
	"github.com/jakoblorz/clipdeck/internal/models"
	"github.com/pkg/errors"
)

// Entry is a media file found by a scan
type Entry struct {
	Path string           `json:"path"`
	Type models.MediaType `json:"type"`
	Size int64            `json:"size"`
}

// Scanner finds media files below a directory
type Scanner struct {
	fs filesystem.FileSystem
}

// NewScanner creates a new Scanner
func NewScanner(fs filesystem.FileSystem) *Scanner {
	return &Scanner{fs: fs}
}

// Scan walks root and returns every file with a known media extension,
// sorted by path. Hidden directories and paths matched by root/.gitignore
// are skipped.
func (s *Scanner) Scan(root string) ([]Entry, error) {
	root = filepath.Clean(root)

	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot scan %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", root)
	}

	ignore, err := s.loadGitIgnore(root)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	err = s.fs.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}

		if d.IsDir() && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if ignore != nil {
			if match := ignore.Relative(rel, d.IsDir()); match != nil && match.Ignore() {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		mt, ok := Classify(path)
		if !ok {
			return nil
		}

		var size int64
		if fi, err := d.Info(); err == nil {
			size = fi.Size()
		}
		entries = append(entries, Entry{Path: path, Type: mt, Size: size})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", root)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

func (s *Scanner) loadGitIgnore(root string) (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(root, ".gitignore")
	if !s.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := s.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read .gitignore")
	}

	return gitignore.New(bytes.NewReader(data), root, nil), nil
}
