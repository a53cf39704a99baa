package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests
type MockFileSystem struct {
	entries    map[string]*MockEntry
	currentDir string
}

// MockEntry is a file or directory in the mock filesystem
type MockEntry struct {
	Content []byte
	Size    int64
	ModTime time.Time
	IsDir   bool
}

type mockFileInfo struct {
	name  string
	entry *MockEntry
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.entry.Size }
func (m *mockFileInfo) ModTime() time.Time { return m.entry.ModTime }
func (m *mockFileInfo) IsDir() bool        { return m.entry.IsDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

func (m *mockFileInfo) Mode() fs.FileMode {
	if m.entry.IsDir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

// NewMockFileSystem creates an empty MockFileSystem rooted at /workspace
func NewMockFileSystem() *MockFileSystem {
	mfs := &MockFileSystem{
		entries:    make(map[string]*MockEntry),
		currentDir: "/workspace",
	}
	mfs.AddDir(mfs.currentDir)
	return mfs
}

// AddFile adds a file and any missing parent directories
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	mfs.AddSizedFile(path, content, int64(len(content)))
}

// AddSizedFile adds a file whose reported size differs from its content,
// standing in for large media without allocating it.
func (mfs *MockFileSystem) AddSizedFile(path string, content []byte, size int64) {
	cleanPath := filepath.Clean(path)
	mfs.entries[cleanPath] = &MockEntry{
		Content: content,
		Size:    size,
		ModTime: time.Now(),
	}
	mfs.AddDir(filepath.Dir(cleanPath))
}

// AddDir adds a directory and any missing parents
func (mfs *MockFileSystem) AddDir(path string) {
	dir := filepath.Clean(path)
	for {
		if _, exists := mfs.entries[dir]; !exists {
			mfs.entries[dir] = &MockEntry{ModTime: time.Now(), IsDir: true}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// SetCurrentDir sets the working directory reported by Getwd
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = filepath.Clean(dir)
	mfs.AddDir(mfs.currentDir)
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	entry, exists := mfs.entries[filepath.Clean(path)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if entry.IsDir {
		return nil, errors.New("is a directory")
	}
	return entry.Content, nil
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	cleanPath := filepath.Clean(path)
	entry, exists := mfs.entries[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return &mockFileInfo{name: filepath.Base(cleanPath), entry: entry}, nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.entries[filepath.Clean(path)]
	return exists
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

func (mfs *MockFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	cleanRoot := filepath.Clean(root)
	if _, exists := mfs.entries[cleanRoot]; !exists {
		return fn(root, nil, &fs.PathError{Op: "lstat", Path: root, Err: fs.ErrNotExist})
	}

	var paths []string
	for p := range mfs.entries {
		if p == cleanRoot || strings.HasPrefix(p, cleanRoot+string(filepath.Separator)) || cleanRoot == "/" {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	var skipped []string
	for _, p := range paths {
		if underAny(p, skipped) {
			continue
		}

		entry := mfs.entries[p]
		info := &mockFileInfo{name: filepath.Base(p), entry: entry}
		if err := fn(p, fs.FileInfoToDirEntry(info), nil); err != nil {
			if errors.Is(err, fs.SkipDir) {
				if entry.IsDir {
					skipped = append(skipped, p)
					continue
				}
				skipped = append(skipped, filepath.Dir(p))
				continue
			}
			if errors.Is(err, fs.SkipAll) {
				return nil
			}
			return err
		}
	}

	return nil
}

func underAny(path string, dirs []string) bool {
	for _, dir := range dirs {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
