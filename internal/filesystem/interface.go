package filesystem

import (
	"io/fs"
)

// FileSystem is the read-only view of the disk clipdeck needs to import
// media. Tests swap in MockFileSystem.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	Getwd() (string, error)

	// WalkDir follows filepath.WalkDir semantics, including fs.SkipDir
	WalkDir(root string, fn fs.WalkDirFunc) error
}
