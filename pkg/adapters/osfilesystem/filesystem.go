// Package osfilesystem provides a ports.FileSystem backed by afero.
package osfilesystem

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/user/frame2video/pkg/ports"
)

// FileSystem implements ports.FileSystem on top of an afero.Fs.
type FileSystem struct {
	fs afero.Fs
}

// New creates a FileSystem on the host operating system.
func New() *FileSystem {
	return &FileSystem{fs: afero.NewOsFs()}
}

// NewWithFs creates a FileSystem over an arbitrary afero.Fs,
// typically afero.NewMemMapFs in tests.
func NewWithFs(fs afero.Fs) *FileSystem {
	return &FileSystem{fs: fs}
}

// ReadFile reads the entire contents of a file.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(f.fs, path)
}

// WriteFile writes data to a file, creating parent directories as needed.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := f.fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return afero.WriteFile(f.fs, path, data, 0644)
}

// ReadDir lists the entries of a directory without recursing.
func (f *FileSystem) ReadDir(path string) ([]ports.DirEntry, error) {
	infos, err := afero.ReadDir(f.fs, path)
	if err != nil {
		return nil, err
	}
	entries := make([]ports.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, ports.DirEntry{
			Name:  info.Name(),
			IsDir: info.IsDir(),
		})
	}
	return entries, nil
}

// IsDir reports whether path exists and is a directory.
func (f *FileSystem) IsDir(path string) (bool, error) {
	return afero.IsDir(f.fs, path)
}

// MkdirAll creates a directory and all parent directories.
func (f *FileSystem) MkdirAll(path string) error {
	return f.fs.MkdirAll(path, 0755)
}

var _ ports.FileSystem = (*FileSystem)(nil)
