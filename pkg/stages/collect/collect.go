// Package collect implements the frame discovery stage.
package collect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/user/frame2video/pkg/pipeline"
	"github.com/user/frame2video/pkg/ports"
)

var (
	// ErrSourceNotFound is returned when the source directory does not exist.
	ErrSourceNotFound = errors.New("collect: source directory not found")

	// ErrNotDirectory is returned when the source path is not a directory.
	ErrNotDirectory = errors.New("collect: source path is not a directory")
)

// Stage lists the frame files of a directory in name order.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new collect stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("collect"),
	}
}

// Execute lists the regular files in input.Dir whose names end with
// input.Extension. Subdirectories are not descended into; one whose name
// matches the extension is reported with a warning and left out. Paths are sorted
// by file name using byte order, so "frame10.png" sorts before "frame2.png".
func (s *Stage) Execute(ctx context.Context, input pipeline.CollectInput) (pipeline.CollectResult, error) {
	result := pipeline.CollectResult{}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	isDir, err := s.fs.IsDir(input.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, fmt.Errorf("%w: %s", ErrSourceNotFound, input.Dir)
		}
		return result, fmt.Errorf("stat source directory: %w", err)
	}
	if !isDir {
		return result, fmt.Errorf("%w: %s", ErrNotDirectory, input.Dir)
	}

	entries, err := s.fs.ReadDir(input.Dir)
	if err != nil {
		return result, fmt.Errorf("read source directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !matchExtension(e.Name, input.Extension, input.CaseInsensitiveExt) {
			continue
		}
		if e.IsDir {
			s.logger.Warn("Skipping directory %s", filepath.Join(input.Dir, e.Name))
			continue
		}
		names = append(names, e.Name)
	}
	sort.Strings(names)

	result.Paths = make([]string, len(names))
	for i, name := range names {
		result.Paths[i] = filepath.Join(input.Dir, name)
	}

	s.logger.Info("Found %d frames in %s", len(result.Paths), input.Dir)
	return result, nil
}

func matchExtension(name, ext string, caseInsensitive bool) bool {
	if ext == "" {
		return true
	}
	if len(name) < len(ext) {
		return false
	}
	suffix := name[len(name)-len(ext):]
	if caseInsensitive {
		return strings.EqualFold(suffix, ext)
	}
	return suffix == ext
}
