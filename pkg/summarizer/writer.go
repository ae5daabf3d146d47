package summarizer

import (
	"fmt"
	"io"

	"github.com/user/frame2video/pkg/ports"
)

// StdoutPath is the summary path that selects the writer's stdout.
const StdoutPath = "-"

// Formatter renders a Summary as text.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc adapts a plain function to Formatter.
type FormatFunc func(summary *Summary) string

func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// Writer renders summaries and stores them through a FileSystem.
type Writer struct {
	formatter Formatter
	fs        ports.FileSystem
	stdout    io.Writer
}

// NewWriter creates a Writer. stdout receives summaries written to StdoutPath
// and may be nil when that path is never used.
func NewWriter(formatter Formatter, fs ports.FileSystem, stdout io.Writer) *Writer {
	return &Writer{
		formatter: formatter,
		fs:        fs,
		stdout:    stdout,
	}
}

// Write renders summary to path, creating parent directories as needed.
func (w *Writer) Write(path string, summary *Summary) error {
	content := w.formatter.Format(summary)

	if path == StdoutPath {
		if w.stdout == nil {
			return fmt.Errorf("write summary: no stdout configured")
		}
		if _, err := io.WriteString(w.stdout, content); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		return nil
	}

	if err := w.fs.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}
