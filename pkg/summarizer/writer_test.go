package summarizer

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/user/frame2video/pkg/adapters/osfilesystem"
)

func dirFormatter() Formatter {
	return FormatFunc(func(s *Summary) string { return "summary for " + s.Source.Dir })
}

func TestWriter_Write(t *testing.T) {
	mem := afero.NewMemMapFs()
	w := NewWriter(dirFormatter(), osfilesystem.NewWithFs(mem), nil)

	path := filepath.Join("reports", "nested", "summary.md")
	if err := w.Write(path, NewBuilder().WithSource("frames", 1).Build()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := afero.ReadFile(mem, path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "summary for frames" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestWriter_WriteStdout(t *testing.T) {
	mem := afero.NewMemMapFs()
	var buf bytes.Buffer
	w := NewWriter(dirFormatter(), osfilesystem.NewWithFs(mem), &buf)

	if err := w.Write(StdoutPath, NewBuilder().WithSource("shots", 2).Build()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if buf.String() != "summary for shots" {
		t.Errorf("unexpected stdout %q", buf.String())
	}
	if exists, _ := afero.Exists(mem, StdoutPath); exists {
		t.Error("no file named '-' should be created")
	}
}

func TestWriter_WriteStdoutUnset(t *testing.T) {
	w := NewWriter(dirFormatter(), osfilesystem.NewWithFs(afero.NewMemMapFs()), nil)

	if err := w.Write(StdoutPath, NewSummary()); err == nil {
		t.Error("expected error without a stdout writer")
	}
}

func TestWriter_WriteError(t *testing.T) {
	ro := afero.NewReadOnlyFs(afero.NewMemMapFs())
	w := NewWriter(NewMarkdownFormatter(), osfilesystem.NewWithFs(ro), nil)

	if err := w.Write("summary.md", NewSummary()); err == nil {
		t.Error("expected error writing to read-only filesystem")
	}
}
