package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(t func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion adds the program version to the footer.
func WithVersion(v string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = v
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Frame Assembly Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Source"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Source Directory"), s.Source.Dir)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Frames Found"), s.Source.FramesFound)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Frames Added"), s.Video.FrameCount)
	fmt.Fprintf(&b, "| %s | %d |\n\n", t("Frames Skipped"), len(s.Skipped))

	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Output File"), s.Video.OutputPath)
	fmt.Fprintf(&b, "| %s | %s |\n", t("Codec"), s.Settings.Codec)
	if s.Settings.Backend != "" {
		fmt.Fprintf(&b, "| %s | %s |\n", t("Backend"), s.Settings.Backend)
	}
	fmt.Fprintf(&b, "| %s | %d fps |\n", t("Frame Rate"), s.Settings.FPS)
	fmt.Fprintf(&b, "| %s | %dx%d |\n", t("Resolution"), s.Settings.Width, s.Settings.Height)
	fmt.Fprintf(&b, "| %s | %s |\n", t("Duration"), formatDuration(s.Video.DurationMs, s.Video.FrameCount, s.Settings.FPS))
	fmt.Fprintf(&b, "| %s | %s |\n\n", t("File Size"), formatBytes(s.Video.FileSize))

	if len(s.Skipped) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Skipped Frames"))
		for _, sk := range s.Skipped {
			if sk.Reason != "" {
				fmt.Fprintf(&b, "- `%s`: %s\n", sk.Path, sk.Reason)
			} else {
				fmt.Fprintf(&b, "- `%s`\n", sk.Path)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		footer += fmt.Sprintf(" (frame2video %s)", f.version)
	}
	b.WriteString(footer + "\n")

	return b.String()
}

// formatDuration prefers the measured duration and falls back to
// frames divided by fps.
func formatDuration(ms, frames, fps int) string {
	if ms == 0 && fps > 0 {
		ms = frames * 1000 / fps
	}
	return fmt.Sprintf("%.2f s", float64(ms)/1000)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit && exp < 2; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}

var _ Formatter = (*MarkdownFormatter)(nil)
