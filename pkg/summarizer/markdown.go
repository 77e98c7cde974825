package summarizer

import (
	"fmt"
	"strings"
)

// Formatter turns a Summary into a document.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string { return f(summary) }

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// Option configures a MarkdownFormatter.
type Option func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(fn func(string) string) Option {
	return func(f *MarkdownFormatter) { f.translate = fn }
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) Option {
	return func(f *MarkdownFormatter) { f.version = version }
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...Option) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Render Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Source"))
	f.table(&b,
		row{t("Image"), s.Source.Path},
		row{t("Size"), fmt.Sprintf("%dx%d", s.Source.Width, s.Source.Height)},
	)

	fmt.Fprintf(&b, "## %s\n\n", t("Frame"))
	f.table(&b,
		row{t("Preset"), fmt.Sprintf("%s (%s)", s.Frame.Label, s.Frame.Key)},
		row{t("Size"), fmt.Sprintf("%dx%d", s.Frame.Width, s.Frame.Height)},
		row{t("Pan Offset"), fmt.Sprintf("%.1f, %.1f", s.Output.OffsetX, s.Output.OffsetY)},
	)

	fmt.Fprintf(&b, "## %s\n\n", t("Text"))
	fontPx := fmt.Sprintf("%d px", s.Text.FontPx)
	if s.Text.Overflow {
		fontPx += fmt.Sprintf(" (%s)", t("does not fit"))
	}
	f.table(&b,
		row{t("Font"), fmt.Sprintf("%s %d", s.Layout.FontFamily, s.Layout.FontWeight)},
		row{t("Font Size"), fontPx},
		row{t("Lines"), fmt.Sprintf("%d", len(s.Text.Lines))},
		row{t("Text Color"), s.Text.Fill},
		row{t("Stroke"), yesNo(t, s.Layout.Stroke)},
	)
	if len(s.Text.Lines) > 0 {
		b.WriteString("```\n")
		for _, line := range s.Text.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("```\n\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", t("Layout"))
	f.table(&b,
		row{t("Margin"), fmt.Sprintf("%d px", s.Layout.Margin)},
		row{t("Line Height"), fmt.Sprintf("%.2f", s.Layout.LineHeight)},
		row{t("Vertical Position"), fmt.Sprintf("%.2f", s.Layout.Vertical)},
		row{t("Max Text Area"), fmt.Sprintf("%.0f%%", s.Layout.MaxTextArea*100)},
		row{t("Max Font Size"), fmt.Sprintf("%d px", s.Layout.MaxFontPx)},
	)

	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	f.table(&b,
		row{t("File"), s.Output.Path},
		row{t("File Size"), formatBytes(s.Output.FileSize)},
		row{t("Render Time"), fmt.Sprintf("%d ms", s.Output.DurationMs)},
	)

	b.WriteString("---\n\n")
	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		footer += fmt.Sprintf(" · captionframe %s", f.version)
	}
	b.WriteString(footer)
	b.WriteString("\n")

	return b.String()
}

type row struct {
	label string
	value string
}

func (f *MarkdownFormatter) table(b *strings.Builder, rows ...row) {
	fmt.Fprintf(b, "| %s | %s |\n|---|---|\n", f.translate("Item"), f.translate("Value"))
	for _, r := range rows {
		fmt.Fprintf(b, "| %s | %s |\n", r.label, escapeCell(r.value))
	}
	b.WriteString("\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func yesNo(t func(string) string, v bool) string {
	if v {
		return t("Yes")
	}
	return t("No")
}

// formatBytes formats a byte count using binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}

var _ Formatter = (*MarkdownFormatter)(nil)
