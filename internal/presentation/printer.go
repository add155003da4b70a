// Package presentation renders exercise results for the CLI.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Result is a single exercise answer ready to be shown.
type Result struct {
	Exercise string         `json:"exercise" yaml:"exercise"`
	Title    string         `json:"title" yaml:"title"`
	Input    map[string]any `json:"input,omitempty" yaml:"input,omitempty"`
	Value    any            `json:"value" yaml:"value"`
}

// Texter is implemented by values with a custom plain-text rendering.
type Texter interface {
	Text() string
}

// Printer writes results in one of the supported formats.
type Printer struct {
	w        io.Writer
	format   string
	out      *termenv.Output
	markdown func(string) (string, error)
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithColor toggles ANSI styling of text output. Styling is also dropped when
// the writer is not a terminal.
func WithColor(enabled bool) PrinterOption {
	return func(p *Printer) {
		if !enabled {
			p.out = termenv.NewOutput(p.w, termenv.WithProfile(termenv.Ascii))
		}
	}
}

// WithMarkdownRenderer overrides how markdown output is rendered.
// By default markdown goes through glamour only when writing to a terminal.
func WithMarkdownRenderer(render func(string) (string, error)) PrinterOption {
	return func(p *Printer) {
		p.markdown = render
	}
}

// NewPrinter creates a Printer for format ("text", "json", "yaml" or "markdown").
func NewPrinter(w io.Writer, format string, opts ...PrinterOption) (*Printer, error) {
	switch format {
	case "text", "json", "yaml", "markdown":
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	p := &Printer{
		w:      w,
		format: format,
		out:    termenv.NewOutput(w),
	}
	if IsTerminal(w) {
		p.markdown = NewRenderer()
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Print renders r.
func (p *Printer) Print(r Result) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "markdown":
		return p.printMarkdown(r)
	default:
		return p.printText(r)
	}
}

func (p *Printer) printText(r Result) error {
	title := p.out.String(r.Title).Bold().Foreground(p.out.Color("#a78bfa"))
	_, err := fmt.Fprintf(p.w, "%s\n%s\n", title, FormatValue(r.Value))
	return err
}

func (p *Printer) printMarkdown(r Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", r.Title)
	for k, v := range sortedInput(r.Input) {
		fmt.Fprintf(&b, "- **%s**: `%v`\n", k, v)
	}
	if len(r.Input) > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "```\n%s\n```\n", FormatValue(r.Value))

	doc := b.String()
	if p.markdown != nil {
		rendered, err := p.markdown(doc)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		doc = rendered
	}
	_, err := io.WriteString(p.w, doc)
	return err
}

// FormatValue renders v as plain text. Nested int slices print one row per line.
func FormatValue(v any) string {
	switch val := v.(type) {
	case Texter:
		return val.Text()
	case [][]int:
		if len(val) == 0 {
			return "[]"
		}
		rows := make([]string, len(val))
		for i, row := range val {
			rows[i] = fmt.Sprint(row)
		}
		return strings.Join(rows, "\n")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(v)
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
