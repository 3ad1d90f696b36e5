package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"slof/internal/diag"
	"slof/internal/source"
)

type palette struct {
	err, warn, info, path, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		path:   mk(color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed, color.Bold),
		note:   mk(color.FgCyan),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty writes every diagnostic in bag order as
//
//	<path>:<line>:<col>: <sev>[<ID>]: <message>
//	   |
//	 3 | let x = "abc
//	   |         ^~~~
//
// followed by its notes when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts, p)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s: %s: %s\n",
		p.path.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), start.Line, start.Col),
		p.severity(d.Severity).Sprintf("%s[%s]", d.Severity.Label(), d.Code.ID()),
		d.Message,
	)
	writeSnippet(w, f, fs, d.Primary, p)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := fs.Get(n.Span.File)
		npos, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
			formatPath(nf, fs, opts.PathMode), npos.Line, npos.Col, n.Msg)
	}
}

// writeSnippet prints the first line of span with a caret underline.
// Tabs are shown as single spaces so that the caret stays aligned.
func writeSnippet(w io.Writer, f *source.File, fs *source.FileSet, span source.Span, p palette) {
	start, _ := fs.Resolve(span)
	lineStart, lineEnd := lineBounds(f, start.Line)
	if span.Start < lineStart || span.Start > lineEnd {
		return
	}
	line := strings.ReplaceAll(string(f.Content[lineStart:lineEnd]), "\t", " ")
	underEnd := min(max(span.End, span.Start), lineEnd)

	prefix := line[:span.Start-lineStart]
	marked := line[span.Start-lineStart : underEnd-lineStart]
	width := max(runewidth.StringWidth(marked), 1)

	num := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, " %s %s\n", pad, p.gutter.Sprint("|"))
	fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), line)
	fmt.Fprintf(w, " %s %s %s%s\n", pad, p.gutter.Sprint("|"),
		strings.Repeat(" ", runewidth.StringWidth(prefix)),
		p.caret.Sprint("^"+strings.Repeat("~", width-1)))
}
