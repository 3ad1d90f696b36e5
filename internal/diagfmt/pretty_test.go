package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"slof/internal/diag"
	"slof/internal/source"
)

func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.slof", content)

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnterminatedString, source.Span{File: fileID, Start: 8, End: 28}, "unexpected end of file reached"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.slof:1:9"},
		{"Relative path", PathModeRelative, "src/test.slof:1:9"},
		{"Basename only", PathModeBasename, "test.slof:1:9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("expected %q in output:\n%s", tt.contains, buf.String())
			}
		})
	}
}

func TestPrettyCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.slof", []byte("let a = 1\nlet é = @\n"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: 19, End: 20}, "unexpected character '@' (code 64)"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := "" +
		"a.slof:2:9: error[LEX1001]: unexpected character '@' (code 64)\n" +
		"   |\n" +
		" 2 | let é = @\n" +
		"   |         ^\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyUnderlineClippedToLine(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("s.slof", []byte("x = \"ab\ncd"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnterminatedString, source.Span{File: fileID, Start: 4, End: 10}, "unexpected end of file reached"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "|     ^~~\n") {
		t.Errorf("expected underline of the first line only:\n%s", buf.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("n.slof", []byte("abc"))

	d := diag.NewError(diag.LexBadNumber, source.Span{File: fileID, Start: 0, End: 1}, "bad").
		WithNote(source.Span{File: fileID, Start: 2, End: 3}, "here")
	bag := diag.NewBag(1)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(buf.String(), "note: n.slof:1:3: here") {
		t.Errorf("missing note:\n%s", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes shown without ShowNotes:\n%s", buf.String())
	}
}
