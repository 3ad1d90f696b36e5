package diag

import (
	"fmt"
	"strings"

	"slof/internal/source"
)

// FormatShort renders diagnostics one per line as
// "<path>:<line>:<col>: <SEV> <ID>: <message>", in Bag order.
func FormatShort(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range diags {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(&b, "%s:%d:%d: %s %s: %s\n", f.Path, start.Line, start.Col, d.Severity, d.Code.ID(), d.Message)
	}
	return b.String()
}
