package diagfmt

import "slof/internal/source"

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	default:
		return f.FormatPath(mode.String(), "")
	}
}

// lineBounds returns the byte range of the 1-based line, newline excluded.
func lineBounds(f *source.File, line uint32) (start, end uint32) {
	if line > 1 && int(line-2) < len(f.LineIdx) {
		start = f.LineIdx[line-2] + 1
	}
	end = uint32(len(f.Content)) // bounded when the file was added
	if int(line-1) < len(f.LineIdx) {
		end = f.LineIdx[line-1]
	}
	return start, end
}
