// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// goos is the target OS, replaceable in tests.
var goos = runtime.GOOS

// ForClipboard returns hints for clipboard write errors.
// On Linux the clipboard needs an external helper and a display server.
func ForClipboard() string {
	var hints []string

	if goos == "linux" {
		wayland := os.Getenv("WAYLAND_DISPLAY") != ""
		x11 := os.Getenv("DISPLAY") != ""
		switch {
		case wayland:
			hints = append(hints, "install wl-clipboard")
		case x11:
			hints = append(hints, "install xclip or xsel")
		default:
			hints = append(hints, "no display server found")
		}
	}
	if IsInContainer() {
		hints = append(hints, "the clipboard is not reachable from a container")
	}
	hints = append(hints, "omit --copy to print to stdout")

	return formatHints(hints)
}

// ForInvalidFileType returns a hint listing the accepted suffixes.
func ForInvalidFileType() string {
	return format("accepted suffixes: " + strings.Join(fileutil.SourceSuffixes, ", "))
}

// ForEmptyInput returns a hint for blank Markdown input.
func ForEmptyInput() string {
	return format("the input contains only whitespace; pass a file or pipe Markdown on stdin")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2docx/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForHighlightStyle returns hints for unknown highlight style errors.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
