package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

// Diagnostics go to stderr; stdout only ever carries the JSON document.
func init() {
	if !supportscolor.Stderr().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintError writes a single-line error message.
func PrintError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%serror:%s %v\n", red, reset, err)
}

// PrintHint writes usage guidance following an error.
func PrintHint(w io.Writer, hint string) {
	_, _ = fmt.Fprintf(w, "%s%s%s\n", dim, hint, reset)
}

// PrintDetails writes a heading followed by indented "label: value" lines.
func PrintDetails(w io.Writer, name string, details []string) {
	_, _ = fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, name)
	for _, d := range details {
		_, _ = fmt.Fprintf(w, "     %s\n", formatLabel(d))
	}
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	label, value, ok := strings.Cut(s, ": ")
	if !ok {
		return s
	}
	return dim + label + ":" + reset + " " + value
}
