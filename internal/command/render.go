package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var errorTagStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E05252"))

// Render formats err for the terminal:
//
//	error: could not parse the date/time argument.
//	cause: parsing time "x" as "2006-01-02T15:04:05Z07:00": ...
//
// With color set the "error" tag is styled red.
func Render(err error, color bool) string {
	tag := "error"
	if color {
		tag = errorTagStyle.Render(tag)
	}

	var b strings.Builder
	var pe *ParseError
	if errors.As(err, &pe) {
		fmt.Fprintf(&b, "%s: could not parse %s.\n", tag, pe.Arg)
		fmt.Fprintf(&b, "cause: %v", pe.Err)
		return b.String()
	}
	fmt.Fprintf(&b, "%s: %v", tag, err)
	return b.String()
}
