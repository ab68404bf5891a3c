package dircmp

import (
	"io"
	"strings"
)

const entryMarker = " - "

// String renders the report as plain text: every group is introduced by a blank
// line and its label, entries follow one per line, and a blank line ends the report.
func (r *Report) String() string {
	builder := strings.Builder{}

	for _, label := range r.Groups.Labels() {
		builder.WriteString("\n")
		builder.WriteString(string(label))
		builder.WriteString("\n")

		for _, name := range r.Groups[label] {
			builder.WriteString(entryMarker)
			builder.WriteString(name)
			builder.WriteString("\n")
		}
	}

	builder.WriteString("\n")
	return builder.String()
}

// Write writes the rendered report to w
func (r *Report) Write(w io.Writer) error {
	_, err := io.WriteString(w, r.String())
	return err
}
