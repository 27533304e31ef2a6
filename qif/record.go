package qif

import "strings"

// Record terminator and header lines.
const (
	endOfRecord   = "^"
	accountHeader = "!Account"
	typeHeader    = "!Type:"
	dateLayout    = "01/02/2006"
)

// line appends one tagged field followed by a newline.
func line(sb *strings.Builder, tag, value string) {
	sb.WriteString(tag)
	sb.WriteString(value)
	sb.WriteByte('\n')
}
