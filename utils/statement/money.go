package statement

import (
	"regexp"
	"strings"
)

// moneyPattern matches amounts like $1,234.56 or -$198.00. \p{Zs} covers the
// non-breaking spaces rendered from &nbsp;.
var moneyPattern = regexp.MustCompile(`-?\$[\s\p{Zs}]*[\d,]+\.?\d*`)

// ExtractAmount returns the last currency amount in fragment, or NotAvailable.
// The figure usually trails the label and any other numbers on the line.
func ExtractAmount(fragment string) string {
	matches := moneyPattern.FindAllString(fragment, -1)
	if len(matches) == 0 {
		return NotAvailable
	}
	return strings.TrimSpace(matches[len(matches)-1])
}
