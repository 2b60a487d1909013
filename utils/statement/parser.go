package statement

import (
	"strings"

	"github.com/edocta/consulta-vehicular/dto"
)

// Parse extracts the account statement of plate from the page text lines.
// It never fails: anything missing is reported through placeholders.
func Parse(plate string, lines []string) dto.QueryResult {
	s := scanLines(FilterLines(lines))
	applyFallback(s, strings.Join(lines, "\n"))
	return assemble(plate, s)
}

// ParseText splits the page text content into lines and parses it.
func ParseText(plate, text string) dto.QueryResult {
	return Parse(plate, strings.Split(text, "\n"))
}
