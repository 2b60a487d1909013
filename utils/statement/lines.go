package statement

import "strings"

// FilterLines trims every line and drops blanks and known page noise.
func FilterLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" || isNoise(l) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func isNoise(line string) bool {
	for _, fragment := range ExcludedFragments {
		if strings.Contains(line, fragment) {
			return true
		}
	}
	return false
}
