package statement

import "strings"

// applyFallback searches the unfiltered page text for whatever the line scan
// missed. Labels and amounts that ended up on one line only show up here.
//
// A category found by the scan with an unavailable amount is left alone.
func applyFallback(s *scan, rawText string) {
	for _, rule := range FindingRules {
		f := &s.findings[rule.Category]
		if f.Found || rule.Fallback == nil {
			continue
		}
		m := rule.Fallback.FindStringSubmatch(rawText)
		if len(m) < 2 || m[1] == "" {
			continue
		}
		f.Found = true
		f.Description = strings.TrimSpace(m[0])
		f.Amount = strings.TrimSpace(m[1])
	}

	if s.totalDue == "" {
		if m := totalDueFallback.FindString(rawText); m != "" {
			s.totalDue = strings.TrimSpace(m)
		}
	}
}
