package statement

import (
	"strings"

	"github.com/edocta/consulta-vehicular/dto"
)

// scan holds what a single forward pass over the filtered lines collected.
type scan struct {
	vehicle  []string
	charges  []string
	subtotal string
	totalDue string
	findings [categoryCount]dto.MonetaryFinding
}

// scanLines walks the lines once. Every rule is evaluated for every line, and
// the label rules look one line ahead for their value.
func scanLines(lines []string) *scan {
	s := &scan{vehicle: []string{}}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		next, hasNext := "", i+1 < len(lines)
		if hasNext {
			next = lines[i+1]
		}

		if label := vehicleLabel(line); label != "" {
			s.vehicle = append(s.vehicle, label)
			// A colon means the next line is another label, not a value.
			if hasNext && strings.TrimSpace(next) != "" && !strings.Contains(next, ":") {
				s.vehicle = append(s.vehicle, next)
			}
		}

		if chargePattern.MatchString(line) {
			s.charges = append(s.charges, line)
		}

		if s.subtotal == "" && strings.Contains(line, subtotalToken) {
			s.subtotal = line
		}

		if s.totalDue == "" && (strings.Contains(line, totalDueToken) || totalDuePattern.MatchString(line)) {
			s.totalDue = line
		}

		for _, rule := range FindingRules {
			f := &s.findings[rule.Category]
			if f.Found || !rule.Matches(line) {
				continue
			}
			f.Found = true
			f.Description = line
			f.Amount = ExtractAmount(line)
			if f.Amount == NotAvailable && hasNext {
				f.Amount = ExtractAmount(next)
			}
		}
	}

	return s
}

func vehicleLabel(line string) string {
	for _, label := range VehicleLabels {
		if line == label {
			return label
		}
	}
	return ""
}
