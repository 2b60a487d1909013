// Package statement turns the rendered text of a vehicle account statement
// page into a dto.QueryResult.
package statement

import (
	"regexp"
	"strings"
)

// Placeholders used when the portal text lacks a value. They are not
// interchangeable: each one belongs to a specific field of the result.
const (
	NotAvailable        = "No disponible"
	NotFound            = "No encontrado"
	NotApplicable       = "No aplica"
	NoCharges           = "No se encontraron cargos"
	SubtotalUnavailable = "SUBTOTAL: No disponible"
	TotalUnavailable    = "TOTAL A PAGAR: No disponible"
)

// ExcludedFragments lists page chrome and script fragments. A line containing
// any of them is dropped; everything else is kept.
var ExcludedFragments = []string{
	"Selecciona el metodo de pago:",
	"Tarjeta de Crédito/Débito",
	"Línea de Referencia Bancaria",
	"Te redireccionaremos",
	"Favor de tener habilitados",
	"Cerrar",
	"get_ip",
	"CDATA",
	"$('#modalCargar')",
	"//<![CDATA[",
	"//]]>",
	"function get_ip",
}

// VehicleLabels are the label lines of the vehicle block. A line must equal a
// label exactly; inline "NIV: value" lines are not labels.
var VehicleLabels = []string{"Marca:", "Modelo:", "Linea:", "Tipo:", "Color:", "NIV:"}

// Category identifies one of the named subsidy/donation findings.
type Category int

const (
	PromptPaymentSubsidy Category = iota
	RedCrossDonation
	FirefightersDonation
	categoryCount
)

func (c Category) String() string {
	switch c {
	case PromptPaymentSubsidy:
		return "subsidio refrendo pronto pago"
	case RedCrossDonation:
		return "donativo cruz roja"
	case FirefightersDonation:
		return "donativo bomberos"
	default:
		return "desconocido"
	}
}

// FindingRule describes how a category is recognised. Patterns and Literals
// are alternatives for the line scan; Fallback runs over the whole page text
// and must capture the amount in group 1.
type FindingRule struct {
	Category Category
	Patterns []*regexp.Regexp
	Literals []string
	Fallback *regexp.Regexp
}

var FindingRules = []FindingRule{
	{
		Category: PromptPaymentSubsidy,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)SUBSIDIO.*REF.*ENDO.*PRONTO.*PAGO`),
			regexp.MustCompile(`(?i)SUBSIDIO.*PRONTO.*PAGO`),
		},
		Literals: []string{"SUBSIDIO REFRENDO PRONTO PAGO"},
		Fallback: regexp.MustCompile(`(?i)SUBSIDIO.*REF.*ENDO.*PRONTO.*PAGO[^$]*(\$[\d,.]+)`),
	},
	{
		Category: RedCrossDonation,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)DONATIVO.*CRUZ.*ROJA`),
			regexp.MustCompile(`(?i)DONATIVOS.*CRUZ.*ROJA`),
		},
		Literals: []string{"DONATIVOS PARA CRUZ ROJA", "DONATIVO CRUZ ROJA"},
		Fallback: regexp.MustCompile(`(?i)DONATIVO.*CRUZ.*ROJA[^$]*(\$[\d,.]+)`),
	},
	{
		Category: FirefightersDonation,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)DONATIVO.*BOMBERO`),
			regexp.MustCompile(`(?i)DONATIVOS.*BOMBERO`),
			regexp.MustCompile(`(?i)DONATIVO.*PAT.*BOMBERO`),
		},
		Literals: []string{"DONATIVOS PARA PAT. DE BOMBEROS", "DONATIVO BOMBEROS"},
		Fallback: regexp.MustCompile(`(?i)DONATIVO.*BOMBERO[^$]*(\$[\d,.]+)`),
	},
}

// Matches reports whether line satisfies any alternative of the rule.
func (r FindingRule) Matches(line string) bool {
	for _, re := range r.Patterns {
		if re.MatchString(line) {
			return true
		}
	}
	for _, lit := range r.Literals {
		if strings.Contains(line, lit) {
			return true
		}
	}
	return false
}

const (
	subtotalToken = "SUBTOTAL"
	totalDueToken = "TOTAL A PAGAR"
)

var (
	chargePattern    = regexp.MustCompile(`\d{4}[\s\p{Zs}]+\$`)
	totalDuePattern  = regexp.MustCompile(`(?i)TOTAL.*PAGAR`)
	totalDueFallback = regexp.MustCompile(`(?i)TOTAL[\s\p{Zs}]*A[\s\p{Zs}]*PAGAR[^$\n]*\$?[\s\p{Zs}]*[\d,]+\.?\d*`)
)
