package dto

import (
	"strings"
	"unicode"
)

// ConsultaRequest represents the incoming plate query
type ConsultaRequest struct {
	Plate string `json:"placa" form:"placa"`
}

// Validate normalizes the plate and checks it is present
func (r *ConsultaRequest) Validate() error {
	r.Plate = NormalizePlate(r.Plate)
	if r.Plate == "" {
		return ErrPlateRequired
	}
	return nil
}

// NormalizePlate upper-cases a plate and strips every whitespace rune.
func NormalizePlate(plate string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToUpper(strings.TrimSpace(plate)))
}
