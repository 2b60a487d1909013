package commands

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/edocta/consulta-vehicular/dto"
	"github.com/edocta/consulta-vehicular/utils/statement"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.SetTitle(title)
	return t
}

func renderResult(w io.Writer, r dto.QueryResult) {
	vehicle := newTable(w, "Vehículo "+r.Plate)
	vehicle.AppendHeader(table.Row{"Atributo", "Valor"})
	for _, row := range vehicleRows(r.Vehicle) {
		vehicle.AppendRow(row)
	}
	vehicle.Render()

	charges := newTable(w, "Cargos")
	charges.AppendHeader(table.Row{"#", "Cargo"})
	for i, c := range r.Charges {
		charges.AppendRow(table.Row{i + 1, c})
	}
	charges.Render()

	sd := r.SubsidiesAndDonations
	findings := newTable(w, "Subsidios y donativos")
	findings.AppendHeader(table.Row{"Concepto", "Encontrado", "Valor", "Descripción"})
	for _, f := range []struct {
		category statement.Category
		finding  dto.MonetaryFinding
	}{
		{statement.PromptPaymentSubsidy, sd.PromptPaymentSubsidy},
		{statement.RedCrossDonation, sd.RedCrossDonation},
		{statement.FirefightersDonation, sd.FirefightersDonation},
	} {
		found := "✗"
		if f.finding.Found {
			found = "✓"
		}
		findings.AppendRow(table.Row{f.category.String(), found, f.finding.Amount, f.finding.Description})
	}
	findings.Render()

	summary := newTable(w, "Resumen financiero")
	summary.AppendRows([]table.Row{
		{"Subtotal", r.Summary.Subtotal},
		{"Total a pagar", r.Summary.TotalDue},
		{"Subsidio refrendo", r.Summary.Breakdown.PromptPaymentSubsidy},
		{"Donativo Cruz Roja", r.Summary.Breakdown.RedCrossDonation},
		{"Donativo bomberos", r.Summary.Breakdown.FirefightersDonation},
	})
	summary.Render()
}

// vehicleRows pairs each label with the value that follows it, if any.
func vehicleRows(items []string) []table.Row {
	var rows []table.Row
	for i := 0; i < len(items); i++ {
		row := table.Row{items[i], ""}
		if i+1 < len(items) && !isLabel(items[i+1]) {
			row[1] = items[i+1]
			i++
		}
		rows = append(rows, row)
	}
	return rows
}

func isLabel(item string) bool {
	for _, label := range statement.VehicleLabels {
		if item == label {
			return true
		}
	}
	return false
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
