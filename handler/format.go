package handler

import (
	"fmt"
	"strings"

	"github.com/edocta/consulta-vehicular/dto"
	"github.com/edocta/consulta-vehicular/utils/statement"
)

var (
	heavyRule = strings.Repeat("=", 60)
	lightRule = strings.Repeat("-", 40)
)

// FormatConsole renders a query response as the plain-text console report.
func FormatConsole(resp *dto.ConsultaResponse) string {
	var b strings.Builder

	b.WriteString("\n" + heavyRule + "\n")
	fmt.Fprintf(&b, "RESULTADOS COMPLETOS PARA PLACA: %s\n", resp.Plate)
	b.WriteString(heavyRule + "\n")

	section(&b, "📋 INFORMACION DEL VEHICULO")
	for _, item := range resp.Vehicle {
		b.WriteString(item + "\n")
	}

	section(&b, "💰 CARGOS")
	if len(resp.Charges) == 0 || resp.Charges[0] == statement.NoCharges {
		b.WriteString(statement.NoCharges + "\n")
	} else {
		for i, charge := range resp.Charges {
			fmt.Fprintf(&b, "%d. %s\n", i+1, charge)
		}
	}

	section(&b, "🎯 SUBSIDIOS Y DONATIVOS")
	sd := resp.SubsidiesAndDonations
	findingLine(&b, "SUBSIDIO REFRENDO PRONTO PAGO", sd.PromptPaymentSubsidy)
	findingLine(&b, "DONATIVO CRUZ ROJA", sd.RedCrossDonation)
	findingLine(&b, "DONATIVO BOMBEROS", sd.FirefightersDonation)

	section(&b, "📊 RESUMEN FINANCIERO")
	fmt.Fprintf(&b, "SUBTOTAL: %s\n", resp.Subtotal)
	fmt.Fprintf(&b, "TOTAL A PAGAR: %s\n", resp.TotalDue)

	section(&b, "📈 DESGLOSE")
	d := resp.Summary.Breakdown
	fmt.Fprintf(&b, "• Subsidio Refrendo: %s\n", d.PromptPaymentSubsidy)
	fmt.Fprintf(&b, "• Donativo Cruz Roja: %s\n", d.RedCrossDonation)
	fmt.Fprintf(&b, "• Donativo Bomberos: %s\n", d.FirefightersDonation)

	fmt.Fprintf(&b, "\n⏱️ Tiempo de consulta: %s\n", resp.Elapsed)
	fmt.Fprintf(&b, "📅 Consultado el: %s\n", resp.QueriedAt)

	return b.String()
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s:\n%s\n", title, lightRule)
}

func findingLine(b *strings.Builder, label string, f dto.MonetaryFinding) {
	if f.Found {
		fmt.Fprintf(b, "✓ %s: %s\n", label, f.Amount)
		return
	}
	fmt.Fprintf(b, "✗ %s: %s\n", label, statement.NotFound)
}
