package statement

import "github.com/edocta/consulta-vehicular/dto"

// assemble fills every absent field with its placeholder.
func assemble(plate string, s *scan) dto.QueryResult {
	charges := s.charges
	if len(charges) == 0 {
		charges = []string{NoCharges}
	}

	vehicle := s.vehicle
	if vehicle == nil {
		vehicle = []string{}
	}

	subsidy := finding(s.findings[PromptPaymentSubsidy])
	redCross := finding(s.findings[RedCrossDonation])
	firefighters := finding(s.findings[FirefightersDonation])

	return dto.QueryResult{
		Plate:    plate,
		Vehicle:  vehicle,
		Charges:  charges,
		Subtotal: orDefault(s.subtotal, SubtotalUnavailable),
		TotalDue: orDefault(s.totalDue, TotalUnavailable),
		SubsidiesAndDonations: dto.SubsidiesAndDonations{
			PromptPaymentSubsidy: subsidy,
			RedCrossDonation:     redCross,
			FirefightersDonation: firefighters,
		},
		Summary: dto.FinancialSummary{
			Subtotal: orDefault(s.subtotal, NotAvailable),
			TotalDue: orDefault(s.totalDue, NotAvailable),
			Breakdown: dto.Breakdown{
				PromptPaymentSubsidy: breakdownAmount(subsidy),
				RedCrossDonation:     breakdownAmount(redCross),
				FirefightersDonation: breakdownAmount(firefighters),
			},
		},
	}
}

func finding(f dto.MonetaryFinding) dto.MonetaryFinding {
	if !f.Found {
		return dto.MonetaryFinding{Found: false, Description: NotFound, Amount: NotAvailable}
	}
	return dto.MonetaryFinding{
		Found:       true,
		Description: f.Description,
		Amount:      orDefault(f.Amount, NotAvailable),
	}
}

func breakdownAmount(f dto.MonetaryFinding) string {
	if !f.Found {
		return NotApplicable
	}
	return f.Amount
}

func orDefault(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
