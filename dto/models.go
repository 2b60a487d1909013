package dto

// MonetaryFinding is the found/not-found result for one named subsidy or donation.
type MonetaryFinding struct {
	Found       bool   `json:"encontrado"`
	Description string `json:"descripcion"`
	Amount      string `json:"valor"`
}

type SubsidiesAndDonations struct {
	PromptPaymentSubsidy MonetaryFinding `json:"subsidioRefrendoProntoPago"`
	RedCrossDonation     MonetaryFinding `json:"donativoCruzRoja"`
	FirefightersDonation MonetaryFinding `json:"donativoBomberos"`
}

// Breakdown holds only the amounts of the three findings.
type Breakdown struct {
	PromptPaymentSubsidy string `json:"subsidioRefrendo"`
	RedCrossDonation     string `json:"donativoCruzRoja"`
	FirefightersDonation string `json:"donativoBomberos"`
}

type FinancialSummary struct {
	Subtotal  string    `json:"subtotal"`
	TotalDue  string    `json:"totalAPagar"`
	Breakdown Breakdown `json:"desglose"`
}

// QueryResult is the structured account statement of one plate.
// Every field is always populated, either with portal text or a placeholder.
type QueryResult struct {
	Plate                 string                `json:"placa"`
	Vehicle               []string              `json:"vehiculo"`
	Charges               []string              `json:"cargos"`
	Subtotal              string                `json:"subtotal"`
	TotalDue              string                `json:"totalAPagar"`
	SubsidiesAndDonations SubsidiesAndDonations `json:"subsidiosYdonativos"`
	Summary               FinancialSummary      `json:"resumenFinanciero"`
}
