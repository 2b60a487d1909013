package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/edocta/consulta-vehicular/config"
	"github.com/edocta/consulta-vehicular/dto"
	"github.com/edocta/consulta-vehicular/utils/statement"
)

// PageDriver fetches the raw statement text for a plate from the portal
type PageDriver interface {
	FetchStatementText(ctx context.Context, plate string) (string, error)
}

type ConsultaService struct {
	driver PageDriver
	cfg    *config.Config
	now    func() time.Time
}

func NewConsultaService(driver PageDriver, cfg *config.Config) *ConsultaService {
	return &ConsultaService{
		driver: driver,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Consultar queries the portal for plate and returns the parsed statement
// wrapped with timing and execution metadata.
func (s *ConsultaService) Consultar(ctx context.Context, plate string) (*dto.ConsultaResponse, error) {
	req := dto.ConsultaRequest{Plate: plate}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := slog.With("placa", req.Plate)
	queryID := uuid.NewString()
	start := s.now()
	log.Info("starting query", "idConsulta", queryID, "proxy", s.cfg.ProxyLabel())

	text, err := s.driver.FetchStatementText(ctx, req.Plate)
	if err != nil {
		log.Error("portal query failed", "idConsulta", queryID, "error", err)
		return nil, fmt.Errorf("consulta %s: %w", req.Plate, err)
	}

	result := statement.ParseText(req.Plate, text)
	logFindings(log, result)

	elapsed := s.now().Sub(start)
	log.Info("query completed",
		"idConsulta", queryID,
		"elapsed", elapsed,
		"cargos", len(result.Charges),
		"totalAPagar", result.TotalDue,
	)

	return &dto.ConsultaResponse{
		QueryResult: result,
		Elapsed:     FormatElapsed(elapsed),
		QueriedAt:   s.now().UTC().Format(time.RFC3339),
		Metadata: dto.ConsultaMetadata{
			ProxyUsed: s.cfg.ProxyLabel(),
			EmailUsed: s.cfg.Email,
			Version:   config.Version,
			QueryID:   queryID,
		},
	}, nil
}

// FormatElapsed renders a duration as seconds with two decimals.
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2f segundos", d.Seconds())
}

func logFindings(log *slog.Logger, result dto.QueryResult) {
	findings := []struct {
		category statement.Category
		finding  dto.MonetaryFinding
	}{
		{statement.PromptPaymentSubsidy, result.SubsidiesAndDonations.PromptPaymentSubsidy},
		{statement.RedCrossDonation, result.SubsidiesAndDonations.RedCrossDonation},
		{statement.FirefightersDonation, result.SubsidiesAndDonations.FirefightersDonation},
	}
	for _, f := range findings {
		if f.finding.Found {
			log.Info("finding detected", "categoria", f.category.String(), "valor", f.finding.Amount)
		} else {
			log.Debug("finding not present", "categoria", f.category.String())
		}
	}
}
