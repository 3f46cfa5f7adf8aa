package dto

import (
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	"github.com/SscSPs/monetary_correction_app/internal/utils"
	"github.com/SscSPs/monetary_correction_app/internal/utils/correction"
	"github.com/shopspring/decimal"
)

// monthLayout is the wire format of every month in responses.
const monthLayout = "2006-01"

// CorrectionRequest defines the data needed to correct a nominal amount.
// Dates accept YYYY-MM, MM-YYYY, MM/YYYY, YYYY-MM-DD or RFC 3339; only the month is used.
type CorrectionRequest struct {
	IndexID      string           `json:"indexID" binding:"required" example:"IPCA"`
	StartDate    string           `json:"startDate" example:"2024-01"`
	EndDate      string           `json:"endDate" example:"2024-03"`
	NominalValue *decimal.Decimal `json:"nominalValue" binding:"required" swaggertype:"string" example:"100.00"`
}

// ToDomain parses the request dates and builds the domain request.
func (r CorrectionRequest) ToDomain() (domain.CorrectionRequest, error) {
	start, err := correction.ParseMonth("startDate", r.StartDate)
	if err != nil {
		return domain.CorrectionRequest{}, err
	}
	end, err := correction.ParseMonth("endDate", r.EndDate)
	if err != nil {
		return domain.CorrectionRequest{}, err
	}

	nominal := decimal.Zero
	if r.NominalValue != nil {
		nominal = *r.NominalValue
	}
	return domain.CorrectionRequest{
		IndexID:      r.IndexID,
		StartDate:    start,
		EndDate:      end,
		NominalValue: nominal,
	}, nil
}

// CorrectionRowResponse is one month of the correction table.
type CorrectionRowResponse struct {
	Date                  string          `json:"date" example:"2024-01"`
	MonthlyVariation      float64         `json:"monthlyVariation"`
	CumulativeFactor      float64         `json:"cumulativeFactor"`
	CorrectedValue        decimal.Decimal `json:"correctedValue" swaggertype:"string"`
	CorrectedValueDisplay string          `json:"correctedValueDisplay" example:"R$ 100,50"`
}

// CorrectionResponse defines the data returned for a correction.
type CorrectionResponse struct {
	IndexID               string                  `json:"indexID"`
	Mode                  string                  `json:"mode" example:"INFLATION"`
	StartDate             string                  `json:"startDate" example:"2024-01"`
	EndDate               string                  `json:"endDate" example:"2024-03"`
	NominalValue          decimal.Decimal         `json:"nominalValue" swaggertype:"string"`
	NominalValueDisplay   string                  `json:"nominalValueDisplay" example:"R$ 100,00"`
	FinalFactor           float64                 `json:"finalFactor"`
	PeriodChangePercent   float64                 `json:"periodChangePercent"`
	PeriodChangeDisplay   string                  `json:"periodChangeDisplay" example:"1,73 %"`
	CorrectedValue        decimal.Decimal         `json:"correctedValue" swaggertype:"string"`
	CorrectedValueDisplay string                  `json:"correctedValueDisplay" example:"R$ 101,73"`
	NominalEra            EraResponse             `json:"nominalEra"`
	TargetEra             EraResponse             `json:"targetEra"`
	Rows                  []CorrectionRowResponse `json:"rows"`
}

// ToCorrectionResponse converts a domain.CorrectionResult to CorrectionResponse DTO
func ToCorrectionResponse(res *domain.CorrectionResult, f utils.DisplayFormatter) CorrectionResponse {
	rows := make([]CorrectionRowResponse, len(res.Rows))
	for i, row := range res.Rows {
		rows[i] = CorrectionRowResponse{
			Date:                  row.Date.Format(monthLayout),
			MonthlyVariation:      row.MonthlyVariation,
			CumulativeFactor:      row.CumulativeFactor,
			CorrectedValue:        row.CorrectedValue,
			CorrectedValueDisplay: f.Money(row.CorrectedValue, res.TargetEra.Symbol),
		}
	}

	return CorrectionResponse{
		IndexID:               res.IndexID,
		Mode:                  string(res.Mode),
		StartDate:             res.Start.Format(monthLayout),
		EndDate:               res.End.Format(monthLayout),
		NominalValue:          res.NominalValue,
		NominalValueDisplay:   f.Money(res.NominalValue, res.NominalEra.Symbol),
		FinalFactor:           res.FinalFactor,
		PeriodChangePercent:   res.PeriodChangePercent,
		PeriodChangeDisplay:   f.Percent(res.PeriodChangePercent),
		CorrectedValue:        res.CorrectedValue,
		CorrectedValueDisplay: f.Money(res.CorrectedValue, res.TargetEra.Symbol),
		NominalEra:            ToEraResponse(res.NominalEra),
		TargetEra:             ToEraResponse(res.TargetEra),
		Rows:                  rows,
	}
}
