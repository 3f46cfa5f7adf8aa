package dto

import "github.com/SscSPs/monetary_correction_app/internal/core/domain"

// EraResponse defines the data returned for a currency era.
type EraResponse struct {
	Code         string  `json:"code" example:"CRUZEIRO_REAL"`
	Name         string  `json:"name" example:"Cruzeiro Real"`
	Symbol       string  `json:"symbol" example:"CR$"`
	UpperBound   *string `json:"upperBound,omitempty" example:"1994-07-01"`
	ToReal       string  `json:"toReal" example:"1/2750"`
	FromReal     string  `json:"fromReal" example:"2750/1"`
	ToRealFactor float64 `json:"toRealFactor"`
}

// ToEraResponse converts a domain.Era to EraResponse DTO
func ToEraResponse(era domain.Era) EraResponse {
	res := EraResponse{
		Code:         era.Code,
		Name:         era.Name,
		Symbol:       era.Symbol,
		ToReal:       era.ToReal.String(),
		FromReal:     era.FromReal.String(),
		ToRealFactor: era.ToReal.Float64(),
	}
	if !era.IsOpenEnded() {
		bound := era.UpperBound.Format("2006-01-02")
		res.UpperBound = &bound
	}
	return res
}

// ToListEraResponse converts a slice of domain.Era to a slice of EraResponse DTOs
func ToListEraResponse(eras []domain.Era) []EraResponse {
	res := make([]EraResponse, len(eras))
	for i, era := range eras {
		res[i] = ToEraResponse(era)
	}
	return res
}
