package dto

import (
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	"github.com/SscSPs/monetary_correction_app/internal/utils/correction"
)

// IndexResponse defines the data returned for a supported index.
type IndexResponse struct {
	IndexID     string `json:"indexID" example:"IGP_M"`
	Name        string `json:"name" example:"IGP-M"`
	SourceCode  string `json:"sourceCode" example:"IGP12_IGPMG12"`
	Description string `json:"description"`
}

// ToIndexResponse converts a domain.PriceIndex to IndexResponse DTO
func ToIndexResponse(idx domain.PriceIndex) IndexResponse {
	return IndexResponse{
		IndexID:     idx.IndexID,
		Name:        idx.Name,
		SourceCode:  idx.SourceCode,
		Description: idx.Description,
	}
}

// ToListIndexResponse converts the catalog to a slice of IndexResponse DTOs
func ToListIndexResponse(indices []domain.PriceIndex) []IndexResponse {
	res := make([]IndexResponse, len(indices))
	for i, idx := range indices {
		res[i] = ToIndexResponse(idx)
	}
	return res
}

// SeriesPointResponse is one monthly variation.
type SeriesPointResponse struct {
	Date      string  `json:"date" example:"1994-07"`
	Variation float64 `json:"variation" example:"6.84"`
}

// SeriesResponse defines the data returned for an index series.
type SeriesResponse struct {
	IndexID   string                `json:"indexID"`
	FetchedAt time.Time             `json:"fetchedAt"`
	MinDate   string                `json:"minDate,omitempty" example:"1980-01"`
	MaxDate   string                `json:"maxDate,omitempty" example:"2025-09"`
	Points    []SeriesPointResponse `json:"points"`
}

// ToSeriesResponse converts a domain.IndexSeries to SeriesResponse DTO
func ToSeriesResponse(series *domain.IndexSeries) SeriesResponse {
	res := SeriesResponse{
		IndexID:   series.IndexID,
		FetchedAt: series.FetchedAt,
		Points:    toSeriesPointResponses(series.Points()),
	}
	if minDate, maxDate, ok := series.Domain(); ok {
		res.MinDate = minDate.Format(monthLayout)
		res.MaxDate = maxDate.Format(monthLayout)
	}
	return res
}

func toSeriesPointResponses(points []domain.SeriesPoint) []SeriesPointResponse {
	res := make([]SeriesPointResponse, len(points))
	for i, p := range points {
		res[i] = SeriesPointResponse{Date: p.Date.Format(monthLayout), Variation: p.Variation}
	}
	return res
}

// ComparisonQuery defines the query parameters of an index comparison.
type ComparisonQuery struct {
	Start   string `form:"start" binding:"required" example:"2020-01"`
	End     string `form:"end" binding:"required" example:"2024-12"`
	Indices string `form:"indices" example:"IPCA,IGP_M"`
}

// ParseDates parses the comparison bounds.
func (q ComparisonQuery) ParseDates() (time.Time, time.Time, error) {
	start, err := correction.ParseMonth("start", q.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := correction.ParseMonth("end", q.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// IndexWindowResponse is one index of a comparison.
type IndexWindowResponse struct {
	IndexID             string                `json:"indexID"`
	Name                string                `json:"name"`
	AccumulatedFactor   float64               `json:"accumulatedFactor"`
	PeriodChangePercent float64               `json:"periodChangePercent"`
	Points              []SeriesPointResponse `json:"points"`
}

// ComparisonResponse defines the data returned for an index comparison.
type ComparisonResponse struct {
	Start   string                `json:"start" example:"2020-01"`
	End     string                `json:"end" example:"2024-12"`
	Indices []IndexWindowResponse `json:"indices"`
}

// ToComparisonResponse converts index windows to ComparisonResponse DTO.
// start and end are reported in chronological order.
func ToComparisonResponse(start, end time.Time, windows []domain.IndexWindow) ComparisonResponse {
	if end.Before(start) {
		start, end = end, start
	}
	res := ComparisonResponse{
		Start:   domain.MonthStart(start).Format(monthLayout),
		End:     domain.MonthStart(end).Format(monthLayout),
		Indices: make([]IndexWindowResponse, len(windows)),
	}
	for i, w := range windows {
		res.Indices[i] = IndexWindowResponse{
			IndexID:             w.IndexID,
			Name:                w.Name,
			AccumulatedFactor:   w.AccumulatedFactor,
			PeriodChangePercent: correction.PeriodChangePercent(w.AccumulatedFactor, true),
			Points:              toSeriesPointResponses(w.Points),
		}
	}
	return res
}
