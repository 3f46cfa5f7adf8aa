package models

import "time"

// SeriesSnapshot is the stored header of an index series.
type SeriesSnapshot struct {
	IndexID    string    `json:"indexID"` // Primary Key (e.g., "IPCA")
	SourceCode string    `json:"sourceCode"`
	FetchedAt  time.Time `json:"fetchedAt"`
	PointCount int       `json:"pointCount"`
}

// SeriesPoint is one stored monthly variation.
type SeriesPoint struct {
	IndexID   string    `json:"indexID"`
	Month     time.Time `json:"month"` // first day of the month
	Variation float64   `json:"variation"`
}
