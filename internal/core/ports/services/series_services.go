package services

import (
	"context"

	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
)

// SeriesProvider supplies index series to the correction engine.
type SeriesProvider interface {
	// FetchSeries returns a read-only snapshot of the series for indexID.
	FetchSeries(ctx context.Context, indexID string) (*domain.IndexSeries, error)
}

// SeriesReaderSvc defines read operations for index metadata
type SeriesReaderSvc interface {
	SeriesProvider

	// ListIndices returns the catalog of supported indices.
	ListIndices(ctx context.Context) []domain.PriceIndex
}

// SeriesWriterSvc defines operations that refresh series data
type SeriesWriterSvc interface {
	// RefreshSeries fetches the series from the remote source, bypassing the cache.
	RefreshSeries(ctx context.Context, indexID string) (*domain.IndexSeries, error)
}

// SeriesSvcFacade combines all series-related service interfaces
type SeriesSvcFacade interface {
	SeriesReaderSvc
	SeriesWriterSvc
}
