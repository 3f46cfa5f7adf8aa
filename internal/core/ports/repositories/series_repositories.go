package repositories

import (
	"context"

	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
)

// SeriesSnapshotReader defines read operations for stored index series.
type SeriesSnapshotReader interface {
	// FindSeriesSnapshot retrieves the last stored series for an index.
	// It returns apperrors.ErrNotFound when nothing has been stored yet.
	FindSeriesSnapshot(ctx context.Context, indexID string) (*domain.IndexSeries, error)
}

// SeriesSnapshotWriter defines write operations for stored index series.
type SeriesSnapshotWriter interface {
	// SaveSeriesSnapshot replaces the stored series for series.IndexID.
	SaveSeriesSnapshot(ctx context.Context, series *domain.IndexSeries) error
}

// SeriesSnapshotRepositoryFacade combines all series snapshot repository interfaces
type SeriesSnapshotRepositoryFacade interface {
	SeriesSnapshotReader
	SeriesSnapshotWriter
}

// SeriesSnapshotRepositoryWithTx extends SeriesSnapshotRepositoryFacade with transaction capabilities
type SeriesSnapshotRepositoryWithTx interface {
	SeriesSnapshotRepositoryFacade
	TransactionManager
}

// SeriesFetcher retrieves raw monthly variations from a remote data source.
type SeriesFetcher interface {
	// FetchSeries downloads every available point of the series identified by sourceCode.
	FetchSeries(ctx context.Context, sourceCode string) ([]domain.SeriesPoint, error)
}
