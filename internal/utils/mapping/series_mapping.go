package mapping

import (
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	"github.com/SscSPs/monetary_correction_app/internal/models"
)

// ToModelSeriesSnapshot converts a domain IndexSeries to its stored header and points
func ToModelSeriesSnapshot(s *domain.IndexSeries, sourceCode string) (models.SeriesSnapshot, []models.SeriesPoint) {
	points := s.Points()
	modelPoints := make([]models.SeriesPoint, len(points))
	for i, p := range points {
		modelPoints[i] = models.SeriesPoint{
			IndexID:   s.IndexID,
			Month:     p.Date,
			Variation: p.Variation,
		}
	}

	return models.SeriesSnapshot{
		IndexID:    s.IndexID,
		SourceCode: sourceCode,
		FetchedAt:  s.FetchedAt,
		PointCount: len(modelPoints),
	}, modelPoints
}

// ToDomainIndexSeries rebuilds a domain IndexSeries from stored rows
func ToDomainIndexSeries(snapshot models.SeriesSnapshot, ms []models.SeriesPoint) *domain.IndexSeries {
	points := make([]domain.SeriesPoint, len(ms))
	for i, m := range ms {
		points[i] = domain.SeriesPoint{Date: m.Month, Variation: m.Variation}
	}

	series := domain.NewIndexSeries(snapshot.IndexID, points)
	series.FetchedAt = snapshot.FetchedAt.UTC()
	return series
}
