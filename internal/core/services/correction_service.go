package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	portssvc "github.com/SscSPs/monetary_correction_app/internal/core/ports/services"
	"github.com/SscSPs/monetary_correction_app/internal/utils/correction"
	"golang.org/x/sync/errgroup"
)

// maxComparisonFetches bounds the series loaded in parallel by CompareIndices.
const maxComparisonFetches = 4

// correctionService implements the CorrectionSvcFacade interface
type correctionService struct {
	BaseService
	series portssvc.SeriesProvider
}

// NewCorrectionService creates a correction service that reads series from provider.
func NewCorrectionService(provider portssvc.SeriesProvider) portssvc.CorrectionSvcFacade {
	return &correctionService{series: provider}
}

// Ensure correctionService implements the CorrectionSvcFacade interface
var _ portssvc.CorrectionSvcFacade = (*correctionService)(nil)

func (s *correctionService) ComputeCorrection(ctx context.Context, req domain.CorrectionRequest) (*domain.CorrectionResult, error) {
	series, err := s.series.FetchSeries(ctx, req.IndexID)
	if err != nil {
		return nil, err
	}

	result, err := correction.Compute(req, series)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptySeries) {
			s.LogError(ctx, err, "Correction produced an empty window", slog.String("index_id", series.IndexID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Correction computed",
		slog.String("index_id", result.IndexID),
		slog.String("mode", string(result.Mode)),
		slog.String("start", result.Start.Format("2006-01")),
		slog.String("end", result.End.Format("2006-01")),
		slog.Int("rows", len(result.Rows)),
		slog.Float64("final_factor", result.FinalFactor))
	return result, nil
}

// CompareIndices windows each requested index over [earlier, later]. Indices that
// have no data in the window, or whose source is unavailable, are left out.
func (s *correctionService) CompareIndices(ctx context.Context, start, end time.Time, indexIDs []string) ([]domain.IndexWindow, error) {
	r, err := correction.NormalizeDates(start, end)
	if err != nil {
		return nil, err
	}

	indices, err := resolveIndices(indexIDs)
	if err != nil {
		return nil, err
	}

	seriesByIndex := make([]*domain.IndexSeries, len(indices))
	fetchErrs := make([]error, len(indices))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxComparisonFetches)
	for i, idx := range indices {
		i, idx := i, idx
		g.Go(func() error {
			series, err := s.series.FetchSeries(gctx, idx.IndexID)
			if err != nil {
				if !errors.Is(err, apperrors.ErrUpstream) {
					return err
				}
				fetchErrs[i] = err
				return nil
			}
			seriesByIndex[i] = series
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	windows := make([]domain.IndexWindow, 0, len(indices))
	var lastErr error
	for i, idx := range indices {
		series := seriesByIndex[i]
		if series == nil {
			s.LogWarn(ctx, fetchErrs[i], "Skipping index in comparison", slog.String("index_id", idx.IndexID))
			lastErr = fetchErrs[i]
			continue
		}

		points := series.Slice(r.Earlier, r.Later)
		_, factor, err := correction.Accumulate(points, true)
		if err != nil {
			s.LogInfo(ctx, "Index has no data in comparison window",
				slog.String("index_id", idx.IndexID),
				slog.String("from", r.Earlier.Format("2006-01")),
				slog.String("to", r.Later.Format("2006-01")))
			continue
		}

		windows = append(windows, domain.IndexWindow{
			IndexID:           idx.IndexID,
			Name:              idx.Name,
			Points:            points,
			AccumulatedFactor: factor,
		})
	}

	if len(windows) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return windows, nil
}

func (s *correctionService) ListEras(ctx context.Context) []domain.Era {
	return domain.Eras()
}

// resolveIndices maps requested IDs to catalog entries, defaulting to the full catalog.
func resolveIndices(indexIDs []string) ([]domain.PriceIndex, error) {
	if len(indexIDs) == 0 {
		return domain.PriceIndices(), nil
	}

	seen := make(map[string]bool, len(indexIDs))
	indices := make([]domain.PriceIndex, 0, len(indexIDs))
	for _, id := range indexIDs {
		idx, ok := domain.FindPriceIndex(id)
		if !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("index '%s' is not supported", id))
		}
		if seen[idx.IndexID] {
			continue
		}
		seen[idx.IndexID] = true
		indices = append(indices, idx)
	}
	return indices, nil
}
