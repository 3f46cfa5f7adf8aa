package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	portsrepo "github.com/SscSPs/monetary_correction_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/monetary_correction_app/internal/core/ports/services"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

const (
	defaultSeriesCacheSize = 32
	defaultSeriesCacheTTL  = 12 * time.Hour
)

// seriesService implements the SeriesSvcFacade interface
type seriesService struct {
	BaseService
	fetcher      portsrepo.SeriesFetcher
	snapshotRepo portsrepo.SeriesSnapshotRepositoryFacade

	cacheSize int
	cacheTTL  time.Duration
	cache     *expirable.LRU[string, *domain.IndexSeries]
	inflight  singleflight.Group
	now       func() time.Time
}

// SeriesServiceOption is a functional option for configuring the series service
type SeriesServiceOption func(*seriesService)

// WithSnapshotRepository enables persisting fetched series and falling back to
// the stored copy when the remote source is unavailable.
func WithSnapshotRepository(repo portsrepo.SeriesSnapshotRepositoryFacade) SeriesServiceOption {
	return func(s *seriesService) {
		s.snapshotRepo = repo
	}
}

// WithSeriesCache sets the cache capacity and entry lifetime.
func WithSeriesCache(size int, ttl time.Duration) SeriesServiceOption {
	return func(s *seriesService) {
		if size > 0 {
			s.cacheSize = size
		}
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithClock overrides the time source used to stamp fetched series.
func WithClock(now func() time.Time) SeriesServiceOption {
	return func(s *seriesService) {
		s.now = now
	}
}

// NewSeriesService creates a new series service reading from fetcher.
func NewSeriesService(fetcher portsrepo.SeriesFetcher, options ...SeriesServiceOption) portssvc.SeriesSvcFacade {
	svc := &seriesService{
		fetcher:   fetcher,
		cacheSize: defaultSeriesCacheSize,
		cacheTTL:  defaultSeriesCacheTTL,
		now:       time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	svc.cache = expirable.NewLRU[string, *domain.IndexSeries](svc.cacheSize, nil, svc.cacheTTL)
	return svc
}

// Ensure seriesService implements the SeriesSvcFacade interface
var _ portssvc.SeriesSvcFacade = (*seriesService)(nil)

func (s *seriesService) ListIndices(ctx context.Context) []domain.PriceIndex {
	return domain.PriceIndices()
}

// FetchSeries returns the cached series for indexID, loading it on a miss.
// Concurrent misses for the same index share a single remote request. The shared
// load is detached from the caller's cancellation; each caller stops waiting when
// its own ctx is done.
func (s *seriesService) FetchSeries(ctx context.Context, indexID string) (*domain.IndexSeries, error) {
	idx, err := s.lookupIndex(indexID)
	if err != nil {
		return nil, err
	}

	if series, ok := s.cache.Get(idx.IndexID); ok {
		s.LogDebug(ctx, "Series served from cache", slog.String("index_id", idx.IndexID))
		return series, nil
	}

	loaded := s.inflight.DoChan(idx.IndexID, func() (any, error) {
		return s.load(context.WithoutCancel(ctx), idx)
	})
	select {
	case <-ctx.Done():
		s.LogDebug(ctx, "Caller stopped waiting for series load", slog.String("index_id", idx.IndexID))
		return nil, ctx.Err()
	case res := <-loaded:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.LogDebug(ctx, "Series load shared with concurrent request", slog.String("index_id", idx.IndexID))
		}
		return res.Val.(*domain.IndexSeries), nil
	}
}

// RefreshSeries bypasses the cache and reloads indexID from the remote source.
// It never falls back to the stored snapshot.
func (s *seriesService) RefreshSeries(ctx context.Context, indexID string) (*domain.IndexSeries, error) {
	idx, err := s.lookupIndex(indexID)
	if err != nil {
		return nil, err
	}

	series, err := s.fetchRemote(ctx, idx)
	if err != nil {
		s.LogError(ctx, err, "Failed to refresh series", slog.String("index_id", idx.IndexID))
		return nil, err
	}
	s.store(ctx, series)
	return series, nil
}

func (s *seriesService) lookupIndex(indexID string) (domain.PriceIndex, error) {
	idx, ok := domain.FindPriceIndex(indexID)
	if !ok {
		return domain.PriceIndex{}, apperrors.NewNotFoundError(fmt.Sprintf("index '%s' is not supported", indexID))
	}
	return idx, nil
}

func (s *seriesService) load(ctx context.Context, idx domain.PriceIndex) (*domain.IndexSeries, error) {
	series, err := s.fetchRemote(ctx, idx)
	if err == nil {
		s.store(ctx, series)
		return series, nil
	}

	if s.snapshotRepo == nil {
		s.LogError(ctx, err, "Failed to fetch series", slog.String("index_id", idx.IndexID))
		return nil, err
	}

	stored, snapErr := s.snapshotRepo.FindSeriesSnapshot(ctx, idx.IndexID)
	if snapErr != nil {
		if !errors.Is(snapErr, apperrors.ErrNotFound) {
			s.LogError(ctx, snapErr, "Failed to read stored series", slog.String("index_id", idx.IndexID))
		}
		s.LogError(ctx, err, "Failed to fetch series and no stored copy is available", slog.String("index_id", idx.IndexID))
		return nil, err
	}

	// The stored copy is not cached so the next request retries the remote source.
	s.LogWarn(ctx, err, "Remote fetch failed, serving stored series",
		slog.String("index_id", idx.IndexID),
		slog.Time("fetched_at", stored.FetchedAt),
		slog.Int("points", stored.Len()))
	return stored, nil
}

func (s *seriesService) fetchRemote(ctx context.Context, idx domain.PriceIndex) (*domain.IndexSeries, error) {
	points, err := s.fetcher.FetchSeries(ctx, idx.SourceCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstream) {
			return nil, fmt.Errorf("failed to fetch series %s: %w", idx.IndexID, err)
		}
		return nil, fmt.Errorf("%w: failed to fetch series %s: %w", apperrors.ErrUpstream, idx.IndexID, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: source %s returned no data points for %s", apperrors.ErrUpstream, idx.SourceCode, idx.IndexID)
	}

	series := domain.NewIndexSeries(idx.IndexID, points)
	series.FetchedAt = s.now().UTC()
	s.LogInfo(ctx, "Series fetched from remote source",
		slog.String("index_id", idx.IndexID),
		slog.String("source_code", idx.SourceCode),
		slog.Int("points", series.Len()))
	return series, nil
}

// store caches series and persists it best-effort.
func (s *seriesService) store(ctx context.Context, series *domain.IndexSeries) {
	s.cache.Add(series.IndexID, series)

	if s.snapshotRepo == nil {
		return
	}
	if err := s.snapshotRepo.SaveSeriesSnapshot(ctx, series); err != nil {
		s.LogWarn(ctx, err, "Failed to persist series snapshot", slog.String("index_id", series.IndexID))
	}
}
