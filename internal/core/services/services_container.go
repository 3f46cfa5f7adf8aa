package services

import (
	portsrepo "github.com/SscSPs/monetary_correction_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/monetary_correction_app/internal/core/ports/services"
	"github.com/SscSPs/monetary_correction_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	seriesOptions := []SeriesServiceOption{
		WithSeriesCache(cfg.SeriesCacheSize, cfg.SeriesCacheTTL),
	}
	if repos.SeriesSnapshotRepo != nil {
		seriesOptions = append(seriesOptions, WithSnapshotRepository(repos.SeriesSnapshotRepo))
	}

	// Series service first since the correction service reads through it
	container.Series = NewSeriesService(repos.SeriesFetcher, seriesOptions...)
	container.Correction = NewCorrectionService(container.Series)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SeriesSvcFacade     = (*seriesService)(nil)
	_ portssvc.CorrectionSvcFacade = (*correctionService)(nil)
)
