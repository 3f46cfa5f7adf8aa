package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	// SeriesSnapshotRepo is nil when persistence is disabled.
	SeriesSnapshotRepo SeriesSnapshotRepositoryFacade
	SeriesFetcher      SeriesFetcher
}
