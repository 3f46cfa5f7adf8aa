package pgsql

import (
	portsrepo "github.com/SscSPs/monetary_correction_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed repositories. fetcher is the
// remote series source and is passed through unchanged.
func NewRepositoryProvider(dbPool *pgxpool.Pool, fetcher portsrepo.SeriesFetcher) portsrepo.RepositoryProvider {
	provider := portsrepo.RepositoryProvider{
		SeriesFetcher: fetcher,
	}
	if dbPool != nil {
		provider.SeriesSnapshotRepo = newPgxSeriesSnapshotRepository(dbPool)
	}
	return provider
}
