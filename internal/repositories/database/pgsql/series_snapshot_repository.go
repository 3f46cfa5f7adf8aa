package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	portsrepo "github.com/SscSPs/monetary_correction_app/internal/core/ports/repositories"
	"github.com/SscSPs/monetary_correction_app/internal/models"
	"github.com/SscSPs/monetary_correction_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSeriesSnapshotRepository struct {
	BaseRepository
}

// newPgxSeriesSnapshotRepository creates a new repository for stored index series.
func newPgxSeriesSnapshotRepository(pool *pgxpool.Pool) portsrepo.SeriesSnapshotRepositoryWithTx {
	return &PgxSeriesSnapshotRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SeriesSnapshotRepositoryWithTx = (*PgxSeriesSnapshotRepository)(nil)

// SaveSeriesSnapshot replaces the stored header and points of series in one transaction.
func (r *PgxSeriesSnapshotRepository) SaveSeriesSnapshot(ctx context.Context, series *domain.IndexSeries) error {
	sourceCode := ""
	if idx, ok := domain.FindPriceIndex(series.IndexID); ok {
		sourceCode = idx.SourceCode
	}
	snapshot, points := mapping.ToModelSeriesSnapshot(series, sourceCode)

	return r.WithinTx(ctx, func(tx pgx.Tx) error {
		headerQuery := `
			INSERT INTO index_series_snapshots (index_id, source_code, fetched_at, point_count)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (index_id) DO UPDATE SET
				source_code = EXCLUDED.source_code,
				fetched_at = EXCLUDED.fetched_at,
				point_count = EXCLUDED.point_count;
		`
		_, err := tx.Exec(ctx, headerQuery,
			snapshot.IndexID,
			snapshot.SourceCode,
			snapshot.FetchedAt,
			snapshot.PointCount,
		)
		if err != nil {
			return dbError("failed to save series snapshot "+snapshot.IndexID, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM index_series_points WHERE index_id = $1;`, snapshot.IndexID); err != nil {
			return dbError("failed to clear series points "+snapshot.IndexID, err)
		}

		batch := &pgx.Batch{}
		pointQuery := `
			INSERT INTO index_series_points (index_id, month, variation)
			VALUES ($1, $2, $3);
		`
		for _, p := range points {
			batch.Queue(pointQuery, p.IndexID, p.Month, p.Variation)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return dbError("failed to insert series points "+snapshot.IndexID, err)
		}
		return nil
	})
}

// FindSeriesSnapshot loads the stored series for indexID.
func (r *PgxSeriesSnapshotRepository) FindSeriesSnapshot(ctx context.Context, indexID string) (*domain.IndexSeries, error) {
	headerQuery := `
		SELECT index_id, source_code, fetched_at, point_count
		FROM index_series_snapshots
		WHERE index_id = $1;
	`
	var snapshot models.SeriesSnapshot
	err := r.Pool.QueryRow(ctx, headerQuery, indexID).Scan(
		&snapshot.IndexID,
		&snapshot.SourceCode,
		&snapshot.FetchedAt,
		&snapshot.PointCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find series snapshot %s: %w", indexID, err)
	}

	pointsQuery := `
		SELECT index_id, month, variation
		FROM index_series_points
		WHERE index_id = $1
		ORDER BY month;
	`
	rows, err := r.Pool.Query(ctx, pointsQuery, indexID)
	if err != nil {
		return nil, fmt.Errorf("failed to query series points %s: %w", indexID, err)
	}
	defer rows.Close()

	modelPoints, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SeriesPoint, error) {
		var p models.SeriesPoint
		err := row.Scan(&p.IndexID, &p.Month, &p.Variation)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan series points %s: %w", indexID, err)
	}

	return mapping.ToDomainIndexSeries(snapshot, modelPoints), nil
}
