package services

import (
	"context"
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
)

// CorrectionSvcFacade defines the monetary correction operations
type CorrectionSvcFacade interface {
	// ComputeCorrection corrects req.NominalValue between req.StartDate and req.EndDate.
	ComputeCorrection(ctx context.Context, req domain.CorrectionRequest) (*domain.CorrectionResult, error)

	// CompareIndices returns the monthly variations of each index over [start, end].
	// An empty indexIDs compares every index in the catalog.
	CompareIndices(ctx context.Context, start, end time.Time, indexIDs []string) ([]domain.IndexWindow, error)

	// ListEras returns the currency era table.
	ListEras(ctx context.Context) []domain.Era
}
