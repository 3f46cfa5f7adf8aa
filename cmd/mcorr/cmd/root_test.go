package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	portssvc "github.com/SscSPs/monetary_correction_app/internal/core/ports/services"
	"github.com/SscSPs/monetary_correction_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFetcher struct {
	points []domain.SeriesPoint
	err    error
}

func (f staticFetcher) FetchSeries(ctx context.Context, sourceCode string) ([]domain.SeriesPoint, error) {
	return f.points, f.err
}

func testContainer(fetcher staticFetcher) *portssvc.ServiceContainer {
	series := services.NewSeriesService(fetcher)
	return &portssvc.ServiceContainer{
		Series:     series,
		Correction: services.NewCorrectionService(series),
	}
}

func defaultFetcher() staticFetcher {
	return staticFetcher{points: []domain.SeriesPoint{
		{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Variation: 0.5},
		{Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), Variation: 0.8},
		{Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), Variation: 0.42},
	}}
}

func run(t *testing.T, fetcher staticFetcher, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(testContainer(fetcher), "pt-BR")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCorrectCommand(t *testing.T) {
	out, err := run(t, defaultFetcher(), "correct", "--index", "ipca", "--from", "2024-01", "--to", "03-2024", "--value", "100", "--table")

	require.NoError(t, err)
	assert.Contains(t, out, "Index:          IPCA")
	assert.Contains(t, out, "(inflation)")
	assert.Contains(t, out, "Factor:         1.017294768")
	assert.Contains(t, out, "Corrected:      R$ 101,73")
	assert.Contains(t, out, "Period change:  1,73 %")
	assert.Contains(t, out, "MONTH")
	assert.Contains(t, out, "2024-02")
}

func TestCorrectCommand_InvalidValue(t *testing.T) {
	_, err := run(t, defaultFetcher(), "correct", "--from", "2024-01", "--to", "2024-03", "--value", "cem")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --value")
}

func TestCorrectCommand_MissingFlags(t *testing.T) {
	_, err := run(t, defaultFetcher(), "correct", "--from", "2024-01")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestCorrectCommand_OutOfDomain(t *testing.T) {
	_, err := run(t, defaultFetcher(), "correct", "--from", "1970-01", "--to", "2024-03", "--value", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: 01-2024 to 03-2024")
}

func TestCorrectCommand_UpstreamFailure(t *testing.T) {
	_, err := run(t, staticFetcher{err: apperrors.ErrUpstream}, "correct", "--from", "2024-01", "--to", "2024-03", "--value", "1")

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestCompareCommand(t *testing.T) {
	out, err := run(t, defaultFetcher(), "compare", "--from", "2024-03", "--to", "2024-02", "--indices", "IPCA,IGP_M")

	require.NoError(t, err)
	assert.Contains(t, out, "Period: 2024-02 -> 2024-03")
	assert.Contains(t, out, "IPCA")
	assert.Contains(t, out, "IGP-M")
	assert.Contains(t, out, "1,22 %")
}

func TestIndicesCommand(t *testing.T) {
	out, err := run(t, defaultFetcher(), "indices")

	require.NoError(t, err)
	assert.Contains(t, out, "PRECOS12_IPCAG12")
	assert.Contains(t, out, "IGP_M")
}

func TestErasCommand(t *testing.T) {
	out, err := run(t, defaultFetcher(), "eras")

	require.NoError(t, err)
	assert.Contains(t, out, "CRUZEIRO_REAL")
	assert.Contains(t, out, "1/2750")
}
