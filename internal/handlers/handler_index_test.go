package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	portssvc "github.com/SscSPs/monetary_correction_app/internal/core/ports/services"
	"github.com/SscSPs/monetary_correction_app/internal/dto"
	"github.com/SscSPs/monetary_correction_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SeriesService ---
type MockSeriesService struct {
	mock.Mock
}

func (m *MockSeriesService) FetchSeries(ctx context.Context, indexID string) (*domain.IndexSeries, error) {
	args := m.Called(ctx, indexID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IndexSeries), args.Error(1)
}

func (m *MockSeriesService) RefreshSeries(ctx context.Context, indexID string) (*domain.IndexSeries, error) {
	args := m.Called(ctx, indexID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IndexSeries), args.Error(1)
}

func (m *MockSeriesService) ListIndices(ctx context.Context) []domain.PriceIndex {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PriceIndex)
}

// Ensure mock implements the interface
var _ portssvc.SeriesSvcFacade = (*MockSeriesService)(nil)

// --- Test Suite ---
type IndexHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockSeriesService     *MockSeriesService
	mockCorrectionService *MockCorrectionService
}

func (suite *IndexHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockSeriesService = new(MockSeriesService)
	suite.mockCorrectionService = new(MockCorrectionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterIndexRoutes(v1, suite.mockSeriesService, suite.mockCorrectionService)
}

func (suite *IndexHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IndexHandlerTestSuite) TestListIndices() {
	suite.mockSeriesService.On("ListIndices", mock.Anything).Return(domain.PriceIndices()).Once()

	w := suite.get("/api/v1/indices")

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.IndexResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res, 7)
	suite.Equal("PRECOS12_IPCAG12", res[0].SourceCode)
}

func (suite *IndexHandlerTestSuite) TestGetSeries() {
	series := sampleSeries()
	series.FetchedAt = time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	suite.mockSeriesService.On("FetchSeries", mock.Anything, "ipca").Return(series, nil).Once()

	w := suite.get("/api/v1/indices/ipca/series")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.SeriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("IPCA", res.IndexID)
	suite.Equal("2024-01", res.MinDate)
	suite.Equal("2024-03", res.MaxDate)
	suite.Len(res.Points, 3)
	suite.mockSeriesService.AssertNotCalled(suite.T(), "RefreshSeries", mock.Anything, mock.Anything)
}

func (suite *IndexHandlerTestSuite) TestGetSeries_Refresh() {
	suite.mockSeriesService.On("RefreshSeries", mock.Anything, "IPCA").Return(sampleSeries(), nil).Once()

	w := suite.get("/api/v1/indices/IPCA/series?refresh=true")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSeriesService.AssertExpectations(suite.T())
}

func (suite *IndexHandlerTestSuite) TestGetSeries_InvalidRefreshFlag() {
	w := suite.get("/api/v1/indices/IPCA/series?refresh=maybe")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error": "Invalid refresh flag: maybe"}`, w.Body.String())
}

func (suite *IndexHandlerTestSuite) TestGetSeries_UnknownIndex() {
	suite.mockSeriesService.On("FetchSeries", mock.Anything, "CDI").Return(nil, apperrors.NewNotFoundError("index 'CDI' is not supported")).Once()

	w := suite.get("/api/v1/indices/CDI/series")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "index 'CDI' is not supported")
}

func (suite *IndexHandlerTestSuite) TestCompareIndices() {
	windows := []domain.IndexWindow{{
		IndexID:           "IPCA",
		Name:              "IPCA",
		Points:            sampleSeries().Points(),
		AccumulatedFactor: 1.017294768,
	}}
	suite.mockCorrectionService.On("CompareIndices", mock.Anything,
		month(2024, time.January), month(2024, time.March), []string{"IPCA", "IGP_M"},
	).Return(windows, nil).Once()

	w := suite.get("/api/v1/indices/comparison?start=2024-01&end=03-2024&indices=IPCA,%20IGP_M,")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ComparisonResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("2024-01", res.Start)
	suite.Equal("2024-03", res.End)
	suite.Require().Len(res.Indices, 1)
	suite.InDelta(1.7294768, res.Indices[0].PeriodChangePercent, 1e-9)
	suite.mockCorrectionService.AssertExpectations(suite.T())
}

func (suite *IndexHandlerTestSuite) TestCompareIndices_AllIndicesByDefault() {
	suite.mockCorrectionService.On("CompareIndices", mock.Anything,
		month(2024, time.January), month(2024, time.March), []string(nil),
	).Return([]domain.IndexWindow{}, nil).Once()

	w := suite.get("/api/v1/indices/comparison?start=2024-01&end=2024-03")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCorrectionService.AssertExpectations(suite.T())
}

func (suite *IndexHandlerTestSuite) TestCompareIndices_MissingStart() {
	w := suite.get("/api/v1/indices/comparison?end=2024-03")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCorrectionService.AssertNotCalled(suite.T(), "CompareIndices", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *IndexHandlerTestSuite) TestCompareIndices_InvalidDate() {
	w := suite.get("/api/v1/indices/comparison?start=2024-01&end=tomorrow")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "end")
}

func (suite *IndexHandlerTestSuite) TestCompareIndices_UpstreamFailure() {
	suite.mockCorrectionService.On("CompareIndices", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrUpstream).Once()

	w := suite.get("/api/v1/indices/comparison?start=2024-01&end=2024-03&indices=IPC_FIPE")

	suite.Equal(http.StatusBadGateway, w.Code)
}

func TestIndexHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IndexHandlerTestSuite))
}
