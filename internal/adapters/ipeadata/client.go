// Package ipeadata fetches monthly index variations from the Ipeadata OData API.
package ipeadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	portsrepo "github.com/SscSPs/monetary_correction_app/internal/core/ports/repositories"
)

const (
	// DefaultBaseURL is the public OData v4 root of Ipeadata.
	DefaultBaseURL = "http://www.ipeadata.gov.br/api/odata4"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "monetary-correction/1.0"
	maxResponseBytes = 32 << 20
)

// Config holds Ipeadata client configuration
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client downloads series from Ipeadata.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new Ipeadata client. Zero fields of cfg take defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
	}
}

var _ portsrepo.SeriesFetcher = (*Client)(nil)

// valoresSerieResponse is the OData envelope of ValoresSerie.
type valoresSerieResponse struct {
	Value []valorSerie `json:"value"`
}

type valorSerie struct {
	SerCodigo string   `json:"SERCODIGO"`
	ValData   string   `json:"VALDATA"`
	ValValor  *float64 `json:"VALVALOR"`
}

// FetchSeries downloads every point of the series sourceCode. Months without a
// value are skipped. All failures wrap apperrors.ErrUpstream.
func (c *Client) FetchSeries(ctx context.Context, sourceCode string) ([]domain.SeriesPoint, error) {
	if sourceCode == "" {
		return nil, fmt.Errorf("%w: empty source code", apperrors.ErrUpstream)
	}

	seriesURL := fmt.Sprintf("%s/ValoresSerie(SERCODIGO='%s')", c.baseURL, url.PathEscape(sourceCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, seriesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", apperrors.ErrUpstream, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request for %s failed: %w", apperrors.ErrUpstream, sourceCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: ipeadata returned %d for %s: %s",
			apperrors.ErrUpstream, resp.StatusCode, sourceCode, strings.TrimSpace(string(body)))
	}

	var payload valoresSerieResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", apperrors.ErrUpstream, sourceCode, err)
	}

	points := make([]domain.SeriesPoint, 0, len(payload.Value))
	for _, v := range payload.Value {
		if v.ValValor == nil {
			continue
		}
		date, err := parseValData(v.ValData)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrUpstream, sourceCode, err)
		}
		points = append(points, domain.SeriesPoint{Date: date, Variation: *v.ValValor})
	}
	return points, nil
}

// parseValData reads the month of an OData timestamp such as
// "1994-07-01T00:00:00-03:00". The calendar month is taken as written, before
// any conversion to UTC.
func parseValData(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid VALDATA %q", raw)
		}
	}
	return domain.MonthStart(t), nil
}
