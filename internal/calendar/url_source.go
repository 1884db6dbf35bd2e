package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 10 * time.Second

	// maxTableBytes bounds the body read from a remote table
	maxTableBytes = 1 << 20
)

// URLSource fetches a holiday table over HTTP once, at startup
type URLSource struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewURLSource creates a new URLSource; a zero timeout uses the default
func NewURLSource(url string, timeout time.Duration, logger *zap.Logger) *URLSource {
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &URLSource{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (us *URLSource) Name() string { return "url:" + us.url }

// Load downloads and decodes the table
func (us *URLSource) Load(ctx context.Context) (HolidayTable, error) {
	us.logger.Debug("Fetching holiday table", zap.String("url", us.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, us.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/yaml, application/json")

	resp, err := us.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holiday table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday table server returned status %d", resp.StatusCode)
	}

	table, err := DecodeHolidayTable(io.LimitReader(resp.Body, maxTableBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse holiday table from %s: %w", us.url, err)
	}

	us.logger.Info("Holiday table fetched",
		zap.String("url", us.url),
		zap.Int("holidays", len(table)))

	return table, nil
}
