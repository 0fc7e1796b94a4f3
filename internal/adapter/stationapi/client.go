package stationapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/frostline/thermoscale-etl/internal/domain"
	"github.com/frostline/thermoscale-etl/internal/observability"
)

// Client implements domain.StationResolver against the station registry's
// HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a station registry client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// Resolve looks up a sensor's station record by sensor ID. An unknown sensor
// returns a zero StationInfo and no error; the registry answers 404 for those.
func (c *Client) Resolve(ctx context.Context, sensorID string) (domain.StationInfo, error) {
	u := fmt.Sprintf("%s/v1/stations/%s", c.baseURL, url.PathEscape(sensorID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.StationInfo{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.StationAPIDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.observeOutcome("error")
		return domain.StationInfo{}, fmt.Errorf("station lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.observeOutcome("empty")
		return domain.StationInfo{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.observeOutcome("error")
		return domain.StationInfo{}, fmt.Errorf("station API error: status %d: %s", resp.StatusCode, body)
	}

	var station stationResponse
	if err := json.NewDecoder(resp.Body).Decode(&station); err != nil {
		c.observeOutcome("error")
		return domain.StationInfo{}, fmt.Errorf("decode response: %w", err)
	}

	c.observeOutcome("success")
	return domain.StationInfo{
		Name:               station.Name,
		Site:               station.Site,
		Placement:          station.Placement,
		CalibrationOffsetC: station.CalibrationOffsetC,
	}, nil
}

func (c *Client) observeOutcome(outcome string) {
	if c.metrics != nil {
		c.metrics.StationRequests.WithLabelValues(outcome).Inc()
	}
}

// Station registry API response type.

type stationResponse struct {
	SensorID           string  `json:"sensor_id"`
	Name               string  `json:"name"`
	Site               string  `json:"site"`
	Placement          string  `json:"placement"`
	CalibrationOffsetC float64 `json:"calibration_offset_c"`
}
