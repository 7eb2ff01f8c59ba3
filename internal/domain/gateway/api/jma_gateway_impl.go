package api

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mayoblitz/mcp-weather/internal/domain/model"
	"github.com/mayoblitz/mcp-weather/internal/domain/model/external"
	apperrors "github.com/mayoblitz/mcp-weather/pkg/errors"
	"github.com/mayoblitz/mcp-weather/pkg/http"
)

// healthProbeRegion is the region probed by Health; Tokyo is published for
// every forecast interval, so its overview document always exists.
const healthProbeRegion = "130000"

// jmaGatewayImpl implements the JmaGateway interface
type jmaGatewayImpl struct {
	httpClient *http.Client
}

// NewJmaGateway creates a new instance of JmaGateway with HTTP client.
// The upstream serves static per-interval snapshots, so every call is a
// single bounded attempt with no retry.
func NewJmaGateway(baseURL string, timeout time.Duration) JmaGateway {
	httpClient := http.NewHttpClient(baseURL, http.ClientOptions{
		ConnectionTimeout: timeout,
		ReadTimeout:       timeout,
	})

	return &jmaGatewayImpl{
		httpClient: httpClient,
	}
}

// GetOverview fetches the prose weather overview for a region
func (g *jmaGatewayImpl) GetOverview(ctx context.Context, regionCode string) (*external.OverviewResponse, error) {
	path := fmt.Sprintf("/forecast/data/overview_forecast/%s.json", regionCode)

	successResp, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithSuccessResp(&external.OverviewResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, apperrors.NewUpstreamFetchError(
			fmt.Sprintf("overview fetch for region %s failed (status %d)", regionCode, status), err)
	}

	return successResp.(*external.OverviewResponse), nil
}

// GetForecast fetches the forecast payload for a region
func (g *jmaGatewayImpl) GetForecast(ctx context.Context, regionCode string) ([]external.ForecastDocument, error) {
	path := fmt.Sprintf("/forecast/data/forecast/%s.json", regionCode)

	successResp, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithSuccessResp(&[]external.ForecastDocument{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, apperrors.NewUpstreamFetchError(
			fmt.Sprintf("forecast fetch for region %s failed (status %d)", regionCode, status), err)
	}

	docs := *successResp.(*[]external.ForecastDocument)
	if len(docs) == 0 {
		return nil, apperrors.NewUpstreamFetchError(
			fmt.Sprintf("forecast payload for region %s is empty", regionCode), nil)
	}

	return docs, nil
}

// Health probes upstream reachability with a bounded overview fetch
func (g *jmaGatewayImpl) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := g.GetOverview(ctx, healthProbeRegion)
	latency := time.Since(start)

	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"error": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"latencyMs": strconv.FormatInt(latency.Milliseconds(), 10),
		},
	}
}
