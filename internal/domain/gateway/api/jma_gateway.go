package api

import (
	"context"

	"github.com/mayoblitz/mcp-weather/internal/domain/model"
	"github.com/mayoblitz/mcp-weather/internal/domain/model/external"
)

// JmaGateway defines the interface for calls against the JMA bosai API
type JmaGateway interface {
	// GetOverview fetches the prose weather overview for a region
	// regionCode: the office-level (6 digit) region code
	GetOverview(ctx context.Context, regionCode string) (*external.OverviewResponse, error)

	// GetForecast fetches the forecast payload for a region. The payload is an
	// ordered pair: element 0 short-term, element 1 weekly. The gateway only
	// guarantees a non-empty payload; weekly absence is the caller's concern.
	GetForecast(ctx context.Context, regionCode string) ([]external.ForecastDocument, error)

	// Health probes upstream reachability
	Health() model.ComponentHealthStatus
}
