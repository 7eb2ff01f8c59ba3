package forecast

import (
	"context"
)

// UseCase produces human readable weather reports for a free form
// Japanese location text.
type UseCase interface {
	// GetOverview returns the prose weather overview for the region
	// containing the given location.
	GetOverview(ctx context.Context, location string) (string, error)
	// GetShortTermForecast returns the detailed three day forecast report.
	GetShortTermForecast(ctx context.Context, location string) (string, error)
	// GetWeeklyForecast returns the seven day forecast report including
	// climate normals when the region publishes them.
	GetWeeklyForecast(ctx context.Context, location string) (string, error)
}
