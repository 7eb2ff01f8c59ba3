package forecast

import (
	"context"

	"github.com/mayoblitz/mcp-weather/internal/application/processor"
	"github.com/mayoblitz/mcp-weather/internal/application/render"
	"github.com/mayoblitz/mcp-weather/internal/domain/entity"
	"github.com/mayoblitz/mcp-weather/internal/domain/gateway/api"
	"github.com/mayoblitz/mcp-weather/internal/domain/usecase/location"
	"github.com/mayoblitz/mcp-weather/internal/observability"
	apperrors "github.com/mayoblitz/mcp-weather/pkg/errors"
	"github.com/mayoblitz/mcp-weather/pkg/log"
)

type forecastUseCase struct {
	locations  location.UseCase
	jmaGateway api.JmaGateway
	metrics    *observability.Metrics
}

// NewForecastUseCase creates a UseCase backed by the given location
// resolver and JMA gateway.
func NewForecastUseCase(locations location.UseCase, jmaGateway api.JmaGateway, metrics *observability.Metrics) UseCase {
	return &forecastUseCase{
		locations:  locations,
		jmaGateway: jmaGateway,
		metrics:    metrics,
	}
}

func (u *forecastUseCase) GetOverview(ctx context.Context, locationText string) (string, error) {
	loc, err := u.resolve(locationText)
	if err != nil {
		u.metrics.Reports.WithLabelValues("overview", "error").Inc()
		return "", err
	}

	raw, err := u.jmaGateway.GetOverview(ctx, loc.RegionCode)
	u.countUpstream("overview", err)
	if err != nil {
		u.metrics.Reports.WithLabelValues("overview", "error").Inc()
		return "", err
	}

	u.metrics.Reports.WithLabelValues("overview", "success").Inc()
	return render.OverviewReport(processor.NormalizeOverview(*raw)), nil
}

func (u *forecastUseCase) GetShortTermForecast(ctx context.Context, locationText string) (string, error) {
	loc, err := u.resolve(locationText)
	if err != nil {
		u.metrics.Reports.WithLabelValues("short_term", "error").Inc()
		return "", err
	}

	docs, err := u.jmaGateway.GetForecast(ctx, loc.RegionCode)
	u.countUpstream("forecast", err)
	if err != nil {
		u.metrics.Reports.WithLabelValues("short_term", "error").Inc()
		return "", err
	}

	forecast := processor.NormalizeShortTerm(docs[0], loc)
	u.metrics.Reports.WithLabelValues("short_term", "success").Inc()
	return render.ShortTermReport(forecast, loc.Name), nil
}

func (u *forecastUseCase) GetWeeklyForecast(ctx context.Context, locationText string) (string, error) {
	loc, err := u.resolve(locationText)
	if err != nil {
		u.metrics.Reports.WithLabelValues("weekly", "error").Inc()
		return "", err
	}

	docs, err := u.jmaGateway.GetForecast(ctx, loc.RegionCode)
	u.countUpstream("forecast", err)
	if err != nil {
		u.metrics.Reports.WithLabelValues("weekly", "error").Inc()
		return "", err
	}

	// The forecast payload is an ordered pair and some regions only
	// publish the short term document.
	if len(docs) < 2 {
		u.metrics.Reports.WithLabelValues("weekly", "error").Inc()
		return "", apperrors.NewUpstreamShapeError("weekly forecast document missing for region "+loc.RegionCode, nil)
	}

	forecast := processor.NormalizeWeekly(docs[1], loc)
	u.metrics.Reports.WithLabelValues("weekly", "success").Inc()
	return render.WeeklyReport(forecast, loc.Name), nil
}

func (u *forecastUseCase) resolve(locationText string) (*entity.ResolvedLocation, error) {
	loc, err := u.locations.Resolve(locationText)
	if err != nil {
		u.metrics.Resolutions.WithLabelValues(resolutionOutcome(err)).Inc()
		log.Warnf("Could not resolve location %q: %v", locationText, err)
		return nil, err
	}
	if loc.IsCitySearch {
		u.metrics.Resolutions.WithLabelValues("city").Inc()
	} else {
		u.metrics.Resolutions.WithLabelValues("prefecture").Inc()
	}
	log.Infof("Resolved %q to %s (region %s)", locationText, loc.Name, loc.RegionCode)
	return loc, nil
}

func (u *forecastUseCase) countUpstream(endpoint string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	u.metrics.UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
}

func resolutionOutcome(err error) string {
	if apperrors.TypeOf(err) == apperrors.ErrorTypeDataUnavailable {
		return "unavailable"
	}
	return "not_found"
}
