package main

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mayoblitz/mcp-weather/configs"
	"github.com/mayoblitz/mcp-weather/internal/application/controller"
	"github.com/mayoblitz/mcp-weather/internal/application/middleware"
	"github.com/mayoblitz/mcp-weather/internal/domain/gateway/api"
	"github.com/mayoblitz/mcp-weather/internal/domain/usecase/forecast"
	"github.com/mayoblitz/mcp-weather/internal/domain/usecase/health"
	"github.com/mayoblitz/mcp-weather/internal/domain/usecase/location"
	"github.com/mayoblitz/mcp-weather/internal/infra/areadata"
	"github.com/mayoblitz/mcp-weather/internal/observability"
	"github.com/mayoblitz/mcp-weather/pkg/log"
	"github.com/mayoblitz/mcp-weather/pkg/msg"
	"github.com/mayoblitz/mcp-weather/pkg/resource"
)

func main() {
	log.Infof("%s (%s)", msg.GetMessage("app.start"), configs.Env.ApplicationName)

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	// Load area hierarchy once at startup. A failed load keeps the
	// service up; forecast requests answer with the unavailable message.
	areaIndex, areaLoadErr := areadata.Load(resource.GetString("app.area.data-path"))
	if areaLoadErr != nil {
		log.Error(msg.GetMessage("app.area-load-failed", areaLoadErr))
	}

	// Init Gateway
	jmaGateway := api.NewJmaGateway(
		resource.GetString("app.jma.base-url"),
		resource.GetDuration("app.jma.timeout"),
	)

	// Init Metrics
	metrics := observability.NewMetrics()

	// Init UseCase
	locationUseCase := location.NewLocationUseCase(areaIndex, areaLoadErr)
	forecastUseCase := forecast.NewForecastUseCase(locationUseCase, jmaGateway, metrics)
	healthUseCase := health.NewHealthUseCase(jmaGateway, areaIndex, areaLoadErr)

	// Init Controller
	forecastController := controller.NewForecastController(apiGroup, forecastUseCase)
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init Routes
	forecastController.InitForecastRoutes()
	healthController.InitHealthRoutes()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
	log.Info(msg.GetMessage("app.started"))
}
