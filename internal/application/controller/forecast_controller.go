package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mayoblitz/mcp-weather/internal/domain/usecase/forecast"
	apperrors "github.com/mayoblitz/mcp-weather/pkg/errors"
	"github.com/mayoblitz/mcp-weather/pkg/msg"
)

type ForecastController struct {
	api     *echo.Group
	useCase forecast.UseCase
}

func NewForecastController(api *echo.Group, useCase forecast.UseCase) *ForecastController {
	return &ForecastController{api: api, useCase: useCase}
}

// InitForecastRoutes initializes forecast routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/overview", controller.GetOverview)
	controller.api.GET("/forecast", controller.GetShortTermForecast)
	controller.api.GET("/weekly", controller.GetWeeklyForecast)
}

// GetOverview godoc
// @Summary Get weather overview
// @Description Retrieve the prose weather overview for the region containing the given location
// @Tags forecast
// @Produce plain
// @Param location query string true "Location text, e.g. 東京都港区 or 大阪府"
// @Success 200 {string} string "Overview report, or a message describing why none is available"
// @Router /overview [get]
func (controller *ForecastController) GetOverview(c echo.Context) error {
	location := c.QueryParam("location")

	report, err := controller.useCase.GetOverview(c.Request().Context(), location)
	if err != nil {
		return c.String(http.StatusOK, errorMessage(err, location))
	}
	return c.String(http.StatusOK, report)
}

// GetShortTermForecast godoc
// @Summary Get short term forecast
// @Description Retrieve the detailed three day forecast report for the given location
// @Tags forecast
// @Produce plain
// @Param location query string true "Location text, e.g. 東京都港区 or 大阪府"
// @Success 200 {string} string "Forecast report, or a message describing why none is available"
// @Router /forecast [get]
func (controller *ForecastController) GetShortTermForecast(c echo.Context) error {
	location := c.QueryParam("location")

	report, err := controller.useCase.GetShortTermForecast(c.Request().Context(), location)
	if err != nil {
		return c.String(http.StatusOK, errorMessage(err, location))
	}
	return c.String(http.StatusOK, report)
}

// GetWeeklyForecast godoc
// @Summary Get weekly forecast
// @Description Retrieve the seven day forecast report for the given location
// @Tags forecast
// @Produce plain
// @Param location query string true "Location text, e.g. 東京都港区 or 大阪府"
// @Success 200 {string} string "Weekly report, or a message describing why none is available"
// @Router /weekly [get]
func (controller *ForecastController) GetWeeklyForecast(c echo.Context) error {
	location := c.QueryParam("location")

	report, err := controller.useCase.GetWeeklyForecast(c.Request().Context(), location)
	if err != nil {
		return c.String(http.StatusOK, errorMessage(err, location))
	}
	return c.String(http.StatusOK, report)
}

// errorMessage maps a use case error onto the user facing Japanese
// message for it. Failures are answered as regular reports, never as
// HTTP error statuses.
func errorMessage(err error, location string) string {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeLocationNotFound:
		return msg.GetMessage("report.location-not-found", location)
	case apperrors.ErrorTypeDataUnavailable:
		return msg.GetMessage("report.data-unavailable")
	case apperrors.ErrorTypeUpstreamFetch:
		return msg.GetMessage("report.fetch-failed")
	case apperrors.ErrorTypeUpstreamShape:
		return msg.GetMessage("report.shape-incomplete")
	default:
		return msg.GetMessage("report.internal-error")
	}
}
