package api

import (
	"context"
	"encoding/json"

	models "SignalDesk/internal/domain/models"
	"SignalDesk/internal/usecase"
	xhttp "SignalDesk/pkg/http"
	xlogger "SignalDesk/pkg/logger"

	"github.com/labstack/echo/v4"
)

var (
	errMarket     = xhttp.InternalError("Failed to fetch market data")
	errIndicators = xhttp.InternalError("Failed to fetch indicators")
)

// MarketSnapshotter is satisfied by usecase.MarketUseCase.
type MarketSnapshotter interface {
	Snapshot(ctx context.Context) (json.RawMessage, error)
}

// IndicatorEvaluator is satisfied by usecase.IndicatorsUseCase.
type IndicatorEvaluator interface {
	Evaluate(ctx context.Context) (*models.IndicatorReport, error)
}

// DashboardEchoHandler serves the two endpoints polled by the dashboard.
// Each endpoint fails independently with its own static error body.
type DashboardEchoHandler struct {
	logger     *xlogger.Logger
	market     MarketSnapshotter
	indicators IndicatorEvaluator
}

func NewDashboardEchoHandler(logger *xlogger.Logger, market MarketSnapshotter, indicators IndicatorEvaluator) *DashboardEchoHandler {
	return &DashboardEchoHandler{logger: logger, market: market, indicators: indicators}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/market", h.Market)
	g.GET("/indicators", h.Indicators)
}

func (h *DashboardEchoHandler) Market(c echo.Context) error {
	body, err := h.market.Snapshot(c.Request().Context())
	if err != nil {
		h.logger.Error("market data fetch error",
			xlogger.String("kind", usecase.ErrorKind(err)),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, errMarket.WithError(err))
	}
	noStore(c)
	return xhttp.RawJSONResponse(c, body)
}

func (h *DashboardEchoHandler) Indicators(c echo.Context) error {
	report, err := h.indicators.Evaluate(c.Request().Context())
	if err != nil {
		h.logger.Error("indicators fetch error",
			xlogger.String("kind", usecase.ErrorKind(err)),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, errIndicators.WithError(err))
	}
	h.logger.Debug("indicators evaluated",
		xlogger.String("symbol", report.Symbol),
		xlogger.Float64("price", report.Price),
		xlogger.Float64("rsi", report.RSI),
		xlogger.String("signal", string(report.Signal.Kind)),
	)
	noStore(c)
	return xhttp.SuccessResponse(c, models.NewIndicatorsResponse(report))
}

func noStore(c echo.Context) {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
}

