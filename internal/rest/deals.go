package rest

import (
	"context"
	"net/http"
	"time"

	"agentMarket/domain"
	"agentMarket/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	DealsHandler struct {
		validate     *validator.Validate
		dealsService DealsService
	}

	DealsService interface {
		TopDeals(ctx context.Context, placement, viewID string, limit int) ([]domain.ScoredDeal, error)
		TrackEvent(ctx context.Context, event domain.DealEvent) error
		ResolveClick(ctx context.Context, token, viewID string) (domain.Service, error)
	}

	TopDealsQuery struct {
		Placement string `query:"placement"`
		ViewID    string `query:"view_id"`
		N         int    `query:"n"`
	}

	TrackEventRequest struct {
		ServiceID uint64 `json:"service_id" validate:"required"`
		Placement string `json:"placement"`
		ViewID    string `json:"view_id"`
		EventType string `json:"event_type" validate:"required,oneof=impression click"`
	}
)

func NewDealsHandler(svc DealsService) *DealsHandler {
	return &DealsHandler{
		validate:     validator.New(),
		dealsService: svc,
	}
}

// GET /api/v1/deals/top?placement=top_deals&view_id=abc&n=6
func (h *DealsHandler) TopDeals(c echo.Context) error {
	start := time.Now()

	var q TopDealsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	deals, err := h.dealsService.TopDeals(c.Request().Context(), q.Placement, q.ViewID, q.N)
	if err != nil {
		metrics.TopDealsRequests.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.TopDealsRequests.WithLabelValues("ok").Inc()
	metrics.TopDealsLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(deals))
}

// POST /api/v1/deals/track
func (h *DealsHandler) Track(c echo.Context) error {
	var req TrackEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	event := domain.DealEvent{
		ServiceID: req.ServiceID,
		Placement: req.Placement,
		ViewID:    req.ViewID,
		EventType: req.EventType,
	}

	if err := h.dealsService.TrackEvent(c.Request().Context(), event); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("event recorded"))
}

// GET /api/v1/deals/click?token=...&view_id=abc
// Validates the sponsored click token, logs the click and redirects to the
// vendor's site when one is attached.
func (h *DealsHandler) Click(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "token is required"})
	}

	svc, err := h.dealsService.ResolveClick(c.Request().Context(), token, c.QueryParam("view_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid click token"})
	}

	if svc.Vendor != nil && svc.Vendor.WebsiteURL != "" {
		return c.Redirect(http.StatusFound, svc.Vendor.WebsiteURL)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(svc))
}
