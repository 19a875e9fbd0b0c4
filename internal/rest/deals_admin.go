package rest

import (
	"context"
	"net/http"

	"agentMarket/business/deals"
	"agentMarket/domain"

	"github.com/labstack/echo/v4"
)

// CuratedAdminRepository is the write side of curated placements; the read
// side lives in business/deals.
type CuratedAdminRepository interface {
	GetByPlacement(ctx context.Context, placement string) ([]domain.CuratedPlacement, error)
	ReplaceForPlacement(ctx context.Context, placement string, pins []domain.CuratedPlacement) error
}

type DealsAdminHandler struct {
	cfgRepo     deals.ConfigRepository
	flagRepo    deals.FlagRepository
	curatedRepo CuratedAdminRepository
}

func NewDealsAdminHandler(
	cfgRepo deals.ConfigRepository,
	flagRepo deals.FlagRepository,
	curatedRepo CuratedAdminRepository,
) *DealsAdminHandler {
	return &DealsAdminHandler{
		cfgRepo:     cfgRepo,
		flagRepo:    flagRepo,
		curatedRepo: curatedRepo,
	}
}

// GET /api/v1/admin/deals/config?placement=top_deals
func (h *DealsAdminHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()
	placement := c.QueryParam("placement")

	if placement == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "placement is required",
		})
	}

	cfg, ok, err := h.cfgRepo.GetConfig(ctx, placement)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "config not found",
		})
	}

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/admin/deals/config
// body: DealRankConfig JSON
func (h *DealsAdminHandler) UpsertConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.DealRankConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.Placement == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "placement is required",
		})
	}

	if err := h.cfgRepo.UpsertConfig(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}

// GET /api/v1/admin/deals/flag?surface=top_deals
func (h *DealsAdminHandler) GetFlag(c echo.Context) error {
	ctx := c.Request().Context()
	surface := c.QueryParam("surface")
	if surface == "" {
		surface = deals.SurfaceTopDeals
	}

	enabled, err := h.flagRepo.IsEnabled(ctx, surface)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"surface": surface,
		"enabled": enabled,
	})
}

// PUT /api/v1/admin/deals/flag
// body: { "surface": "top_deals", "enabled": false }
type setFlagRequest struct {
	Surface string `json:"surface"`
	Enabled bool   `json:"enabled"`
}

func (h *DealsAdminHandler) SetFlag(c echo.Context) error {
	ctx := c.Request().Context()

	var body setFlagRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.Surface == "" {
		body.Surface = deals.SurfaceTopDeals
	}

	if err := h.flagRepo.SetEnabled(ctx, body.Surface, body.Enabled); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}

// GET /api/v1/admin/deals/curated?placement=top_deals
func (h *DealsAdminHandler) GetCurated(c echo.Context) error {
	ctx := c.Request().Context()
	placement := c.QueryParam("placement")
	if placement == "" {
		placement = deals.DefaultPlacement
	}

	pins, err := h.curatedRepo.GetByPlacement(ctx, placement)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"placement": placement,
		"pins":      pins,
	})
}

// PUT /api/v1/admin/deals/curated
// body: { "placement": "top_deals", "pins": [ { "service_id": 1, "position": 1 } ] }
type setCuratedRequest struct {
	Placement string                    `json:"placement"`
	Pins      []domain.CuratedPlacement `json:"pins"`
}

func (h *DealsAdminHandler) SetCurated(c echo.Context) error {
	ctx := c.Request().Context()

	var body setCuratedRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.Placement == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "placement is required",
		})
	}
	for _, pin := range body.Pins {
		if pin.ServiceID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "every pin needs a service_id",
			})
		}
	}

	if err := h.curatedRepo.ReplaceForPlacement(ctx, body.Placement, body.Pins); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
