package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"agentMarket/domain"
	"agentMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CoPayService interface {
	RequestCoPay(ctx context.Context, request *domain.CoPayRequest) (*domain.CoPayRequest, error)
	GetRequestByID(ctx context.Context, id uint64) (*domain.CoPayRequest, error)
	GetRequestsByAgent(ctx context.Context, agentID uint) ([]domain.CoPayRequest, error)
	GetPendingRequests(ctx context.Context) ([]domain.CoPayRequest, error)
	Decide(ctx context.Context, id uint64, approve bool, note string) (*domain.CoPayRequest, error)
}

type CoPayHandler struct {
	copayService CoPayService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewCoPayHandler(copayService CoPayService) *CoPayHandler {
	return &CoPayHandler{
		copayService: copayService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

type CoPayRequestBody struct {
	ServiceID      uint64  `json:"service_id" validate:"required"`
	RequestedSplit float64 `json:"requested_split" validate:"required,gt=0,lte=100"`
	Note           string  `json:"note"`
}

type CoPayDecisionBody struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Note     string `json:"note"`
}

// POST /api/v1/copay/requests
func (h *CoPayHandler) RequestCoPay(c echo.Context) error {
	agentID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req CoPayRequestBody
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate co-pay request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.copayService.RequestCoPay(ctx, &domain.CoPayRequest{
		ServiceID:      req.ServiceID,
		AgentID:        agentID,
		RequestedSplit: req.RequestedSplit,
		Note:           req.Note,
	})
	if err != nil {
		logger.Error("Failed to create co-pay request", err)
		if err.Error() == "service not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "service does not accept co-pay requests" ||
			strings.Contains(err.Error(), "exceeds the service limit") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

// GET /api/v1/copay/requests
func (h *CoPayHandler) GetMyRequests(c echo.Context) error {
	agentID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	requests, err := h.copayService.GetRequestsByAgent(ctx, agentID)
	if err != nil {
		logger.Error("Failed to find co-pay requests", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(requests))
}

// GET /api/v1/admin/copay/requests
func (h *CoPayHandler) GetPendingRequests(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	requests, err := h.copayService.GetPendingRequests(ctx)
	if err != nil {
		logger.Error("Failed to find pending co-pay requests", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(requests))
}

// PUT /api/v1/admin/copay/requests/:id
func (h *CoPayHandler) Decide(c echo.Context) error {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid co-pay request id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req CoPayDecisionBody
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate co-pay decision", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	decided, err := h.copayService.Decide(ctx, requestID, req.Decision == "approve", req.Note)
	if err != nil {
		logger.Error("Failed to decide co-pay request", err)
		if err.Error() == "co-pay request not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "already") {
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(decided))
}
