package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"agentMarket/domain"
	"agentMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ConsultationService interface {
	Book(ctx context.Context, consultation *domain.Consultation) (*domain.Consultation, error)
	GetConsultationByID(ctx context.Context, id uint64) (*domain.Consultation, error)
	GetConsultationsByAgent(ctx context.Context, agentID uint) ([]domain.Consultation, error)
	Cancel(ctx context.Context, id uint64) (*domain.Consultation, error)
}

type ConsultationHandler struct {
	consultationService ConsultationService
	validator           *validator.Validate
	timeout             time.Duration
}

func NewConsultationHandler(consultationService ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{
		consultationService: consultationService,
		validator:           validator.New(),
		timeout:             10 * time.Second,
	}
}

type BookConsultationRequest struct {
	ServiceID   uint64    `json:"service_id" validate:"required"`
	AgentName   string    `json:"agent_name" validate:"required"`
	AgentEmail  string    `json:"agent_email" validate:"required,email"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Notes       string    `json:"notes"`
}

// POST /api/v1/consultations
func (h *ConsultationHandler) Book(c echo.Context) error {
	agentID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req BookConsultationRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate consultation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	booked, err := h.consultationService.Book(ctx, &domain.Consultation{
		ServiceID:   req.ServiceID,
		AgentID:     agentID,
		AgentName:   req.AgentName,
		AgentEmail:  req.AgentEmail,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		logger.Error("Failed to book consultation", err)
		if err.Error() == "service not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "scheduled time must be in the future" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(booked))
}

// GET /api/v1/consultations
func (h *ConsultationHandler) GetMyConsultations(c echo.Context) error {
	agentID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	consultations, err := h.consultationService.GetConsultationsByAgent(ctx, agentID)
	if err != nil {
		logger.Error("Failed to find consultations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(consultations))
}

// GET /api/v1/consultations/:id
func (h *ConsultationHandler) GetConsultationByID(c echo.Context) error {
	consultationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid consultation id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	consultation, err := h.consultationService.GetConsultationByID(ctx, consultationID)
	if err != nil {
		if err.Error() == "consultation not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(consultation))
}

// DELETE /api/v1/consultations/:id
func (h *ConsultationHandler) Cancel(c echo.Context) error {
	consultationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid consultation id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cancelled, err := h.consultationService.Cancel(ctx, consultationID)
	if err != nil {
		logger.Error("Failed to cancel consultation", err)
		if err.Error() == "consultation not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "consultation is already cancelled" {
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cancelled))
}
