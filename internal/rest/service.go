package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"agentMarket/domain"
	"agentMarket/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type CatalogService interface {
	GetAllServices(ctx context.Context) ([]domain.Service, error)
	GetServicesByCategory(ctx context.Context, category string) ([]domain.Service, error)
	GetServiceByID(ctx context.Context, id uint64) (*domain.Service, error)
	CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, id uint64) error
	GetPricingTiers(ctx context.Context, serviceID uint64) ([]domain.PricingTier, error)
	SetPricingTiers(ctx context.Context, serviceID uint64, tiers []domain.PricingTier) ([]domain.PricingTier, error)
	AddReview(ctx context.Context, review *domain.ServiceReview) (*domain.ServiceReview, error)
	GetReviews(ctx context.Context, serviceID uint64) ([]domain.ServiceReview, error)
}

type ServiceHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewServiceHandler(catalogService CatalogService) *ServiceHandler {
	return &ServiceHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type ServiceRequest struct {
	Title              string                 `json:"title" validate:"required"`
	Description        string                 `json:"description"`
	Category           string                 `json:"category"`
	RetailPrice        string                 `json:"retail_price"`
	ProPrice           string                 `json:"pro_price"`
	CoPayPrice         string                 `json:"co_pay_price"`
	DiscountPercentage float64                `json:"discount_percentage" validate:"gte=0,lte=100"`
	RespaSplitLimit    float64                `json:"respa_split_limit" validate:"gte=0,lte=100"`
	CopayAllowed       bool                   `json:"copay_allowed"`
	IsVerified         bool                   `json:"is_verified"`
	IsFeatured         bool                   `json:"is_featured"`
	IsSponsored        bool                   `json:"is_sponsored"`
	IsAffiliate        bool                   `json:"is_affiliate"`
	EstimatedROI       string                 `json:"estimated_roi"`
	FunnelContent      map[string]interface{} `json:"funnel_content"`
	VendorID           *uint64                `json:"vendor_id"`
}

func (req *ServiceRequest) toDomain() *domain.Service {
	return &domain.Service{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		RetailPrice:        req.RetailPrice,
		ProPrice:           req.ProPrice,
		CoPayPrice:         req.CoPayPrice,
		DiscountPercentage: req.DiscountPercentage,
		RespaSplitLimit:    req.RespaSplitLimit,
		CopayAllowed:       req.CopayAllowed,
		IsVerified:         req.IsVerified,
		IsFeatured:         req.IsFeatured,
		IsSponsored:        req.IsSponsored,
		IsAffiliate:        req.IsAffiliate,
		EstimatedROI:       req.EstimatedROI,
		FunnelContent:      datatypes.JSONMap(req.FunnelContent),
		VendorID:           req.VendorID,
	}
}

func (h *ServiceHandler) GetAllServices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	category := c.QueryParam("category")

	services, err := h.catalogService.GetServicesByCategory(ctx, category)
	if err != nil {
		logger.Error("Failed to find services", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all services",
		"services": services,
	})
}

func (h *ServiceHandler) GetServiceByID(c echo.Context) error {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid service id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	service, err := h.catalogService.GetServiceByID(ctx, serviceID)
	if err != nil {
		if err.Error() == "service not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find service by id",
		"service": service,
	})
}

func (h *ServiceHandler) CreateService(c echo.Context) error {
	var req ServiceRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate service request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newService, err := h.catalogService.CreateService(ctx, req.toDomain())
	if err != nil {
		logger.Error("Failed to create service", err)
		if err.Error() == "service title is required" ||
			err.Error() == "respa split limit must be between 0 and 100" ||
			err.Error() == "discount percentage must be between 0 and 100" ||
			err.Error() == "copay services need a respa split limit" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "service successfully created",
		"service": newService,
	})
}

func (h *ServiceHandler) UpdateService(c echo.Context) error {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid service id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate service request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	service := req.toDomain()
	service.ID = serviceID

	updated, err := h.catalogService.UpdateService(ctx, service)
	if err != nil {
		logger.Error("Failed to update service", err)
		if err.Error() == "service not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update service",
		"service": updated,
	})
}

func (h *ServiceHandler) DeleteService(c echo.Context) error {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid service id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.catalogService.DeleteService(ctx, serviceID); err != nil {
		logger.Error("Failed to delete service", err)
		if err.Error() == "service not found" || err.Error() == "invalid service id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "service successfully deleted",
		"service_id": serviceID,
	})
}

func (h *ServiceHandler) GetPricingTiers(c echo.Context) error {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid service id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tiers, err := h.catalogService.GetPricingTiers(ctx, serviceID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get pricing tiers",
		"tiers":   tiers,
	})
}

func (h *ServiceHandler) SetPricingTiers(c echo.Context) error {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid service id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var tiers []domain.PricingTier
	if err := c.Bind(&tiers); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	saved, err := h.catalogService.SetPricingTiers(ctx, serviceID, tiers)
	if err != nil {
		logger.Error("Failed to set pricing tiers", err)
		if err.Error() == "service not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully set pricing tiers",
		"tiers":   saved,
	})
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

func (h *ServiceHandler) AddReview(c echo.Context) error {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid service id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	agentID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate review request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	review, err := h.catalogService.AddReview(ctx, &domain.ServiceReview{
		ServiceID: serviceID,
		AgentID:   agentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		logger.Error("Failed to add review", err)
		if err.Error() == "service not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "review successfully created",
		"review":  review,
	})
}

func (h *ServiceHandler) GetReviews(c echo.Context) error {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid service id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, err := h.catalogService.GetReviews(ctx, serviceID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get reviews",
		"reviews": reviews,
	})
}
