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
)

type VendorService interface {
	GetAllVendors(ctx context.Context) ([]domain.Vendor, error)
	GetVendorByID(ctx context.Context, id uint64) (*domain.Vendor, error)
	CreateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, id uint64) error
}

type VendorHandler struct {
	vendorService VendorService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewVendorHandler(vendorService VendorService) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type VendorRequest struct {
	Name              string  `json:"name" validate:"required"`
	Rating            float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount       int     `json:"review_count" validate:"gte=0"`
	IsVerified        bool    `json:"is_verified"`
	IsPremiumProvider bool    `json:"is_premium_provider"`
	WebsiteURL        string  `json:"website_url"`
}

func (h *VendorHandler) GetAllVendors(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	vendors, err := h.vendorService.GetAllVendors(ctx)
	if err != nil {
		logger.Error("Failed to find all vendors", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all vendors",
		"vendors": vendors,
	})
}

func (h *VendorHandler) GetVendorByID(c echo.Context) error {
	vendorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid vendor id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	vendor, err := h.vendorService.GetVendorByID(ctx, vendorID)
	if err != nil {
		if err.Error() == "vendor not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find vendor by id",
		"vendor":  vendor,
	})
}

func (h *VendorHandler) CreateVendor(c echo.Context) error {
	var req VendorRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate vendor request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	vendor := &domain.Vendor{
		Name:              req.Name,
		Rating:            req.Rating,
		ReviewCount:       req.ReviewCount,
		IsVerified:        req.IsVerified,
		IsPremiumProvider: req.IsPremiumProvider,
		WebsiteURL:        req.WebsiteURL,
	}

	newVendor, err := h.vendorService.CreateVendor(ctx, vendor)
	if err != nil {
		logger.Error("Failed to create vendor", err)
		if err.Error() == "vendor name is required" ||
			err.Error() == "vendor rating must be between 0 and 5" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "vendor successfully created",
		"vendor":  newVendor,
	})
}

func (h *VendorHandler) UpdateVendor(c echo.Context) error {
	vendorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid vendor id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req VendorRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate vendor request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	vendor := &domain.Vendor{
		ID:                vendorID,
		Name:              req.Name,
		Rating:            req.Rating,
		ReviewCount:       req.ReviewCount,
		IsVerified:        req.IsVerified,
		IsPremiumProvider: req.IsPremiumProvider,
		WebsiteURL:        req.WebsiteURL,
	}

	updated, err := h.vendorService.UpdateVendor(ctx, vendor)
	if err != nil {
		logger.Error("Failed to update vendor", err)
		if err.Error() == "vendor not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update vendor",
		"vendor":  updated,
	})
}

func (h *VendorHandler) DeleteVendor(c echo.Context) error {
	vendorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid vendor id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.vendorService.DeleteVendor(ctx, vendorID); err != nil {
		logger.Error("Failed to delete vendor", err)
		if err.Error() == "vendor not found" || err.Error() == "invalid vendor id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "vendor successfully deleted",
		"vendor_id": vendorID,
	})
}
