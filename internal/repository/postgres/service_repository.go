package postgres

import (
	"context"
	"errors"
	"fmt"

	"agentMarket/business/catalog"
	"agentMarket/business/deals"
	"agentMarket/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	DB *gorm.DB
}

var _ deals.ServiceRepository = (*ServiceRepository)(nil)
var _ catalog.ServiceRepository = (*ServiceRepository)(nil)

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{
		DB: db,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(service).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uint64) (domain.Service, error) {
	if err := ctx.Err(); err != nil {
		return domain.Service{}, fmt.Errorf("context error: %w", err)
	}

	var service domain.Service

	err := r.DB.WithContext(ctx).
		Preload("Vendor").
		Preload("PricingTiers").
		First(&service, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Service{}, errors.New("service not found")
		}
		return domain.Service{}, fmt.Errorf("failed to find service: %w", err)
	}

	return service, nil
}

func (r *ServiceRepository) FindAll(ctx context.Context) ([]domain.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var services []domain.Service
	err := r.DB.WithContext(ctx).Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find services: %w", err)
	}

	return services, nil
}

// FindAllWithVendors loads the ranking candidate set. The vendor association
// is needed for the brand bonus, so it is preloaded in one round trip.
func (r *ServiceRepository) FindAllWithVendors(ctx context.Context) ([]domain.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var services []domain.Service
	err := r.DB.WithContext(ctx).
		Preload("Vendor").
		Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find services with vendors: %w", err)
	}

	return services, nil
}

func (r *ServiceRepository) FindByCategory(ctx context.Context, category string) ([]domain.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var services []domain.Service
	err := r.DB.WithContext(ctx).
		Where("category = ?", category).
		Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find services by category: %w", err)
	}

	return services, nil
}

func (r *ServiceRepository) Update(ctx context.Context, service *domain.Service) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existing domain.Service
	if err := r.DB.WithContext(ctx).First(&existing, service.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("service not found")
		}
		return fmt.Errorf("failed to find service: %w", err)
	}

	updateData := map[string]interface{}{
		"title":               service.Title,
		"description":         service.Description,
		"category":            service.Category,
		"retail_price":        service.RetailPrice,
		"pro_price":           service.ProPrice,
		"co_pay_price":        service.CoPayPrice,
		"discount_percentage": service.DiscountPercentage,
		"respa_split_limit":   service.RespaSplitLimit,
		"copay_allowed":       service.CopayAllowed,
		"is_verified":         service.IsVerified,
		"is_featured":         service.IsFeatured,
		"is_sponsored":        service.IsSponsored,
		"is_affiliate":        service.IsAffiliate,
		"estimated_roi":       service.EstimatedROI,
		"funnel_content":      service.FunnelContent,
		"vendor_id":           service.VendorID,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Service{}).Where("id = ?", service.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("service not found or already deleted")
	}

	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Service{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("service not found or already deleted")
	}

	return nil
}
