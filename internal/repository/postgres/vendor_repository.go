package postgres

import (
	"context"
	"errors"
	"fmt"

	"agentMarket/business/vendor"
	"agentMarket/domain"

	"gorm.io/gorm"
)

type VendorRepository struct {
	DB *gorm.DB
}

var _ vendor.VendorRepository = (*VendorRepository)(nil)

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{
		DB: db,
	}
}

func (r *VendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(vendor).Error; err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}

	return nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id uint64) (domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return domain.Vendor{}, fmt.Errorf("context error: %w", err)
	}

	var vendor domain.Vendor

	err := r.DB.WithContext(ctx).First(&vendor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Vendor{}, errors.New("vendor not found")
		}
		return domain.Vendor{}, fmt.Errorf("failed to find vendor: %w", err)
	}

	return vendor, nil
}

func (r *VendorRepository) FindAll(ctx context.Context) ([]domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var vendors []domain.Vendor
	err := r.DB.WithContext(ctx).Find(&vendors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find vendors: %w", err)
	}

	return vendors, nil
}

func (r *VendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existing domain.Vendor
	if err := r.DB.WithContext(ctx).First(&existing, vendor.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("vendor not found")
		}
		return fmt.Errorf("failed to find vendor: %w", err)
	}

	updateData := map[string]interface{}{
		"name":                vendor.Name,
		"rating":              vendor.Rating,
		"review_count":        vendor.ReviewCount,
		"is_verified":         vendor.IsVerified,
		"is_premium_provider": vendor.IsPremiumProvider,
		"website_url":         vendor.WebsiteURL,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Vendor{}).Where("id = ?", vendor.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update vendor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("vendor not found or already deleted")
	}

	return nil
}

func (r *VendorRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Vendor{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vendor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("vendor not found or already deleted")
	}

	return nil
}
