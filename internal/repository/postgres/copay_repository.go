package postgres

import (
	"context"
	"errors"
	"fmt"

	"agentMarket/business/copay"
	"agentMarket/domain"

	"gorm.io/gorm"
)

type CoPayRepository struct {
	DB *gorm.DB
}

var _ copay.CoPayRepository = (*CoPayRepository)(nil)

func NewCoPayRepository(db *gorm.DB) *CoPayRepository {
	return &CoPayRepository{DB: db}
}

func (r *CoPayRepository) Create(ctx context.Context, request *domain.CoPayRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("failed to create co-pay request: %w", err)
	}

	return nil
}

func (r *CoPayRepository) FindByID(ctx context.Context, id uint64) (domain.CoPayRequest, error) {
	if err := ctx.Err(); err != nil {
		return domain.CoPayRequest{}, fmt.Errorf("context error: %w", err)
	}

	var request domain.CoPayRequest

	err := r.DB.WithContext(ctx).First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CoPayRequest{}, errors.New("co-pay request not found")
		}
		return domain.CoPayRequest{}, fmt.Errorf("failed to find co-pay request: %w", err)
	}

	return request, nil
}

func (r *CoPayRepository) FindByAgentID(ctx context.Context, agentID uint) ([]domain.CoPayRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var requests []domain.CoPayRequest
	err := r.DB.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find co-pay requests: %w", err)
	}

	return requests, nil
}

func (r *CoPayRepository) FindByStatus(ctx context.Context, status string) ([]domain.CoPayRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var requests []domain.CoPayRequest
	err := r.DB.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find co-pay requests: %w", err)
	}

	return requests, nil
}

func (r *CoPayRepository) Update(ctx context.Context, request *domain.CoPayRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"status":     request.Status,
		"note":       request.Note,
		"decided_at": request.DecidedAt,
	}

	result := r.DB.WithContext(ctx).Model(&domain.CoPayRequest{}).Where("id = ?", request.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update co-pay request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("co-pay request not found")
	}

	return nil
}
