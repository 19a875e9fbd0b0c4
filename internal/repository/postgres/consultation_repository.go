package postgres

import (
	"context"
	"errors"
	"fmt"

	"agentMarket/business/consultation"
	"agentMarket/domain"

	"gorm.io/gorm"
)

type ConsultationRepository struct {
	DB *gorm.DB
}

var _ consultation.ConsultationRepository = (*ConsultationRepository)(nil)

func NewConsultationRepository(db *gorm.DB) *ConsultationRepository {
	return &ConsultationRepository{DB: db}
}

func (r *ConsultationRepository) Create(ctx context.Context, consultation *domain.Consultation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(consultation).Error; err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}

	return nil
}

func (r *ConsultationRepository) FindByID(ctx context.Context, id uint64) (domain.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Consultation{}, fmt.Errorf("context error: %w", err)
	}

	var consultation domain.Consultation

	err := r.DB.WithContext(ctx).First(&consultation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Consultation{}, errors.New("consultation not found")
		}
		return domain.Consultation{}, fmt.Errorf("failed to find consultation: %w", err)
	}

	return consultation, nil
}

func (r *ConsultationRepository) FindByAgentID(ctx context.Context, agentID uint) ([]domain.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var consultations []domain.Consultation
	err := r.DB.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("scheduled_at DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find consultations: %w", err)
	}

	return consultations, nil
}

func (r *ConsultationRepository) Update(ctx context.Context, consultation *domain.Consultation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"status":       consultation.Status,
		"scheduled_at": consultation.ScheduledAt,
		"notes":        consultation.Notes,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Consultation{}).Where("id = ?", consultation.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update consultation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("consultation not found")
	}

	return nil
}
