package consultation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agentMarket/domain"
	"agentMarket/pkg/logger"
)

// ConsultationRepository contract interface
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *domain.Consultation) error
	FindByID(ctx context.Context, id uint64) (domain.Consultation, error)
	FindByAgentID(ctx context.Context, agentID uint) ([]domain.Consultation, error)
	Update(ctx context.Context, consultation *domain.Consultation) error
}

type ServiceRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Service, error)
}

type NotificationRepository interface {
	SendEmail(toName, toEmail, subject, message string) error
}

type consultationService struct {
	consultationRepo ConsultationRepository
	serviceRepo      ServiceRepository
	notifRepo        NotificationRepository
}

func NewConsultationService(consultationRepo ConsultationRepository, serviceRepo ServiceRepository, notifRepo NotificationRepository) *consultationService {
	return &consultationService{
		consultationRepo: consultationRepo,
		serviceRepo:      serviceRepo,
		notifRepo:        notifRepo,
	}
}

// Book schedules a consultation for a service. The confirmation email goes out
// asynchronously; a mailer outage never blocks the booking.
func (s *consultationService) Book(ctx context.Context, consultation *domain.Consultation) (*domain.Consultation, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when booking consultation")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if consultation.ServiceID == 0 {
		return nil, errors.New("service id is required")
	}
	if consultation.AgentID == 0 {
		return nil, errors.New("agent id is required")
	}
	if consultation.AgentName == "" {
		return nil, errors.New("agent name is required")
	}
	if consultation.AgentEmail == "" {
		return nil, errors.New("agent email is required")
	}
	if consultation.ScheduledAt.Before(time.Now()) {
		return nil, errors.New("scheduled time must be in the future")
	}

	service, err := s.serviceRepo.FindByID(ctx, consultation.ServiceID)
	if err != nil {
		logger.Error("service not found", err)
		return nil, errors.New("service not found")
	}

	consultation.Status = domain.ConsultationStatusScheduled

	if err := s.consultationRepo.Create(ctx, consultation); err != nil {
		logger.Error("failed to create consultation", err)
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}

	logger.Info("consultation booked", "service_id", consultation.ServiceID, "agent_id", consultation.AgentID)

	if s.notifRepo != nil {
		go func(name, email, title string, at time.Time) {
			subject := "Consultation confirmed: " + title
			message := fmt.Sprintf("Hi %s, your consultation for %s is scheduled for %s.", name, title, at.Format(time.RFC1123))
			if err := s.notifRepo.SendEmail(name, email, subject, message); err != nil {
				logger.Error("failed to send consultation confirmation", err)
			}
		}(consultation.AgentName, consultation.AgentEmail, service.Title, consultation.ScheduledAt)
	}

	return consultation, nil
}

func (s *consultationService) GetConsultationByID(ctx context.Context, id uint64) (*domain.Consultation, error) {
	if id == 0 {
		return nil, errors.New("invalid consultation id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get consultation")
		return nil, fmt.Errorf("context error: %w", err)
	}

	consultation, err := s.consultationRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find consultation", err.Error())
		return nil, err
	}

	return &consultation, nil
}

func (s *consultationService) GetConsultationsByAgent(ctx context.Context, agentID uint) ([]domain.Consultation, error) {
	if agentID == 0 {
		return nil, errors.New("invalid agent id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get consultations by agent")
		return nil, fmt.Errorf("context error: %w", err)
	}

	consultations, err := s.consultationRepo.FindByAgentID(ctx, agentID)
	if err != nil {
		logger.Error("failed to find consultations", err)
		return nil, err
	}

	return consultations, nil
}

func (s *consultationService) Cancel(ctx context.Context, id uint64) (*domain.Consultation, error) {
	if id == 0 {
		return nil, errors.New("invalid consultation id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when cancelling consultation")
		return nil, fmt.Errorf("context error: %w", err)
	}

	consultation, err := s.consultationRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("consultation not found", err)
		return nil, errors.New("consultation not found")
	}

	if consultation.Status == domain.ConsultationStatusCancelled {
		return nil, errors.New("consultation is already cancelled")
	}

	consultation.Status = domain.ConsultationStatusCancelled

	if err := s.consultationRepo.Update(ctx, &consultation); err != nil {
		logger.Error("failed to cancel consultation", err)
		return nil, fmt.Errorf("failed to cancel consultation: %w", err)
	}

	logger.Info("consultation cancelled", "consultation_id", consultation.ID)

	return &consultation, nil
}
