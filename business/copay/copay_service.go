package copay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agentMarket/domain"
	"agentMarket/pkg/logger"
)

// CoPayRepository contract interface
type CoPayRepository interface {
	Create(ctx context.Context, request *domain.CoPayRequest) error
	FindByID(ctx context.Context, id uint64) (domain.CoPayRequest, error)
	FindByAgentID(ctx context.Context, agentID uint) ([]domain.CoPayRequest, error)
	FindByStatus(ctx context.Context, status string) ([]domain.CoPayRequest, error)
	Update(ctx context.Context, request *domain.CoPayRequest) error
}

type ServiceRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Service, error)
}

type copayService struct {
	copayRepo   CoPayRepository
	serviceRepo ServiceRepository
}

func NewCoPayService(copayRepo CoPayRepository, serviceRepo ServiceRepository) *copayService {
	return &copayService{
		copayRepo:   copayRepo,
		serviceRepo: serviceRepo,
	}
}

// RequestCoPay opens a pending split request. The requested split is validated
// against the service's respa_split_limit here, so approved rows never carry a
// split the service cannot honor.
func (s *copayService) RequestCoPay(ctx context.Context, request *domain.CoPayRequest) (*domain.CoPayRequest, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when requesting co-pay")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if request.ServiceID == 0 {
		return nil, errors.New("service id is required")
	}
	if request.AgentID == 0 {
		return nil, errors.New("agent id is required")
	}
	if request.RequestedSplit <= 0 {
		return nil, errors.New("requested split must be greater than 0")
	}

	service, err := s.serviceRepo.FindByID(ctx, request.ServiceID)
	if err != nil {
		logger.Error("service not found", err)
		return nil, errors.New("service not found")
	}

	if !service.CopayAllowed {
		return nil, errors.New("service does not accept co-pay requests")
	}
	if request.RequestedSplit > service.RespaSplitLimit {
		return nil, fmt.Errorf("requested split %.1f exceeds the service limit of %.1f", request.RequestedSplit, service.RespaSplitLimit)
	}

	request.Status = domain.CoPayStatusPending
	request.DecidedAt = nil

	if err := s.copayRepo.Create(ctx, request); err != nil {
		logger.Error("failed to create co-pay request", err)
		return nil, fmt.Errorf("failed to create co-pay request: %w", err)
	}

	logger.Info("co-pay request created", "service_id", request.ServiceID, "agent_id", request.AgentID)

	return request, nil
}

func (s *copayService) GetRequestByID(ctx context.Context, id uint64) (*domain.CoPayRequest, error) {
	if id == 0 {
		return nil, errors.New("invalid co-pay request id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get co-pay request")
		return nil, fmt.Errorf("context error: %w", err)
	}

	request, err := s.copayRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find co-pay request", err.Error())
		return nil, err
	}

	return &request, nil
}

func (s *copayService) GetRequestsByAgent(ctx context.Context, agentID uint) ([]domain.CoPayRequest, error) {
	if agentID == 0 {
		return nil, errors.New("invalid agent id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get co-pay requests by agent")
		return nil, fmt.Errorf("context error: %w", err)
	}

	requests, err := s.copayRepo.FindByAgentID(ctx, agentID)
	if err != nil {
		logger.Error("failed to find co-pay requests", err)
		return nil, err
	}

	return requests, nil
}

func (s *copayService) GetPendingRequests(ctx context.Context) ([]domain.CoPayRequest, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get pending co-pay requests")
		return nil, fmt.Errorf("context error: %w", err)
	}

	requests, err := s.copayRepo.FindByStatus(ctx, domain.CoPayStatusPending)
	if err != nil {
		logger.Error("failed to find pending co-pay requests", err)
		return nil, err
	}

	return requests, nil
}

// Decide moves a pending request to approved or rejected. Decisions are final;
// a request that has already been decided cannot change status again.
func (s *copayService) Decide(ctx context.Context, id uint64, approve bool, note string) (*domain.CoPayRequest, error) {
	if id == 0 {
		return nil, errors.New("invalid co-pay request id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deciding co-pay request")
		return nil, fmt.Errorf("context error: %w", err)
	}

	request, err := s.copayRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("co-pay request not found", err)
		return nil, errors.New("co-pay request not found")
	}

	if request.Status != domain.CoPayStatusPending {
		return nil, fmt.Errorf("co-pay request is already %s", request.Status)
	}

	if approve {
		request.Status = domain.CoPayStatusApproved
	} else {
		request.Status = domain.CoPayStatusRejected
	}
	if note != "" {
		request.Note = note
	}
	now := time.Now()
	request.DecidedAt = &now

	if err := s.copayRepo.Update(ctx, &request); err != nil {
		logger.Error("failed to update co-pay request", err)
		return nil, fmt.Errorf("failed to update co-pay request: %w", err)
	}

	logger.Info("co-pay request decided", "request_id", request.ID, "status", request.Status)

	return &request, nil
}
