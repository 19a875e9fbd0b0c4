package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"agentMarket/domain"
	"agentMarket/pkg/logger"
)

// ServiceRepository contract interface
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) error
	FindByID(ctx context.Context, id uint64) (domain.Service, error)
	FindAll(ctx context.Context) ([]domain.Service, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id uint64) error
}

type TierRepository interface {
	FindByServiceID(ctx context.Context, serviceID uint64) ([]domain.PricingTier, error)
	ReplaceForService(ctx context.Context, serviceID uint64, tiers []domain.PricingTier) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.ServiceReview) error
	FindByServiceID(ctx context.Context, serviceID uint64) ([]domain.ServiceReview, error)
}

type catalogService struct {
	serviceRepo ServiceRepository
	tierRepo    TierRepository
	reviewRepo  ReviewRepository
}

func NewCatalogService(serviceRepo ServiceRepository, tierRepo TierRepository, reviewRepo ReviewRepository) *catalogService {
	return &catalogService{
		serviceRepo: serviceRepo,
		tierRepo:    tierRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *catalogService) GetAllServices(ctx context.Context) ([]domain.Service, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all services")
		return nil, fmt.Errorf("context error: %w", err)
	}

	services, err := s.serviceRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all services", err)
		return nil, err
	}

	return services, nil
}

func (s *catalogService) GetServicesByCategory(ctx context.Context, category string) ([]domain.Service, error) {
	if category == "" {
		return s.GetAllServices(ctx)
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get services by category")
		return nil, fmt.Errorf("context error: %w", err)
	}

	services, err := s.serviceRepo.FindByCategory(ctx, category)
	if err != nil {
		logger.Error("failed to find services by category", err)
		return nil, err
	}

	return services, nil
}

func (s *catalogService) GetServiceByID(ctx context.Context, id uint64) (*domain.Service, error) {
	if id == 0 {
		logger.Error("invalid service id")
		return nil, errors.New("invalid service id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get service by id")
		return nil, fmt.Errorf("context error: %w", err)
	}

	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find service by id", err.Error())
		return nil, err
	}

	return &service, nil
}

func (s *catalogService) CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create service")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateService(service); err != nil {
		logger.Error("invalid service data", err)
		return nil, err
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		logger.Error("failed to create new service", err)
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	logger.Info("service created successfully")

	return service, nil
}

func (s *catalogService) UpdateService(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating service")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if service.ID == 0 {
		logger.Error("invalid service data: ID is required")
		return nil, errors.New("service ID is required")
	}

	if err := validateService(service); err != nil {
		logger.Error("invalid service data", err)
		return nil, err
	}

	// Verify service exists
	_, err := s.serviceRepo.FindByID(ctx, service.ID)
	if err != nil {
		logger.Error("service not found", err)
		return nil, errors.New("service not found")
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		logger.Error("failed to update service", err)
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	updated, err := s.serviceRepo.FindByID(ctx, service.ID)
	if err != nil {
		logger.Error("failed to fetch updated service", err)
		return nil, fmt.Errorf("failed to fetch updated service: %w", err)
	}

	logger.Info("service updated success")

	return &updated, nil
}

func (s *catalogService) DeleteService(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid service id when deleting service")
		return errors.New("invalid service id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting service")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify service exists
	_, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("service not found", err)
		return errors.New("service not found")
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete service", err)
		return fmt.Errorf("failed to delete service: %w", err)
	}

	logger.Info("service deleted success")

	return nil
}

func (s *catalogService) GetPricingTiers(ctx context.Context, serviceID uint64) ([]domain.PricingTier, error) {
	if serviceID == 0 {
		return nil, errors.New("invalid service id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get pricing tiers")
		return nil, fmt.Errorf("context error: %w", err)
	}

	tiers, err := s.tierRepo.FindByServiceID(ctx, serviceID)
	if err != nil {
		logger.Error("failed to find pricing tiers", err)
		return nil, err
	}

	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].Position < tiers[j].Position
	})

	return tiers, nil
}

// SetPricingTiers replaces the full tier list of a service. At most one tier
// per service may carry the is_popular highlight.
func (s *catalogService) SetPricingTiers(ctx context.Context, serviceID uint64, tiers []domain.PricingTier) ([]domain.PricingTier, error) {
	if serviceID == 0 {
		return nil, errors.New("invalid service id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when set pricing tiers")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateTiers(tiers); err != nil {
		logger.Error("invalid pricing tiers", err)
		return nil, err
	}

	// Verify service exists
	if _, err := s.serviceRepo.FindByID(ctx, serviceID); err != nil {
		logger.Error("service not found", err)
		return nil, errors.New("service not found")
	}

	for i := range tiers {
		tiers[i].ServiceID = serviceID
	}

	if err := s.tierRepo.ReplaceForService(ctx, serviceID, tiers); err != nil {
		logger.Error("failed to replace pricing tiers", err)
		return nil, fmt.Errorf("failed to replace pricing tiers: %w", err)
	}

	logger.Info("pricing tiers updated success")

	return s.GetPricingTiers(ctx, serviceID)
}

func (s *catalogService) AddReview(ctx context.Context, review *domain.ServiceReview) (*domain.ServiceReview, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when add review")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if review.ServiceID == 0 {
		return nil, errors.New("service id is required")
	}
	if review.AgentID == 0 {
		return nil, errors.New("agent id is required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	// Verify service exists
	if _, err := s.serviceRepo.FindByID(ctx, review.ServiceID); err != nil {
		logger.Error("service not found", err)
		return nil, errors.New("service not found")
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		logger.Error("failed to create review", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	logger.Info("review created successfully")

	return review, nil
}

func (s *catalogService) GetReviews(ctx context.Context, serviceID uint64) ([]domain.ServiceReview, error) {
	if serviceID == 0 {
		return nil, errors.New("invalid service id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get reviews")
		return nil, fmt.Errorf("context error: %w", err)
	}

	reviews, err := s.reviewRepo.FindByServiceID(ctx, serviceID)
	if err != nil {
		logger.Error("failed to find reviews", err)
		return nil, err
	}

	return reviews, nil
}

func validateService(service *domain.Service) error {
	if service.Title == "" {
		return errors.New("service title is required")
	}
	if service.RespaSplitLimit < 0 || service.RespaSplitLimit > 100 {
		return errors.New("respa split limit must be between 0 and 100")
	}
	if service.DiscountPercentage < 0 || service.DiscountPercentage > 100 {
		return errors.New("discount percentage must be between 0 and 100")
	}
	if service.CopayAllowed && service.RespaSplitLimit == 0 {
		return errors.New("copay services need a respa split limit")
	}
	return nil
}

func validateTiers(tiers []domain.PricingTier) error {
	popular := 0
	for _, tier := range tiers {
		if tier.Name == "" {
			return errors.New("tier name is required")
		}
		if tier.Price == "" {
			return errors.New("tier price is required")
		}
		switch tier.DurationUnit {
		case domain.DurationMonthly, domain.DurationYearly, domain.DurationOneTime:
		default:
			return fmt.Errorf("invalid duration unit: %s", tier.DurationUnit)
		}
		if tier.IsPopular {
			popular++
		}
	}
	if popular > 1 {
		return errors.New("at most one tier can be marked popular")
	}
	return nil
}
