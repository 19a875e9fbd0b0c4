package deals

import (
	"context"

	"agentMarket/domain"
)

// EligibilityChecker decides if a service is allowed to be merchandised on a
// given placement (vendor standing, regional availability, compliance holds).
type EligibilityChecker interface {
	IsEligible(ctx context.Context, svc domain.Service, placement string) (bool, error)
}

// NoopEligibilityChecker is the default implementation that allows everything.
type NoopEligibilityChecker struct{}

func (NoopEligibilityChecker) IsEligible(ctx context.Context, svc domain.Service, placement string) (bool, error) {
	return true, nil
}
