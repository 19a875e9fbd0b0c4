package copay

import (
	"context"
	"errors"
	"testing"

	"agentMarket/domain"
)

type fakeCoPayRepo struct {
	requests map[uint64]domain.CoPayRequest
	nextID   uint64
}

func newFakeCoPayRepo() *fakeCoPayRepo {
	return &fakeCoPayRepo{requests: map[uint64]domain.CoPayRequest{}, nextID: 1}
}

func (f *fakeCoPayRepo) Create(ctx context.Context, request *domain.CoPayRequest) error {
	request.ID = f.nextID
	f.nextID++
	f.requests[request.ID] = *request
	return nil
}

func (f *fakeCoPayRepo) FindByID(ctx context.Context, id uint64) (domain.CoPayRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return domain.CoPayRequest{}, errors.New("co-pay request not found")
	}
	return request, nil
}

func (f *fakeCoPayRepo) FindByAgentID(ctx context.Context, agentID uint) ([]domain.CoPayRequest, error) {
	out := []domain.CoPayRequest{}
	for _, request := range f.requests {
		if request.AgentID == agentID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeCoPayRepo) FindByStatus(ctx context.Context, status string) ([]domain.CoPayRequest, error) {
	out := []domain.CoPayRequest{}
	for _, request := range f.requests {
		if request.Status == status {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeCoPayRepo) Update(ctx context.Context, request *domain.CoPayRequest) error {
	if _, ok := f.requests[request.ID]; !ok {
		return errors.New("co-pay request not found")
	}
	f.requests[request.ID] = *request
	return nil
}

type fakeServiceRepo struct {
	services map[uint64]domain.Service
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uint64) (domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return domain.Service{}, errors.New("service not found")
	}
	return svc, nil
}

func newTestService() (*copayService, *fakeCoPayRepo) {
	repo := newFakeCoPayRepo()
	services := &fakeServiceRepo{services: map[uint64]domain.Service{
		1: {ID: 1, Title: "Home Inspection", CopayAllowed: true, RespaSplitLimit: 30},
		2: {ID: 2, Title: "Photography", CopayAllowed: false},
	}}
	return NewCoPayService(repo, services), repo
}

func TestRequestCoPayWithinLimit(t *testing.T) {
	svc, _ := newTestService()

	request, err := svc.RequestCoPay(context.Background(), &domain.CoPayRequest{
		ServiceID:      1,
		AgentID:        7,
		RequestedSplit: 25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != domain.CoPayStatusPending {
		t.Fatalf("expected pending status, got %q", request.Status)
	}
	if request.DecidedAt != nil {
		t.Fatalf("new request must not carry a decision time")
	}
}

func TestRequestCoPayExceedsLimit(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RequestCoPay(context.Background(), &domain.CoPayRequest{
		ServiceID:      1,
		AgentID:        7,
		RequestedSplit: 45,
	})
	if err == nil {
		t.Fatalf("expected error when split exceeds the service limit")
	}
}

func TestRequestCoPayServiceDisallowsCoPay(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RequestCoPay(context.Background(), &domain.CoPayRequest{
		ServiceID:      2,
		AgentID:        7,
		RequestedSplit: 10,
	})
	if err == nil {
		t.Fatalf("expected error for a non co-pay service")
	}
}

func TestDecideApproves(t *testing.T) {
	svc, _ := newTestService()

	request, err := svc.RequestCoPay(context.Background(), &domain.CoPayRequest{
		ServiceID:      1,
		AgentID:        7,
		RequestedSplit: 20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decided, err := svc.Decide(context.Background(), request.ID, true, "looks good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decided.Status != domain.CoPayStatusApproved {
		t.Fatalf("expected approved, got %q", decided.Status)
	}
	if decided.DecidedAt == nil {
		t.Fatalf("expected a decision timestamp")
	}
	if decided.Note != "looks good" {
		t.Fatalf("expected note to be recorded, got %q", decided.Note)
	}
}

func TestDecideIsFinal(t *testing.T) {
	svc, _ := newTestService()

	request, err := svc.RequestCoPay(context.Background(), &domain.CoPayRequest{
		ServiceID:      1,
		AgentID:        7,
		RequestedSplit: 20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Decide(context.Background(), request.ID, false, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Decide(context.Background(), request.ID, true, ""); err == nil {
		t.Fatalf("expected error when deciding an already decided request")
	}
}
