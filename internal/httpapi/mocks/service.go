package mocks

import (
	"context"
	"errors"

	"github.com/uxmetrics/eval-server/internal/service"
)

// MockEvaluationService is a mock implementation of the EvaluationService
// interface for testing the handler layer. It uses function-based mocking for
// flexibility.
type MockEvaluationService struct {
	EvaluateFunc func(ctx context.Context, req service.EvaluateRequest) (*service.Evaluation, error)
	GetFunc      func(ctx context.Context, id string) (*service.Evaluation, error)
	ListFunc     func(ctx context.Context, limit, offset int) ([]service.EvaluationSummary, error)
	DeleteFunc   func(ctx context.Context, id string) error
	StatsFunc    func(ctx context.Context) (service.Stats, error)
}

// Evaluate implements the EvaluationService interface
func (m *MockEvaluationService) Evaluate(ctx context.Context, req service.EvaluateRequest) (*service.Evaluation, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, req)
	}
	return nil, errors.New("EvaluateFunc not implemented")
}

// Get implements the EvaluationService interface
func (m *MockEvaluationService) Get(ctx context.Context, id string) (*service.Evaluation, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not implemented")
}

// List implements the EvaluationService interface
func (m *MockEvaluationService) List(ctx context.Context, limit, offset int) ([]service.EvaluationSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, errors.New("ListFunc not implemented")
}

// Delete implements the EvaluationService interface
func (m *MockEvaluationService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented")
}

// Stats implements the EvaluationService interface
func (m *MockEvaluationService) Stats(ctx context.Context) (service.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return service.Stats{}, errors.New("StatsFunc not implemented")
}
