package mocks

import (
	"context"
	"errors"

	"github.com/uxmetrics/eval-server/internal/repository/models"
)

// MockEvaluationRepository is a mock implementation of the EvaluationRepository
// interface for testing the service layer.
type MockEvaluationRepository struct {
	SaveFunc   func(ctx context.Context, record models.EvaluationRecord) error
	GetFunc    func(ctx context.Context, id string) (*models.EvaluationRecord, error)
	ListFunc   func(ctx context.Context, limit, offset int) ([]models.EvaluationRecord, error)
	DeleteFunc func(ctx context.Context, id string) (bool, error)
	StatsFunc  func(ctx context.Context) (models.EvaluationStats, error)
}

// Save implements the EvaluationRepository interface
func (m *MockEvaluationRepository) Save(ctx context.Context, record models.EvaluationRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return errors.New("SaveFunc not implemented")
}

// Get implements the EvaluationRepository interface
func (m *MockEvaluationRepository) Get(ctx context.Context, id string) (*models.EvaluationRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not implemented")
}

// List implements the EvaluationRepository interface
func (m *MockEvaluationRepository) List(ctx context.Context, limit, offset int) ([]models.EvaluationRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, errors.New("ListFunc not implemented")
}

// Delete implements the EvaluationRepository interface
func (m *MockEvaluationRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, errors.New("DeleteFunc not implemented")
}

// Stats implements the EvaluationRepository interface
func (m *MockEvaluationRepository) Stats(ctx context.Context) (models.EvaluationStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return models.EvaluationStats{}, errors.New("StatsFunc not implemented")
}
