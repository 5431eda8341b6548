package service

import (
	"context"

	"github.com/uxmetrics/eval-server/internal/repository/models"
)

// EvaluationRepository defines the interface for database operations for service.
type EvaluationRepository interface {
	Save(ctx context.Context, record models.EvaluationRecord) error
	// Get returns nil when no record has the given id.
	Get(ctx context.Context, id string) (*models.EvaluationRecord, error)
	List(ctx context.Context, limit, offset int) ([]models.EvaluationRecord, error)
	// Delete reports whether a record was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (models.EvaluationStats, error)
}
