package httpapi

import (
	"context"
	"time"

	"github.com/uxmetrics/eval-server/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type EvaluationService interface {
	Evaluate(ctx context.Context, req service.EvaluateRequest) (*service.Evaluation, error)
	Get(ctx context.Context, id string) (*service.Evaluation, error)
	List(ctx context.Context, limit, offset int) ([]service.EvaluationSummary, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (service.Stats, error)
}
