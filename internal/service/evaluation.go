package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uxmetrics/eval-server/internal/assessment"
	"github.com/uxmetrics/eval-server/internal/kano"
	"github.com/uxmetrics/eval-server/internal/repository/models"
	"github.com/uxmetrics/eval-server/internal/sus"
)

const (
	dbTimeout = 1 * time.Second

	defaultListLimit = 50
	maxListLimit     = 200
)

var (
	ErrMissingKanoResponses = errors.New("missing Kano responses")
	ErrMissingSUSResponses  = errors.New("missing SUS responses")
	ErrEvaluationNotFound   = errors.New("evaluation not found")
	ErrStorageFailure       = errors.New("storage failure")
)

// EvaluationService runs the scoring pipeline and owns evaluation records.
// The scoring itself is stateless; the service only adds persistence and
// logging around it.
type EvaluationService struct {
	storage EvaluationRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewEvaluationService creates a new EvaluationService instance.
func NewEvaluationService(storage EvaluationRepository, logger *zap.Logger) *EvaluationService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &EvaluationService{
		storage: storage,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// newEvaluationID derives a short identifier the way the store has always
// keyed evaluations: the first eight hex characters of a random UUID.
func newEvaluationID() string {
	return uuid.NewString()[:8]
}

// Evaluate scores both questionnaires, combines them into the overall
// assessment, and persists the resulting record.
func (s *EvaluationService) Evaluate(ctx context.Context, req EvaluateRequest) (*Evaluation, error) {
	if len(req.KanoResponses) == 0 {
		return nil, ErrMissingKanoResponses
	}
	if len(req.SUSResponses) == 0 {
		return nil, ErrMissingSUSResponses
	}

	kanoResults, err := kano.Analyze(req.KanoResponses)
	if err != nil {
		return nil, fmt.Errorf("kano analysis: %w", err)
	}
	kanoSummary := kano.Summarize(kanoResults)
	recommendations := kano.Recommendations(kanoResults, kano.DefaultQuestions)

	susDetail, err := sus.GenerateDetailedReport(req.SUSResponses)
	if err != nil {
		return nil, fmt.Errorf("sus evaluation: %w", err)
	}
	susResult := susDetail.OverallResult

	overall := assessment.Aggregate(kanoSummary, susResult)

	createdAt := s.now()
	evaluation := &Evaluation{
		ID:          newEvaluationID(),
		ProjectInfo: req.ProjectInfo,
		KanoEvaluation: KanoEvaluation{
			Results:         kanoResults,
			Summary:         kanoSummary,
			Recommendations: recommendations,
		},
		SUSEvaluation: SUSEvaluation{
			Score:            susResult.Score,
			Grade:            susResult.Grade,
			Percentile:       susResult.Percentile,
			AdjectiveRating:  susResult.AdjectiveRating,
			Acceptability:    susResult.Acceptability,
			DetailedAnalysis: susDetail,
		},
		OverallAssessment: overall,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}

	payload, err := json.Marshal(evaluation)
	if err != nil {
		return nil, fmt.Errorf("marshal evaluation: %w", err)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	record := models.EvaluationRecord{
		ID:                 evaluation.ID,
		ProjectName:        req.ProjectInfo.Name,
		ProjectDescription: req.ProjectInfo.Description,
		ProjectVersion:     req.ProjectInfo.Version,
		ProjectTeam:        req.ProjectInfo.Team,
		SUSScore:           susResult.Score,
		SUSGrade:           string(susResult.Grade),
		OverallScore:       overall.OverallScore,
		MaturityLevel:      overall.MaturityLevel,
		Payload:            payload,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
	}
	if err := s.storage.Save(dbCtx, record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("evaluation completed",
		zap.String("id", evaluation.ID),
		zap.String("project", req.ProjectInfo.Name),
		zap.Float64("sus_score", susResult.Score),
		zap.Float64("overall_score", overall.OverallScore))

	return evaluation, nil
}

// Get loads a persisted evaluation by id.
func (s *EvaluationService) Get(ctx context.Context, id string) (*Evaluation, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	record, err := s.storage.Get(dbCtx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if record == nil {
		return nil, ErrEvaluationNotFound
	}

	var evaluation Evaluation
	if err := json.Unmarshal(record.Payload, &evaluation); err != nil {
		return nil, fmt.Errorf("unmarshal evaluation %s: %w", id, err)
	}
	return &evaluation, nil
}

// List returns evaluation summaries, newest first.
func (s *EvaluationService) List(ctx context.Context, limit, offset int) ([]EvaluationSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	records, err := s.storage.List(dbCtx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	summaries := make([]EvaluationSummary, len(records))
	for i, r := range records {
		summaries[i] = EvaluationSummary{
			ID:             r.ID,
			ProjectName:    r.ProjectName,
			ProjectVersion: r.ProjectVersion,
			SUSScore:       r.SUSScore,
			SUSGrade:       r.SUSGrade,
			OverallScore:   r.OverallScore,
			MaturityLevel:  r.MaturityLevel,
			CreatedAt:      r.CreatedAt,
		}
	}
	return summaries, nil
}

// Delete removes an evaluation by id.
func (s *EvaluationService) Delete(ctx context.Context, id string) error {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	deleted, err := s.storage.Delete(dbCtx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if !deleted {
		return ErrEvaluationNotFound
	}

	s.logger.Info("evaluation deleted", zap.String("id", id))
	return nil
}

// Stats returns store-wide aggregate statistics.
func (s *EvaluationService) Stats(ctx context.Context) (Stats, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	result, err := s.storage.Stats(dbCtx)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return Stats{
		TotalEvaluations:    result.TotalEvaluations,
		AverageSUSScore:     result.AverageSUSScore,
		AverageOverallScore: result.AverageOverallScore,
		GradeDistribution:   result.GradeDistribution,
	}, nil
}
