package service

import (
	"time"

	"github.com/uxmetrics/eval-server/internal/assessment"
	"github.com/uxmetrics/eval-server/internal/kano"
	"github.com/uxmetrics/eval-server/internal/sus"
)

// ProjectInfo is the free-form metadata attached to an evaluation.
type ProjectInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	Team        string `json:"team,omitempty"`
}

// EvaluateRequest is the full input for one evaluation run.
type EvaluateRequest struct {
	ProjectInfo   ProjectInfo                `json:"project_info"`
	KanoResponses map[string]kano.AnswerPair `json:"kano_responses"`
	SUSResponses  map[string]int             `json:"sus_responses"`
}

// KanoEvaluation groups the Kano side of an evaluation.
type KanoEvaluation struct {
	Results         map[string]kano.Result `json:"results"`
	Summary         kano.Summary           `json:"summary"`
	Recommendations []kano.Recommendation  `json:"recommendations"`
}

// SUSEvaluation groups the SUS side of an evaluation.
type SUSEvaluation struct {
	Score            float64            `json:"score"`
	Grade            sus.Grade          `json:"grade"`
	Percentile       float64            `json:"percentile"`
	AdjectiveRating  string             `json:"adjective_rating"`
	Acceptability    string             `json:"acceptability"`
	DetailedAnalysis sus.DetailedReport `json:"detailed_analysis"`
}

// Evaluation is the immutable persisted aggregate record.
type Evaluation struct {
	ID                string                `json:"id"`
	ProjectInfo       ProjectInfo           `json:"project_info"`
	KanoEvaluation    KanoEvaluation        `json:"kano_evaluation"`
	SUSEvaluation     SUSEvaluation         `json:"sus_evaluation"`
	OverallAssessment assessment.Assessment `json:"overall_assessment"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// EvaluationSummary is the list-view projection of an evaluation.
type EvaluationSummary struct {
	ID            string    `json:"id"`
	ProjectName   string    `json:"project_name"`
	ProjectVersion string   `json:"project_version,omitempty"`
	SUSScore      float64   `json:"sus_score"`
	SUSGrade      string    `json:"sus_grade"`
	OverallScore  float64   `json:"overall_score"`
	MaturityLevel string    `json:"maturity_level"`
	CreatedAt     time.Time `json:"created_at"`
}

// Stats reports store-wide aggregates.
type Stats struct {
	TotalEvaluations    int64            `json:"total_evaluations"`
	AverageSUSScore     float64          `json:"average_sus_score"`
	AverageOverallScore float64          `json:"average_overall_score"`
	GradeDistribution   map[string]int64 `json:"grade_distribution"`
}
