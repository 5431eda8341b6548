package models

import "time"

// EvaluationRecord is the persisted form of one evaluation. Payload carries
// the full serialized evaluation verbatim; the remaining columns exist for
// listing and SQL aggregation.
type EvaluationRecord struct {
	ID                 string
	ProjectName        string
	ProjectDescription string
	ProjectVersion     string
	ProjectTeam        string
	SUSScore           float64
	SUSGrade           string
	OverallScore       float64
	MaturityLevel      string
	Payload            []byte
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EvaluationStats holds store-wide aggregates computed in SQL.
type EvaluationStats struct {
	TotalEvaluations    int64
	AverageSUSScore     float64
	AverageOverallScore float64
	GradeDistribution   map[string]int64
}
