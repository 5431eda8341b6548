package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uxmetrics/eval-server/internal/repository/models"
)

type EvaluationRepository struct {
	db *sql.DB
}

func NewEvaluationRepository(db *sql.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// EnsureSchema creates the evaluations table when it does not exist yet.
func (r *EvaluationRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS evaluations (
		id TEXT PRIMARY KEY,
		project_name TEXT NOT NULL DEFAULT '',
		project_description TEXT NOT NULL DEFAULT '',
		project_version TEXT NOT NULL DEFAULT '',
		project_team TEXT NOT NULL DEFAULT '',
		sus_score REAL NOT NULL,
		sus_grade TEXT NOT NULL,
		overall_score REAL NOT NULL,
		maturity_level TEXT NOT NULL,
		payload BLOB NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_evaluations_created_at ON evaluations(created_at);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure evaluations schema: %w", err)
	}
	return nil
}

// Save inserts one evaluation record. The payload is stored verbatim so a
// later Get returns byte-identical data.
func (r *EvaluationRepository) Save(ctx context.Context, record models.EvaluationRecord) error {
	const query = `
		INSERT INTO evaluations (
			id, project_name, project_description, project_version, project_team,
			sus_score, sus_grade, overall_score, maturity_level,
			payload, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.ProjectName, record.ProjectDescription, record.ProjectVersion, record.ProjectTeam,
		record.SUSScore, record.SUSGrade, record.OverallScore, record.MaturityLevel,
		record.Payload, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert evaluation %s: %w", record.ID, err)
	}
	return nil
}

// Get fetches one evaluation by id; nil when absent.
func (r *EvaluationRepository) Get(ctx context.Context, id string) (*models.EvaluationRecord, error) {
	const query = `
		SELECT id, project_name, project_description, project_version, project_team,
			sus_score, sus_grade, overall_score, maturity_level,
			payload, created_at, updated_at
		FROM evaluations
		WHERE id = ?
	`

	var record models.EvaluationRecord
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID, &record.ProjectName, &record.ProjectDescription, &record.ProjectVersion, &record.ProjectTeam,
		&record.SUSScore, &record.SUSGrade, &record.OverallScore, &record.MaturityLevel,
		&record.Payload, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query evaluation %s: %w", id, err)
	}
	return &record, nil
}

// List returns records ordered newest first.
func (r *EvaluationRepository) List(ctx context.Context, limit, offset int) ([]models.EvaluationRecord, error) {
	const query = `
		SELECT id, project_name, project_description, project_version, project_team,
			sus_score, sus_grade, overall_score, maturity_level,
			payload, created_at, updated_at
		FROM evaluations
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	var results []models.EvaluationRecord
	for rows.Next() {
		var record models.EvaluationRecord
		if err := rows.Scan(
			&record.ID, &record.ProjectName, &record.ProjectDescription, &record.ProjectVersion, &record.ProjectTeam,
			&record.SUSScore, &record.SUSGrade, &record.OverallScore, &record.MaturityLevel,
			&record.Payload, &record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan evaluation row: %w", err)
		}
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluations: %w", err)
	}
	return results, nil
}

// Delete removes one evaluation and reports whether a row was affected.
func (r *EvaluationRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM evaluations WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete evaluation %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete evaluation %s rows affected: %w", id, err)
	}
	return affected > 0, nil
}

// Stats computes store-wide aggregates entirely in SQL.
func (r *EvaluationRepository) Stats(ctx context.Context) (models.EvaluationStats, error) {
	const totalsQuery = `
		SELECT COUNT(id), COALESCE(AVG(sus_score), 0), COALESCE(AVG(overall_score), 0)
		FROM evaluations
	`

	stats := models.EvaluationStats{
		GradeDistribution: make(map[string]int64),
	}

	err := r.db.QueryRowContext(ctx, totalsQuery).Scan(
		&stats.TotalEvaluations, &stats.AverageSUSScore, &stats.AverageOverallScore,
	)
	if err != nil {
		return models.EvaluationStats{}, fmt.Errorf("query evaluation totals: %w", err)
	}

	const gradesQuery = `
		SELECT sus_grade, COUNT(id)
		FROM evaluations
		GROUP BY sus_grade
	`

	rows, err := r.db.QueryContext(ctx, gradesQuery)
	if err != nil {
		return models.EvaluationStats{}, fmt.Errorf("query grade distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var grade string
		var count int64
		if err := rows.Scan(&grade, &count); err != nil {
			return models.EvaluationStats{}, fmt.Errorf("scan grade distribution row: %w", err)
		}
		stats.GradeDistribution[grade] = count
	}

	if err := rows.Err(); err != nil {
		return models.EvaluationStats{}, fmt.Errorf("iterate grade distribution: %w", err)
	}
	return stats, nil
}
