// Package assessment combines a Kano summary and a SUS result into one
// weighted overall product assessment.
package assessment

import (
	"math"

	"github.com/uxmetrics/eval-server/internal/kano"
	"github.com/uxmetrics/eval-server/internal/sus"
)

// Assessment is the combined evaluation outcome.
type Assessment struct {
	OverallScore    float64  `json:"overall_score"`
	MaturityLevel   string   `json:"maturity_level"`
	KeyStrengths    []string `json:"key_strengths"`
	CriticalIssues  []string `json:"critical_issues"`
	PriorityActions []string `json:"priority_actions"`
}

// Weighting of the two instruments in the overall score.
const (
	susWeight  = 0.7
	kanoWeight = 0.3
)

// normalizeImpact maps the average satisfaction impact range [-1,1] onto a
// 0-100 scale.
func normalizeImpact(impact float64) float64 {
	return math.Max(0, math.Min(100, (impact+1)*50))
}

func maturityLevel(score float64) string {
	switch {
	case score >= 85:
		return "Excellent - Market Leading"
	case score >= 75:
		return "Good - Competitive"
	case score >= 65:
		return "Average - Needs Improvement"
	case score >= 55:
		return "Poor - Requires Optimization"
	default:
		return "Very Poor - Critical Issues"
	}
}

// Aggregate derives the overall assessment. Every flag below is an
// independent gate; the output lists keep the evaluation order.
func Aggregate(kanoSummary kano.Summary, susResult sus.Result) Assessment {
	overall := susResult.Score*susWeight + normalizeImpact(kanoSummary.AverageSatisfactionImpact)*kanoWeight

	a := Assessment{
		OverallScore:  overall,
		MaturityLevel: maturityLevel(overall),
	}

	mustBePct := kanoSummary.CategoryPercentages[kano.MustBe]
	attractivePct := kanoSummary.CategoryPercentages[kano.Attractive]
	oneDimPct := kanoSummary.CategoryPercentages[kano.OneDimensional]

	if susResult.Score >= 80 {
		a.KeyStrengths = append(a.KeyStrengths, "High user satisfaction")
	}
	if attractivePct > 20 {
		a.KeyStrengths = append(a.KeyStrengths, "Features with attractive qualities")
	}
	if mustBePct < 30 {
		a.KeyStrengths = append(a.KeyStrengths, "Stable basic functionality")
	}

	if susResult.Score < 60 {
		a.CriticalIssues = append(a.CriticalIssues, "Severely insufficient usability")
	}
	if mustBePct > 50 {
		a.CriticalIssues = append(a.CriticalIssues, "Too many unmet basic requirements")
	}
	if kanoSummary.AverageDissatisfactionImpact > 0.6 {
		a.CriticalIssues = append(a.CriticalIssues, "High risk of user dissatisfaction")
	}

	if susResult.Score < 70 {
		a.PriorityActions = append(a.PriorityActions, "Immediately improve system usability")
	}
	if mustBePct > 40 {
		a.PriorityActions = append(a.PriorityActions, "Prioritize meeting basic requirements")
	}
	if oneDimPct > 30 {
		a.PriorityActions = append(a.PriorityActions, "Enhance performance of expected features")
	}

	return a
}
