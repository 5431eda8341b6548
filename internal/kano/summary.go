package kano

import (
	"fmt"
	"sort"
)

// Summary aggregates classification results for one evaluation.
type Summary struct {
	CategoryCounts              map[Category]int     `json:"category_counts"`
	CategoryPercentages         map[Category]float64 `json:"category_percentages"`
	TotalQuestions              int                  `json:"total_questions"`
	AverageSatisfactionImpact   float64              `json:"average_satisfaction_impact"`
	AverageDissatisfactionImpact float64             `json:"average_dissatisfaction_impact"`
	PriorityFeatures            PriorityFeatures     `json:"priority_features"`
}

// PriorityFeatures holds the top-3 question ids per actionable category.
type PriorityFeatures struct {
	MustBe         []string `json:"must_be_features"`
	Attractive     []string `json:"attractive_features"`
	OneDimensional []string `json:"one_dimensional_features"`
}

// Recommendation is an improvement suggestion derived from the single
// highest-ranked feature of an actionable category.
type Recommendation struct {
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Feature     string `json:"feature"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

const topFeatureCount = 3

// Summarize computes category counts, percentages, mean impacts and the
// priority feature lists over a result set. Percentages are zero when the
// result set is empty.
func Summarize(results map[string]Result) Summary {
	counts := make(map[Category]int, len(Categories))
	percentages := make(map[Category]float64, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
		percentages[c] = 0
	}

	var sumSat, sumDis float64
	for _, r := range results {
		counts[r.Category]++
		sumSat += r.SatisfactionImpact
		sumDis += r.DissatisfactionImpact
	}

	total := len(results)
	var avgSat, avgDis float64
	if total > 0 {
		for _, c := range Categories {
			percentages[c] = float64(counts[c]) / float64(total) * 100
		}
		avgSat = sumSat / float64(total)
		avgDis = sumDis / float64(total)
	}

	return Summary{
		CategoryCounts:               counts,
		CategoryPercentages:          percentages,
		TotalQuestions:               total,
		AverageSatisfactionImpact:    avgSat,
		AverageDissatisfactionImpact: avgDis,
		PriorityFeatures:             identifyPriorityFeatures(results),
	}
}

// rankedFeatures returns the question ids in the given category ordered by
// descending rank value. Ids tie-break lexicographically so the ordering is
// deterministic regardless of map iteration order.
func rankedFeatures(results map[string]Result, category Category, rank func(Result) float64) []string {
	ids := make([]string, 0, len(results))
	for id, r := range results {
		if r.Category == category {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	sort.SliceStable(ids, func(i, j int) bool {
		return rank(results[ids[i]]) > rank(results[ids[j]])
	})
	return ids
}

func identifyPriorityFeatures(results map[string]Result) PriorityFeatures {
	mustBe := rankedFeatures(results, MustBe, func(r Result) float64 { return r.DissatisfactionImpact })
	attractive := rankedFeatures(results, Attractive, func(r Result) float64 { return r.SatisfactionImpact })
	oneDim := rankedFeatures(results, OneDimensional, func(r Result) float64 {
		return r.SatisfactionImpact + r.DissatisfactionImpact
	})

	return PriorityFeatures{
		MustBe:         truncate(mustBe, topFeatureCount),
		Attractive:     truncate(attractive, topFeatureCount),
		OneDimensional: truncate(oneDim, topFeatureCount),
	}
}

func truncate(ids []string, n int) []string {
	if len(ids) > n {
		return ids[:n]
	}
	return ids
}

// Recommendations emits at most one improvement recommendation per
// actionable category, built from that category's highest-ranked feature.
// Categories with no classified questions produce nothing.
func Recommendations(results map[string]Result, questions []Question) []Recommendation {
	titles := make(map[string]string, len(questions))
	for _, q := range questions {
		titles[q.ID] = q.Title
	}
	title := func(id string) string {
		if t, ok := titles[id]; ok {
			return t
		}
		return id
	}

	var recs []Recommendation

	if mustBe := rankedFeatures(results, MustBe, func(r Result) float64 { return r.DissatisfactionImpact }); len(mustBe) > 0 {
		t := title(mustBe[0])
		recs = append(recs, Recommendation{
			Priority:    "High",
			Category:    "Must-be Needs",
			Feature:     t,
			Description: fmt.Sprintf("Users consider %s as a basic requirement, must prioritize ensuring its stability and reliability.", t),
			Action:      "Immediate improvement and ensure 100% reliability",
		})
	}

	if oneDim := rankedFeatures(results, OneDimensional, func(r Result) float64 {
		return r.SatisfactionImpact + r.DissatisfactionImpact
	}); len(oneDim) > 0 {
		t := title(oneDim[0])
		recs = append(recs, Recommendation{
			Priority:    "Medium",
			Category:    "One-dimensional Needs",
			Feature:     t,
			Description: fmt.Sprintf("Improving %s directly enhances user satisfaction.", t),
			Action:      "Continuously optimize performance and user experience",
		})
	}

	if attractive := rankedFeatures(results, Attractive, func(r Result) float64 { return r.SatisfactionImpact }); len(attractive) > 0 {
		t := title(attractive[0])
		recs = append(recs, Recommendation{
			Priority:    "Low",
			Category:    "Attractive Needs",
			Feature:     t,
			Description: fmt.Sprintf("%s is a feature that can create user delight.", t),
			Action:      "Invest in development when resources allow",
		})
	}

	return recs
}
