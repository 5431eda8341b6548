// Package sus implements the System Usability Scale: the standard ten-item
// Likert questionnaire scored on a 0-100 scale, with grade, percentile and
// qualitative ratings derived from the score.
package sus

import (
	"errors"
	"fmt"
	"math"
)

// Grade is the letter grade derived from a SUS score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Question is one SUS questionnaire item. Positive items score response-1,
// negative items score 5-response.
type Question struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Positive bool   `json:"positive"`
}

// Result is a complete SUS evaluation.
type Result struct {
	Score           float64 `json:"score"`
	Grade           Grade   `json:"grade"`
	Percentile      float64 `json:"percentile"`
	AdjectiveRating string  `json:"adjective_rating"`
	Acceptability   string  `json:"acceptability"`
}

var ErrInvalidResponseSet = errors.New("invalid SUS response set")

// Questions is the standard SUS instrument: alternating positive and
// negative polarity, q1..q10.
var Questions = []Question{
	{ID: "q1", Text: "I think that I would like to use this system frequently.", Positive: true},
	{ID: "q2", Text: "I found the system unnecessarily complex.", Positive: false},
	{ID: "q3", Text: "I thought the system was easy to use.", Positive: true},
	{ID: "q4", Text: "I think that I would need the support of a technical person to be able to use this system.", Positive: false},
	{ID: "q5", Text: "I found the various functions in this system were well integrated.", Positive: true},
	{ID: "q6", Text: "I thought there was too much inconsistency in this system.", Positive: false},
	{ID: "q7", Text: "I would imagine that most people would learn to use this system very quickly.", Positive: true},
	{ID: "q8", Text: "I found the system very cumbersome to use.", Positive: false},
	{ID: "q9", Text: "I felt very confident using the system.", Positive: true},
	{ID: "q10", Text: "I needed to learn a lot of things before I could get going with this system.", Positive: false},
}

// LikertOptions maps response values to their agreement labels.
var LikertOptions = map[int]string{
	1: "Strongly disagree",
	2: "Disagree",
	3: "Neutral",
	4: "Agree",
	5: "Strongly agree",
}

// Industry benchmark figures from published SUS research.
const (
	BenchmarkAverage = 68.0
	benchmarkStdDev  = 12.5
)

// BenchmarkPercentiles holds published score thresholds per percentile.
var BenchmarkPercentiles = map[int]float64{
	10: 51.7,
	25: 62.7,
	50: 72.6,
	75: 78.9,
	90: 85.5,
	95: 91.0,
}

type scoreBand struct {
	min, max float64
	label    string
}

var adjectiveRatings = []scoreBand{
	{0, 25, "Awful"},
	{25, 39, "Poor"},
	{39, 52, "OK"},
	{52, 72, "Good"},
	{72, 85, "Excellent"},
	{85, 92, "Best Imaginable"},
	{92, 100, "Best Imaginable"},
}

var acceptabilityLevels = []scoreBand{
	{0, 51, "Not Acceptable"},
	{51, 71, "Marginally Acceptable"},
	{71, 100, "Acceptable"},
}

// contribution normalizes a raw response to its 0-4 score contribution
// based on the question's polarity.
func contribution(q Question, response int) int {
	if q.Positive {
		return response - 1
	}
	return 5 - response
}

// Score computes the SUS score for a complete response set. The set must
// contain exactly the keys q1..q10 with values in [1,5]; anything else is a
// contract violation and fails immediately.
func Score(responses map[string]int) (float64, error) {
	if len(responses) != len(Questions) {
		return 0, fmt.Errorf("%w: expected %d responses, got %d", ErrInvalidResponseSet, len(Questions), len(responses))
	}

	total := 0
	for _, q := range Questions {
		response, ok := responses[q.ID]
		if !ok {
			return 0, fmt.Errorf("%w: missing response for question %s", ErrInvalidResponseSet, q.ID)
		}
		if response < 1 || response > 5 {
			return 0, fmt.Errorf("%w: response for question %s is %d, must be in [1,5]", ErrInvalidResponseSet, q.ID, response)
		}
		total += contribution(q, response)
	}

	// The formula already lands in [0,100] for valid input; the clamp is
	// only a guard.
	score := float64(total) * 2.5
	return math.Min(100, math.Max(0, score)), nil
}

// GradeFor buckets a score into the A-F grade scale, highest band first.
func GradeFor(score float64) Grade {
	switch {
	case score >= 90:
		return GradeA
	case score >= 80:
		return GradeB
	case score >= 70:
		return GradeC
	case score >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// Percentile maps a score through the normal CDF against the industry
// benchmark distribution (mean 68.0, sd 12.5). The CDF path is always used;
// BenchmarkPercentiles are exposed only as published comparison data.
func Percentile(score float64) float64 {
	z := (score - BenchmarkAverage) / benchmarkStdDev
	percentile := 0.5 * (1 + math.Erf(z/math.Sqrt2)) * 100
	return math.Min(100, math.Max(0, percentile))
}

// AdjectiveRating buckets a score into the seven-band adjective scale.
func AdjectiveRating(score float64) string {
	for _, band := range adjectiveRatings {
		if score >= band.min && score < band.max {
			return band.label
		}
	}
	// A score of exactly 100 falls past every half-open band.
	return adjectiveRatings[len(adjectiveRatings)-1].label
}

// Acceptability buckets a score into the three acceptability levels.
func Acceptability(score float64) string {
	for _, band := range acceptabilityLevels {
		if score >= band.min && score < band.max {
			return band.label
		}
	}
	return acceptabilityLevels[len(acceptabilityLevels)-1].label
}

// Evaluate runs the full SUS computation over a response set.
func Evaluate(responses map[string]int) (Result, error) {
	score, err := Score(responses)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Score:           score,
		Grade:           GradeFor(score),
		Percentile:      Percentile(score),
		AdjectiveRating: AdjectiveRating(score),
		Acceptability:   Acceptability(score),
	}, nil
}
