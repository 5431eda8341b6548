// Package kano implements the Kano model response classifier: a fixed
// decision table mapping paired (functional, dysfunctional) ordinal answers
// to a qualitative category, plus derived satisfaction coefficients.
package kano

import (
	"errors"
	"fmt"
)

// Category is one of the six Kano model classifications.
type Category string

const (
	MustBe         Category = "Must-be"
	OneDimensional Category = "One-dimensional"
	Attractive     Category = "Attractive"
	Indifferent    Category = "Indifferent"
	Reverse        Category = "Reverse"
	Questionable   Category = "Questionable"
)

func (c Category) String() string { return string(c) }

// Categories lists every category in a fixed order, used when building
// count and percentage maps so that all six keys are always present.
var Categories = []Category{MustBe, OneDimensional, Attractive, Indifferent, Reverse, Questionable}

// AnswerPair holds the two ordinal answers for a single Kano question.
// Both values are on the standard 5-point scale:
// 1 like, 2 expect, 3 neutral, 4 tolerate, 5 dislike.
type AnswerPair struct {
	Functional    int `json:"functional"`
	Dysfunctional int `json:"dysfunctional"`
}

// Result is the classification outcome for a single question.
type Result struct {
	Category              Category `json:"category"`
	SatisfactionImpact    float64  `json:"satisfaction_impact"`
	DissatisfactionImpact float64  `json:"dissatisfaction_impact"`
	BetterCoefficient     float64  `json:"better_coefficient"`
	WorseCoefficient      float64  `json:"worse_coefficient"`
}

var ErrAnswerOutOfRange = errors.New("answer out of range")

type answerKey struct {
	functional    int
	dysfunctional int
}

// decisionTable is the standard Kano classification matrix, keyed by the
// (functional, dysfunctional) answer pair. All 25 valid pairs are present.
var decisionTable = map[answerKey]Category{
	{1, 1}: Questionable,
	{1, 2}: Attractive,
	{1, 3}: Attractive,
	{1, 4}: Attractive,
	{1, 5}: OneDimensional,

	{2, 1}: Reverse,
	{2, 2}: Indifferent,
	{2, 3}: Indifferent,
	{2, 4}: Indifferent,
	{2, 5}: MustBe,

	{3, 1}: Reverse,
	{3, 2}: Indifferent,
	{3, 3}: Indifferent,
	{3, 4}: Indifferent,
	{3, 5}: MustBe,

	{4, 1}: Reverse,
	{4, 2}: Indifferent,
	{4, 3}: Indifferent,
	{4, 4}: Indifferent,
	{4, 5}: MustBe,

	{5, 1}: Reverse,
	{5, 2}: Reverse,
	{5, 3}: Reverse,
	{5, 4}: Reverse,
	{5, 5}: Questionable,
}

// satisfactionMultipliers scale the better coefficient into a
// satisfaction impact, per category.
var satisfactionMultipliers = map[Category]float64{
	Attractive:     1.0,
	OneDimensional: 0.8,
	MustBe:         0.2,
	Indifferent:    0.0,
	Reverse:        -0.5,
	Questionable:   0.0,
}

// dissatisfactionMultipliers scale the worse coefficient into a
// dissatisfaction impact, per category.
var dissatisfactionMultipliers = map[Category]float64{
	MustBe:         1.0,
	OneDimensional: 0.8,
	Attractive:     0.2,
	Indifferent:    0.0,
	Reverse:        -0.5,
	Questionable:   0.0,
}

// Classify maps an answer pair to its Kano category. The table covers all
// pairs in [1,5]x[1,5]; the Questionable fallback only fires for invalid
// input and is kept as a safety net rather than a behavior to rely on.
func Classify(functional, dysfunctional int) Category {
	if c, ok := decisionTable[answerKey{functional, dysfunctional}]; ok {
		return c
	}
	return Questionable
}

// betterCoefficient is the potential satisfaction gain from providing the
// feature, driven by the functional answer alone.
func betterCoefficient(functional int) float64 {
	switch {
	case functional <= 2:
		return 1.0
	case functional == 3:
		return 0.5
	default:
		return 0.0
	}
}

// worseCoefficient is the potential dissatisfaction from withholding the
// feature, driven by the dysfunctional answer alone.
func worseCoefficient(dysfunctional int) float64 {
	switch {
	case dysfunctional >= 4:
		return 1.0
	case dysfunctional == 3:
		return 0.5
	default:
		return 0.0
	}
}

// Evaluate classifies a single answer pair and derives all four coefficients.
func Evaluate(pair AnswerPair) Result {
	category := Classify(pair.Functional, pair.Dysfunctional)
	better := betterCoefficient(pair.Functional)
	worse := worseCoefficient(pair.Dysfunctional)

	return Result{
		Category:              category,
		SatisfactionImpact:    satisfactionMultipliers[category] * better,
		DissatisfactionImpact: dissatisfactionMultipliers[category] * worse,
		BetterCoefficient:     better,
		WorseCoefficient:      worse,
	}
}

// Analyze classifies every response independently. Each answer must be in
// [1,5]; the first out-of-range value aborts the whole analysis.
func Analyze(responses map[string]AnswerPair) (map[string]Result, error) {
	results := make(map[string]Result, len(responses))
	for questionID, pair := range responses {
		if pair.Functional < 1 || pair.Functional > 5 {
			return nil, fmt.Errorf("%w: question %s functional answer %d", ErrAnswerOutOfRange, questionID, pair.Functional)
		}
		if pair.Dysfunctional < 1 || pair.Dysfunctional > 5 {
			return nil, fmt.Errorf("%w: question %s dysfunctional answer %d", ErrAnswerOutOfRange, questionID, pair.Dysfunctional)
		}
		results[questionID] = Evaluate(pair)
	}
	return results, nil
}
