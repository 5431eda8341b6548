package kano

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("table is total over the valid grid", func(t *testing.T) {
		valid := map[Category]bool{
			MustBe: true, OneDimensional: true, Attractive: true,
			Indifferent: true, Reverse: true, Questionable: true,
		}
		for f := 1; f <= 5; f++ {
			for d := 1; d <= 5; d++ {
				_, inTable := decisionTable[answerKey{f, d}]
				assert.True(t, inTable, "pair (%d,%d) missing from decision table", f, d)
				assert.True(t, valid[Classify(f, d)], "pair (%d,%d) produced an unknown category", f, d)
			}
		}
	})

	t.Run("known classifications", func(t *testing.T) {
		cases := []struct {
			functional    int
			dysfunctional int
			want          Category
		}{
			{1, 1, Questionable},
			{1, 2, Attractive},
			{1, 4, Attractive},
			{1, 5, OneDimensional},
			{2, 1, Reverse},
			{2, 3, Indifferent},
			{2, 5, MustBe},
			{3, 5, MustBe},
			{4, 5, MustBe},
			{4, 2, Indifferent},
			{5, 1, Reverse},
			{5, 4, Reverse},
			{5, 5, Questionable},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.want, Classify(tc.functional, tc.dysfunctional),
				"pair (%d,%d)", tc.functional, tc.dysfunctional)
		}
	})

	t.Run("out of range falls back to Questionable", func(t *testing.T) {
		assert.Equal(t, Questionable, Classify(0, 3))
		assert.Equal(t, Questionable, Classify(3, 6))
	})
}

func TestCoefficients(t *testing.T) {
	t.Run("better coefficient by functional answer", func(t *testing.T) {
		assert.Equal(t, 1.0, betterCoefficient(1))
		assert.Equal(t, 1.0, betterCoefficient(2))
		assert.Equal(t, 0.5, betterCoefficient(3))
		assert.Equal(t, 0.0, betterCoefficient(4))
		assert.Equal(t, 0.0, betterCoefficient(5))
	})

	t.Run("worse coefficient by dysfunctional answer", func(t *testing.T) {
		assert.Equal(t, 0.0, worseCoefficient(1))
		assert.Equal(t, 0.0, worseCoefficient(2))
		assert.Equal(t, 0.5, worseCoefficient(3))
		assert.Equal(t, 1.0, worseCoefficient(4))
		assert.Equal(t, 1.0, worseCoefficient(5))
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("one-dimensional pair", func(t *testing.T) {
		r := Evaluate(AnswerPair{Functional: 1, Dysfunctional: 5})

		assert.Equal(t, OneDimensional, r.Category)
		assert.Equal(t, 1.0, r.BetterCoefficient)
		assert.Equal(t, 1.0, r.WorseCoefficient)
		assert.InDelta(t, 0.8, r.SatisfactionImpact, 1e-9)
		assert.InDelta(t, 0.8, r.DissatisfactionImpact, 1e-9)
	})

	t.Run("must-be pair", func(t *testing.T) {
		r := Evaluate(AnswerPair{Functional: 2, Dysfunctional: 5})

		assert.Equal(t, MustBe, r.Category)
		assert.InDelta(t, 0.2, r.SatisfactionImpact, 1e-9)
		assert.InDelta(t, 1.0, r.DissatisfactionImpact, 1e-9)
	})

	t.Run("impacts stay within bounds for every valid pair", func(t *testing.T) {
		for f := 1; f <= 5; f++ {
			for d := 1; d <= 5; d++ {
				r := Evaluate(AnswerPair{Functional: f, Dysfunctional: d})
				assert.GreaterOrEqual(t, r.SatisfactionImpact, -0.5, "pair (%d,%d)", f, d)
				assert.LessOrEqual(t, r.SatisfactionImpact, 1.0, "pair (%d,%d)", f, d)
				assert.GreaterOrEqual(t, r.DissatisfactionImpact, -0.5, "pair (%d,%d)", f, d)
				assert.LessOrEqual(t, r.DissatisfactionImpact, 1.0, "pair (%d,%d)", f, d)
			}
		}
	})
}

func TestAnalyze(t *testing.T) {
	t.Run("classifies each response independently", func(t *testing.T) {
		responses := map[string]AnswerPair{
			"response_accuracy": {Functional: 2, Dysfunctional: 5},
			"multi_modal":       {Functional: 1, Dysfunctional: 3},
			"response_speed":    {Functional: 1, Dysfunctional: 5},
		}

		results, err := Analyze(responses)
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, MustBe, results["response_accuracy"].Category)
		assert.Equal(t, Attractive, results["multi_modal"].Category)
		assert.Equal(t, OneDimensional, results["response_speed"].Category)
	})

	t.Run("rejects out-of-range functional answer", func(t *testing.T) {
		_, err := Analyze(map[string]AnswerPair{
			"q": {Functional: 6, Dysfunctional: 3},
		})

		assert.ErrorIs(t, err, ErrAnswerOutOfRange)
	})

	t.Run("rejects out-of-range dysfunctional answer", func(t *testing.T) {
		_, err := Analyze(map[string]AnswerPair{
			"q": {Functional: 3, Dysfunctional: 0},
		})

		assert.ErrorIs(t, err, ErrAnswerOutOfRange)
	})

	t.Run("empty input yields empty results", func(t *testing.T) {
		results, err := Analyze(map[string]AnswerPair{})

		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("repeated analysis is idempotent", func(t *testing.T) {
		responses := map[string]AnswerPair{
			"a": {Functional: 1, Dysfunctional: 5},
			"b": {Functional: 3, Dysfunctional: 3},
		}

		first, err := Analyze(responses)
		require.NoError(t, err)
		second, err := Analyze(responses)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func BenchmarkAnalyze(b *testing.B) {
	responses := make(map[string]AnswerPair, 10)
	for i := 0; i < 10; i++ {
		responses[fmt.Sprintf("q%d", i)] = AnswerPair{Functional: i%5 + 1, Dysfunctional: (i+2)%5 + 1}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Analyze(responses); err != nil {
			b.Fatal(err)
		}
	}
}
