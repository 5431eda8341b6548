package sus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allResponses(value int) map[string]int {
	responses := make(map[string]int, len(Questions))
	for _, q := range Questions {
		responses[q.ID] = value
	}
	return responses
}

// bestResponses answers 5 on positive items and 1 on negative items, the
// maximum possible contribution everywhere.
func bestResponses() map[string]int {
	responses := make(map[string]int, len(Questions))
	for _, q := range Questions {
		if q.Positive {
			responses[q.ID] = 5
		} else {
			responses[q.ID] = 1
		}
	}
	return responses
}

func TestQuestions(t *testing.T) {
	t.Run("ten items with alternating polarity", func(t *testing.T) {
		require.Len(t, Questions, 10)
		for i, q := range Questions {
			assert.Equal(t, i%2 == 0, q.Positive, "question %s", q.ID)
		}
	})
}

func TestScore(t *testing.T) {
	t.Run("all neutral responses score 50", func(t *testing.T) {
		score, err := Score(allResponses(3))

		require.NoError(t, err)
		assert.Equal(t, 50.0, score)
	})

	t.Run("best possible responses score 100", func(t *testing.T) {
		score, err := Score(bestResponses())

		require.NoError(t, err)
		assert.Equal(t, 100.0, score)
	})

	t.Run("worst possible responses score 0", func(t *testing.T) {
		responses := make(map[string]int, len(Questions))
		for _, q := range Questions {
			if q.Positive {
				responses[q.ID] = 1
			} else {
				responses[q.ID] = 5
			}
		}

		score, err := Score(responses)
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("missing question fails", func(t *testing.T) {
		responses := allResponses(3)
		delete(responses, "q7")
		responses["q11"] = 3

		_, err := Score(responses)
		assert.ErrorIs(t, err, ErrInvalidResponseSet)
		assert.Contains(t, err.Error(), "q7")
	})

	t.Run("wrong response count fails", func(t *testing.T) {
		responses := allResponses(3)
		delete(responses, "q10")

		_, err := Score(responses)
		assert.ErrorIs(t, err, ErrInvalidResponseSet)
	})

	t.Run("out-of-range value fails", func(t *testing.T) {
		responses := allResponses(3)
		responses["q4"] = 6

		_, err := Score(responses)
		assert.ErrorIs(t, err, ErrInvalidResponseSet)
		assert.Contains(t, err.Error(), "q4")
	})

	t.Run("monotonic in each question", func(t *testing.T) {
		base := allResponses(3)
		baseScore, err := Score(base)
		require.NoError(t, err)

		for _, q := range Questions {
			bumped := allResponses(3)
			bumped[q.ID] = 4

			score, err := Score(bumped)
			require.NoError(t, err)

			if q.Positive {
				assert.Greater(t, score, baseScore, "raising positive %s must raise the score", q.ID)
			} else {
				assert.Less(t, score, baseScore, "raising negative %s must lower the score", q.ID)
			}
		}
	})
}

func TestGradeFor(t *testing.T) {
	cases := []struct {
		score float64
		want  Grade
	}{
		{95, GradeA},
		{90, GradeA},
		{89.9, GradeB},
		{80, GradeB},
		{75, GradeC},
		{70, GradeC},
		{65, GradeD},
		{60, GradeD},
		{59.9, GradeF},
		{50, GradeF},
		{0, GradeF},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GradeFor(tc.score), "score %.1f", tc.score)
	}
}

func TestPercentile(t *testing.T) {
	t.Run("benchmark average sits at the 50th percentile", func(t *testing.T) {
		assert.InDelta(t, 50.0, Percentile(BenchmarkAverage), 1e-9)
	})

	t.Run("stays within bounds at the extremes", func(t *testing.T) {
		low := Percentile(0)
		high := Percentile(100)

		assert.GreaterOrEqual(t, low, 0.0)
		assert.Less(t, low, 1.0)
		assert.LessOrEqual(t, high, 100.0)
		assert.Greater(t, high, 99.0)
	})

	t.Run("monotonic in score", func(t *testing.T) {
		prev := Percentile(0)
		for score := 5.0; score <= 100; score += 5 {
			p := Percentile(score)
			assert.Greater(t, p, prev, "score %.0f", score)
			prev = p
		}
	})
}

func TestAdjectiveRating(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, "Awful"},
		{24.9, "Awful"},
		{25, "Poor"},
		{39, "OK"},
		{50, "OK"},
		{52, "Good"},
		{71.9, "Good"},
		{72, "Excellent"},
		{85, "Best Imaginable"},
		{92, "Best Imaginable"},
		{100, "Best Imaginable"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AdjectiveRating(tc.score), "score %.1f", tc.score)
	}
}

func TestAcceptability(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, "Not Acceptable"},
		{50, "Not Acceptable"},
		{51, "Marginally Acceptable"},
		{70.9, "Marginally Acceptable"},
		{71, "Acceptable"},
		{100, "Acceptable"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Acceptability(tc.score), "score %.1f", tc.score)
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("neutral scenario", func(t *testing.T) {
		result, err := Evaluate(allResponses(3))
		require.NoError(t, err)

		assert.Equal(t, 50.0, result.Score)
		assert.Equal(t, GradeF, result.Grade)
		assert.Equal(t, "OK", result.AdjectiveRating)
		assert.Equal(t, "Not Acceptable", result.Acceptability)
	})

	t.Run("best case scenario", func(t *testing.T) {
		result, err := Evaluate(bestResponses())
		require.NoError(t, err)

		assert.Equal(t, 100.0, result.Score)
		assert.Equal(t, GradeA, result.Grade)
		assert.Equal(t, "Best Imaginable", result.AdjectiveRating)
		assert.Equal(t, "Acceptable", result.Acceptability)
	})

	t.Run("invalid input propagates", func(t *testing.T) {
		_, err := Evaluate(map[string]int{"q1": 3})
		assert.ErrorIs(t, err, ErrInvalidResponseSet)
	})

	t.Run("evaluation is deterministic", func(t *testing.T) {
		responses := allResponses(4)

		first, err := Evaluate(responses)
		require.NoError(t, err)
		second, err := Evaluate(responses)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func BenchmarkEvaluate(b *testing.B) {
	responses := allResponses(4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Evaluate(responses); err != nil {
			b.Fatal(err)
		}
	}
}
