package sus

// QuestionAnalysis is the per-question breakdown of a response set.
type QuestionAnalysis struct {
	Question        string `json:"question"`
	Response        int    `json:"response"`
	NormalizedScore int    `json:"normalized_score"`
	Performance     string `json:"performance"`
	IsPositive      bool   `json:"is_positive"`
}

// Suggestion is an improvement suggestion for a poorly scoring question.
type Suggestion struct {
	Priority     string `json:"priority"`
	Area         string `json:"area"`
	CurrentScore int    `json:"current_score"`
	Suggestion   string `json:"suggestion"`
	Question     string `json:"question"`
}

// BenchmarkComparison relates a score to the industry benchmark.
type BenchmarkComparison struct {
	YourScore             float64 `json:"your_score"`
	IndustryAverage       float64 `json:"industry_average"`
	DifferenceFromAverage float64 `json:"difference_from_average"`
	Percentile            float64 `json:"percentile"`
	BenchmarkCategory     string  `json:"benchmark_category"`
}

// DetailedReport bundles the full SUS analysis for one response set.
type DetailedReport struct {
	OverallResult          Result                      `json:"overall_result"`
	QuestionAnalysis       map[string]QuestionAnalysis `json:"question_analysis"`
	ImprovementSuggestions []Suggestion                `json:"improvement_suggestions"`
	BenchmarkComparison    BenchmarkComparison         `json:"benchmark_comparison"`
	Strengths              []string                    `json:"strengths"`
	Weaknesses             []string                    `json:"weaknesses"`
}

type adviceEntry struct {
	area   string
	advice string
}

// suggestionAdvice maps each question to its improvement topic and advice.
var suggestionAdvice = map[string]adviceEntry{
	"q1":  {"User Engagement", "Increase the assistant's usefulness and value so users want to use it more often"},
	"q2":  {"System Complexity", "Simplify the interface and interaction flow to reduce complexity"},
	"q3":  {"Ease of Use", "Improve the experience design and provide more intuitive operations"},
	"q4":  {"Independent Use", "Improve help content and onboarding to lower the technical barrier"},
	"q5":  {"Feature Integration", "Improve coordination between features for a more unified experience"},
	"q6":  {"Consistency", "Establish clear design guidelines to keep the interface and interactions consistent"},
	"q7":  {"Learning Curve", "Streamline the first-run experience so new users learn faster"},
	"q8":  {"Usage Difficulty", "Redesign complex features and offer simpler alternatives"},
	"q9":  {"User Confidence", "Add feedback and error prevention to build user confidence"},
	"q10": {"Learning Cost", "Reduce required prior knowledge for an easier start"},
}

var strengthLabels = map[string]string{
	"q1":  "Strong user engagement",
	"q2":  "Appropriate system complexity",
	"q3":  "Easy to use",
	"q4":  "Usable without assistance",
	"q5":  "Well integrated features",
	"q6":  "Consistent experience",
	"q7":  "Easy to learn",
	"q8":  "Simple to operate",
	"q9":  "Users feel confident",
	"q10": "Low learning cost",
}

var weaknessLabels = map[string]string{
	"q1":  "Low user engagement",
	"q2":  "System too complex",
	"q3":  "Difficult to use",
	"q4":  "Requires technical support",
	"q5":  "Poorly integrated features",
	"q6":  "Inconsistent experience",
	"q7":  "Hard to learn",
	"q8":  "Cumbersome to operate",
	"q9":  "Users lack confidence",
	"q10": "High learning cost",
}

func performanceLabel(normalized int) string {
	switch {
	case normalized >= 3:
		return "Excellent"
	case normalized >= 2:
		return "Good"
	case normalized >= 1:
		return "Average"
	default:
		return "Needs Improvement"
	}
}

// AnalyzeQuestions produces the per-question breakdown. Questions absent
// from the response set are skipped; validation happens in Score.
func AnalyzeQuestions(responses map[string]int) map[string]QuestionAnalysis {
	analysis := make(map[string]QuestionAnalysis, len(Questions))
	for _, q := range Questions {
		response, ok := responses[q.ID]
		if !ok {
			continue
		}
		normalized := contribution(q, response)
		analysis[q.ID] = QuestionAnalysis{
			Question:        q.Text,
			Response:        response,
			NormalizedScore: normalized,
			Performance:     performanceLabel(normalized),
			IsPositive:      q.Positive,
		}
	}
	return analysis
}

// ImprovementSuggestions emits one suggestion per question whose normalized
// contribution is at most 1. Suggestions are independent per question;
// priority is High for a zero contribution, Medium otherwise. Output order
// follows the fixed q1..q10 question order.
func ImprovementSuggestions(responses map[string]int) []Suggestion {
	analysis := AnalyzeQuestions(responses)

	var suggestions []Suggestion
	for _, q := range Questions {
		data, ok := analysis[q.ID]
		if !ok || data.NormalizedScore > 1 {
			continue
		}

		priority := "Medium"
		if data.NormalizedScore == 0 {
			priority = "High"
		}

		advice := suggestionAdvice[q.ID]
		suggestions = append(suggestions, Suggestion{
			Priority:     priority,
			Area:         advice.area,
			CurrentScore: data.NormalizedScore,
			Suggestion:   advice.advice,
			Question:     data.Question,
		})
	}
	return suggestions
}

// CompareWithBenchmarks relates a score to the published industry baseline
// and buckets it into one of five percentile tiers.
func CompareWithBenchmarks(score float64) BenchmarkComparison {
	percentile := Percentile(score)

	var tier string
	switch {
	case percentile >= 90:
		tier = "Top Tier (top 10%)"
	case percentile >= 75:
		tier = "Excellent (top 25%)"
	case percentile >= 50:
		tier = "Above Average (top 50%)"
	case percentile >= 25:
		tier = "Average (top 75%)"
	default:
		tier = "Needs Improvement (bottom 25%)"
	}

	return BenchmarkComparison{
		YourScore:             score,
		IndustryAverage:       BenchmarkAverage,
		DifferenceFromAverage: score - BenchmarkAverage,
		Percentile:            percentile,
		BenchmarkCategory:     tier,
	}
}

// identifyStrengths lists the strength label of every question scoring 3+,
// in fixed question order.
func identifyStrengths(analysis map[string]QuestionAnalysis) []string {
	var strengths []string
	for _, q := range Questions {
		if data, ok := analysis[q.ID]; ok && data.NormalizedScore >= 3 {
			strengths = append(strengths, strengthLabels[q.ID])
		}
	}
	return strengths
}

// identifyWeaknesses lists the weakness label of every question scoring 1
// or less, in fixed question order.
func identifyWeaknesses(analysis map[string]QuestionAnalysis) []string {
	var weaknesses []string
	for _, q := range Questions {
		if data, ok := analysis[q.ID]; ok && data.NormalizedScore <= 1 {
			weaknesses = append(weaknesses, weaknessLabels[q.ID])
		}
	}
	return weaknesses
}

// GenerateDetailedReport runs the full SUS analysis: overall result,
// per-question breakdown, suggestions, benchmark comparison and
// strength/weakness extraction.
func GenerateDetailedReport(responses map[string]int) (DetailedReport, error) {
	result, err := Evaluate(responses)
	if err != nil {
		return DetailedReport{}, err
	}

	analysis := AnalyzeQuestions(responses)

	return DetailedReport{
		OverallResult:          result,
		QuestionAnalysis:       analysis,
		ImprovementSuggestions: ImprovementSuggestions(responses),
		BenchmarkComparison:    CompareWithBenchmarks(result.Score),
		Strengths:              identifyStrengths(analysis),
		Weaknesses:             identifyWeaknesses(analysis),
	}, nil
}
