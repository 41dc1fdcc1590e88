package quiz

// Pass mark is 60% of questions (or points).
const (
	passNumerator   = 3
	passDenominator = 5
)

type Rules struct {
	TotalQuestions    int  `json:"total_questions"`
	PassingGrade      int  `json:"passing_grade"`
	PointsPerQuestion int  `json:"points_per_question"`
	TotalPoints       int  `json:"total_points"`
	PassingPoints     int  `json:"passing_points"`
	UniformPoints     bool `json:"uniform_points"`
}

// ceilFraction returns ceil(n * 3/5) without floating point.
func ceilFraction(n int) int {
	return (n*passNumerator + passDenominator - 1) / passDenominator
}

// ComputeRules derives the scoring rules for a question set. With uniform
// points the threshold is ceil(0.6*N) questions worth of points; otherwise it
// is ceil(0.6 * total points).
func ComputeRules(questions []Question) Rules {
	r := Rules{TotalQuestions: len(questions), UniformPoints: true}
	if len(questions) == 0 {
		return r
	}

	first := questions[0].Points
	for _, q := range questions {
		r.TotalPoints += q.Points
		if q.Points != first {
			r.UniformPoints = false
		}
	}

	r.PassingGrade = ceilFraction(len(questions))
	if r.UniformPoints {
		r.PointsPerQuestion = first
		r.PassingPoints = r.PassingGrade * first
	} else {
		r.PassingPoints = ceilFraction(r.TotalPoints)
	}
	return r
}
