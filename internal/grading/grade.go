package grading

import (
	"math"

	"github.com/DriesFaems/thesis--evaluation/constants"
)

const (
	// PassingThreshold is the minimum score that still resolves to a
	// passing grade; anything below it is a 5.0.
	PassingThreshold = 50.0

	// FailGrade is the worst decimal grade on the scale.
	FailGrade = 5.0
)

// Result holds one weighted grade computation. The JSON field names and the
// one-decimal rounding are part of the contract: saved sessions and the
// generated documents show them verbatim.
type Result struct {
	WeightedThesis  float64 `json:"weighted_thesis"`
	WeightedDefense float64 `json:"weighted_defense"`
	CombinedPoints  float64 `json:"combined_points"`
	ThesisGrade     float64 `json:"thesis_grade"`
	DefenseGrade    float64 `json:"defense_grade"`
	CombinedGrade   float64 `json:"combined_grade"`
}

// ScoreToGrade looks up the decimal grade for a 0-100 percentage score.
// Scores below the passing threshold short-circuit to 5.0; the table's
// lowest rows resolve to 4.0 at exactly 50, so the cutoff is explicit here
// rather than implied by table contents. Out-of-range input is handled
// mechanically: negative scores fail, scores above 100 take the top row.
func ScoreToGrade(points float64) float64 {
	if points < PassingThreshold {
		return FailGrade
	}
	for _, e := range gradeTable {
		if e.Threshold <= points {
			return e.Grade
		}
	}
	// Unreachable for points >= 50 as long as the table bottoms out at 50.
	return FailGrade
}

// WeightedGrade combines the written-thesis score (75%) and the defense
// score (25%). Each weighted part is rounded to one decimal before the sum,
// and the sum is rounded again; this two-step rounding matches the external
// scoring scheme and must not be collapsed into a single rounding of
// 0.75*a + 0.25*b. The component grades come from the unweighted scores, the
// combined grade from the combined weighted points.
func WeightedGrade(thesisPoints, defensePoints float64) Result {
	weightedThesis := round1(thesisPoints * constants.ThesisWeight)
	weightedDefense := round1(defensePoints * constants.DefenseWeight)
	combined := round1(weightedThesis + weightedDefense)
	return Result{
		WeightedThesis:  weightedThesis,
		WeightedDefense: weightedDefense,
		CombinedPoints:  combined,
		ThesisGrade:     ScoreToGrade(thesisPoints),
		DefenseGrade:    ScoreToGrade(defensePoints),
		CombinedGrade:   ScoreToGrade(combined),
	}
}

// Passed reports whether a defense score meets the minimum 50% requirement.
func Passed(points float64) bool {
	return points >= PassingThreshold
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
