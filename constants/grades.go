package constants

import "strings"

// GradeLevel is the qualitative rating used on criterion rows.
type GradeLevel string

// Stable values (store these exact strings in saved sessions).
const (
	GradeExcellent    GradeLevel = "Excellent"
	GradeVeryGood     GradeLevel = "Very Good"
	GradeGood         GradeLevel = "Good"
	GradeSatisfactory GradeLevel = "Satisfactory"
	GradeSufficient   GradeLevel = "Sufficient"
	GradeFail         GradeLevel = "Fail"
	GradeNotRated     GradeLevel = "N/A"
)

var allGradeLevels = []GradeLevel{
	GradeExcellent,
	GradeVeryGood,
	GradeGood,
	GradeSatisfactory,
	GradeSufficient,
	GradeFail,
	GradeNotRated,
}

// GradeLevels returns the rating vocabulary in display order.
func GradeLevels() []string {
	result := make([]string, len(allGradeLevels))
	for i, g := range allGradeLevels {
		result[i] = string(g)
	}
	return result
}

// CanonicalizeGradeLevel maps free-form input onto the fixed vocabulary.
// Unknown input maps to N/A.
func CanonicalizeGradeLevel(input string) (GradeLevel, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return GradeNotRated, false
	}
	for _, g := range allGradeLevels {
		if normalized == strings.ToLower(string(g)) {
			return g, true
		}
	}
	return GradeNotRated, false
}

// Score weighting of the two evaluation components.
const (
	ThesisWeight  = 0.75
	DefenseWeight = 0.25
)

// Default supervisor names pre-filled on new evaluations.
const (
	DefaultFirstSupervisor  = "Dries Faems"
	DefaultSecondSupervisor = "Fabian Fritz"
)

// DefaultThirdAssessorDecision is the pre-selected third assessor statement.
const DefaultThirdAssessorDecision = "I confirm the evaluation of the first assessor"
