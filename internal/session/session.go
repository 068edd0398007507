// Package session serializes the editable evaluation state to the flat
// key/value JSON format used to save and resume an evaluation. The key set
// mirrors the form fields one to one and is part of the external contract.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/DriesFaems/thesis--evaluation/constants"
	"github.com/DriesFaems/thesis--evaluation/internal/entity"
)

// Defaults returns a fresh evaluation with every field at its initial form
// value: default supervisors, N/A criterion ratings, 09:00-09:30 in-person
// defense slot, zero points.
func Defaults() *entity.Evaluation {
	criteria := make([]entity.Criterion, constants.NumCriteria)
	for i := range criteria {
		criteria[i] = entity.Criterion{GradeLevel: string(constants.GradeNotRated)}
	}
	return &entity.Evaluation{
		FirstSupervisor:       constants.DefaultFirstSupervisor,
		SecondSupervisor:      constants.DefaultSecondSupervisor,
		Criteria:              criteria,
		Criterion9Label:       constants.OwnCriterionLabel,
		ThirdAssessorDecision: constants.DefaultThirdAssessorDecision,
		DefenseTimeStart:      "09:00",
		DefenseTimeEnd:        "09:30",
		DefenseMode:           "In Person",
		DefenseGroupWork:      "No",
		DefenseFirstExaminer:  constants.DefaultFirstSupervisor,
		DefenseSecondExaminer: constants.DefaultSecondSupervisor,
		Topics:                make([]string, constants.NumDefenseTopics),
		Answers:               make([]string, constants.NumDefenseTopics),
	}
}

// Export serializes the evaluation state to the human-readable session JSON.
func Export(ev *entity.Evaluation) ([]byte, error) {
	b, err := json.MarshalIndent(ev, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	return b, nil
}

// Load restores an evaluation from saved session bytes. The payload is
// validated against the session schema first; keys absent from the file keep
// their default values, unknown keys are ignored.
func Load(data []byte) (*entity.Evaluation, error) {
	if err := ValidateAgainstSchema(BuildSessionJSONSchema(), data); err != nil {
		return nil, err
	}
	ev := Defaults()
	if err := json.Unmarshal(data, ev); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	normalize(ev)
	return ev, nil
}

// normalize pads the criteria and topic/answer slices back to their fixed
// lengths so a truncated session file cannot shrink the form.
func normalize(ev *entity.Evaluation) {
	for len(ev.Criteria) < constants.NumCriteria {
		ev.Criteria = append(ev.Criteria, entity.Criterion{GradeLevel: string(constants.GradeNotRated)})
	}
	ev.Criteria = ev.Criteria[:constants.NumCriteria]
	for len(ev.Topics) < constants.NumDefenseTopics {
		ev.Topics = append(ev.Topics, "")
	}
	ev.Topics = ev.Topics[:constants.NumDefenseTopics]
	for len(ev.Answers) < constants.NumDefenseTopics {
		ev.Answers = append(ev.Answers, "")
	}
	ev.Answers = ev.Answers[:constants.NumDefenseTopics]
}
