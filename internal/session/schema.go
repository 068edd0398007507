package session

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildSessionJSONSchema returns the JSON-Schema (draft 2020-12 subset) for a
// saved evaluation session, as a generic map. Every key is optional so that
// partially filled sessions load fine; unknown keys are tolerated and
// ignored by the loader.
func BuildSessionJSONSchema() map[string]any {
	criterionProp := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grade_level": map[string]any{"type": "string"},
			"comments":    map[string]any{"type": "string"},
		},
	}
	stringArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}

	props := map[string]any{
		"student_name":    map[string]any{"type": "string"},
		"student_id":      map[string]any{"type": "string"},
		"thesis_title":    map[string]any{"type": "string"},
		"submission_date": map[string]any{"type": "string"},

		"first_supervisor":    map[string]any{"type": "string"},
		"second_supervisor":   map[string]any{"type": "string"},
		"thesis_points":       scoreProp(),
		"criteria":            map[string]any{"type": "array", "items": criterionProp},
		"criterion_9_label":   map[string]any{"type": "string"},
		"general_comments_p1": map[string]any{"type": "string"},

		"third_assessor_decision":       map[string]any{"type": "string"},
		"third_assessor_proposed_grade": map[string]any{"type": "string"},

		"defense_date":            map[string]any{"type": "string"},
		"defense_program":         map[string]any{"type": "string"},
		"defense_time_start":      map[string]any{"type": "string"},
		"defense_time_end":        map[string]any{"type": "string"},
		"defense_mode":            map[string]any{"type": "string"},
		"defense_location_link":   map[string]any{"type": "string"},
		"defense_first_examiner":  map[string]any{"type": "string"},
		"defense_second_examiner": map[string]any{"type": "string"},
		"defense_group_work":      map[string]any{"type": "string"},
		"topics":                  stringArray,
		"answers":                 stringArray,
		"special_circumstances":   map[string]any{"type": "string"},
		"defense_points":          scoreProp(),
	}

	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}

func scoreProp() map[string]any {
	return map[string]any{
		"type":    "number",
		"minimum": 0.0,
		"maximum": 100.0,
	}
}

// ValidateAgainstSchema validates data against schemaMap.
func ValidateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("session.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("session.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("session does not match schema: %w", err)
	}
	return nil
}
