// Package titlepage recovers bibliographic fields from the text layer of a
// thesis title page. A structural pass walks the page lines top to bottom
// following the conventional cover layout; a fallback pass re-scans the text
// with shape patterns for anything the structural pass missed.
package titlepage

// Record holds the fields recovered from a title page. Every field is either
// empty or a trimmed non-empty string; absence is always the empty string.
// Callers must treat each value as a suggestion, not a validated fact.
type Record struct {
	ThesisTitle    string `json:"thesis_title"`
	Advisor        string `json:"advisor"`
	CoAdvisor      string `json:"co_advisor"`
	Location       string `json:"location"`
	SubmissionDate string `json:"submission_date"`
	StudentName    string `json:"student_name"`
	StudentID      string `json:"student_id"`
}

// IsEmpty reports whether no field was recovered at all.
func (r Record) IsEmpty() bool {
	return r == Record{}
}

// Parse runs the full extraction over the raw text of a single page: the
// structural pass first, then the fallback pass for fields still empty.
// It never fails; unrecoverable fields stay empty.
func Parse(raw string) Record {
	lines := SegmentLines(raw)
	rec := Extract(lines)
	return FillGaps(rec, lines, raw)
}
