package titlepage

import "testing"

func TestConfidence(t *testing.T) {
	if got := Confidence(Record{}); got != 0 {
		t.Errorf("Confidence(empty) = %v, want 0", got)
	}

	full := Record{
		ThesisTitle:    "A Study of Something",
		Advisor:        "Jane Doe",
		CoAdvisor:      "John Smith",
		Location:       "Vallendar",
		SubmissionDate: "January 5, 2024",
		StudentName:    "Max Mustermann",
		StudentID:      "12345678",
	}
	if got := Confidence(full); got < 0.99 || got > 1.0 {
		t.Errorf("Confidence(full) = %v, want 1.0", got)
	}

	partial := Record{ThesisTitle: "A Study of Something"}
	got := Confidence(partial)
	if got <= 0 || got >= Confidence(full) {
		t.Errorf("Confidence(partial) = %v, want between 0 and 1", got)
	}
}
