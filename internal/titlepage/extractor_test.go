package titlepage

import (
	"strings"
	"testing"
)

func TestExtractConventionalLayout(t *testing.T) {
	lines := []string{
		"Master Thesis",
		"A Study of Something",
		"Chair of Example",
		"Prof. Jane Doe",
		"John Smith",
		"Vallendar, January 5, 2024",
		"Max Mustermann",
		"12345678",
	}

	rec := Extract(lines)

	want := Record{
		ThesisTitle:    "A Study of Something",
		Advisor:        "Jane Doe",
		CoAdvisor:      "John Smith",
		Location:       "Vallendar",
		SubmissionDate: "January 5, 2024",
		StudentName:    "Max Mustermann",
		StudentID:      "12345678",
	}
	if rec != want {
		t.Errorf("Extract mismatch:\n got %+v\nwant %+v", rec, want)
	}
}

func TestExtractMultiLineTitle(t *testing.T) {
	lines := []string{
		"MASTER THESIS",
		"A Very Long Title",
		"Spread Over Two Lines",
		"Chair of Entrepreneurship",
		"Prof. Dr. Jane Doe",
		"John Smith",
		"Vallendar, January 5, 2024",
		"Max Mustermann",
		"12345678",
	}

	rec := Extract(lines)

	if rec.ThesisTitle != "A Very Long Title Spread Over Two Lines" {
		t.Errorf("title = %q", rec.ThesisTitle)
	}
	if rec.Advisor != "Jane Doe" {
		t.Errorf("advisor = %q, Dr. prefix should be stripped", rec.Advisor)
	}
}

func TestExtractNoCoAdvisor(t *testing.T) {
	// The line after the advisor is the location/date line; the extractor
	// must detect the date shape and not consume it as a co-advisor.
	lines := []string{
		"Master Thesis",
		"Some Title",
		"Prof. Dr. Jane Doe",
		"Vallendar, January 5, 2024",
		"Max Mustermann",
		"12345678",
	}

	rec := Extract(lines)

	if rec.CoAdvisor != "" {
		t.Errorf("co_advisor = %q, want empty", rec.CoAdvisor)
	}
	if rec.Location != "Vallendar" || rec.SubmissionDate != "January 5, 2024" {
		t.Errorf("loc/date = %q / %q", rec.Location, rec.SubmissionDate)
	}
	if rec.StudentName != "Max Mustermann" || rec.StudentID != "12345678" {
		t.Errorf("name/id = %q / %q", rec.StudentName, rec.StudentID)
	}
}

func TestExtractSecondProfessorIsNotCoAdvisor(t *testing.T) {
	lines := []string{
		"Master Thesis",
		"Some Title",
		"Prof. Jane Doe",
		"Prof. Richard Roe",
		"Vallendar, January 5, 2024",
	}

	rec := Extract(lines)

	if rec.CoAdvisor != "" {
		t.Errorf("co_advisor = %q, want empty", rec.CoAdvisor)
	}
	// Without a co-advisor the cursor does not advance, so the second
	// professor line is tried (and rejected) as the location/date line.
	if rec.SubmissionDate != "" {
		t.Errorf("submission_date = %q, want empty", rec.SubmissionDate)
	}
	// The date line is then tried as the student name.
	if rec.StudentName != "" {
		t.Errorf("student_name = %q, want empty (date shaped)", rec.StudentName)
	}
}

func TestExtractWithoutHeaderPhrase(t *testing.T) {
	lines := []string{
		"Organizing for Ambidexterity",
		"Chair of Strategy",
		"Prof. John Roe",
		"Co Advisor Name",
		"Berlin, March 3, 2023",
		"Jane Student",
		"987654",
	}

	rec := Extract(lines)

	want := Record{
		ThesisTitle:    "Organizing for Ambidexterity",
		Advisor:        "John Roe",
		CoAdvisor:      "Co Advisor Name",
		Location:       "Berlin",
		SubmissionDate: "March 3, 2023",
		StudentName:    "Jane Student",
		StudentID:      "987654",
	}
	if rec != want {
		t.Errorf("Extract mismatch:\n got %+v\nwant %+v", rec, want)
	}
}

func TestExtractNoMarkerLine(t *testing.T) {
	// Without a chair or professor marker the title swallows the page and
	// everything downstream stays empty.
	lines := []string{"Master Thesis", "Line A", "Line B", "Line C"}

	rec := Extract(lines)

	if rec.ThesisTitle != "Line A Line B Line C" {
		t.Errorf("title = %q", rec.ThesisTitle)
	}
	empty := Record{ThesisTitle: rec.ThesisTitle}
	if rec != empty {
		t.Errorf("downstream fields not empty: %+v", rec)
	}
}

func TestExtractParenthesizedLocationDate(t *testing.T) {
	lines := []string{
		"Master Thesis",
		"Some Title",
		"Prof. Jane Doe",
		"John Smith",
		"Submission date (Vallendar, 02.02.2026)",
		"Max Mustermann",
		"Matriculation no (20010551)",
	}

	rec := Extract(lines)

	if rec.Location != "Vallendar" || rec.SubmissionDate != "02.02.2026" {
		t.Errorf("loc/date = %q / %q", rec.Location, rec.SubmissionDate)
	}
	if rec.StudentID != "20010551" {
		t.Errorf("student_id = %q", rec.StudentID)
	}
}

func TestExtractShortDateLineTakenVerbatim(t *testing.T) {
	lines := []string{
		"Master Thesis",
		"Some Title",
		"Prof. Jane Doe",
		"John Smith",
		"Submitted 02.02.2026",
	}

	rec := Extract(lines)

	if rec.SubmissionDate != "Submitted 02.02.2026" {
		t.Errorf("submission_date = %q", rec.SubmissionDate)
	}
	if rec.Location != "" {
		t.Errorf("location = %q, want empty", rec.Location)
	}
}

func TestExtractRejectsDigitNameLine(t *testing.T) {
	lines := []string{
		"Master Thesis",
		"Some Title",
		"Prof. Jane Doe",
		"John Smith",
		"Vallendar, January 5, 2024",
		"12345678",
	}

	rec := Extract(lines)

	if rec.StudentName != "" {
		t.Errorf("student_name = %q, want empty for digit-only line", rec.StudentName)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	if rec := Extract(nil); !rec.IsEmpty() {
		t.Errorf("Extract(nil) = %+v, want empty record", rec)
	}
	if rec := Extract([]string{}); !rec.IsEmpty() {
		t.Errorf("Extract(empty) = %+v, want empty record", rec)
	}
}

func TestExtractNeverFindsAdvisorWithoutProfessorLine(t *testing.T) {
	lines := []string{
		"Master Thesis",
		"Some Title",
		"Chair of Strategy",
		"Not a professor line",
	}

	rec := Extract(lines)

	if rec.Advisor != "" {
		t.Errorf("advisor = %q, want empty without a Prof line", rec.Advisor)
	}
}

func TestParseIdempotent(t *testing.T) {
	raw := strings.Join([]string{
		"Master Thesis",
		"A Study of Something",
		"",
		"Chair of Example",
		"Prof. Jane Doe",
		"  John Smith  ",
		"Vallendar, January 5, 2024",
		"Max Mustermann",
		"12345678",
	}, "\n")

	first := Parse(raw)
	second := Parse(raw)
	if first != second {
		t.Errorf("Parse not idempotent:\n first %+v\nsecond %+v", first, second)
	}
}

func TestSegmentLines(t *testing.T) {
	raw := "  Master Thesis \r\n\r\n\tA Title\n\n\n  \nProf. X\n"
	got := SegmentLines(raw)
	want := []string{"Master Thesis", "A Title", "Prof. X"}
	if len(got) != len(want) {
		t.Fatalf("SegmentLines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
