package titlepage

import "testing"

func TestLongDateMatcher(t *testing.T) {
	tests := []struct {
		in    string
		match bool
		text  string
	}{
		{"January 5, 2024", true, "January 5, 2024"},
		{"Vallendar, Jan. 5, 2024", true, "Jan. 5, 2024"},
		{"submitted September 30 2021", true, "September 30 2021"},
		{"DECEMBER 1, 1999", true, "DECEMBER 1, 1999"},
		{"02.02.2026", false, ""},
		{"no date here", false, ""},
		{"Mayfield 12, Springfield", false, ""}, // "May" must be a word
	}
	for _, tt := range tests {
		m, ok := matchLongDate(tt.in)
		if ok != tt.match {
			t.Errorf("matchLongDate(%q) = %v, want %v", tt.in, ok, tt.match)
			continue
		}
		if ok && m.Text != tt.text {
			t.Errorf("matchLongDate(%q).Text = %q, want %q", tt.in, m.Text, tt.text)
		}
	}
}

func TestShortDateMatcher(t *testing.T) {
	tests := []struct {
		in    string
		match bool
	}{
		{"02.02.2026", true},
		{"2/2/2026", true},
		{"31.12.1999", true},
		{"1.2.26", false},
		{"January 5, 2024", false},
	}
	for _, tt := range tests {
		if got := containsShortDate(tt.in); got != tt.match {
			t.Errorf("containsShortDate(%q) = %v, want %v", tt.in, got, tt.match)
		}
	}
}

func TestProfessorMatchers(t *testing.T) {
	tests := []struct {
		in       string
		match    bool
		stripped string
	}{
		{"Prof. Jane Doe", true, "Jane Doe"},
		{"Prof. Dr. Jane Doe", true, "Jane Doe"},
		{"Prof Jane Doe", true, "Jane Doe"},
		{"prof. dr. jane doe", true, "jane doe"},
		{"Professor Jane Doe", false, ""},
		{"A Prof. somewhere", false, ""},
	}
	for _, tt := range tests {
		if got := isProfessorLine(tt.in); got != tt.match {
			t.Errorf("isProfessorLine(%q) = %v, want %v", tt.in, got, tt.match)
			continue
		}
		if tt.match {
			if got := stripProfessorPrefix(tt.in); got != tt.stripped {
				t.Errorf("stripProfessorPrefix(%q) = %q, want %q", tt.in, got, tt.stripped)
			}
		}
	}
}

func TestIDMatchers(t *testing.T) {
	if _, ok := matchStandaloneID("12345678"); !ok {
		t.Error("8 digits should match standalone ID")
	}
	if _, ok := matchStandaloneID("12345"); ok {
		t.Error("5 digits must not match (minimum is 6)")
	}
	if _, ok := matchStandaloneID("12345678901"); ok {
		t.Error("11 digits must not match (maximum is 10)")
	}
	if _, ok := matchStandaloneID("id 12345678"); ok {
		t.Error("standalone ID must be the whole line")
	}

	id, ok := matchParenthesizedID("Matriculation no (20010551)")
	if !ok || id != "20010551" {
		t.Errorf("matchParenthesizedID = %q, %v", id, ok)
	}
	if _, ok := matchParenthesizedID("(123)"); ok {
		t.Error("3 digits in parens must not match")
	}
}

func TestHeaderAndChairMatchers(t *testing.T) {
	if !isHeaderLine("Master Thesis") || !isHeaderLine("MASTER  THESIS") {
		t.Error("header phrase should match case-insensitively")
	}
	if isHeaderLine("Master Thesis Evaluation") {
		t.Error("header must match the whole line")
	}
	if !isChairLine("Chair of Entrepreneurship") || !isChairLine("chair of strategy") {
		t.Error("chair prefix should match case-insensitively")
	}
	if isChairLine("The Chair of X") {
		t.Error("chair must be anchored at line start")
	}
}

func TestParenLocationDateMatcher(t *testing.T) {
	m, ok := matchParenLocationDate("Submission date (Vallendar, 02.02.2026)")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Location != "Vallendar" || m.Date != "02.02.2026" {
		t.Errorf("got %+v", m)
	}
	if _, ok := matchParenLocationDate("(Vallendar)"); ok {
		t.Error("paren without date must not match")
	}
}

func TestPlausibleNamePredicate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Max Mustermann", true},
		{"12345678", false},
		{"January 5, 2024", false},
		{"02.02.2026", false},
		{"O'Brien-Smith", true},
	}
	for _, tt := range tests {
		if got := isPlausibleName(tt.in); got != tt.want {
			t.Errorf("isPlausibleName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
