package titlepage

import (
	"regexp"
	"strings"
)

// Line matchers used by both extraction passes. Kept as named predicates with
// typed results so each shape rule is testable on its own.
var (
	reHeader     = regexp.MustCompile(`(?i)^master\s+thesis$`)
	reChair      = regexp.MustCompile(`(?i)^chair\s+of`)
	reProf       = regexp.MustCompile(`(?i)^prof[\s.]`)
	reProfPrefix = regexp.MustCompile(`(?i)^prof[\s.]+(?:dr[\s.]+)?`)

	reDateLong = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)[\s.]*(\d{1,2})[,\s]+(\d{4})\b`)
	reDateShort = regexp.MustCompile(`\b(\d{1,2})[./](\d{1,2})[./](\d{4})\b`)
	reDOB       = regexp.MustCompile(`\b\d{2}\.\d{2}\.\d{4}\b`)

	reStandaloneID = regexp.MustCompile(`^\d{6,10}$`)
	reParenID      = regexp.MustCompile(`\((\d{6,10})\)`)
	reParenLocDate = regexp.MustCompile(`\(([^,)]+),\s*(\d{1,2}\.\d{1,2}\.\d{4})\)`)

	reAllDigits = regexp.MustCompile(`^\d+$`)
)

// LongDateMatch is the structured result of a long-form date match
// ("Month DD, YYYY" and abbreviated variants).
type LongDateMatch struct {
	Month string
	Day   string
	Year  string
	Text  string // the full matched span, assigned verbatim
}

// LocationDateMatch is the structured result of a parenthesized
// "(City, DD.MM.YYYY)" match.
type LocationDateMatch struct {
	Location string
	Date     string
}

// isHeaderLine reports whether the line is the title-page header phrase.
func isHeaderLine(line string) bool {
	return reHeader.MatchString(line)
}

// isChairLine reports whether the line opens the advisor block ("Chair of …").
func isChairLine(line string) bool {
	return reChair.MatchString(line)
}

// isProfessorLine reports whether the line starts with a "Prof" prefix.
func isProfessorLine(line string) bool {
	return reProf.MatchString(line)
}

// stripProfessorPrefix removes the leading "Prof." and an optional "Dr."
// token, yielding the bare advisor name.
func stripProfessorPrefix(line string) string {
	return strings.TrimSpace(reProfPrefix.ReplaceAllString(line, ""))
}

// matchLongDate finds the first long-form date anywhere in s.
func matchLongDate(s string) (LongDateMatch, bool) {
	m := reDateLong.FindStringSubmatch(s)
	if m == nil {
		return LongDateMatch{}, false
	}
	return LongDateMatch{Month: m[1], Day: m[2], Year: m[3], Text: m[0]}, true
}

// containsLongDate reports whether s contains a long-form date.
func containsLongDate(s string) bool {
	return reDateLong.MatchString(s)
}

// containsShortDate reports whether s contains a numeric DD.MM.YYYY or
// DD/MM/YYYY date.
func containsShortDate(s string) bool {
	return reDateShort.MatchString(s)
}

// isDOBLine reports whether the line looks like a date-of-birth / address
// line (contains a DD.MM.YYYY run) and should never be taken as a name.
func isDOBLine(line string) bool {
	return reDOB.MatchString(line)
}

// matchStandaloneID accepts a line that is exactly a 6-10 digit run.
func matchStandaloneID(line string) (string, bool) {
	if reStandaloneID.MatchString(line) {
		return line, true
	}
	return "", false
}

// matchParenthesizedID recovers a 6-10 digit run inside parentheses,
// e.g. "Matriculation no (20010551)".
func matchParenthesizedID(line string) (string, bool) {
	m := reParenID.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// matchParenLocationDate recovers a "(City, DD.MM.YYYY)" span, e.g.
// "Submission date (Vallendar, 02.02.2026)".
func matchParenLocationDate(line string) (LocationDateMatch, bool) {
	m := reParenLocDate.FindStringSubmatch(line)
	if m == nil {
		return LocationDateMatch{}, false
	}
	return LocationDateMatch{
		Location: strings.TrimSpace(m[1]),
		Date:     strings.TrimSpace(m[2]),
	}, true
}

// isAllDigits reports whether the line consists solely of digits.
func isAllDigits(line string) bool {
	return reAllDigits.MatchString(line)
}

// isPlausibleName rejects lines that cannot be a person's name: dates,
// pure digit runs, and date-of-birth shaped lines.
func isPlausibleName(line string) bool {
	return !containsLongDate(line) && !containsShortDate(line) && !isAllDigits(line)
}
