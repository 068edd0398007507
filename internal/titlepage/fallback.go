package titlepage

// FillGaps is the fallback pass: a shape-driven re-scan for fields the
// structural pass left empty. It never overwrites a non-empty field, so the
// higher-confidence structural result always wins.
func FillGaps(rec Record, lines []string, raw string) Record {
	if rec.StudentID == "" {
		fillIDAndName(&rec, lines, matchStandaloneID)
		if rec.StudentID == "" {
			fillIDAndName(&rec, lines, matchParenthesizedID)
		}
	}

	if rec.SubmissionDate == "" {
		// The structural pass only looks at one expected line; here any
		// long-form date anywhere in the page text is taken verbatim.
		if m, ok := matchLongDate(raw); ok {
			rec.SubmissionDate = m.Text
		}
	}

	if rec.ThesisTitle == "" && len(lines) > 1 {
		// Low-confidence title: the line after the header, or the very
		// first line when the page never had a header phrase.
		if headerIndex(lines) >= 0 {
			rec.ThesisTitle = lines[1]
		} else {
			rec.ThesisTitle = lines[0]
		}
	}

	return rec
}

// fillIDAndName scans all lines for the first ID-shaped token using the
// given matcher. When found, the immediately preceding line is taken as the
// student name too, provided the name is still empty and the line is not a
// date, a digit run, or a date-of-birth shaped line.
func fillIDAndName(rec *Record, lines []string, match func(string) (string, bool)) {
	for i, line := range lines {
		id, ok := match(line)
		if !ok {
			continue
		}
		rec.StudentID = id
		if i > 0 && rec.StudentName == "" {
			candidate := lines[i-1]
			if isPlausibleName(candidate) && !isDOBLine(candidate) {
				rec.StudentName = candidate
			}
		}
		return
	}
}
