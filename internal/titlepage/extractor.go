package titlepage

import "strings"

// The structural pass is a small state machine tied to the conventional
// cover layout: header phrase, title block, chair/advisor block, location
// and date line, student name, student ID. The cursor only ever moves
// forward; every state leaves its field empty when its line does not match.
type parseState int

const (
	stateSeekHeader parseState = iota
	stateInTitle
	stateSeekAdvisor
	stateSeekCoAdvisor
	stateSeekLocDate
	stateSeekName
	stateSeekID
	stateDone
)

// headerIndex returns the index of the "Master Thesis" header line, or -1.
func headerIndex(lines []string) int {
	for i, line := range lines {
		if isHeaderLine(line) {
			return i
		}
	}
	return -1
}

// Extract runs the structural pass over the segmented page lines. It never
// fails: on any layout mismatch it returns whatever fields were recovered up
// to that point and leaves the rest empty.
func Extract(lines []string) Record {
	var rec Record
	if len(lines) == 0 {
		return rec
	}

	var (
		state      = stateSeekHeader
		cursor     int
		titleBuf   []string
		advisorIdx int
	)

	for state != stateDone {
		switch state {

		case stateSeekHeader:
			// Parsing continues after the header if present; without it we
			// start at line 0 in a degraded best-effort mode.
			if h := headerIndex(lines); h >= 0 {
				cursor = h + 1
			} else {
				cursor = 0
			}
			state = stateInTitle

		case stateInTitle:
			// Accumulate title lines until the chair or professor marker.
			marker := -1
			for i := cursor; i < len(lines); i++ {
				if isChairLine(lines[i]) || isProfessorLine(lines[i]) {
					marker = i
					break
				}
				titleBuf = append(titleBuf, lines[i])
			}
			if len(titleBuf) > 0 {
				rec.ThesisTitle = strings.Join(titleBuf, " ")
			}
			if marker < 0 {
				// No marker anywhere: the title swallowed the rest of the
				// page and the remaining fields stay empty.
				state = stateDone
				break
			}
			cursor = marker
			state = stateSeekAdvisor

		case stateSeekAdvisor:
			// First professor line at or after the marker. On failure the
			// cursor stays at the marker so the later states still run.
			advisorIdx = cursor
			for i := cursor; i < len(lines); i++ {
				if isProfessorLine(lines[i]) {
					advisorIdx = i
					rec.Advisor = stripProfessorPrefix(lines[i])
					break
				}
			}
			state = stateSeekCoAdvisor

		case stateSeekCoAdvisor:
			// The single line after the advisor is a co-advisor candidate
			// unless it is itself a professor line, or looks like a date (in
			// which case it must be the location/date line and the cursor is
			// not advanced past it). Date-pattern priority here is intended.
			cursor = advisorIdx
			co := advisorIdx + 1
			if co < len(lines) && !isProfessorLine(lines[co]) {
				candidate := lines[co]
				if !containsLongDate(candidate) && !containsShortDate(candidate) {
					rec.CoAdvisor = candidate
					cursor = co
				}
			}
			cursor++
			state = stateSeekLocDate

		case stateSeekLocDate:
			if cursor < len(lines) {
				rec.Location, rec.SubmissionDate = splitLocationDate(lines[cursor])
			}
			cursor++
			state = stateSeekName

		case stateSeekName:
			if cursor < len(lines) && isPlausibleName(lines[cursor]) {
				rec.StudentName = lines[cursor]
			}
			cursor++
			state = stateSeekID

		case stateSeekID:
			if cursor < len(lines) {
				if id, ok := matchStandaloneID(lines[cursor]); ok {
					rec.StudentID = id
				} else if id, ok := matchParenthesizedID(lines[cursor]); ok {
					rec.StudentID = id
				}
			}
			state = stateDone
		}
	}

	return rec
}

// splitLocationDate interprets the location/date line. Recognized shapes, in
// order: "City, Month DD, YYYY", a bare long-form date, "(City, DD.MM.YYYY)"
// inside a short-date line, and finally the whole line taken verbatim as the
// date when it contains a short-form date.
func splitLocationDate(line string) (location, date string) {
	left, right, found := strings.Cut(line, ",")
	if found && containsLongDate(right) {
		return strings.TrimSpace(left), strings.TrimSpace(right)
	}
	if containsLongDate(line) {
		return "", line
	}
	if containsShortDate(line) {
		if m, ok := matchParenLocationDate(line); ok {
			return m.Location, m.Date
		}
		return "", line
	}
	return "", ""
}
