package titlepage

// Confidence is a naive heuristic score for a parsed record, based on which
// fields were recovered. The structural fields carry more weight than the
// ones the fallback pass can also find; a full record scores 1.0.
func Confidence(rec Record) float32 {
	if rec.IsEmpty() {
		return 0
	}
	score := float32(0.1) // base: at least one field present
	if rec.ThesisTitle != "" {
		score += 0.2
	}
	if rec.Advisor != "" {
		score += 0.2
	}
	if rec.StudentName != "" {
		score += 0.15
	}
	if rec.StudentID != "" {
		score += 0.15
	}
	if rec.SubmissionDate != "" {
		score += 0.1
	}
	if rec.Location != "" {
		score += 0.05
	}
	if rec.CoAdvisor != "" {
		score += 0.05
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
