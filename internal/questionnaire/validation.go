package questionnaire

import "strings"

// IsSection1Valid gates leaving the Personal Info page: name and email must
// be non-empty. Whitespace counts as content and the email format is not
// checked.
func IsSection1Valid(s *Session) bool {
	return s.Name != "" && s.Email != ""
}

// IsSubmitEnabled gates the final submit: the current grade, max boulder
// grade and goal must each have non-whitespace content, and no submission
// may be in flight.
func IsSubmitEnabled(s *Session, submitting bool) bool {
	if submitting {
		return false
	}
	return strings.TrimSpace(s.CurrentClimbingGrade) != "" &&
		strings.TrimSpace(s.MaxBoulderGrade) != "" &&
		strings.TrimSpace(s.Goal) != ""
}
