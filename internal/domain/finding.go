package domain

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityCheck   Severity = "check"
)

// Finding types the scheduler itself resolves; findings of these
// types never block a session from entering the engine.
const (
	FindingChairConflict = "chair conflict"
	FindingScheduling    = "scheduling"
)

// Finding is a structured validation result for one session.
type Finding struct {
	SessionID SessionID
	Severity  Severity
	Type      string
	Message   string
}

// Blocking reports whether the finding keeps its session out of the
// scheduling engine.
func (f Finding) Blocking() bool {
	if f.Severity != SeverityError {
		return false
	}
	return f.Type != FindingChairConflict && f.Type != FindingScheduling
}
