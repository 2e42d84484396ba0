// Package validate pre-checks sessions before they reach the
// scheduling engine. Findings about chair conflicts or scheduling are
// informational only; the engine resolves those itself.
package validate

import (
	"fmt"

	"github.com/confsched/slotgrid/internal/domain"
	"github.com/confsched/slotgrid/internal/ports"
)

var allowedDurations = []int{30, 60}

type Validator struct{}

var _ ports.SessionValidator = Validator{}

func New() Validator {
	return Validator{}
}

func (Validator) Validate(id domain.SessionID, project domain.Project) []domain.Finding {
	s, err := project.Session(id)
	if err != nil {
		return []domain.Finding{{
			SessionID: id,
			Severity:  domain.SeverityError,
			Type:      "content",
			Message:   fmt.Sprintf("session %d not found in project data", id),
		}}
	}

	var findings []domain.Finding

	if s.Title == "" {
		findings = append(findings, domain.Finding{
			SessionID: id,
			Severity:  domain.SeverityError,
			Type:      "content",
			Message:   "session has no title",
		})
	}

	if !allowedDuration(s.Duration) {
		findings = append(findings, domain.Finding{
			SessionID: id,
			Severity:  domain.SeverityError,
			Type:      "duration",
			Message:   fmt.Sprintf("duration %d is not one of the offered slot lengths", s.Duration),
		})
	}

	if len(s.Chairs) == 0 {
		findings = append(findings, domain.Finding{
			SessionID: id,
			Severity:  domain.SeverityWarning,
			Type:      "content",
			Message:   "session has no chairs",
		})
	}

	for _, other := range s.ConflictsWith {
		if _, err := project.Session(other); err != nil {
			findings = append(findings, domain.Finding{
				SessionID: id,
				Severity:  domain.SeverityWarning,
				Type:      domain.FindingScheduling,
				Message:   fmt.Sprintf("declared conflict with unknown session %d", other),
			})
		}
	}

	for _, other := range project.Sessions {
		if other.ID == s.ID {
			continue
		}
		if s.SharesChair(*other) {
			findings = append(findings, domain.Finding{
				SessionID: id,
				Severity:  domain.SeverityCheck,
				Type:      domain.FindingChairConflict,
				Message:   fmt.Sprintf("shares a chair with session %d", other.ID),
			})
		}
	}

	return findings
}

func allowedDuration(minutes int) bool {
	for _, d := range allowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}
