package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confsched/slotgrid/internal/domain"
)

func findingsByType(findings []domain.Finding, typ string) []domain.Finding {
	var out []domain.Finding
	for _, f := range findings {
		if f.Type == typ {
			out = append(out, f)
		}
	}
	return out
}

func TestValidatorFlagsOddDurationAsBlocking(t *testing.T) {
	project := domain.Project{Sessions: []*domain.Session{
		{ID: 1, Title: "odd", Duration: 45, Chairs: []domain.Chair{{Login: "ada"}}},
	}}

	findings := New().Validate(1, project)
	durationFindings := findingsByType(findings, "duration")
	require.Len(t, durationFindings, 1)
	assert.True(t, durationFindings[0].Blocking())
}

func TestValidatorChairOverlapNeverBlocks(t *testing.T) {
	chair := domain.Chair{Login: "ada"}
	project := domain.Project{Sessions: []*domain.Session{
		{ID: 1, Title: "a", Duration: 60, Chairs: []domain.Chair{chair}},
		{ID: 2, Title: "b", Duration: 60, Chairs: []domain.Chair{chair}},
	}}

	findings := New().Validate(1, project)
	overlaps := findingsByType(findings, domain.FindingChairConflict)
	require.Len(t, overlaps, 1)
	assert.False(t, overlaps[0].Blocking(), "the engine resolves chair conflicts itself")
}

func TestValidatorUnknownConflictTargetWarns(t *testing.T) {
	project := domain.Project{Sessions: []*domain.Session{
		{ID: 1, Title: "a", Duration: 30, Chairs: []domain.Chair{{Login: "ada"}}, ConflictsWith: []domain.SessionID{9}},
	}}

	findings := New().Validate(1, project)
	warnings := findingsByType(findings, domain.FindingScheduling)
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.SeverityWarning, warnings[0].Severity)
	assert.False(t, warnings[0].Blocking())
}

func TestValidatorCleanSession(t *testing.T) {
	project := domain.Project{Sessions: []*domain.Session{
		{ID: 1, Title: "a", Duration: 30, Chairs: []domain.Chair{{Login: "ada"}}},
	}}

	assert.Empty(t, New().Validate(1, project))
}

func TestValidatorUnknownSession(t *testing.T) {
	findings := New().Validate(7, domain.Project{})
	require.Len(t, findings, 1)
	assert.True(t, findings[0].Blocking())
}
