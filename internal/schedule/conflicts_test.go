package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/confsched/slotgrid/internal/domain"
)

func TestSessionConflictIsSymmetric(t *testing.T) {
	declaring := &domain.Session{ID: 1, ConflictsWith: []domain.SessionID{2}}
	silent := &domain.Session{ID: 2}

	assert.True(t, sessionConflict(declaring, []*domain.Session{silent}))
	assert.True(t, sessionConflict(silent, []*domain.Session{declaring}),
		"a conflict declared by one side constrains the other too")
	assert.False(t, sessionConflict(silent, []*domain.Session{{ID: 3}}))
}

func TestTrackConflictNeedsSharedLabel(t *testing.T) {
	s := &domain.Session{ID: 1, Tracks: []string{"infra"}}

	assert.True(t, trackConflict(s, []*domain.Session{{ID: 2, Tracks: []string{"web", "infra"}}}))
	assert.False(t, trackConflict(s, []*domain.Session{{ID: 2, Tracks: []string{"web"}}}))
	assert.False(t, trackConflict(s, nil))
}

func TestChairConflictComparesIdentity(t *testing.T) {
	s := &domain.Session{ID: 1, Chairs: []domain.Chair{{Login: "ada", Name: "Ada"}}}

	assert.True(t, chairConflict(s, []*domain.Session{{ID: 2, Chairs: []domain.Chair{{Login: "ada"}}}}))
	assert.True(t, chairConflict(s, []*domain.Session{{ID: 2, Chairs: []domain.Chair{{Name: "Ada"}}}}))
	assert.False(t, chairConflict(s, []*domain.Session{{ID: 2, Chairs: []domain.Chair{{Login: "grace", Name: "Ada"}}}}),
		"different logins win over a matching display name")
}

func TestDurationRules(t *testing.T) {
	session := &domain.Session{ID: 1, Duration: 30}
	short := domain.Slot{Name: "short", Duration: 30}
	long := domain.Slot{Name: "long", Duration: 60}

	strict := Level{StrictDuration: true, CheckDuration: true}
	loose := Level{CheckDuration: true}
	off := Level{}

	assert.True(t, durationOK(strict, short, session))
	assert.False(t, durationOK(strict, long, session))
	assert.True(t, durationOK(loose, long, session))
	assert.False(t, durationOK(loose, domain.Slot{Duration: 15}, session))
	assert.True(t, durationOK(off, domain.Slot{Duration: 15}, session))
}

func TestChairConflictFiresAtEveryLevel(t *testing.T) {
	chair := domain.Chair{Login: "ada"}
	project := &domain.Project{
		Sessions: []*domain.Session{
			{ID: 1, Title: "a", Duration: 60, Chairs: []domain.Chair{chair}},
			{ID: 2, Title: "b", Duration: 60, Chairs: []domain.Chair{chair}},
		},
		Slots: slots(60),
	}
	grid := NewGrid(project)
	grid.Place(project.Sessions[0], "east", domain.SlotID(slotName(0)))

	for _, level := range Ladder() {
		assert.False(t, slotUsable(level, project.Sessions[1], project.Slots[0], grid),
			"chair conflict must hold at level %s", level.Name)
	}
}
