package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confsched/slotgrid/internal/domain"
)

func TestGridSeedsPreservedPlacements(t *testing.T) {
	room := domain.RoomID("east")
	slot := domain.SlotID(slotName(0))
	project := &domain.Project{
		Sessions: []*domain.Session{
			{ID: 1, Title: "pinned", Duration: 60, Room: &room, Slot: &slot},
			{ID: 2, Title: "loose", Duration: 60},
		},
		Rooms: []domain.Room{{Name: "east", Capacity: 20, Position: 1}},
		Slots: slots(60, 60),
	}

	grid := NewGrid(project)

	assert.True(t, grid.RoomOccupied(room, slot))
	assert.Equal(t, 1, grid.RoomLoad(room))
	assert.Equal(t, 1, grid.SlotLoad(slot))
	assert.Equal(t, 1, grid.FreeSlotCount(room))
}

func TestGridPlaceUpdatesIndicesIncrementally(t *testing.T) {
	project := &domain.Project{
		Sessions: []*domain.Session{
			{ID: 1, Title: "a", Duration: 60},
			{ID: 2, Title: "b", Duration: 60, Tracks: []string{"go"}},
		},
		Rooms: []domain.Room{
			{Name: "east", Capacity: 20, Position: 1},
			{Name: "west", Capacity: 20, Position: 2},
		},
		Slots: slots(60, 60),
	}

	grid := NewGrid(project)
	firstSlot := domain.SlotID(slotName(0))

	grid.Place(project.Sessions[0], "east", firstSlot)
	grid.Place(project.Sessions[1], "west", firstSlot)

	occupants := grid.SlotOccupants(firstSlot, 2)
	require.Len(t, occupants, 1)
	assert.Equal(t, domain.SessionID(1), occupants[0].ID)

	assert.Equal(t, 2, grid.SlotLoad(firstSlot))
	assert.Equal(t, 0, grid.RoomLoadExcludingTrack("west", "go"), "the track's own booking is excluded")
	assert.Equal(t, 1, grid.RoomLoadExcludingTrack("east", "go"))
	assert.True(t, project.Sessions[0].Placed())
	assert.True(t, project.Sessions[0].Modified)
}
