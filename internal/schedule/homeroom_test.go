package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confsched/slotgrid/internal/domain"
)

func TestHomeRoomPrefersLeastLoadedAdequateRoom(t *testing.T) {
	busyRoom := domain.RoomID("busy")
	firstSlot := domain.SlotID(slotName(0))
	project := &domain.Project{
		Sessions: []*domain.Session{
			{ID: 1, Title: "t1", Duration: 60, Capacity: 30, Tracks: []string{"go"}},
			{ID: 2, Title: "t2", Duration: 60, Capacity: 10, Tracks: []string{"go"}},
			{ID: 3, Title: "other", Duration: 60, Capacity: 10, Room: &busyRoom, Slot: &firstSlot},
		},
		Rooms: []domain.Room{
			{Name: "busy", Capacity: 40, Position: 1},
			{Name: "quiet", Capacity: 40, Position: 2},
		},
		Slots: slots(60, 60, 60),
	}

	grid := NewGrid(project)
	room := SelectHomeRoom("go", grid, project)

	require.NotNil(t, room)
	assert.Equal(t, domain.RoomID("quiet"), room.Name)
}

func TestHomeRoomRanksRequestedRoomsFirst(t *testing.T) {
	requested := domain.RoomID("wanted")
	project := &domain.Project{
		Sessions: []*domain.Session{
			{ID: 1, Title: "t1", Duration: 60, Capacity: 10, Tracks: []string{"go"}, Room: &requested},
			{ID: 2, Title: "t2", Duration: 60, Capacity: 10, Tracks: []string{"go"}},
		},
		Rooms: []domain.Room{
			{Name: "default", Capacity: 40, Position: 1},
			{Name: "wanted", Capacity: 40, Position: 2},
		},
		Slots: slots(60, 60),
	}

	grid := NewGrid(project)
	room := SelectHomeRoom("go", grid, project)

	require.NotNil(t, room)
	assert.Equal(t, requested, room.Name)
}

func TestHomeRoomFallsBackToCapacityAlone(t *testing.T) {
	// Three track sessions but only two slots anywhere: no room can
	// host the whole track, so capacity alone decides.
	project := &domain.Project{
		Sessions: []*domain.Session{
			{ID: 1, Title: "t1", Duration: 60, Capacity: 35, Tracks: []string{"go"}},
			{ID: 2, Title: "t2", Duration: 60, Capacity: 10, Tracks: []string{"go"}},
			{ID: 3, Title: "t3", Duration: 60, Capacity: 10, Tracks: []string{"go"}},
		},
		Rooms: []domain.Room{
			{Name: "tiny", Capacity: 10, Position: 1},
			{Name: "roomy", Capacity: 40, Position: 2},
		},
		Slots: slots(60, 60),
	}

	grid := NewGrid(project)
	room := SelectHomeRoom("go", grid, project)

	require.NotNil(t, room)
	assert.Equal(t, domain.RoomID("roomy"), room.Name)
}

func TestHomeRoomFallsBackToSlotCountWhenCapacityImpossible(t *testing.T) {
	project := &domain.Project{
		Sessions: []*domain.Session{
			{ID: 1, Title: "t1", Duration: 60, Capacity: 100, Tracks: []string{"go"}},
		},
		Rooms: []domain.Room{
			{Name: "small", Capacity: 10, Position: 1},
			{Name: "smaller", Capacity: 5, Position: 2},
		},
		Slots: slots(60),
	}

	grid := NewGrid(project)
	room := SelectHomeRoom("go", grid, project)

	require.NotNil(t, room)
	assert.Equal(t, domain.RoomID("small"), room.Name)
}

func TestMainPoolGetsNoHomeRoom(t *testing.T) {
	project := &domain.Project{
		Sessions: []*domain.Session{{ID: 1, Title: "untracked", Duration: 60, Capacity: 10}},
		Rooms:    []domain.Room{{Name: "only", Capacity: 20, Position: 1}},
		Slots:    slots(60),
	}

	grid := NewGrid(project)
	assert.Nil(t, SelectHomeRoom(domain.MainTrack, grid, project))
	assert.Nil(t, SelectHomeRoom("ghost-track", grid, project))
}

func TestNoRoomInventoryYieldsNoHomeRoom(t *testing.T) {
	project := &domain.Project{
		Sessions: []*domain.Session{
			{ID: 1, Title: "tracked", Tracks: []string{"go"}, Duration: 60, Capacity: 10},
		},
		Slots: slots(60),
	}

	grid := NewGrid(project)
	assert.Nil(t, SelectHomeRoom("go", grid, project))
}
