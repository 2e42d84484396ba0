package schedule

import "github.com/confsched/slotgrid/internal/domain"

// Grid is the mutable assignment context for one run: per-room and
// per-slot occupancy indices rebuilt incrementally as placements are
// committed. It is owned by the orchestrator and shared by reference
// with the engine and the predicates; nothing else mutates it.
type Grid struct {
	project *domain.Project

	byRoom     map[domain.RoomID][]domain.SessionID
	bySlot     map[domain.SlotID][]domain.SessionID
	byRoomSlot map[domain.RoomID]map[domain.SlotID]domain.SessionID
}

// NewGrid builds the occupancy indices from whatever assignments
// survived normalization.
func NewGrid(project *domain.Project) *Grid {
	g := &Grid{
		project:    project,
		byRoom:     make(map[domain.RoomID][]domain.SessionID, len(project.Rooms)),
		bySlot:     make(map[domain.SlotID][]domain.SessionID, len(project.Slots)),
		byRoomSlot: make(map[domain.RoomID]map[domain.SlotID]domain.SessionID, len(project.Rooms)),
	}

	for _, s := range project.Sessions {
		if s.Placed() {
			g.record(s.ID, *s.Room, *s.Slot)
		}
	}

	return g
}

// Place commits an assignment: fills in whichever of room/slot the
// session did not already carry and updates the occupancy indices.
func (g *Grid) Place(s *domain.Session, room domain.RoomID, slot domain.SlotID) {
	s.AssignRoom(room)
	s.AssignSlot(slot)
	g.record(s.ID, room, slot)
}

func (g *Grid) record(id domain.SessionID, room domain.RoomID, slot domain.SlotID) {
	g.byRoom[room] = append(g.byRoom[room], id)
	g.bySlot[slot] = append(g.bySlot[slot], id)
	if g.byRoomSlot[room] == nil {
		g.byRoomSlot[room] = make(map[domain.SlotID]domain.SessionID)
	}
	g.byRoomSlot[room][slot] = id
}

// RoomOccupied reports whether some session already holds the given
// room at the given slot.
func (g *Grid) RoomOccupied(room domain.RoomID, slot domain.SlotID) bool {
	_, ok := g.byRoomSlot[room][slot]
	return ok
}

// SlotOccupants returns the sessions currently occupying the slot
// across all rooms, excluding the given session.
func (g *Grid) SlotOccupants(slot domain.SlotID, except domain.SessionID) []*domain.Session {
	ids := g.bySlot[slot]
	occupants := make([]*domain.Session, 0, len(ids))
	for _, id := range ids {
		if id == except {
			continue
		}
		if s, err := g.project.Session(id); err == nil {
			occupants = append(occupants, s)
		}
	}
	return occupants
}

// SlotLoad is the number of sessions already placed in the slot, the
// load-balancing proxy for slot preference.
func (g *Grid) SlotLoad(slot domain.SlotID) int {
	return len(g.bySlot[slot])
}

// RoomLoad is the number of sessions already placed in the room.
func (g *Grid) RoomLoad(room domain.RoomID) int {
	return len(g.byRoom[room])
}

// RoomLoadExcludingTrack counts the room's bookings made by sessions
// outside the given track, the ranking metric for home-room
// selection.
func (g *Grid) RoomLoadExcludingTrack(room domain.RoomID, track string) int {
	load := 0
	for _, id := range g.byRoom[room] {
		s, err := g.project.Session(id)
		if err != nil {
			continue
		}
		if !s.HasTrack(track) {
			load++
		}
	}
	return load
}

// FreeSlotCount is the number of slots with no booking yet in the
// given room.
func (g *Grid) FreeSlotCount(room domain.RoomID) int {
	free := 0
	for _, slot := range g.project.Slots {
		if !g.RoomOccupied(room, slot.Name) {
			free++
		}
	}
	return free
}
