package schedule

import (
	"sort"

	"github.com/confsched/slotgrid/internal/domain"
)

// SelectHomeRoom picks the preferred room for a non-empty track: the
// room most likely to host every session of the track, so tracks stay
// in a single room when possible. Cohesion is a soft preference; the
// selector returns nil only for the main pool, an empty track, or a
// project with no rooms at all.
func SelectHomeRoom(track string, grid *Grid, project *domain.Project) *domain.Room {
	if track == domain.MainTrack {
		return nil
	}

	sessions := project.TrackSessions(track)
	if len(sessions) == 0 {
		return nil
	}

	maxCapacity := 0
	remaining := 0
	requested := make(map[domain.RoomID]bool)
	for _, s := range sessions {
		if s.Capacity > maxCapacity {
			maxCapacity = s.Capacity
		}
		if !s.Placed() {
			remaining++
		}
		if s.Room != nil {
			requested[*s.Room] = true
		}
	}

	ranked := rankRooms(project.Rooms, grid, track, requested)
	if len(ranked) == 0 {
		return nil
	}

	for _, room := range ranked {
		if room.Capacity >= maxCapacity && grid.FreeSlotCount(room.Name) >= remaining {
			return &room
		}
	}
	for _, room := range ranked {
		if room.Capacity >= maxCapacity {
			return &room
		}
	}
	for _, room := range ranked {
		if grid.FreeSlotCount(room.Name) >= remaining {
			return &room
		}
	}

	first := ranked[0]
	return &first
}

// rankRooms orders rooms by current load excluding the track's own
// prior placements, ascending, with rooms a track session already
// requested ranked ahead of the rest. Position breaks ties so the
// ranking is deterministic.
func rankRooms(rooms []domain.Room, grid *Grid, track string, requested map[domain.RoomID]bool) []domain.Room {
	ranked := make([]domain.Room, len(rooms))
	copy(ranked, rooms)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if requested[a.Name] != requested[b.Name] {
			return requested[a.Name]
		}
		loadA := grid.RoomLoadExcludingTrack(a.Name, track)
		loadB := grid.RoomLoadExcludingTrack(b.Name, track)
		if loadA != loadB {
			return loadA < loadB
		}
		return a.Position < b.Position
	})

	return ranked
}
