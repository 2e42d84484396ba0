package schedule

import (
	"sort"

	"go.uber.org/zap"

	"github.com/confsched/slotgrid/internal/domain"
)

// Engine performs the room/slot search for a single session under a
// single relaxation level. It operates on the shared grid and commits
// at most one placement per call.
type Engine struct {
	grid   *Grid
	logger *zap.Logger
}

func NewEngine(grid *Grid, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{grid: grid, logger: logger}
}

// PlaceSession searches candidate (room, slot) pairs for the session
// under the given level and commits the first usable pair. It returns
// false when no pair passes the enforced predicates; the orchestrator
// then relaxes the level and retries.
func (e *Engine) PlaceSession(s *domain.Session, level Level, homeRoom *domain.Room) bool {
	useHome := level.UseHomeRoom && homeRoom != nil && s.Room == nil

	for _, room := range e.candidateRooms(s, level, homeRoom) {
		slot, ok := e.findSlot(s, level, room, useHome)
		if !ok {
			continue
		}

		e.grid.Place(s, room.Name, slot)
		e.logger.Debug("session placed",
			zap.Int("session", int(s.ID)),
			zap.String("room", string(room.Name)),
			zap.String("slot", string(slot)),
			zap.String("level", level.Name),
		)
		return true
	}

	return false
}

// candidateRooms builds the ordered room list: a preserved room
// alone, else the home room alone while the home-room restriction is
// in effect, else capacity-adequate rooms smallest-first so larger
// rooms stay free. Under-capacity rooms join the tail (largest first)
// only once the capacity constraint has been dropped.
func (e *Engine) candidateRooms(s *domain.Session, level Level, homeRoom *domain.Room) []domain.Room {
	if s.Room != nil {
		if room, err := e.grid.project.Room(*s.Room); err == nil {
			return []domain.Room{room}
		}
		return nil
	}

	if level.UseHomeRoom && homeRoom != nil {
		return []domain.Room{*homeRoom}
	}

	var adequate, tight []domain.Room
	for _, room := range e.grid.project.Rooms {
		if capacityOK(room, s) {
			adequate = append(adequate, room)
		} else {
			tight = append(tight, room)
		}
	}

	sort.SliceStable(adequate, func(i, j int) bool {
		if adequate[i].Capacity != adequate[j].Capacity {
			return adequate[i].Capacity < adequate[j].Capacity
		}
		return adequate[i].Position < adequate[j].Position
	})

	if level.CheckCapacity {
		return adequate
	}

	sort.SliceStable(tight, func(i, j int) bool {
		if tight[i].Capacity != tight[j].Capacity {
			return tight[i].Capacity > tight[j].Capacity
		}
		return tight[i].Position < tight[j].Position
	})

	return append(adequate, tight...)
}

// findSlot returns the first usable slot for the session in the given
// room. A preserved slot is the sole candidate; otherwise free slots
// are tried least-loaded first, falling back to ordinal position as
// the tie break. Under a home room natural order applies instead, so
// a track's sessions land back-to-back rather than scattered.
func (e *Engine) findSlot(s *domain.Session, level Level, room domain.Room, useHome bool) (domain.SlotID, bool) {
	if s.Slot != nil {
		slot, err := e.grid.project.Slot(*s.Slot)
		if err != nil {
			return "", false
		}
		if e.grid.RoomOccupied(room.Name, slot.Name) {
			return "", false
		}
		if !slotUsable(level, s, slot, e.grid) {
			return "", false
		}
		return slot.Name, true
	}

	var free []domain.Slot
	for _, slot := range e.grid.project.Slots {
		if !e.grid.RoomOccupied(room.Name, slot.Name) {
			free = append(free, slot)
		}
	}

	if !useHome {
		sort.SliceStable(free, func(i, j int) bool {
			loadI := e.grid.SlotLoad(free[i].Name)
			loadJ := e.grid.SlotLoad(free[j].Name)
			if loadI != loadJ {
				return loadI < loadJ
			}
			return free[i].Position < free[j].Position
		})
	}

	for _, slot := range free {
		if slotUsable(level, s, slot, e.grid) {
			return slot.Name, true
		}
	}

	return "", false
}
