package schedule

import "github.com/confsched/slotgrid/internal/domain"

// The predicates below decide whether placing a session into a
// candidate slot collides with sessions already occupying that slot
// in other rooms. All of them are pure over the grid snapshot.

// trackConflict reports whether any occupant shares a track label
// with the session.
func trackConflict(s *domain.Session, occupants []*domain.Session) bool {
	for _, o := range occupants {
		if s.SharesTrack(*o) {
			return true
		}
	}
	return false
}

// chairConflict reports whether any occupant shares a chair identity
// with the session. This is the one conflict that is never relaxed.
func chairConflict(s *domain.Session, occupants []*domain.Session) bool {
	for _, o := range occupants {
		if s.SharesChair(*o) {
			return true
		}
	}
	return false
}

// sessionConflict reports whether the session and any occupant
// declare each other as conflicting. Declarations are directional in
// the data but symmetric in effect.
func sessionConflict(s *domain.Session, occupants []*domain.Session) bool {
	for _, o := range occupants {
		if s.ConflictsDeclared(o.ID) || o.ConflictsDeclared(s.ID) {
			return true
		}
	}
	return false
}

// durationOK checks the slot length against the session's preference
// under the level's duration rules.
func durationOK(level Level, slot domain.Slot, s *domain.Session) bool {
	if !level.CheckDuration {
		return true
	}
	if level.StrictDuration {
		return slot.Duration == s.Duration
	}
	return slot.Duration >= s.Duration
}

// capacityOK checks the room against the session's normalized
// capacity preference.
func capacityOK(room domain.Room, s *domain.Session) bool {
	return room.Capacity >= s.Capacity
}

// slotUsable reports whether the session can take the slot under the
// currently enforced predicates. Room occupancy and capacity are
// handled by the engine's candidate construction; this covers the
// cross-room slot conflicts and the duration rule.
func slotUsable(level Level, s *domain.Session, slot domain.Slot, grid *Grid) bool {
	if !durationOK(level, slot, s) {
		return false
	}

	occupants := grid.SlotOccupants(slot.Name, s.ID)
	if chairConflict(s, occupants) {
		return false
	}
	if level.CheckTrack && trackConflict(s, occupants) {
		return false
	}
	if level.CheckSession && sessionConflict(s, occupants) {
		return false
	}
	return true
}
