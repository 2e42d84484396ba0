package domain

import (
	"fmt"
	"strings"
)

type SessionID int

type RoomID string

type SlotID string

// MainTrack is the implicit pool for sessions with no track labels.
// It is always present and never gets a home room.
const MainTrack = ""

// Chair identifies a session chair. Login is the stable identity when
// present; Name is the display fallback.
type Chair struct {
	Login string
	Name  string
}

// Same reports whether two chairs are the same person, comparing by
// login when both have one, else by display name.
func (c Chair) Same(other Chair) bool {
	if c.Login != "" && other.Login != "" {
		return c.Login == other.Login
	}
	return c.Name == other.Name
}

func (c Chair) String() string {
	if c.Login != "" {
		return c.Login
	}
	return c.Name
}

type Session struct {
	ID            SessionID
	Title         string
	Tracks        []string
	Duration      int
	Capacity      int
	Chairs        []Chair
	ConflictsWith []SessionID

	Room *RoomID
	Slot *SlotID

	// Modified marks sessions whose assignment changed during this
	// run; only these are pushed back to the external provider.
	Modified bool
}

func (s Session) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("session id must be positive, got %d", s.ID)
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("session %d: title is required", s.ID)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("session %d: duration must be positive, got %d", s.ID, s.Duration)
	}
	return nil
}

// Placed reports whether the session has both a room and a slot.
func (s Session) Placed() bool {
	return s.Room != nil && s.Slot != nil
}

func (s Session) HasTrack(label string) bool {
	if label == MainTrack {
		return len(s.Tracks) == 0
	}
	for _, t := range s.Tracks {
		if t == label {
			return true
		}
	}
	return false
}

// ConflictsDeclared reports whether this session declares a conflict
// with the given id. Declared conflicts are directional in the data
// but symmetric in effect; callers check both directions.
func (s Session) ConflictsDeclared(id SessionID) bool {
	for _, c := range s.ConflictsWith {
		if c == id {
			return true
		}
	}
	return false
}

func (s Session) SharesChair(other Session) bool {
	for _, a := range s.Chairs {
		for _, b := range other.Chairs {
			if a.Same(b) {
				return true
			}
		}
	}
	return false
}

func (s Session) SharesTrack(other Session) bool {
	for _, a := range s.Tracks {
		for _, b := range other.Tracks {
			if a == b {
				return true
			}
		}
	}
	return false
}

// NormalizeTracks trims and deduplicates track labels, preserving
// first-seen order.
func (s *Session) NormalizeTracks() {
	if s == nil {
		return
	}

	tracks := make([]string, 0, len(s.Tracks))
	seen := make(map[string]struct{}, len(s.Tracks))
	for _, label := range s.Tracks {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		tracks = append(tracks, trimmed)
	}

	s.Tracks = tracks
}

// NormalizeCapacity rewrites an unknown (zero) capacity preference to
// the given default so it never silently matches any room.
func (s *Session) NormalizeCapacity(defaultCapacity int) {
	if s == nil {
		return
	}
	if s.Capacity == 0 {
		s.Capacity = defaultCapacity
	}
}

func (s *Session) AssignRoom(room RoomID) {
	if s.Room != nil && *s.Room == room {
		return
	}
	s.Room = &room
	s.Modified = true
}

func (s *Session) AssignSlot(slot SlotID) {
	if s.Slot != nil && *s.Slot == slot {
		return
	}
	s.Slot = &slot
	s.Modified = true
}

// ClearAssignment removes any room/slot assignment. The modified flag
// is set only when something was actually cleared.
func (s *Session) ClearAssignment() {
	if s.Room == nil && s.Slot == nil {
		return
	}
	s.Room = nil
	s.Slot = nil
	s.Modified = true
}
