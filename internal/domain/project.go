package domain

import (
	"fmt"
	"time"
)

type Room struct {
	Name     RoomID
	Capacity int
	Position int
}

func (r Room) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("room name is required")
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("room %s: capacity must be positive, got %d", r.Name, r.Capacity)
	}
	return nil
}

type Slot struct {
	Name     SlotID
	Start    time.Time
	End      time.Time
	Duration int
	Position int
}

func (s Slot) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("slot name is required")
	}
	if s.Duration <= 0 {
		return fmt.Errorf("slot %s: duration must be positive, got %d", s.Name, s.Duration)
	}
	return nil
}

// Project is one run's worth of scheduling data, loaded once from the
// external provider.
type Project struct {
	Sessions []*Session
	Rooms    []Room
	Slots    []Slot
}

func (p Project) Validate() error {
	seen := make(map[SessionID]struct{}, len(p.Sessions))
	for _, s := range p.Sessions {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("duplicate session id %d", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	for _, r := range p.Rooms {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	for _, s := range p.Slots {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p Project) Session(id SessionID) (*Session, error) {
	for _, s := range p.Sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrSessionNotFound, id)
}

func (p Project) Room(name RoomID) (Room, error) {
	for _, r := range p.Rooms {
		if r.Name == name {
			return r, nil
		}
	}
	return Room{}, fmt.Errorf("%w: %s", ErrRoomNotFound, name)
}

func (p Project) Slot(name SlotID) (Slot, error) {
	for _, s := range p.Slots {
		if s.Name == name {
			return s, nil
		}
	}
	return Slot{}, fmt.Errorf("%w: %s", ErrSlotNotFound, name)
}

// TrackLabels returns every distinct track label in first-seen order,
// never relying on map iteration order.
func (p Project) TrackLabels() []string {
	var labels []string
	seen := make(map[string]struct{})
	for _, s := range p.Sessions {
		for _, label := range s.Tracks {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}
	return labels
}

// TrackSessions returns the sessions belonging to the given track, in
// project order. The empty label selects the implicit main pool.
func (p Project) TrackSessions(label string) []*Session {
	var sessions []*Session
	for _, s := range p.Sessions {
		if s.HasTrack(label) {
			sessions = append(sessions, s)
		}
	}
	return sessions
}
