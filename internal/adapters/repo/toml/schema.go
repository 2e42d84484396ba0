package toml

import (
	"fmt"
	"time"

	"github.com/confsched/slotgrid/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
	Rooms    []roomSchema    `toml:"rooms"`
	Slots    []slotSchema    `toml:"slots"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported project schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ID            int           `toml:"id"`
	Title         string        `toml:"title"`
	Tracks        []string      `toml:"tracks,omitempty"`
	Duration      int           `toml:"duration"`
	Capacity      int           `toml:"capacity,omitempty"`
	Chairs        []chairSchema `toml:"chairs,omitempty"`
	ConflictsWith []int         `toml:"conflicts_with,omitempty"`
	Room          string        `toml:"room,omitempty"`
	Slot          string        `toml:"slot,omitempty"`
}

type chairSchema struct {
	Login string `toml:"login,omitempty"`
	Name  string `toml:"name,omitempty"`
}

type roomSchema struct {
	Name     string `toml:"name"`
	Capacity int    `toml:"capacity"`
	Position int    `toml:"position"`
}

type slotSchema struct {
	Name     string    `toml:"name"`
	Start    time.Time `toml:"start"`
	End      time.Time `toml:"end"`
	Duration int       `toml:"duration"`
	Position int       `toml:"position"`
}

func toSessionSchema(s domain.Session) sessionSchema {
	out := sessionSchema{
		ID:       int(s.ID),
		Title:    s.Title,
		Tracks:   s.Tracks,
		Duration: s.Duration,
		Capacity: s.Capacity,
	}
	for _, c := range s.Chairs {
		out.Chairs = append(out.Chairs, chairSchema{Login: c.Login, Name: c.Name})
	}
	for _, id := range s.ConflictsWith {
		out.ConflictsWith = append(out.ConflictsWith, int(id))
	}
	if s.Room != nil {
		out.Room = string(*s.Room)
	}
	if s.Slot != nil {
		out.Slot = string(*s.Slot)
	}
	return out
}

func fromSessionSchema(entry sessionSchema) *domain.Session {
	s := &domain.Session{
		ID:       domain.SessionID(entry.ID),
		Title:    entry.Title,
		Tracks:   entry.Tracks,
		Duration: entry.Duration,
		Capacity: entry.Capacity,
	}
	for _, c := range entry.Chairs {
		s.Chairs = append(s.Chairs, domain.Chair{Login: c.Login, Name: c.Name})
	}
	for _, id := range entry.ConflictsWith {
		s.ConflictsWith = append(s.ConflictsWith, domain.SessionID(id))
	}
	if entry.Room != "" {
		room := domain.RoomID(entry.Room)
		s.Room = &room
	}
	if entry.Slot != "" {
		slot := domain.SlotID(entry.Slot)
		s.Slot = &slot
	}
	return s
}

func toSchema(project domain.Project) fileSchema {
	file := fileSchema{Version: currentSchemaVersion}
	for _, s := range project.Sessions {
		file.Sessions = append(file.Sessions, toSessionSchema(*s))
	}
	for _, r := range project.Rooms {
		file.Rooms = append(file.Rooms, roomSchema{Name: string(r.Name), Capacity: r.Capacity, Position: r.Position})
	}
	for _, s := range project.Slots {
		file.Slots = append(file.Slots, slotSchema{
			Name:     string(s.Name),
			Start:    s.Start,
			End:      s.End,
			Duration: s.Duration,
			Position: s.Position,
		})
	}
	return file
}

func fromSchema(file fileSchema) domain.Project {
	project := domain.Project{}
	for _, entry := range file.Sessions {
		project.Sessions = append(project.Sessions, fromSessionSchema(entry))
	}
	for _, entry := range file.Rooms {
		project.Rooms = append(project.Rooms, domain.Room{
			Name:     domain.RoomID(entry.Name),
			Capacity: entry.Capacity,
			Position: entry.Position,
		})
	}
	for _, entry := range file.Slots {
		project.Slots = append(project.Slots, domain.Slot{
			Name:     domain.SlotID(entry.Name),
			Start:    entry.Start,
			End:      entry.End,
			Duration: entry.Duration,
			Position: entry.Position,
		})
	}
	return project
}
