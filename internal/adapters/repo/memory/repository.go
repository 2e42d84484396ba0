// Package memory provides an in-memory project provider, used by
// tests and by callers that already hold the project data.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/confsched/slotgrid/internal/domain"
	"github.com/confsched/slotgrid/internal/ports"
)

type Repository struct {
	mu      sync.RWMutex
	project domain.Project
	loaded  bool
}

var _ ports.ProjectRepository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{}
}

// Seed replaces the stored project wholesale.
func (r *Repository) Seed(project domain.Project) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.project = cloneProject(project)
	r.loaded = true
}

func (r *Repository) Load(ctx context.Context) (domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return domain.Project{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.loaded {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return cloneProject(r.project), nil
}

func (r *Repository) Save(ctx context.Context, project domain.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.project = cloneProject(project)
	r.loaded = true
	return nil
}

func (r *Repository) AssignSession(ctx context.Context, id domain.SessionID, room *domain.RoomID, slot *domain.SlotID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.project.Sessions {
		if s.ID != id {
			continue
		}
		s.Room = nil
		s.Slot = nil
		if room != nil {
			value := *room
			s.Room = &value
		}
		if slot != nil {
			value := *slot
			s.Slot = &value
		}
		return nil
	}

	return fmt.Errorf("%w: %d", domain.ErrSessionNotFound, id)
}

func cloneProject(project domain.Project) domain.Project {
	out := domain.Project{
		Rooms: append([]domain.Room(nil), project.Rooms...),
		Slots: append([]domain.Slot(nil), project.Slots...),
	}
	for _, s := range project.Sessions {
		copied := *s
		copied.Tracks = append([]string(nil), s.Tracks...)
		copied.Chairs = append([]domain.Chair(nil), s.Chairs...)
		copied.ConflictsWith = append([]domain.SessionID(nil), s.ConflictsWith...)
		if s.Room != nil {
			room := *s.Room
			copied.Room = &room
		}
		if s.Slot != nil {
			slot := *s.Slot
			copied.Slot = &slot
		}
		out.Sessions = append(out.Sessions, &copied)
	}
	return out
}
