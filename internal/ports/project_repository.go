package ports

import (
	"context"

	"github.com/confsched/slotgrid/internal/domain"
)

// ProjectRepository is the external project data provider: session,
// room, and slot records live there and assignments are pushed back
// through it during the apply phase.
type ProjectRepository interface {
	Load(ctx context.Context) (domain.Project, error)
	Save(ctx context.Context, project domain.Project) error
	AssignSession(ctx context.Context, id domain.SessionID, room *domain.RoomID, slot *domain.SlotID) error
}
