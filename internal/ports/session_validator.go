package ports

import "github.com/confsched/slotgrid/internal/domain"

// SessionValidator checks a session's own well-formedness against the
// broader dataset, ahead of scheduling. Findings typed as chair
// conflicts or scheduling problems never block a session, since those
// are exactly what the engine resolves.
type SessionValidator interface {
	Validate(id domain.SessionID, project domain.Project) []domain.Finding
}
