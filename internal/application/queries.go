package application

import (
	"context"
	"fmt"

	"github.com/confsched/slotgrid/internal/domain"
)

// LoadProject returns the current project data without scheduling,
// for read-only views.
func (s *Service) LoadProject(ctx context.Context) (domain.Project, error) {
	project, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Project{}, fmt.Errorf("load project data: %w", err)
	}
	return project, nil
}
