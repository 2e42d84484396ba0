package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/confsched/slotgrid/internal/domain"
	"github.com/confsched/slotgrid/internal/ports"
	"github.com/confsched/slotgrid/internal/schedule"
)

const DefaultCapacity = 25

type Service struct {
	repo      ports.ProjectRepository
	validator ports.SessionValidator
	logger    *zap.Logger
}

func NewService(repo ports.ProjectRepository, validator ports.SessionValidator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, validator: validator, logger: logger}
}

type RunOptions struct {
	Preserve        domain.PreserveSet
	Seed            string
	DefaultCapacity int
}

// SkippedSession is a session excluded from scheduling by the
// validation pre-filter.
type SkippedSession struct {
	SessionID domain.SessionID
	Findings  []domain.Finding
}

type RunResult struct {
	Project domain.Project
	Report  schedule.Report
	Skipped []SkippedSession
}

// Run executes one full scheduling pass: load, normalize under the
// preserve directive, pre-filter through the validator, shuffle, and
// assign. A load failure is fatal; individual unschedulable sessions
// are not.
func (s *Service) Run(ctx context.Context, opts RunOptions) (RunResult, error) {
	if err := opts.Preserve.Validate(); err != nil {
		return RunResult{}, err
	}

	project, err := s.repo.Load(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("load project data: %w", err)
	}

	defaultCapacity := opts.DefaultCapacity
	if defaultCapacity <= 0 {
		defaultCapacity = DefaultCapacity
	}
	opts.Preserve.Normalize(project, defaultCapacity)

	eligible, skipped := s.prefilter(project)

	pool := domain.Project{
		Sessions: eligible,
		Rooms:    project.Rooms,
		Slots:    project.Slots,
	}

	report := schedule.NewOrchestrator(s.logger).Run(&pool, schedule.Options{Seed: opts.Seed})

	return RunResult{Project: project, Report: report, Skipped: skipped}, nil
}

// prefilter drops sessions carrying blocking validation findings.
// Chair-conflict and scheduling findings never block; the engine
// resolves those itself.
func (s *Service) prefilter(project domain.Project) ([]*domain.Session, []SkippedSession) {
	var eligible []*domain.Session
	var skipped []SkippedSession

	for _, session := range project.Sessions {
		findings := []domain.Finding(nil)
		if s.validator != nil {
			findings = s.validator.Validate(session.ID, project)
		}

		blocking := false
		for _, f := range findings {
			if f.Blocking() {
				blocking = true
			}
		}

		if blocking {
			s.logger.Warn("session excluded by validation",
				zap.Int("session", int(session.ID)),
				zap.String("title", session.Title),
			)
			skipped = append(skipped, SkippedSession{SessionID: session.ID, Findings: findings})
			continue
		}
		eligible = append(eligible, session)
	}

	return eligible, skipped
}

type ApplyFailure struct {
	SessionID domain.SessionID
	Err       error
}

type ApplyResult struct {
	Applied  int
	Failures []ApplyFailure
}

// Apply pushes every modified session's assignment back to the
// external provider. Each write is independent: a failure is recorded
// and surfaced without undoing prior writes or stopping later ones.
func (s *Service) Apply(ctx context.Context, project domain.Project) (ApplyResult, error) {
	result := ApplyResult{}

	for _, session := range project.Sessions {
		if !session.Modified {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := s.repo.AssignSession(ctx, session.ID, session.Room, session.Slot); err != nil {
			s.logger.Warn("apply assignment failed",
				zap.Int("session", int(session.ID)),
				zap.Error(err),
			)
			result.Failures = append(result.Failures, ApplyFailure{SessionID: session.ID, Err: err})
			continue
		}
		result.Applied++
	}

	return result, nil
}
