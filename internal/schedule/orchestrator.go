package schedule

import (
	"sort"

	"go.uber.org/zap"

	"github.com/confsched/slotgrid/internal/domain"
)

// Options configures one scheduling run.
type Options struct {
	// Seed drives the deterministic shuffle. Empty means generate one;
	// the generated seed is echoed in the report.
	Seed string
}

// Orchestrator drives the full assignment pass: it owns the grid for
// the duration of one run and feeds sessions to the engine track by
// track, with a fresh relaxation context per session.
type Orchestrator struct {
	logger *zap.Logger
}

func NewOrchestrator(logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{logger: logger}
}

// Run assigns as many sessions as possible. Named tracks are visited
// first in lexical order so track cohesion claims rooms before the
// unconstrained main pool; within a track, sessions are pulled in the
// shuffled global order. A session belonging to several tracks is
// processed by whichever track claims it first.
func (o *Orchestrator) Run(project *domain.Project, opts Options) Report {
	seed := opts.Seed
	if seed == "" {
		seed = NewSeed()
	}

	order := make([]*domain.Session, len(project.Sessions))
	copy(order, project.Sessions)
	Shuffle(order, seed)

	grid := NewGrid(project)
	engine := NewEngine(grid, o.logger)

	tracks := project.TrackLabels()
	sort.Strings(tracks)
	tracks = append(tracks, domain.MainTrack)

	report := Report{Seed: seed}
	processed := make(map[domain.SessionID]bool, len(order))

	for _, track := range tracks {
		homeRoom := SelectHomeRoom(track, grid, project)
		if homeRoom != nil {
			o.logger.Debug("home room selected",
				zap.String("track", track),
				zap.String("room", string(homeRoom.Name)),
			)
		}

		for _, s := range order {
			if processed[s.ID] || !s.HasTrack(track) {
				continue
			}
			processed[s.ID] = true

			report.Results = append(report.Results, o.placeOne(engine, s, homeRoom))
		}
	}

	return report
}

// placeOne walks the relaxation ladder for a single session,
// retrying the full room/slot search after each step. Every step is
// recorded and logged so no constraint is relaxed silently.
func (o *Orchestrator) placeOne(engine *Engine, s *domain.Session, homeRoom *domain.Room) Result {
	result := Result{SessionID: s.ID, Title: s.Title}

	if s.Placed() {
		result.Placed = true
		result.Preserved = true
		result.Room = s.Room
		result.Slot = s.Slot
		return result
	}

	for i, level := range Ladder() {
		result.Steps = append(result.Steps, level.Name)
		if i > 0 {
			o.logger.Info("relaxing constraints",
				zap.Int("session", int(s.ID)),
				zap.String("title", s.Title),
				zap.String("level", level.Name),
			)
		}

		if engine.PlaceSession(s, level, homeRoom) {
			result.Placed = true
			result.Room = s.Room
			result.Slot = s.Slot
			return result
		}
	}

	o.logger.Warn("session could not be scheduled",
		zap.Int("session", int(s.ID)),
		zap.String("title", s.Title),
	)
	return result
}
