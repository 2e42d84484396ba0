package schedule

import "github.com/confsched/slotgrid/internal/domain"

// Result is the outcome for one session, including the relaxation
// trail: the name of every level tried, in order. When the session
// was placed, the last entry names the level that succeeded.
type Result struct {
	SessionID domain.SessionID
	Title     string
	Placed    bool
	Preserved bool
	Room      *domain.RoomID
	Slot      *domain.SlotID
	Steps     []string
}

// Relaxed reports whether any constraint was relaxed to place the
// session.
func (r Result) Relaxed() bool {
	return len(r.Steps) > 1
}

// Report is the full outcome of one scheduling run.
type Report struct {
	Seed    string
	Results []Result
}

// Unscheduled returns the results for sessions that exhausted every
// relaxation level without a placement.
func (rep Report) Unscheduled() []Result {
	var out []Result
	for _, r := range rep.Results {
		if !r.Placed {
			out = append(out, r)
		}
	}
	return out
}

func (rep Report) PlacedCount() int {
	n := 0
	for _, r := range rep.Results {
		if r.Placed {
			n++
		}
	}
	return n
}

// Result looks up the outcome for a session id.
func (rep Report) Result(id domain.SessionID) (Result, bool) {
	for _, r := range rep.Results {
		if r.SessionID == id {
			return r, true
		}
	}
	return Result{}, false
}
