package schedule

// Level is one relaxation level: the subset of constraints enforced
// during a single room/slot search attempt. Chair conflicts are
// checked at every level and never appear here.
type Level struct {
	Name string

	StrictDuration bool
	CheckDuration  bool
	UseHomeRoom    bool
	CheckCapacity  bool
	CheckTrack     bool
	CheckSession   bool
}

// Ladder returns the fixed relaxation order. The orchestrator tries
// each level in sequence, retrying the full room/slot search after
// every step, and gives up only once the ladder is exhausted.
func Ladder() []Level {
	return []Level{
		{
			Name:           "strict",
			StrictDuration: true,
			CheckDuration:  true,
			UseHomeRoom:    true,
			CheckCapacity:  true,
			CheckTrack:     true,
			CheckSession:   true,
		},
		{
			Name:          "loose-duration",
			CheckDuration: true,
			UseHomeRoom:   true,
			CheckCapacity: true,
			CheckTrack:    true,
			CheckSession:  true,
		},
		{
			Name:          "no-home-room",
			CheckDuration: true,
			CheckCapacity: true,
			CheckTrack:    true,
			CheckSession:  true,
		},
		{
			Name:          "no-duration",
			CheckCapacity: true,
			CheckTrack:    true,
			CheckSession:  true,
		},
		{
			Name:         "no-capacity",
			CheckTrack:   true,
			CheckSession: true,
		},
		{
			Name:       "track-conflicts-only",
			CheckTrack: true,
		},
		{
			Name:         "session-conflicts-only",
			CheckSession: true,
		},
		{
			Name: "chair-conflicts-only",
		},
	}
}
