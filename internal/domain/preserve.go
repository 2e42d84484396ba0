package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type PreserveMode string

const (
	PreserveNone PreserveMode = "none"
	PreserveAll  PreserveMode = "all"
	PreserveList PreserveMode = "list"
)

// PreserveSet decides which pre-existing assignments survive
// normalization before scheduling begins.
type PreserveSet struct {
	Mode   PreserveMode
	IDs    []SessionID
	Except []SessionID
}

// ParsePreserve parses a preserve directive: "none", "all", or a
// comma-separated list of session ids.
func ParsePreserve(value string) (PreserveSet, error) {
	switch strings.TrimSpace(value) {
	case "", string(PreserveNone):
		return PreserveSet{Mode: PreserveNone}, nil
	case string(PreserveAll):
		return PreserveSet{Mode: PreserveAll}, nil
	}

	ids, err := ParseSessionIDs(value)
	if err != nil {
		return PreserveSet{}, fmt.Errorf("parse preserve directive: %w", err)
	}
	return PreserveSet{Mode: PreserveList, IDs: ids}, nil
}

// ParseSessionIDs parses a comma-separated id list.
func ParseSessionIDs(value string) ([]SessionID, error) {
	var ids []SessionID
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid session id %q", part)
		}
		ids = append(ids, SessionID(n))
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty session id list %q", value)
	}
	return ids, nil
}

func (p PreserveSet) Validate() error {
	if len(p.Except) > 0 && p.Mode != PreserveAll {
		return fmt.Errorf("except list is only valid with preserve=all")
	}
	return nil
}

// Keep reports whether the session's existing assignment survives
// normalization.
func (p PreserveSet) Keep(s Session) bool {
	switch p.Mode {
	case PreserveAll:
		for _, id := range p.Except {
			if id == s.ID {
				return false
			}
		}
		return s.Room != nil || s.Slot != nil
	case PreserveList:
		for _, id := range p.IDs {
			if id == s.ID {
				return true
			}
		}
	}
	return false
}

// Normalize applies the preserve directive to every session: clears
// non-preserved assignments, rewrites unknown capacities, dedupes
// track labels. Preserved assignments are never touched.
func (p PreserveSet) Normalize(project Project, defaultCapacity int) {
	for _, s := range project.Sessions {
		s.NormalizeTracks()
		s.NormalizeCapacity(defaultCapacity)
		if !p.Keep(*s) {
			s.ClearAssignment()
		}
	}
}
