package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confsched/slotgrid/internal/domain"
)

func numberedSessions(n int) []*domain.Session {
	sessions := make([]*domain.Session, n)
	for i := range sessions {
		sessions[i] = &domain.Session{ID: domain.SessionID(i + 1)}
	}
	return sessions
}

func orderOf(sessions []*domain.Session) []domain.SessionID {
	ids := make([]domain.SessionID, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids
}

func TestShuffleSameSeedSameOrder(t *testing.T) {
	a := numberedSessions(20)
	b := numberedSessions(20)

	Shuffle(a, "abcde")
	Shuffle(b, "abcde")

	assert.Equal(t, orderOf(a), orderOf(b))
}

func TestShuffleDifferentSeedsDiffer(t *testing.T) {
	a := numberedSessions(20)
	b := numberedSessions(20)

	Shuffle(a, "abcde")
	Shuffle(b, "vwxyz")

	assert.NotEqual(t, orderOf(a), orderOf(b))
}

func TestShuffleIsAPermutation(t *testing.T) {
	sessions := numberedSessions(15)
	Shuffle(sessions, "seed1")

	seen := make(map[domain.SessionID]bool)
	for _, s := range sessions {
		seen[s.ID] = true
	}
	require.Len(t, seen, 15)
}

func TestNewSeedUsesFixedAlphabet(t *testing.T) {
	seed := NewSeed()
	require.Len(t, seed, seedLength)
	for _, r := range seed {
		assert.True(t, strings.ContainsRune(seedAlphabet, r), "unexpected seed char %q", r)
	}
}
