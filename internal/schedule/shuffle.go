package schedule

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	mathrand "math/rand/v2"

	"github.com/confsched/slotgrid/internal/domain"
)

const seedAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const seedLength = 5

// NewSeed generates a short random seed from a small fixed alphabet.
// It is reported back to the caller so the run can be reproduced.
func NewSeed() string {
	buf := make([]byte, seedLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back
		// to a constant seed rather than panic mid-run.
		return "aaaaa"
	}
	for i, b := range buf {
		buf[i] = seedAlphabet[int(b)%len(seedAlphabet)]
	}
	return string(buf)
}

// Shuffle permutes sessions in place using a generator seeded only by
// the seed string, so the same seed yields the same order across runs
// and platforms. This removes any bias tied to submission order.
func Shuffle(sessions []*domain.Session, seed string) {
	sum := sha256.Sum256([]byte(seed))
	rng := mathrand.New(mathrand.NewPCG(
		binary.LittleEndian.Uint64(sum[0:8]),
		binary.LittleEndian.Uint64(sum[8:16]),
	))

	for i := len(sessions) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
}
