package world

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// NewRNG returns the generator for one generation stage. Each stage draws
// from its own stream so extra draws in one stage never shift another.
func NewRNG(seed int64, stage string) *rand.Rand {
	// Generation must replay exactly from the seed.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, stage+":a"), seedWord(seed, stage+":b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
