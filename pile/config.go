package pile

import (
	"fmt"

	"pile-lite/rng"
)

// Source is the randomness a shuffle draws from. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type Config struct {
	Shuffle ShuffleMode

	// RNG seed (0 => time-based). Ignored when Source is set.
	Seed int64

	// Optional: caller-owned randomness, e.g. a shared table RNG.
	Source Source
}

func (c Config) validate() error {
	if !c.Shuffle.valid() {
		return fmt.Errorf("invalid shuffle mode %d", c.Shuffle)
	}
	return nil
}

func (c Config) source() Source {
	if c.Source != nil {
		return c.Source
	}
	return rng.New(c.Seed)
}
