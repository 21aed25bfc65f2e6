package generator

import "time"

// Clue count bounds. 17 is the proven minimum for a uniquely solvable 9x9
// puzzle; 80 leaves a single empty cell.
const (
	MinClueCount     = 17
	MaxClueCount     = 80
	DefaultClueCount = 32
)

// Options configures puzzle generation.
type Options struct {
	ClueCount    int           // target number of givens left in the puzzle
	Seed         int64         // rng seed for reproducible puzzles (0 = time-based)
	EnsureUnique bool          // verify a single solution while digging
	Timeout      time.Duration // wall-clock budget for the whole generation
}

// DefaultOptions returns standard generator options for the given clue count,
// clamped to the valid range.
func DefaultOptions(clueCount int) *Options {
	return &Options{
		ClueCount:    min(max(clueCount, MinClueCount), MaxClueCount),
		Seed:         0,
		EnsureUnique: true,
		Timeout:      10 * time.Second,
	}
}
