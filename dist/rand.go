package dist

import (
	"math/rand"
	"sync"
	"time"
)

// lockedRand wraps a *rand.Rand with a mutex so it can be shared safely
// across the goroutines a parallel tournament dispatches matches onto —
// the same guard-the-shared-resource discipline the teacher applies to
// its worker pools (simulation/parallel.go) and pooled state
// (engine/types.go's sync.Pool).
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

var defaultSource = &lockedRand{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}

// Intn draws a non-negative pseudo-random int in [0,n) from the
// process-wide default source.
func Intn(n int) int { return defaultSource.Intn(n) }

// Float64 draws a pseudo-random float64 in [0,1) from the process-wide
// default source.
func Float64() float64 { return defaultSource.Float64() }
