package asteroids

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const eps = 1e-9

// fakeClock is a manually advanced wall clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestSession returns a session on an 800x600 world.
func newTestSession(t *testing.T, seed int64) (*Session, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	s := New(config.DefaultAsteroidsConfig(), clock.Now)
	rt := core.DefaultConfig()
	rt.Seed = seed
	s.Reset(rt)
	return s, clock
}

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b core.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
