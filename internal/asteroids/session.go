package asteroids

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Clock returns the current wall-clock time. Bullet lifetimes and the fire
// gate are measured against it.
type Clock func() time.Time

// Session owns every entity of one game and drives the per-frame update.
// It is not safe for concurrent use; feed it input through a KeySet
// snapshot taken once per frame.
type Session struct {
	cfg   config.AsteroidsConfig
	clock Clock
	rng   *rand.Rand

	// World bounds used for wraparound
	width, height float64

	ship    *Ship
	rocks   []*Rock
	bullets []*Bullet
	spawned []*Rock // Split children waiting for the end-of-tick sweep

	keys         core.KeySet
	prevFrame    time.Duration // Timestamp of the last accepted frame
	nextBulletAt time.Time
	score        int
	gameOver     bool
	tick         uint64
	events       []Event
}

// New creates a session. A nil clock uses time.Now. Call Reset before the
// first frame.
func New(cfg config.AsteroidsConfig, clock Clock) *Session {
	if clock == nil {
		clock = time.Now
	}
	return &Session{cfg: cfg, clock: clock}
}

// MinWorldSize returns the smallest world in which the initial rock layout
// clears the centered ship. The nearest spawn point sits a quarter of the
// width away from the center, so that distance must exceed the widest rock
// plus the hull.
func MinWorldSize(cfg config.AsteroidsConfig) (w, h float64) {
	rock := 0.0
	for _, shape := range RockShapes {
		rock = math.Max(rock, extent(shape))
	}
	clearance := rock*cfg.Rocks.Scale + extent(Hull) + 1
	return math.Ceil(4 * clearance), math.Ceil(2 * clearance)
}

// extent is the distance from the local origin to the farthest vertex.
func extent(shape []core.Vector) float64 {
	r := 0.0
	for _, v := range shape {
		r = math.Max(r, v.Length())
	}
	return r
}

// Reset starts a fresh game: centered ship, initial rocks, empty score.
// World bounds come from the runtime config, falling back to the
// configured world size, and never go below MinWorldSize.
func (s *Session) Reset(runtime core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(runtime.Seed))

	w, h := runtime.WorldW, runtime.WorldH
	if w <= 0 || h <= 0 {
		w, h = s.cfg.World.Width, s.cfg.World.Height
	}
	s.setBounds(w, h)

	s.ship = NewShip(core.Vec(s.width/2, s.height/2), s.cfg.Ship)
	s.rocks = s.CreateRocks(s.cfg.Rocks.Count)
	s.bullets = nil
	s.spawned = nil

	s.keys = nil
	s.prevFrame = 0
	s.nextBulletAt = time.Time{}
	s.score = 0
	s.gameOver = false
	s.tick = 0
	s.events = nil
}

// Resize changes the world bounds without restarting. Entities outside the
// new bounds wrap on their next move. Bounds below MinWorldSize are raised
// to it.
func (s *Session) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.setBounds(w, h)
}

func (s *Session) setBounds(w, h float64) {
	minW, minH := MinWorldSize(s.cfg)
	s.width, s.height = math.Max(w, minW), math.Max(h, minH)
}

// Bounds returns the current world size.
func (s *Session) Bounds() (w, h float64) {
	return s.width, s.height
}

// Frame is the display refresh callback. timestamp is the time elapsed
// since the loop started. Frames closer than the minimum interval to the
// last accepted one are skipped without dropping time: the previous
// timestamp is kept so the shortfall carries into the next delta.
// Once the game is over, frames do nothing. Events raised since the last
// accepted frame, including shots fired directly through FireBullet, are
// returned by the next accepted frame.
func (s *Session) Frame(timestamp time.Duration, keys core.KeySet, c core.Canvas) FrameResult {
	if s.gameOver || timestamp-s.prevFrame <= s.cfg.Timing.MinFrameInterval() {
		return FrameResult{State: s.State()}
	}

	s.keys = keys
	s.tick++

	c.Clear()

	animate(s.ship, s, c)
	for _, r := range s.rocks {
		animate(r, s, c)
	}
	for _, b := range s.bullets {
		animate(b, s, c)
	}

	s.checkBulletHits()
	s.splitHitRocks()
	s.sweep()

	s.prevFrame = timestamp

	events := s.events
	s.events = nil
	return FrameResult{State: s.State(), Ticked: true, Events: events}
}

// FireBullet spawns a bullet at pos travelling along heading at the start
// speed plus the firer's velocity. Requests before the fire gate reopens or
// while the live bullet cap is reached are ignored. Returns whether a bullet
// was spawned.
func (s *Session) FireBullet(pos, heading, vel core.Vector) bool {
	now := s.clock()
	if now.Before(s.nextBulletAt) {
		return false
	}
	if len(s.bullets) >= s.cfg.Bullets.MaxLive {
		return false
	}
	s.nextBulletAt = now.Add(s.cfg.Bullets.FireInterval())

	s.bullets = append(s.bullets, &Bullet{
		Pos:      pos,
		Vel:      heading.Scale(s.cfg.Bullets.StartSpeed).Add(vel),
		Deadline: now.Add(s.cfg.Bullets.Lifetime()),
		radius:   s.cfg.Bullets.Radius,
	})
	s.emit(Event{Kind: EventBulletFired, Pos: pos})
	return true
}

// UpdateScore adds points to the score.
func (s *Session) UpdateScore(points int) {
	s.score += points
}

// GameOver ends the game. The current tick still completes.
func (s *Session) GameOver() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.emit(Event{Kind: EventGameOver, Pos: s.ship.Pos})
}

// State returns the score and game-over flag.
func (s *Session) State() core.GameState {
	return core.GameState{Score: s.score, GameOver: s.gameOver}
}

// checkBulletHits marks rocks struck by a live bullet. Each bullet hits at
// most one rock and each rock is scored once.
func (s *Session) checkBulletHits() {
	for _, b := range s.bullets {
		if b.markedForDeletion {
			continue
		}
		for _, r := range s.rocks {
			if r.Hit || !r.Contains(b.Pos) {
				continue
			}
			r.Hit = true
			b.markedForDeletion = true
			s.UpdateScore(s.cfg.Rocks.Points)
			s.emit(Event{Kind: EventRockDestroyed, Pos: r.Pos, Points: s.cfg.Rocks.Points})
			break
		}
	}
}

// splitHitRocks marks hit rocks for deletion and queues their children.
// The live rock list is not modified here.
func (s *Session) splitHitRocks() {
	for _, r := range s.rocks {
		if !r.Hit || r.markedForDeletion {
			continue
		}
		r.markedForDeletion = true
		children := s.split(r)
		if len(children) > 0 {
			s.spawned = append(s.spawned, children...)
			s.emit(Event{Kind: EventRockSplit, Pos: r.Pos, Children: len(children)})
		}
	}
}

// sweep drops entities marked for deletion and appends queued rocks.
func (s *Session) sweep() {
	bullets := s.bullets[:0]
	for _, b := range s.bullets {
		if !b.markedForDeletion {
			bullets = append(bullets, b)
		}
	}
	clear(s.bullets[len(bullets):])
	s.bullets = bullets

	rocks := make([]*Rock, 0, len(s.rocks)+len(s.spawned))
	for _, r := range s.rocks {
		if !r.markedForDeletion {
			rocks = append(rocks, r)
		}
	}
	s.rocks = append(rocks, s.spawned...)
	s.spawned = nil
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}
