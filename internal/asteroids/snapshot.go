package asteroids

import (
	"math"
	"time"
)

// Snapshot contains the complete game state for determinism checks and
// headless reporting. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Score     int
	GameOver  bool
	PrevFrame time.Duration

	ShipX, ShipY       float64
	ShipVX, ShipVY     float64
	HeadingX, HeadingY float64
	ShipAcceleration   float64
	ShipTurning        int
	NextBulletUnixNano int64

	// Each rock is 10 floats: X, Y, DirX, DirY, RotX, RotY, Scale, Shape,
	// Speed, Hit (0 or 1)
	RockCount int
	RockData  []float64

	// Each bullet is 6 floats: X, Y, VX, VY, Deadline (unix nanoseconds),
	// Expired (0 or 1)
	BulletCount int
	BulletData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	rockData := make([]float64, 0, len(s.rocks)*10)
	for _, r := range s.rocks {
		rockData = append(rockData,
			r.Pos.X, r.Pos.Y, r.Dir.X, r.Dir.Y,
			r.Rotation.X, r.Rotation.Y, r.Scale, float64(r.Shape),
			r.Speed, flag(r.Hit))
	}

	bulletData := make([]float64, 0, len(s.bullets)*6)
	for _, b := range s.bullets {
		bulletData = append(bulletData,
			b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, float64(b.Deadline.UnixNano()),
			flag(b.markedForDeletion))
	}

	snap := Snapshot{
		Tick:      s.tick,
		Score:     s.score,
		GameOver:  s.gameOver,
		PrevFrame: s.prevFrame,

		RockCount:   len(s.rocks),
		RockData:    rockData,
		BulletCount: len(s.bullets),
		BulletData:  bulletData,
	}
	if !s.nextBulletAt.IsZero() {
		snap.NextBulletUnixNano = s.nextBulletAt.UnixNano()
	}
	if sh := s.ship; sh != nil {
		snap.ShipX, snap.ShipY = sh.Pos.X, sh.Pos.Y
		snap.ShipVX, snap.ShipVY = sh.Vel.X, sh.Vel.Y
		snap.HeadingX, snap.HeadingY = sh.Heading.X, sh.Heading.Y
		snap.ShipAcceleration = sh.Acceleration
		snap.ShipTurning = int(sh.Turning)
	}
	return snap
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PrevFrame)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextBulletUnixNano) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, v := range []float64{
		snap.ShipX, snap.ShipY, snap.ShipVX, snap.ShipVY,
		snap.HeadingX, snap.HeadingY, snap.ShipAcceleration,
	} {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(snap.ShipTurning) //#nosec G115 -- hash computation

	h = h*31 + uint64(snap.RockCount) //#nosec G115 -- hash computation
	for _, v := range snap.RockData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.BulletCount) //#nosec G115 -- hash computation
	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
