package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventBulletFired EventKind = iota
	EventRockDestroyed
	EventRockSplit
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventBulletFired:
		return "bullet_fired"
	case EventRockDestroyed:
		return "rock_destroyed"
	case EventRockSplit:
		return "rock_split"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by the Session for the presentation layer.
type Event struct {
	Kind     EventKind
	Pos      core.Vector
	Points   int // Score awarded (EventRockDestroyed)
	Children int // Rocks spawned (EventRockSplit)
}

// FrameResult is returned after each display refresh callback.
type FrameResult struct {
	State  core.GameState
	Ticked bool    // False when the frame was gated
	Events []Event // Events raised during this frame
}

// Continue reports whether the caller should request another frame.
func (r FrameResult) Continue() bool {
	return !r.State.GameOver
}
