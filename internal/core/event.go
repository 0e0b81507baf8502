package core

// EventKind identifies what happened during a simulation tick.
type EventKind int

const (
	EventWallHit      EventKind = iota // Ball reflected off the left, right or top wall
	EventPaddleHit                     // Ball deflected by the paddle
	EventBrickHit                      // Ball hit a brick (Points and Color are set)
	EventLifeLost                      // Ball fell past the bottom edge
	EventLevelCleared                  // Last visible brick destroyed
	EventGameOver                      // Last life lost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallHit:
		return "wall-hit"
	case EventPaddleHit:
		return "paddle-hit"
	case EventBrickHit:
		return "brick-hit"
	case EventLifeLost:
		return "life-lost"
	case EventLevelCleared:
		return "level-cleared"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is a discrete simulation outcome for the presentation layer.
// The simulation reports what happened; sound and particles are up to the consumer.
type Event struct {
	Kind   EventKind
	X, Y   float64 // Ball position when the event fired
	Points int     // Score value (brick hits)
	Color  Color   // Brick colour (brick hits)
}

// CountEvents returns how many events of the given kind are in events.
func CountEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
