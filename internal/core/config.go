package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in cells
	ScreenH   int   // Screen height in cells
	TickRate  int   // Simulation ticks per second
	Seed      int64 // RNG seed; 0 lets the platform pick one from the clock
	HighScore int   // Best stored score, shown on the menu
}

// DefaultConfig returns the 80x24, 60 TPS configuration.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickDuration returns the simulated seconds per tick.
func (c RuntimeConfig) TickDuration() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the externally visible state of a game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Scene    string // Active scene name, e.g. "menu" or "game"
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventJump         EventKind = iota + 1 // The player flapped
	EventScored                            // An obstacle was passed; Value is the new score
	EventCrashed                           // The run ended; Value is the final score
	EventSceneEntered                      // A scene became active; Scene names it
	EventOpenScores                        // The player asked for the scoreboard
	EventQuit                              // The player asked to leave
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventScored:
		return "scored"
	case EventCrashed:
		return "crashed"
	case EventSceneEntered:
		return "scene_entered"
	case EventOpenScores:
		return "open_scores"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step for the platform to react to
// (sounds, score saving, screen switches).
type Event struct {
	Kind  EventKind
	Value int
	Scene string
}

// StepResult is returned from every simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind was emitted.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
