package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to convert real-time durations
// into ticks.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score          int  // Current score
	HighScore      int  // Best score seen by this process
	Level          int  // Current level, starting at 1
	Lives          int  // Ships left in reserve
	Active         bool // Whether a game is in progress
	Paused         bool // Whether the game is holding after a lost ship
	PointerVisible bool // Whether the pointer should be shown
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventGameStarted     EventKind = iota + 1 // Play was clicked
	EventBulletFired                          // A bullet left the ship
	EventAliensDestroyed                      // Value holds the number of aliens removed
	EventHighScore                            // Value holds the new record
	EventShipHit                              // Value holds ships left afterwards
	EventLevelCleared                         // Value holds the new level
	EventGameOver                             // Value holds the final score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGameStarted:
		return "game_started"
	case EventBulletFired:
		return "bullet_fired"
	case EventAliensDestroyed:
		return "aliens_destroyed"
	case EventHighScore:
		return "high_score"
	case EventShipHit:
		return "ship_hit"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single notable occurrence reported by Step.
type Event struct {
	Kind  EventKind
	Value int
}

// Game is the interface frontends drive. Games contain pure logic with no
// external dependencies; the platform handles input mapping, timing and
// presentation.
type Game interface {
	// ID returns a unique identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset (re)initializes the game for the given screen.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
