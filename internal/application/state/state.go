package state

// GameState represents the current state of the simulation
type GameState int

const (
	StatePlaying GameState = iota
	StateTransition
	StateGameOver
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateTransition:
		return "Transition"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}
