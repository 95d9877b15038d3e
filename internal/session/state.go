package session

// State is a position in the session lifecycle.
type State string

const (
	StateIdle             State = "idle"
	StateCategorySelected State = "category-selected"
	StatePoolBuilt        State = "pool-built"
	StateBlockChosen      State = "block-chosen"
	StateInSession        State = "in-session"
	StateCompleted        State = "completed"
)
