package game

// Decision is the action an Agent chooses, with an amount meaningful only
// for Bet/Raise/AllIn (the player's new total bet this round) and an
// optional human-readable reasoning string for logging.
type Decision struct {
	Action    Action
	Amount    int
	Reasoning string
}

// Agent decides an action for a player given the current game state. It is
// the only extension point this package exposes for decision-making — no
// concrete agent implementations live here; callers (simulations, tests,
// external bots) supply their own.
type Agent interface {
	Decide(g *GameState, seat int) Decision
}
