package game

import "errors"

// Typed legality errors returned by GameState.ProcessAction. Callers should
// use errors.Is against these sentinels rather than matching error text.
var (
	ErrNoBetToCall       = errors.New("no bet to call")
	ErrNothingToRaise    = errors.New("nothing to raise, use bet")
	ErrRaiseBelowMinimum = errors.New("raise below minimum")
	ErrBetBelowMinimum   = errors.New("bet below minimum")
	ErrOverbet           = errors.New("wager exceeds available chips")
	ErrActOutOfTurn      = errors.New("action out of turn")
)

// BettingRound tracks the state of the current street's betting: the bet
// every player must match to stay in, the minimum legal raise increment,
// who raised last, and who has acted since that raise.
type BettingRound struct {
	BigBlind   int
	CurrentBet int
	MinRaise   int
	LastRaiser int // -1 if nobody has raised this round
	BBActed    bool // preflop big-blind option has been exercised
	acted      []bool
}

// NewBettingRound starts a fresh preflop round for numPlayers seats.
func NewBettingRound(numPlayers, bigBlind int) *BettingRound {
	return &BettingRound{
		BigBlind:   bigBlind,
		MinRaise:   bigBlind,
		LastRaiser: -1,
		acted:      make([]bool, numPlayers),
	}
}

// ResetForStreet clears per-round bet tracking for the next street.
func (b *BettingRound) ResetForStreet(numPlayers int) {
	b.CurrentBet = 0
	b.MinRaise = b.BigBlind
	b.LastRaiser = -1
	b.BBActed = false
	b.acted = make([]bool, numPlayers)
}

// MarkActed records that seat has acted at least once this round.
func (b *BettingRound) MarkActed(seat int) {
	if seat >= 0 && seat < len(b.acted) {
		b.acted[seat] = true
	}
}

// resetActed clears every seat's acted flag except the raiser, since a
// raise reopens the action for everyone else.
func (b *BettingRound) resetActed(raiser int) {
	for i := range b.acted {
		b.acted[i] = i == raiser
	}
}

// IsComplete reports whether every player still able to act has acted
// since the last raise (or, preflop, has had the big-blind option).
func (b *BettingRound) IsComplete(players []*PlayerState, street Street, button int) bool {
	liveToAct := 0
	for i, p := range players {
		if p.Folded || p.AllIn {
			continue
		}
		liveToAct++
		if !b.acted[i] {
			return false
		}
	}
	if liveToAct == 0 {
		return true
	}
	if street == Preflop && b.CurrentBet == b.BigBlind && !b.BBActed {
		return false
	}
	return true
}

// ValidActions lists the actions legal for p given the round's current bet.
func (b *BettingRound) ValidActions(p *PlayerState) []Action {
	if p.Folded || p.AllIn {
		return nil
	}
	actions := []Action{Fold}
	switch {
	case b.CurrentBet == p.Bet:
		actions = append(actions, Check)
		if p.Chips > 0 {
			if b.CurrentBet == 0 {
				actions = append(actions, Bet)
			} else {
				// The preflop big blind's option: a live bet can only be raised.
				actions = append(actions, Raise)
			}
		}
	default:
		actions = append(actions, Call)
		if p.Chips > 0 {
			actions = append(actions, Raise)
		}
	}
	if p.Chips > 0 {
		actions = append(actions, AllIn)
	}
	return actions
}
