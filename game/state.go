// Package game implements the hand-level state machine: blinds, the
// betting-round action loop with typed legality errors, street advancement
// (dealing the flop/turn/river), and side-pot-aware showdown resolution.
// It has no UI and no bot/agent implementations — only the Agent interface
// an external caller can satisfy to drive ProcessAction.
package game

import (
	"fmt"
	"math/rand"

	"github.com/lox/holdem-eval/internal/gameid"
	"github.com/lox/holdem-eval/poker"
)

// Street is a betting round of a hand.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Complete
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Action is a betting action a player can take.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "folds"
	case Check:
		return "checks"
	case Call:
		return "calls"
	case Bet:
		return "bets"
	case Raise:
		return "raises"
	case AllIn:
		return "goes all-in"
	default:
		return "unknown"
	}
}

// PlayerState is one seat's chips, cards, and this-hand betting progress.
type PlayerState struct {
	Seat      int
	Name      string
	Chips     int
	HoleCards poker.Hand

	Bet      int  // chips committed this betting round, not yet collected into a pot
	TotalBet int  // chips committed this entire hand
	Folded   bool
	AllIn    bool
}

// GameState is one hand of play: the street, board, players, pots, and the
// betting round in progress.
type GameState struct {
	ID      string // unique hand identifier, for correlating logs across a session
	Players []*PlayerState
	Button  int
	Street  Street
	Board   poker.Hand
	Deck    *poker.Deck

	SmallBlind int
	BigBlind   int

	ActiveSeat int
	Betting    *BettingRound
	Pots       *PotManager
}

// NewGame deals a fresh hand: posts blinds, shuffles and deals hole cards,
// and sets the first seat to act. rng must be non-nil so callers control
// reproducibility explicitly; pass a seeded *rand.Rand in tests.
func NewGame(rng *rand.Rand, names []string, chips []int, button, smallBlind, bigBlind int) (*GameState, error) {
	if rng == nil {
		return nil, fmt.Errorf("game: rng is required")
	}
	if len(names) < 2 {
		return nil, fmt.Errorf("game: at least 2 players required")
	}
	if len(chips) != len(names) {
		return nil, fmt.Errorf("game: chip counts must match player count")
	}
	if button < 0 || button >= len(names) {
		return nil, fmt.Errorf("game: button position out of range")
	}

	players := make([]*PlayerState, len(names))
	for i, name := range names {
		players[i] = &PlayerState{Seat: i, Name: name, Chips: chips[i]}
	}

	deck := poker.NewDeck(rng)
	deck.Shuffle()

	g := &GameState{
		ID:         gameid.GenerateWithRandSource(rng),
		Players:    players,
		Button:     button,
		Street:     Preflop,
		Deck:       deck,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		Betting:    NewBettingRound(len(players), bigBlind),
		Pots:       NewPotManager(players),
	}

	g.postBlinds()
	g.dealHoleCards()

	if len(players) == 2 {
		g.ActiveSeat = button // heads-up: button acts first preflop
	} else {
		g.ActiveSeat = g.nextActiveSeat((button + 3) % len(players))
	}
	return g, nil
}

func (g *GameState) postBlinds() {
	n := len(g.Players)
	var sb, bb int
	if n == 2 {
		sb, bb = g.Button, (g.Button+1)%n
	} else {
		sb, bb = (g.Button+1)%n, (g.Button+2)%n
	}

	g.Players[sb].Bet = min(g.SmallBlind, g.Players[sb].Chips)
	g.Players[sb].TotalBet = g.Players[sb].Bet
	g.Players[sb].Chips -= g.Players[sb].Bet

	g.Players[bb].Bet = min(g.BigBlind, g.Players[bb].Chips)
	g.Players[bb].TotalBet = g.Players[bb].Bet
	g.Players[bb].Chips -= g.Players[bb].Bet

	g.Betting.CurrentBet = g.BigBlind
}

func (g *GameState) dealHoleCards() {
	for _, p := range g.Players {
		p.HoleCards = poker.NewHand(g.Deck.Deal(2)...)
	}
}

func (g *GameState) bbSeat() int {
	if len(g.Players) == 2 {
		return (g.Button + 1) % len(g.Players)
	}
	return (g.Button + 2) % len(g.Players)
}

// ValidActions returns the set of actions legal for the player on turn.
func (g *GameState) ValidActions() []Action {
	if g.ActiveSeat < 0 || g.ActiveSeat >= len(g.Players) {
		return nil
	}
	return g.Betting.ValidActions(g.Players[g.ActiveSeat])
}

// ProcessAction applies action (with amount meaningful for Bet/Raise/AllIn
// as the player's new *total* bet this round) from the player whose turn
// it is, advances to the next actor, and rolls the street forward if the
// betting round is now complete.
func (g *GameState) ProcessAction(seat int, action Action, amount int) error {
	if seat != g.ActiveSeat {
		return fmt.Errorf("game: seat %d acted out of turn (expected %d): %w", seat, g.ActiveSeat, ErrActOutOfTurn)
	}
	p := g.Players[seat]
	g.Betting.MarkActed(seat)
	if g.Street == Preflop && seat == g.bbSeat() {
		g.Betting.BBActed = true
	}

	if err := g.applyAction(p, action, amount); err != nil {
		return err
	}

	g.ActiveSeat = g.nextActiveSeat(seat + 1)
	if g.ActiveSeat == -1 || g.Betting.IsComplete(g.Players, g.Street, g.Button) {
		g.advanceStreet()
	}
	return nil
}

func (g *GameState) applyAction(p *PlayerState, action Action, amount int) error {
	br := g.Betting
	switch action {
	case Fold:
		p.Folded = true

	case Check:
		if br.CurrentBet != p.Bet {
			return fmt.Errorf("game: %w: must call %d", ErrNoBetToCall, br.CurrentBet-p.Bet)
		}

	case Call:
		if br.CurrentBet == p.Bet {
			return fmt.Errorf("game: %w", ErrNoBetToCall)
		}
		toCall := min(br.CurrentBet-p.Bet, p.Chips)
		p.Bet += toCall
		p.TotalBet += toCall
		p.Chips -= toCall
		if p.Chips == 0 {
			p.AllIn = true
		}

	case Bet:
		if br.CurrentBet != 0 {
			return fmt.Errorf("game: cannot bet, a bet is already live — use raise")
		}
		return g.wager(p, amount, ErrBetBelowMinimum)

	case Raise:
		if br.CurrentBet == 0 {
			return fmt.Errorf("game: %w", ErrNothingToRaise)
		}
		return g.wager(p, amount, ErrRaiseBelowMinimum)

	case AllIn:
		all := p.Bet + p.Chips
		p.TotalBet += p.Chips
		p.Chips = 0
		p.Bet = all
		p.AllIn = true
		if all > br.CurrentBet {
			br.MinRaise = all - br.CurrentBet
			br.CurrentBet = all
			br.LastRaiser = p.Seat
			br.resetActed(p.Seat)
		}
	}
	return nil
}

// wager is the shared path for Bet and Raise: both set the player's new
// total round bet to amount, enforcing the minimum-raise/minimum-bet floor
// unless the player is going all-in for less.
func (g *GameState) wager(p *PlayerState, amount int, belowMinErr error) error {
	br := g.Betting
	playerTotalChips := p.Chips + p.Bet
	if amount > playerTotalChips {
		return fmt.Errorf("game: %w: have %d, tried %d", ErrOverbet, playerTotalChips, amount)
	}
	floor := br.CurrentBet + br.MinRaise
	if br.CurrentBet == 0 {
		floor = br.BigBlind
	}
	if amount < floor && amount < playerTotalChips {
		return fmt.Errorf("game: %w: minimum %d", belowMinErr, floor)
	}

	raiseAmount := amount - p.Bet
	br.MinRaise = amount - br.CurrentBet
	if br.MinRaise < br.BigBlind {
		br.MinRaise = br.BigBlind
	}
	br.CurrentBet = amount
	br.LastRaiser = p.Seat

	p.Chips -= raiseAmount
	p.Bet = amount
	p.TotalBet += raiseAmount
	if p.Chips == 0 {
		p.AllIn = true
	}
	br.resetActed(p.Seat)
	return nil
}

func (g *GameState) nextActiveSeat(from int) int {
	n := len(g.Players)
	for i := 0; i < n; i++ {
		pos := (from + i) % n
		if !g.Players[pos].Folded && !g.Players[pos].AllIn {
			return pos
		}
	}
	return -1
}

// advanceStreet collects the round's bets into (side) pots, deals the next
// street's board cards, and sets the first seat to act — skipping straight
// to Complete, possibly recursively, if no seat can still act.
func (g *GameState) advanceStreet() {
	g.Pots.CollectBets(g.Players)
	g.Pots.CalculateSidePots(g.Players)

	for _, p := range g.Players {
		p.Bet = 0
	}
	g.Betting.ResetForStreet(len(g.Players))

	switch g.Street {
	case Preflop:
		g.Street = Flop
		g.Board = g.Board.Union(poker.NewHand(g.Deck.Deal(3)...))
	case Flop:
		g.Street = Turn
		g.Board = g.Board.Add(g.Deck.DealOne())
	case Turn:
		g.Street = River
		g.Board = g.Board.Add(g.Deck.DealOne())
	case River:
		g.Street = Complete
		return
	case Complete:
		return
	}

	g.ActiveSeat = g.nextActiveSeat((g.Button + 1) % len(g.Players))
	if g.ActiveSeat == -1 {
		anyLive := false
		for _, p := range g.Players {
			if !p.Folded {
				anyLive = true
				break
			}
		}
		if anyLive {
			g.advanceStreet()
		}
	}
}

// IsComplete reports whether the hand has reached showdown or been decided
// by folds.
func (g *GameState) IsComplete() bool {
	live := 0
	for _, p := range g.Players {
		if !p.Folded {
			live++
		}
	}
	return g.Street == Complete || live <= 1
}

// Winners resolves each pot's winning seat(s) by hand rank, splitting ties.
func (g *GameState) Winners() map[int][]int {
	winners := make(map[int][]int)
	for potIdx, pot := range g.Pots.PotsWithUncollected(g.Players) {
		if len(pot.Eligible) == 0 {
			continue
		}
		if len(pot.Eligible) == 1 {
			winners[potIdx] = pot.Eligible
			continue
		}

		best := poker.HandRank(0)
		var bestSeats []int
		for _, seat := range pot.Eligible {
			p := g.Players[seat]
			if p.Folded {
				continue
			}
			rank := poker.Evaluate7(p.HoleCards.Union(g.Board))
			switch {
			case rank > best:
				best = rank
				bestSeats = []int{seat}
			case rank == best:
				bestSeats = append(bestSeats, seat)
			}
		}
		winners[potIdx] = bestSeats
	}
	return winners
}

// Payouts resolves Winners and the pot layers into final chip amounts per
// seat, crediting each player's Chips in place and returning the same
// per-seat totals.
func (g *GameState) Payouts() map[int]int {
	totals := make(map[int]int)
	pots := g.Pots.PotsWithUncollected(g.Players)
	for potIdx, winnerSeats := range g.Winners() {
		shares := SplitPotAmong(pots[potIdx].Amount, winnerSeats, g.Button, len(g.Players))
		for seat, amount := range shares {
			g.Players[seat].Chips += amount
			totals[seat] += amount
		}
	}
	return totals
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
