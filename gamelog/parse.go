package gamelog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/holdem-eval/game"
	"github.com/lox/holdem-eval/poker"
)

// ParseErrorKind classifies why a line of hand-history text failed to parse.
type ParseErrorKind int

const (
	UnknownSection ParseErrorKind = iota
	MalformedPlayerLine
	MalformedBlindLine
	UnknownActionVerb
	MalformedActionLine
	MalformedSummaryLine
	MalformedBoardLine
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnknownSection:
		return "unknown section"
	case MalformedPlayerLine:
		return "malformed player line"
	case MalformedBlindLine:
		return "malformed blind line"
	case UnknownActionVerb:
		return "unknown action verb"
	case MalformedActionLine:
		return "malformed action line"
	case MalformedSummaryLine:
		return "malformed summary line"
	case MalformedBoardLine:
		return "malformed board line"
	default:
		return "unknown parse error"
	}
}

// ParseError reports a malformed line, with its 1-based line number and
// the offending text (comment already stripped).
type ParseError struct {
	Kind ParseErrorKind
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gamelog: line %d: %s: %q", e.Line, e.Kind, e.Text)
}

// stripComment removes everything from the first '#' to end of line and
// trims surrounding whitespace.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func sectionName(line string) (string, bool) {
	if !strings.HasPrefix(line, "***") || !strings.HasSuffix(line, "***") {
		return "", false
	}
	name := strings.TrimSpace(strings.Trim(line, "*"))
	return strings.ToLower(name), true
}

// Parse reconstructs a Log from hand-history text. It tolerates blank
// lines and trailing "# comment" text on any line.
func Parse(text string) (*Log, error) {
	lines := strings.Split(text, "\n")

	log := &Log{}
	section := ""
	var currentStreet *StreetLog
	streetBoardPending := false

	flushStreet := func() {
		if currentStreet != nil {
			log.Streets = append(log.Streets, *currentStreet)
			currentStreet = nil
		}
	}

	for i, raw := range lines {
		lineNo := i + 1
		line := stripComment(raw)
		if line == "" {
			continue
		}

		if name, ok := sectionName(line); ok {
			flushStreet()
			switch name {
			case "players", "blinds", "summary":
				section = name
			case "preflop", "flop", "turn", "river":
				section = "street"
				currentStreet = &StreetLog{Street: streetFromName(name)}
				streetBoardPending = name != "preflop"
			default:
				return nil, &ParseError{Kind: UnknownSection, Line: lineNo, Text: line}
			}
			continue
		}

		switch section {
		case "players":
			p, err := parsePlayerLine(line, lineNo)
			if err != nil {
				return nil, err
			}
			log.Players = append(log.Players, p)

		case "blinds":
			pa, err := parsePlayerAmount(line, lineNo, MalformedBlindLine)
			if err != nil {
				return nil, err
			}
			if log.SmallBlind.Name == "" {
				log.SmallBlind = pa
			} else {
				log.BigBlind = pa
			}

		case "summary":
			pa, err := parsePlayerAmount(line, lineNo, MalformedSummaryLine)
			if err != nil {
				return nil, err
			}
			log.Summary = append(log.Summary, pa)

		case "street":
			if streetBoardPending {
				cards, err := parseBoardLine(line, lineNo)
				if err != nil {
					return nil, err
				}
				currentStreet.Board = cards
				streetBoardPending = false
				continue
			}
			a, err := parseActionLine(line, lineNo)
			if err != nil {
				return nil, err
			}
			currentStreet.Actions = append(currentStreet.Actions, a)

		default:
			return nil, &ParseError{Kind: UnknownSection, Line: lineNo, Text: line}
		}
	}
	flushStreet()

	return log, nil
}

func streetFromName(name string) game.Street {
	switch name {
	case "flop":
		return game.Flop
	case "turn":
		return game.Turn
	case "river":
		return game.River
	default:
		return game.Preflop
	}
}

func parsePlayerLine(line string, lineNo int) (PlayerLine, error) {
	parts := strings.Split(line, "-")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) != 2 && len(parts) != 3 {
		return PlayerLine{}, &ParseError{Kind: MalformedPlayerLine, Line: lineNo, Text: line}
	}
	stack, err := strconv.Atoi(parts[1])
	if err != nil {
		return PlayerLine{}, &ParseError{Kind: MalformedPlayerLine, Line: lineNo, Text: line}
	}
	p := PlayerLine{Name: parts[0], Stack: stack}
	if len(parts) == 3 {
		cards, err := poker.ParseCards(parts[2])
		if err != nil {
			return PlayerLine{}, &ParseError{Kind: MalformedPlayerLine, Line: lineNo, Text: line}
		}
		p.HoleCards = cards
	}
	return p, nil
}

func parsePlayerAmount(line string, lineNo int, kind ParseErrorKind) (PlayerAmount, error) {
	parts := strings.SplitN(line, "-", 2)
	if len(parts) != 2 {
		return PlayerAmount{}, &ParseError{Kind: kind, Line: lineNo, Text: line}
	}
	amount, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return PlayerAmount{}, &ParseError{Kind: kind, Line: lineNo, Text: line}
	}
	return PlayerAmount{Name: strings.TrimSpace(parts[0]), Amount: amount}, nil
}

func parseBoardLine(line string, lineNo int) ([]poker.Card, error) {
	cards, err := poker.ParseCards(line)
	if err != nil {
		return nil, &ParseError{Kind: MalformedBoardLine, Line: lineNo, Text: line}
	}
	return cards, nil
}

func parseActionLine(line string, lineNo int) (ActionEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ActionEntry{}, &ParseError{Kind: MalformedActionLine, Line: lineNo, Text: line}
	}
	player := fields[0]
	verb := fields[1]

	switch verb {
	case "folds":
		return ActionEntry{Player: player, Action: game.Fold}, nil
	case "checks":
		return ActionEntry{Player: player, Action: game.Check}, nil
	case "calls":
		if len(fields) < 3 {
			return ActionEntry{}, &ParseError{Kind: MalformedActionLine, Line: lineNo, Text: line}
		}
		amount, err := strconv.Atoi(fields[2])
		if err != nil {
			return ActionEntry{}, &ParseError{Kind: MalformedActionLine, Line: lineNo, Text: line}
		}
		return ActionEntry{Player: player, Action: game.Call, Amount: amount}, nil
	case "bets":
		if len(fields) < 3 {
			return ActionEntry{}, &ParseError{Kind: MalformedActionLine, Line: lineNo, Text: line}
		}
		amount, err := strconv.Atoi(fields[2])
		if err != nil {
			return ActionEntry{}, &ParseError{Kind: MalformedActionLine, Line: lineNo, Text: line}
		}
		return ActionEntry{Player: player, Action: game.Bet, Amount: amount}, nil
	case "raises":
		// "name raises DELTA to TOTAL"
		if len(fields) < 5 || fields[3] != "to" {
			return ActionEntry{}, &ParseError{Kind: MalformedActionLine, Line: lineNo, Text: line}
		}
		delta, err := strconv.Atoi(fields[2])
		if err != nil {
			return ActionEntry{}, &ParseError{Kind: MalformedActionLine, Line: lineNo, Text: line}
		}
		total, err := strconv.Atoi(fields[4])
		if err != nil {
			return ActionEntry{}, &ParseError{Kind: MalformedActionLine, Line: lineNo, Text: line}
		}
		return ActionEntry{Player: player, Action: game.Raise, Amount: delta, Total: total}, nil
	default:
		return ActionEntry{}, &ParseError{Kind: UnknownActionVerb, Line: lineNo, Text: line}
	}
}
