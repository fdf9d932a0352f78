package core

import "fmt"

// Outcome is what a single dart did to the turn in progress.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeBust
	OutcomeCheckout
	OutcomeTurnComplete
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "CONTINUE"
	case OutcomeBust:
		return "BUST"
	case OutcomeCheckout:
		return "CHECKOUT"
	case OutcomeTurnComplete:
		return "TURN_COMPLETE"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Turn is one visit to the oche: up to three darts by the same player.
// Points is provisional until the engine commits the turn.
type Turn struct {
	PlayerIndex int     `json:"player_index"`
	ThrowNumber int     `json:"throw_number"`
	Throws      []Throw `json:"throws"`
	Points      int     `json:"turn_points"`
	Remaining   int     `json:"remaining"`
	Bust        bool    `json:"bust,omitempty"`
}

func newTurn(playerIndex, remaining int) Turn {
	return Turn{
		PlayerIndex: playerIndex,
		Throws:      make([]Throw, 0, MaxThrowsPerTurn),
		Remaining:   remaining,
	}
}

func (t Turn) clone() Turn {
	c := t
	c.Throws = make([]Throw, len(t.Throws), MaxThrowsPerTurn)
	copy(c.Throws, t.Throws)
	return c
}

// ApplyThrow adds one dart to turn. currentPoints is the player's committed
// score from before the turn started. The turn is left untouched on error.
func ApplyThrow(turn *Turn, th Throw, currentPoints int, doubleOut bool) (Outcome, error) {
	if turn.Bust {
		return OutcomeBust, fmt.Errorf("%w: turn is already busted", ErrInvalidThrow)
	}
	if len(turn.Throws) >= MaxThrowsPerTurn {
		return OutcomeTurnComplete, fmt.Errorf("%w: turn already has %d throws", ErrInvalidThrow, MaxThrowsPerTurn)
	}
	if err := th.Validate(); err != nil {
		return OutcomeContinue, err
	}

	tentative := currentPoints - turn.Points - th.Value()

	turn.Throws = append(turn.Throws, th)
	turn.ThrowNumber = len(turn.Throws)

	if isBust(tentative, th, doubleOut) {
		turn.Bust = true
		turn.Points = 0
		turn.Remaining = currentPoints
		return OutcomeBust, nil
	}

	turn.Points += th.Value()
	turn.Remaining = tentative

	if tentative == 0 {
		return OutcomeCheckout, nil
	}
	if turn.ThrowNumber == MaxThrowsPerTurn {
		return OutcomeTurnComplete, nil
	}
	return OutcomeContinue, nil
}

// Under double-out a remainder of 1 can never be finished.
func isBust(tentative int, th Throw, doubleOut bool) bool {
	if tentative < 0 {
		return true
	}
	if !doubleOut {
		return false
	}
	return tentative == 1 || (tentative == 0 && !th.IsDouble())
}

// RestoreTurn replays the darts of an unfinished turn on top of the player's
// committed score.
func RestoreTurn(playerIndex, currentPoints int, throws []Throw, doubleOut bool) (Turn, error) {
	turn := newTurn(playerIndex, currentPoints)
	for _, th := range throws {
		out, err := ApplyThrow(&turn, th, currentPoints, doubleOut)
		if err != nil {
			return turn, err
		}
		if out != OutcomeContinue {
			return turn, fmt.Errorf("%w: turn already ended with %s", ErrInvalidThrow, out)
		}
	}
	return turn, nil
}
