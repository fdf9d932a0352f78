package core

import (
	"fmt"
	"time"
)

// Engine applies darts to matches. It holds no match state of its own.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// Submit applies one dart thrown by userID and returns the updated match
// together with the log entry it produced. m itself is never modified, so a
// rejected dart leaves the caller's state exactly as it was.
func (e *Engine) Submit(m *Match, userID int64, th Throw) (*Match, ThrowRecord, error) {
	if m.IsFinished() {
		return nil, ThrowRecord{}, ErrMatchFinished
	}
	if cur := m.CurrentPlayer(); cur.UserID != userID {
		return nil, ThrowRecord{}, fmt.Errorf("%w: waiting for user %d", ErrNotYourTurn, cur.UserID)
	}
	if err := th.Validate(); err != nil {
		return nil, ThrowRecord{}, err
	}

	next := m.Clone()
	idx := next.CurrentTurn.PlayerIndex
	player := &next.Players[idx]

	outcome, err := ApplyThrow(&next.CurrentTurn, th, player.CurrentPoints, next.Settings.DoubleOut)
	if err != nil {
		return nil, ThrowRecord{}, err
	}

	rec := ThrowRecord{
		Seq:         len(next.ThrowLog) + 1,
		SetNumber:   next.SetNumber,
		LegNumber:   next.LegNumber,
		TurnNumber:  next.TurnNumber,
		PlayerIndex: idx,
		UserID:      userID,
		Throw:       th,
		Bust:        outcome == OutcomeBust,
		Checkout:    outcome == OutcomeCheckout,
		ScoreAfter:  next.CurrentTurn.Remaining,
	}
	next.ThrowLog = append(next.ThrowLog, rec)

	switch outcome {
	case OutcomeBust, OutcomeTurnComplete:
		player.CurrentPoints -= next.CurrentTurn.Points
		e.nextPlayer(next)
	case OutcomeCheckout:
		player.CurrentPoints = 0
		e.winLeg(next, idx)
	}

	return next, rec, nil
}

func (e *Engine) winLeg(m *Match, idx int) {
	winner := &m.Players[idx]
	winner.LegsWonInSet++
	winner.LegsWon++
	m.LegsPlayed++

	if winner.LegsWonInSet >= m.Settings.LegsToWin() {
		winner.SetsWon++
		for i := range m.Players {
			m.Players[i].LegsWonInSet = 0
		}

		if winner.SetsWon >= m.Settings.SetsToWin() {
			now := e.now()
			uid := winner.UserID
			m.Status = StatusFinished
			m.WinnerID = &uid
			m.FinishedAt = &now
			return
		}

		m.SetNumber++
		m.LegNumber = 1
	} else {
		m.LegNumber++
	}

	for i := range m.Players {
		m.Players[i].CurrentPoints = m.Settings.StartingPoints
	}

	// Same seating order every leg, but the opening thrower moves along by one.
	starter := m.LegsPlayed % len(m.Players)
	m.TurnNumber++
	m.CurrentTurn = newTurn(starter, m.Settings.StartingPoints)
}

func (e *Engine) nextPlayer(m *Match) {
	idx := (m.CurrentTurn.PlayerIndex + 1) % len(m.Players)
	m.TurnNumber++
	m.CurrentTurn = newTurn(idx, m.Players[idx].CurrentPoints)
}
