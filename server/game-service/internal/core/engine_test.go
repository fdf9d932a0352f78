package core

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return &Engine{now: func() time.Time { return testNow }}
}

func newTestMatch(t *testing.T, settings Settings, ids ...int64) *Match {
	t.Helper()
	m, err := NewMatch("m1", settings, ids, testNow)
	if err != nil {
		t.Fatalf("NewMatch() error = %v", err)
	}
	return m
}

// setPoints puts player idx on points, as if earlier turns had been played.
func setPoints(m *Match, idx, points int) {
	m.Players[idx].CurrentPoints = points
	if m.CurrentTurn.PlayerIndex == idx {
		m.CurrentTurn.Remaining = points
	}
}

func mustSubmit(t *testing.T, e *Engine, m *Match, uid int64, th Throw) (*Match, ThrowRecord) {
	t.Helper()
	next, rec, err := e.Submit(m, uid, th)
	if err != nil {
		t.Fatalf("Submit(%d, %v) error = %v", uid, th, err)
	}
	return next, rec
}

func TestSubmit_ScenarioA_ThreeTriples(t *testing.T) {
	e := newTestEngine()
	m := newTestMatch(t, Settings{StartingPoints: 501, BestOfSets: 1}, 1)

	wantRemaining := []int{441, 381}
	for i, want := range wantRemaining {
		m, _ = mustSubmit(t, e, m, 1, Throw{20, 3})
		if m.CurrentTurn.ThrowNumber != i+1 {
			t.Errorf("Expected throw number %d, got %d", i+1, m.CurrentTurn.ThrowNumber)
		}
		if m.CurrentTurn.Remaining != want {
			t.Errorf("Expected remaining %d, got %d", want, m.CurrentTurn.Remaining)
		}
		if m.Players[0].CurrentPoints != 501 {
			t.Errorf("Committed points changed mid-turn: %d", m.Players[0].CurrentPoints)
		}
	}

	m, rec := mustSubmit(t, e, m, 1, Throw{20, 3})
	if rec.ScoreAfter != 321 {
		t.Errorf("Expected score after 321, got %d", rec.ScoreAfter)
	}
	if m.Players[0].CurrentPoints != 321 {
		t.Errorf("Expected 321 after the turn, got %d", m.Players[0].CurrentPoints)
	}
	if m.CurrentTurn.ThrowNumber != 0 || m.CurrentTurn.PlayerIndex != 0 {
		t.Errorf("Expected a fresh turn for player 0, got %+v", m.CurrentTurn)
	}
	if m.TurnNumber != 2 {
		t.Errorf("Expected turn number 2, got %d", m.TurnNumber)
	}
	if len(m.ThrowLog) != 3 {
		t.Errorf("Expected 3 logged throws, got %d", len(m.ThrowLog))
	}
}

func TestSubmit_ScenarioB_DoubleOutCheckout(t *testing.T) {
	t.Run("best of one finishes the match", func(t *testing.T) {
		e := newTestEngine()
		m := newTestMatch(t, Settings{StartingPoints: 501, BestOfSets: 1, DoubleOut: true}, 1, 2)
		setPoints(m, 0, 40)

		m, rec := mustSubmit(t, e, m, 1, Throw{20, 2})
		if !rec.Checkout || rec.ScoreAfter != 0 {
			t.Errorf("Expected checkout record, got %+v", rec)
		}
		if m.Status != StatusFinished {
			t.Fatalf("Expected FINISHED, got %s", m.Status)
		}
		if m.WinnerID == nil || *m.WinnerID != 1 {
			t.Errorf("Expected winner 1, got %v", m.WinnerID)
		}
		if m.FinishedAt == nil || !m.FinishedAt.Equal(testNow) {
			t.Errorf("Expected finished_at to be set, got %v", m.FinishedAt)
		}
		if m.Players[0].SetsWon != 1 || m.Players[0].CurrentPoints != 0 {
			t.Errorf("Unexpected winner state %+v", m.Players[0])
		}
	})

	t.Run("best of three starts the next set", func(t *testing.T) {
		e := newTestEngine()
		m := newTestMatch(t, Settings{StartingPoints: 501, BestOfSets: 3, DoubleOut: true}, 1, 2)
		setPoints(m, 0, 40)
		setPoints(m, 1, 77)

		m, _ = mustSubmit(t, e, m, 1, Throw{20, 2})
		if m.Status != StatusInProgress {
			t.Fatalf("Expected IN_PROGRESS, got %s", m.Status)
		}
		if m.Players[0].SetsWon != 1 || m.SetNumber != 2 || m.LegsPlayed != 1 {
			t.Errorf("Unexpected set state: sets_won=%d set=%d legs=%d", m.Players[0].SetsWon, m.SetNumber, m.LegsPlayed)
		}
		for i, p := range m.Players {
			if p.CurrentPoints != 501 {
				t.Errorf("Player %d expected reset to 501, got %d", i, p.CurrentPoints)
			}
		}
		if m.CurrentTurn.PlayerIndex != 1 {
			t.Errorf("Expected player 1 to open set 2, got %d", m.CurrentTurn.PlayerIndex)
		}
		if m.CurrentTurn.Remaining != 501 || m.CurrentTurn.ThrowNumber != 0 {
			t.Errorf("Expected fresh turn, got %+v", m.CurrentTurn)
		}
	})
}

func TestSubmit_ScenarioC_BustOnOneRemaining(t *testing.T) {
	e := newTestEngine()
	m := newTestMatch(t, Settings{StartingPoints: 501, BestOfSets: 1, DoubleOut: true}, 1, 2)
	setPoints(m, 0, 3)
	setPoints(m, 1, 250)

	m, rec := mustSubmit(t, e, m, 1, Throw{1, 1})
	if rec.Bust || m.CurrentTurn.Remaining != 2 {
		t.Fatalf("Expected to continue on 2, got record %+v turn %+v", rec, m.CurrentTurn)
	}

	m, rec = mustSubmit(t, e, m, 1, Throw{1, 1})
	if !rec.Bust {
		t.Fatalf("Expected bust leaving 1, got %+v", rec)
	}
	if m.Players[0].CurrentPoints != 3 {
		t.Errorf("Expected points to revert to 3, got %d", m.Players[0].CurrentPoints)
	}
	if m.Players[1].CurrentPoints != 250 {
		t.Errorf("Other player's points changed: %d", m.Players[1].CurrentPoints)
	}
	if m.CurrentTurn.PlayerIndex != 1 || m.CurrentTurn.Remaining != 250 {
		t.Errorf("Expected player 1 on 250, got %+v", m.CurrentTurn)
	}
	if len(m.ThrowLog) != 2 {
		t.Errorf("Busted darts must still be logged, got %d records", len(m.ThrowLog))
	}
}

func TestSubmit_ScenarioD_MatchFinished(t *testing.T) {
	e := newTestEngine()
	m := newTestMatch(t, Settings{StartingPoints: 301, BestOfSets: 3, DoubleOut: true}, 1, 2)

	// Player 1 takes set 1.
	setPoints(m, 0, 32)
	m, _ = mustSubmit(t, e, m, 1, Throw{16, 2})

	// Player 2 opens set 2 and misses, player 1 checks out.
	if m.CurrentTurn.PlayerIndex != 1 {
		t.Fatalf("Expected player 2 to open set 2, got index %d", m.CurrentTurn.PlayerIndex)
	}
	for i := 0; i < 3; i++ {
		m, _ = mustSubmit(t, e, m, 2, Throw{0, 1})
	}
	setPoints(m, 0, 50)
	m, _ = mustSubmit(t, e, m, 1, Throw{25, 2})

	if m.Status != StatusFinished {
		t.Fatalf("Expected FINISHED, got %s", m.Status)
	}
	if m.Players[0].SetsWon != 2 || m.WinnerID == nil || *m.WinnerID != 1 {
		t.Errorf("Expected player 1 to win 2-0, got %+v winner %v", m.Players[0], m.WinnerID)
	}

	logLen := len(m.ThrowLog)
	for _, uid := range []int64{1, 2} {
		_, _, err := e.Submit(m, uid, Throw{20, 1})
		if !errors.Is(err, ErrMatchFinished) {
			t.Errorf("user %d: expected ErrMatchFinished, got %v", uid, err)
		}
	}
	if len(m.ThrowLog) != logLen {
		t.Errorf("Throw log changed after finish")
	}
}

func TestSubmit_Rejections(t *testing.T) {
	e := newTestEngine()
	m := newTestMatch(t, Settings{StartingPoints: 501, BestOfSets: 1}, 1, 2)
	m, _ = mustSubmit(t, e, m, 1, Throw{20, 1})

	tests := []struct {
		name string
		uid  int64
		th   Throw
		want error
	}{
		{"wrong player", 2, Throw{20, 1}, ErrNotYourTurn},
		{"unknown player", 99, Throw{20, 1}, ErrNotYourTurn},
		{"triple bull", 1, Throw{25, 3}, ErrInvalidThrow},
		{"segment 22", 1, Throw{22, 1}, ErrInvalidThrow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := m.Clone()
			next, _, err := e.Submit(m, tt.uid, tt.th)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if next != nil {
				t.Errorf("Expected no match on error")
			}
			if m.CurrentTurn.ThrowNumber != before.CurrentTurn.ThrowNumber ||
				len(m.ThrowLog) != len(before.ThrowLog) ||
				m.CurrentTurn.Remaining != before.CurrentTurn.Remaining {
				t.Errorf("Rejected throw mutated the match")
			}
		})
	}
}

func TestSubmit_DoesNotMutateInput(t *testing.T) {
	e := newTestEngine()
	m := newTestMatch(t, Settings{StartingPoints: 501, BestOfSets: 1}, 1, 2)
	next, _ := mustSubmit(t, e, m, 1, Throw{20, 3})
	next, _ = mustSubmit(t, e, next, 1, Throw{20, 3})

	if len(m.ThrowLog) != 0 || m.CurrentTurn.ThrowNumber != 0 || len(m.CurrentTurn.Throws) != 0 {
		t.Errorf("Submit mutated its input: %+v", m.CurrentTurn)
	}
	if len(next.CurrentTurn.Throws) != 2 {
		t.Errorf("Expected 2 throws in the turn, got %d", len(next.CurrentTurn.Throws))
	}
}

func TestSubmit_RotationWrapsAround(t *testing.T) {
	e := newTestEngine()
	m := newTestMatch(t, Settings{StartingPoints: 501, BestOfSets: 1}, 10, 20, 30)

	order := []int{}
	for turn := 0; turn < 7; turn++ {
		idx := m.CurrentTurn.PlayerIndex
		order = append(order, idx)
		for i := 0; i < 3; i++ {
			m, _ = mustSubmit(t, e, m, m.Players[idx].UserID, Throw{1, 1})
		}
	}
	want := []int{0, 1, 2, 0, 1, 2, 0}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected rotation %v, got %v", want, order)
		}
	}
}

func TestSubmit_MultiLegSets(t *testing.T) {
	e := newTestEngine()
	m := newTestMatch(t, Settings{StartingPoints: 301, BestOfSets: 3, BestOfLegs: 3}, 1, 2)

	// Player 1 wins leg 1.
	setPoints(m, 0, 20)
	m, _ = mustSubmit(t, e, m, 1, Throw{20, 1})
	if m.Players[0].LegsWonInSet != 1 || m.Players[0].SetsWon != 0 {
		t.Fatalf("Expected one leg and no set, got %+v", m.Players[0])
	}
	if m.SetNumber != 1 || m.LegNumber != 2 {
		t.Errorf("Expected set 1 leg 2, got set %d leg %d", m.SetNumber, m.LegNumber)
	}
	if m.CurrentTurn.PlayerIndex != 1 {
		t.Errorf("Expected player 2 to open leg 2, got %d", m.CurrentTurn.PlayerIndex)
	}

	// Player 2 opens leg 2 and wins it.
	setPoints(m, 1, 60)
	m, _ = mustSubmit(t, e, m, 2, Throw{20, 3})
	if m.Players[1].LegsWonInSet != 1 || m.LegNumber != 3 || m.CurrentTurn.PlayerIndex != 0 {
		t.Fatalf("Unexpected state after leg 2: %+v leg %d turn %+v", m.Players[1], m.LegNumber, m.CurrentTurn)
	}

	// Player 1 takes the deciding leg and the set.
	setPoints(m, 0, 10)
	m, _ = mustSubmit(t, e, m, 1, Throw{5, 2})
	if m.Players[0].SetsWon != 1 {
		t.Fatalf("Expected player 1 to win set 1, got %+v", m.Players[0])
	}
	for i, p := range m.Players {
		if p.LegsWonInSet != 0 {
			t.Errorf("Player %d legs in set not reset: %d", i, p.LegsWonInSet)
		}
	}
	if m.SetNumber != 2 || m.LegNumber != 1 || m.LegsPlayed != 3 {
		t.Errorf("Expected set 2 leg 1 after 3 legs, got set %d leg %d legs %d", m.SetNumber, m.LegNumber, m.LegsPlayed)
	}
	if m.Players[0].LegsWon != 2 || m.Players[1].LegsWon != 1 {
		t.Errorf("Unexpected leg totals %d/%d", m.Players[0].LegsWon, m.Players[1].LegsWon)
	}
}

// randomThrow aims at a finishing double now and then so that matches end.
func randomThrow(r *rand.Rand, remaining int) Throw {
	if r.Intn(4) == 0 {
		if remaining == 50 {
			return Throw{25, 2}
		}
		if remaining > 0 && remaining <= 40 && remaining%2 == 0 {
			return Throw{remaining / 2, 2}
		}
	}
	switch n := r.Intn(23); {
	case n == 0:
		return Throw{0, 1}
	case n <= 20:
		return Throw{n, 1 + r.Intn(3)}
	default:
		return Throw{25, 1 + r.Intn(2)}
	}
}

func TestSubmit_RandomMatchInvariants(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		r := rand.New(rand.NewSource(seed))
		doubleOut := seed%2 == 0
		e := newTestEngine()
		m := newTestMatch(t, Settings{StartingPoints: 301, BestOfSets: 3, DoubleOut: doubleOut}, 1, 2, 3)

		for i := 0; i < 5000 && !m.IsFinished(); i++ {
			prev := m
			idx := prev.CurrentTurn.PlayerIndex
			th := randomThrow(r, prev.CurrentTurn.Remaining)

			next, rec, err := e.Submit(prev, prev.Players[idx].UserID, th)
			if err != nil {
				t.Fatalf("seed %d: unexpected error %v", seed, err)
			}

			if next.CurrentTurn.ThrowNumber > MaxThrowsPerTurn {
				t.Fatalf("seed %d: turn holds %d throws", seed, next.CurrentTurn.ThrowNumber)
			}
			if next.LegsPlayed == prev.LegsPlayed {
				for p := range next.Players {
					if next.Players[p].CurrentPoints < 0 {
						t.Fatalf("seed %d: negative points %+v", seed, next.Players[p])
					}
					if next.Players[p].CurrentPoints > prev.Players[p].CurrentPoints {
						t.Fatalf("seed %d: points increased within a leg", seed)
					}
				}
			}
			if rec.Bust && next.Players[idx].CurrentPoints != prev.Players[idx].CurrentPoints {
				t.Fatalf("seed %d: bust changed committed points", seed)
			}
			if rec.Checkout {
				if th.Value() != prev.CurrentTurn.Remaining {
					t.Fatalf("seed %d: checkout with %v from %d", seed, th, prev.CurrentTurn.Remaining)
				}
				if doubleOut && !th.IsDouble() {
					t.Fatalf("seed %d: non-double checkout under double-out", seed)
				}
			}
			if doubleOut && !rec.Bust && rec.ScoreAfter == 1 {
				t.Fatalf("seed %d: left on 1 under double-out", seed)
			}
			if len(next.ThrowLog) != len(prev.ThrowLog)+1 {
				t.Fatalf("seed %d: log did not grow by one", seed)
			}
			m = next
		}
		if !m.IsFinished() {
			t.Fatalf("seed %d: match did not finish", seed)
		}
	}
}

func TestNewMatch_Validation(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		ids      []int64
		wantErr  bool
	}{
		{"501 best of 3", Settings{StartingPoints: 501, BestOfSets: 3}, []int64{1, 2}, false},
		{"301 single player", Settings{StartingPoints: 301, BestOfSets: 1}, []int64{1}, false},
		{"four players", Settings{StartingPoints: 501, BestOfSets: 5}, []int64{1, 2, 3, 4}, false},
		{"legs best of 5", Settings{StartingPoints: 501, BestOfSets: 1, BestOfLegs: 5}, []int64{1, 2}, false},
		{"401 points", Settings{StartingPoints: 401, BestOfSets: 1}, []int64{1, 2}, true},
		{"best of 2", Settings{StartingPoints: 501, BestOfSets: 2}, []int64{1, 2}, true},
		{"best of 4 legs", Settings{StartingPoints: 501, BestOfSets: 1, BestOfLegs: 4}, []int64{1, 2}, true},
		{"no players", Settings{StartingPoints: 501, BestOfSets: 1}, nil, true},
		{"five players", Settings{StartingPoints: 501, BestOfSets: 1}, []int64{1, 2, 3, 4, 5}, true},
		{"duplicate player", Settings{StartingPoints: 501, BestOfSets: 1}, []int64{1, 1}, true},
		{"zero id", Settings{StartingPoints: 501, BestOfSets: 1}, []int64{0, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatch("x", tt.settings, tt.ids, testNow)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewMatch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidSettings) {
					t.Errorf("Expected ErrInvalidSettings, got %v", err)
				}
				return
			}
			if m.Status != StatusInProgress || m.CurrentTurn.PlayerIndex != 0 || m.CurrentTurn.ThrowNumber != 0 {
				t.Errorf("Unexpected initial state %+v", m)
			}
			for i, p := range m.Players {
				if p.CurrentPoints != tt.settings.StartingPoints || p.UserID != tt.ids[i] {
					t.Errorf("Unexpected player %d: %+v", i, p)
				}
			}
			if m.Settings.BestOfLegs < 1 {
				t.Errorf("Expected best of legs default, got %d", m.Settings.BestOfLegs)
			}
		})
	}
}
