package stats

import (
	"reflect"
	"testing"
	"time"

	"mydarts/server/game-service/internal/core"
)

func newMatch(t *testing.T, id string, settings core.Settings, ids ...int64) *core.Match {
	t.Helper()
	m, err := core.NewMatch(id, settings, ids, time.Now())
	if err != nil {
		t.Fatalf("NewMatch() error = %v", err)
	}
	return m
}

func play(t *testing.T, m *core.Match, uid int64, throws ...core.Throw) *core.Match {
	t.Helper()
	e := core.NewEngine()
	for _, th := range throws {
		next, _, err := e.Submit(m, uid, th)
		if err != nil {
			t.Fatalf("Submit(%d, %v) error = %v", uid, th, err)
		}
		m = next
	}
	return m
}

// setPoints moves player idx to points before its next turn.
func setPoints(m *core.Match, idx, points int) {
	m.Players[idx].CurrentPoints = points
	if m.CurrentTurn.PlayerIndex == idx {
		m.CurrentTurn.Remaining = points
	}
}

var (
	t20  = core.Throw{Segment: 20, Multiplier: 3}
	s20  = core.Throw{Segment: 20, Multiplier: 1}
	d20  = core.Throw{Segment: 20, Multiplier: 2}
	s1   = core.Throw{Segment: 1, Multiplier: 1}
	miss = core.Throw{Segment: 0, Multiplier: 1}
)

// finishedSingleSet plays a full 301 leg that player 1 wins with a 121 checkout
// after busting once.
func finishedSingleSet(t *testing.T, id string) *core.Match {
	m := newMatch(t, id, core.Settings{StartingPoints: 301, BestOfSets: 1}, 1, 2)
	m = play(t, m, 1, t20, t20, t20) // 121 left
	m = play(t, m, 2, s20, s20, s20) // 241 left
	m = play(t, m, 1, t20, t20, s20) // bust on the third dart
	m = play(t, m, 2, s1, s1, s1)    // 238 left
	m = play(t, m, 1, t20, t20, s1)  // 121 checkout
	if !m.IsFinished() {
		t.Fatalf("Expected finished match, got %s", m.Status)
	}
	return m
}

func TestCompute_SingleSet(t *testing.T) {
	m := finishedSingleSet(t, "g1")
	got := Compute(m)

	if got.GameID != "g1" || got.TotalSetsPlayed != 1 || got.Status != core.StatusFinished {
		t.Fatalf("Unexpected header %+v", got)
	}
	if len(got.Players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(got.Players))
	}

	p1 := got.Players[0]
	if p1.UserID != 1 {
		t.Errorf("Expected player order preserved, got %d first", p1.UserID)
	}
	if p1.OverallStats.TotalThrows != 9 {
		t.Errorf("Expected 9 darts for player 1, got %d", p1.OverallStats.TotalThrows)
	}
	if p1.OverallStats.TotalPoints != 441 {
		t.Errorf("Expected the busted turn's darts in the total (441), got %d", p1.OverallStats.TotalPoints)
	}
	points, throws := 441, 9
	if p1.OverallStats.Average3Dart != float64(points)/float64(throws)*3 {
		t.Errorf("Unexpected average %v", p1.OverallStats.Average3Dart)
	}
	if p1.OverallStats.HighestTurn != 180 || p1.OverallStats.HighestCheckout != 121 {
		t.Errorf("Expected highest turn 180 and checkout 121, got %d/%d", p1.OverallStats.HighestTurn, p1.OverallStats.HighestCheckout)
	}
	if p1.OverallStats.LegsWon != 1 || p1.OverallStats.SetsWon != 1 {
		t.Errorf("Expected one leg and one set won, got %+v", p1.OverallStats)
	}
	if len(p1.SetStats) != 1 || !p1.SetStats[0].WonSet || p1.SetStats[0].Checkout != 121 {
		t.Errorf("Unexpected set stats %+v", p1.SetStats)
	}

	p2 := got.Players[1]
	if p2.OverallStats.TotalThrows != 6 || p2.OverallStats.TotalPoints != 63 {
		t.Errorf("Expected 6 darts for 63, got %d for %d", p2.OverallStats.TotalThrows, p2.OverallStats.TotalPoints)
	}
	if p2.OverallStats.Average3Dart != 31.5 {
		t.Errorf("Expected 31.5 average, got %v", p2.OverallStats.Average3Dart)
	}
	if p2.SetStats[0].WonSet || p2.OverallStats.SetsWon != 0 {
		t.Errorf("Player 2 did not win the set")
	}
}

func TestCompute_MidTurnBustCountsEveryDart(t *testing.T) {
	m := newMatch(t, "solo", core.Settings{StartingPoints: 301, BestOfSets: 1}, 1)
	m = play(t, m, 1, t20, t20, t20) // 121 left
	m = play(t, m, 1, t20, t20, t20) // bust on the third dart

	o := Compute(m).Players[0].OverallStats
	if o.TotalThrows != 6 {
		t.Errorf("Expected 6 darts, got %d", o.TotalThrows)
	}
	if o.TotalPoints != 360 {
		t.Errorf("Expected 360 points, got %d", o.TotalPoints)
	}
	if o.Average3Dart != 180 {
		t.Errorf("Expected 180 average, got %v", o.Average3Dart)
	}
	if o.HighestTurn != 180 || o.HighestCheckout != 0 {
		t.Errorf("A busted turn must not count as a highest turn or checkout, got %+v", o)
	}
	if m.Players[0].CurrentPoints != 121 {
		t.Errorf("Expected the bust to leave 121, got %d", m.Players[0].CurrentPoints)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	m := finishedSingleSet(t, "g1")
	first := Compute(m)
	second := Compute(m)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Recomputing gave different results:\n%+v\n%+v", first, second)
	}
}

func TestCompute_MultipleSets(t *testing.T) {
	m := newMatch(t, "g2", core.Settings{StartingPoints: 301, BestOfSets: 3}, 1, 2)

	setPoints(m, 0, 40)
	m = play(t, m, 1, d20) // set 1 to player 1
	setPoints(m, 1, 20)
	m = play(t, m, 2, s20) // player 2 opens set 2 and takes it
	setPoints(m, 0, 60)
	m = play(t, m, 1, t20) // set 3 and the match

	got := Compute(m)
	if got.TotalSetsPlayed != 3 {
		t.Fatalf("Expected 3 sets, got %d", got.TotalSetsPlayed)
	}
	if got.WinnerID == nil || *got.WinnerID != 1 {
		t.Errorf("Expected winner 1, got %v", got.WinnerID)
	}

	wantWon := [][]bool{{true, false, true}, {false, true, false}}
	for p, ps := range got.Players {
		if len(ps.SetStats) != 3 {
			t.Fatalf("player %d: expected 3 sets, got %d", p, len(ps.SetStats))
		}
		for s, set := range ps.SetStats {
			if set.SetNumber != s+1 {
				t.Errorf("player %d: expected set number %d, got %d", p, s+1, set.SetNumber)
			}
			if set.WonSet != wantWon[p][s] {
				t.Errorf("player %d set %d: won = %v, want %v", p, s+1, set.WonSet, wantWon[p][s])
			}
		}
	}

	p2set1 := got.Players[1].SetStats[0]
	if p2set1.TotalThrows != 0 || p2set1.Average3Dart != 0 {
		t.Errorf("Expected an empty set for player 2, got %+v", p2set1)
	}
	if got.Players[0].OverallStats.SetsWon != 2 || got.Players[1].OverallStats.SetsWon != 1 {
		t.Errorf("Unexpected set totals")
	}
	if got.Players[0].OverallStats.TotalPoints != 100 || got.Players[0].OverallStats.TotalThrows != 2 {
		t.Errorf("Unexpected totals %+v", got.Players[0].OverallStats)
	}
}

func TestCompute_OpenSetIsNotWon(t *testing.T) {
	m := newMatch(t, "g3", core.Settings{StartingPoints: 501, BestOfSets: 1, BestOfLegs: 3}, 1, 2)
	setPoints(m, 0, 20)
	m = play(t, m, 1, s20) // leg 1 of set 1
	m = play(t, m, 2, miss)

	got := Compute(m)
	if got.Status != core.StatusInProgress {
		t.Fatalf("Expected match in progress")
	}
	if got.Players[0].SetStats[0].WonSet {
		t.Errorf("A leg win must not mark the open set as won")
	}
	if got.Players[0].OverallStats.LegsWon != 1 {
		t.Errorf("Expected one leg won, got %d", got.Players[0].OverallStats.LegsWon)
	}
}

func TestCompute_EmptyLog(t *testing.T) {
	m := newMatch(t, "g4", core.Settings{StartingPoints: 501, BestOfSets: 1}, 1, 2, 3)
	got := Compute(m)
	if got.TotalSetsPlayed != 0 || len(got.Players) != 3 {
		t.Fatalf("Unexpected stats %+v", got)
	}
	for _, p := range got.Players {
		if p.OverallStats.Average3Dart != 0 || len(p.SetStats) != 0 {
			t.Errorf("Expected zero stats, got %+v", p)
		}
	}
}

func TestAverage3Dart(t *testing.T) {
	tests := []struct {
		points, throws int
		want           float64
	}{
		{0, 0, 0},
		{180, 3, 180},
		{63, 6, 31.5},
		{100, 4, 75},
	}
	for _, tt := range tests {
		if got := Average3Dart(tt.points, tt.throws); got != tt.want {
			t.Errorf("Average3Dart(%d, %d) = %v, want %v", tt.points, tt.throws, got, tt.want)
		}
	}
}
