// Package stats derives scoring statistics from a match's throw log.
// Everything here is a pure function of the log, so recomputing is always safe.
package stats

import (
	"mydarts/server/game-service/internal/core"
)

type SetStats struct {
	SetNumber    int     `json:"set_number"`
	TotalThrows  int     `json:"total_throws"`
	TotalPoints  int     `json:"total_points"`
	Average3Dart float64 `json:"average_3_dart"`
	WonSet       bool    `json:"won_set"`
	HighestTurn  int     `json:"highest_turn"`
	Checkout     int     `json:"checkout,omitempty"`
}

type OverallStats struct {
	TotalThrows     int     `json:"total_throws"`
	TotalPoints     int     `json:"total_points"`
	Average3Dart    float64 `json:"average_3_dart"`
	HighestTurn     int     `json:"highest_turn"`
	HighestCheckout int     `json:"highest_checkout"`
	LegsWon         int     `json:"legs_won"`
	SetsWon         int     `json:"sets_won"`
}

type PlayerGameStats struct {
	UserID       int64        `json:"user_id"`
	OverallStats OverallStats `json:"overall_stats"`
	SetStats     []SetStats   `json:"set_stats"`
}

type GameStatistics struct {
	GameID          string            `json:"game_id"`
	Status          core.Status       `json:"status"`
	WinnerID        *int64            `json:"winner_id,omitempty"`
	TotalSetsPlayed int               `json:"total_sets_played"`
	Players         []PlayerGameStats `json:"players"`
}

// Average3Dart is the points scored per three darts; 0 when nothing was thrown.
func Average3Dart(points, throws int) float64 {
	if throws == 0 {
		return 0
	}
	return float64(points) / float64(throws) * 3
}

type turnKey struct {
	set, turn int
}

type turnTotal struct {
	player   int
	points   int
	bust     bool
	checkout bool
}

// Compute builds per-set and per-game statistics for every player of m.
// Every dart counts toward the totals at face value, busted turns included.
// A busted turn never counts as a highest turn or a checkout.
func Compute(m *core.Match) GameStatistics {
	turns := make(map[turnKey]*turnTotal)
	order := make([]turnKey, 0)
	sets := 0
	for _, rec := range m.ThrowLog {
		k := turnKey{set: rec.SetNumber, turn: rec.TurnNumber}
		t, ok := turns[k]
		if !ok {
			t = &turnTotal{player: rec.PlayerIndex}
			turns[k] = t
			order = append(order, k)
		}
		t.points += rec.Value()
		t.bust = t.bust || rec.Bust
		t.checkout = t.checkout || rec.Checkout
		if rec.SetNumber > sets {
			sets = rec.SetNumber
		}
	}

	perSet := make([][]SetStats, len(m.Players))
	for p := range m.Players {
		perSet[p] = make([]SetStats, sets)
		for s := 0; s < sets; s++ {
			perSet[p][s].SetNumber = s + 1
		}
	}

	for _, rec := range m.ThrowLog {
		perSet[rec.PlayerIndex][rec.SetNumber-1].TotalThrows++
	}

	legsWon := make([]int, len(m.Players))
	setWinner := make(map[int]int)
	for _, k := range order {
		t := turns[k]
		s := &perSet[t.player][k.set-1]
		s.TotalPoints += t.points
		if t.bust {
			continue
		}
		if t.points > s.HighestTurn {
			s.HighestTurn = t.points
		}
		if t.checkout {
			legsWon[t.player]++
			if t.points > s.Checkout {
				s.Checkout = t.points
			}
			// the last checkout of a completed set decides it
			if setCompleted(m, k.set) {
				setWinner[k.set] = t.player
			}
		}
	}

	out := GameStatistics{
		GameID:          m.ID,
		Status:          m.Status,
		WinnerID:        m.WinnerID,
		TotalSetsPlayed: sets,
		Players:         make([]PlayerGameStats, len(m.Players)),
	}

	for p, player := range m.Players {
		ps := PlayerGameStats{
			UserID:   player.UserID,
			SetStats: perSet[p],
		}
		o := &ps.OverallStats
		for i := range ps.SetStats {
			s := &ps.SetStats[i]
			s.Average3Dart = Average3Dart(s.TotalPoints, s.TotalThrows)
			if w, ok := setWinner[s.SetNumber]; ok && w == p {
				s.WonSet = true
				o.SetsWon++
			}
			o.TotalThrows += s.TotalThrows
			o.TotalPoints += s.TotalPoints
			o.HighestTurn = max(o.HighestTurn, s.HighestTurn)
			o.HighestCheckout = max(o.HighestCheckout, s.Checkout)
		}
		o.Average3Dart = Average3Dart(o.TotalPoints, o.TotalThrows)
		o.LegsWon = legsWon[p]
		out.Players[p] = ps
	}
	return out
}

func setCompleted(m *core.Match, set int) bool {
	return set < m.SetNumber || m.IsFinished()
}
