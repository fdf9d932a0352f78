package stats

import "mydarts/server/game-service/internal/core"

type CareerStats struct {
	UserID          int64   `json:"user_id"`
	TotalGames      int     `json:"total_games"`
	Wins            int     `json:"wins"`
	TotalPoints     int     `json:"total_points"`
	TotalThrows     int     `json:"total_throws"`
	Average3Dart    float64 `json:"average_3_dart"`
	HighestCheckout int     `json:"highest_checkout"`
	LegsWon         int     `json:"legs_won"`
}

// ComputeCareer aggregates uid's finished matches. Matches still in progress
// or without uid are ignored.
func ComputeCareer(uid int64, matches []*core.Match) CareerStats {
	c := CareerStats{UserID: uid}
	for _, m := range matches {
		if !m.IsFinished() {
			continue
		}
		idx := m.PlayerIndex(uid)
		if idx < 0 {
			continue
		}

		c.TotalGames++
		if m.WinnerID != nil && *m.WinnerID == uid {
			c.Wins++
		}

		o := Compute(m).Players[idx].OverallStats
		c.TotalPoints += o.TotalPoints
		c.TotalThrows += o.TotalThrows
		c.LegsWon += o.LegsWon
		c.HighestCheckout = max(c.HighestCheckout, o.HighestCheckout)
	}
	c.Average3Dart = Average3Dart(c.TotalPoints, c.TotalThrows)
	return c
}
