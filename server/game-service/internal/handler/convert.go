package handler

import (
	pb "mydarts/proto"
	"mydarts/server/game-service/internal/core"
	"mydarts/server/game-service/internal/stats"
)

func toGame(m *core.Match) *pb.Game {
	g := &pb.Game{
		Id:     m.ID,
		Status: string(m.Status),
		Settings: &pb.GameSettings{
			TotalPoints: int32(m.Settings.StartingPoints),
			BestOfSets:  int32(m.Settings.BestOfSets),
			BestOfLegs:  int32(m.Settings.BestOfLegs),
			DoubleOut:   m.Settings.DoubleOut,
		},
		Players:    make([]*pb.PlayerState, len(m.Players)),
		WinnerId:   m.WinnerID,
		SetNumber:  int32(m.SetNumber),
		LegNumber:  int32(m.LegNumber),
		LegsPlayed: int32(m.LegsPlayed),
		CreatedAt:  m.CreatedAt,
		FinishedAt: m.FinishedAt,
	}
	for i, p := range m.Players {
		g.Players[i] = &pb.PlayerState{
			UserId:        p.UserID,
			Order:         int32(p.Order),
			CurrentPoints: int32(p.CurrentPoints),
			LegsWonInSet:  int32(p.LegsWonInSet),
			LegsWon:       int32(p.LegsWon),
			SetsWon:       int32(p.SetsWon),
		}
	}

	turn := m.CurrentTurn
	g.CurrentTurn = &pb.TurnState{
		PlayerIndex: int32(turn.PlayerIndex),
		ThrowNumber: int32(turn.ThrowNumber),
		Throws:      make([]*pb.DartThrow, len(turn.Throws)),
		TurnPoints:  int32(turn.Points),
		Remaining:   int32(turn.Remaining),
	}
	for i, th := range turn.Throws {
		g.CurrentTurn.Throws[i] = &pb.DartThrow{Segment: int32(th.Segment), Multiplier: int32(th.Multiplier)}
	}
	return g
}

func toGameStatistics(st *stats.GameStatistics) *pb.GameStatistics {
	out := &pb.GameStatistics{
		GameId:          st.GameID,
		Status:          string(st.Status),
		WinnerId:        st.WinnerID,
		TotalSetsPlayed: int32(st.TotalSetsPlayed),
		Players:         make([]*pb.PlayerGameStats, len(st.Players)),
	}
	for i, p := range st.Players {
		o := p.OverallStats
		ps := &pb.PlayerGameStats{
			UserId: p.UserID,
			OverallStats: &pb.OverallStats{
				TotalThrows:     int32(o.TotalThrows),
				TotalPoints:     int32(o.TotalPoints),
				Average3Dart:    o.Average3Dart,
				HighestTurn:     int32(o.HighestTurn),
				HighestCheckout: int32(o.HighestCheckout),
				LegsWon:         int32(o.LegsWon),
				SetsWon:         int32(o.SetsWon),
			},
			SetStats: make([]*pb.SetStats, len(p.SetStats)),
		}
		for j, s := range p.SetStats {
			ps.SetStats[j] = &pb.SetStats{
				SetNumber:    int32(s.SetNumber),
				TotalThrows:  int32(s.TotalThrows),
				TotalPoints:  int32(s.TotalPoints),
				Average3Dart: s.Average3Dart,
				WonSet:       s.WonSet,
				HighestTurn:  int32(s.HighestTurn),
				Checkout:     int32(s.Checkout),
			}
		}
		out.Players[i] = ps
	}
	return out
}

func toUserStats(cs *stats.CareerStats) *pb.UserStats {
	return &pb.UserStats{
		UserId:          cs.UserID,
		TotalGames:      int32(cs.TotalGames),
		Wins:            int32(cs.Wins),
		TotalPoints:     int32(cs.TotalPoints),
		TotalThrows:     int32(cs.TotalThrows),
		Average3Dart:    cs.Average3Dart,
		HighestCheckout: int32(cs.HighestCheckout),
		LegsWon:         int32(cs.LegsWon),
	}
}
