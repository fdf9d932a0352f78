package dao

import (
	"fmt"
	"time"

	"mydarts/server/game-service/internal/core"
)

type MatchModel struct {
	ID                 string `gorm:"type:varchar(36);primaryKey"`
	Status             string `gorm:"type:varchar(16);index;not null"`
	StartingPoints     int    `gorm:"not null"`
	BestOfSets         int    `gorm:"not null"`
	BestOfLegs         int    `gorm:"not null"`
	DoubleOut          bool   `gorm:"not null"`
	WinnerID           *int64
	CurrentPlayerIndex int `gorm:"not null"`
	SetNumber          int `gorm:"not null"`
	LegNumber          int `gorm:"not null"`
	LegsPlayed         int `gorm:"not null"`
	TurnNumber         int `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	FinishedAt         *time.Time
}

func (MatchModel) TableName() string { return "matches" }

type PlayerModel struct {
	MatchID       string `gorm:"type:varchar(36);primaryKey"`
	UserID        int64  `gorm:"primaryKey;autoIncrement:false;index"`
	PlayerOrder   int    `gorm:"not null"`
	CurrentPoints int    `gorm:"not null"`
	LegsWonInSet  int    `gorm:"not null"`
	LegsWon       int    `gorm:"not null"`
	SetsWon       int    `gorm:"not null"`
}

func (PlayerModel) TableName() string { return "match_players" }

// ThrowModel rows are append-only. (match_id, seq) is unique, so a sequence
// number can only ever be committed once.
type ThrowModel struct {
	MatchID     string `gorm:"type:varchar(36);primaryKey"`
	Seq         int    `gorm:"primaryKey;autoIncrement:false"`
	SetNumber   int    `gorm:"not null"`
	LegNumber   int    `gorm:"not null"`
	TurnNumber  int    `gorm:"not null"`
	PlayerIndex int    `gorm:"not null"`
	UserID      int64  `gorm:"index;not null"`
	Segment     int    `gorm:"not null"`
	Multiplier  int    `gorm:"not null"`
	Bust        bool   `gorm:"not null"`
	Checkout    bool   `gorm:"not null"`
	ScoreAfter  int    `gorm:"not null"`
	CreatedAt   time.Time
}

func (ThrowModel) TableName() string { return "match_throws" }

func toMatchModel(m *core.Match) MatchModel {
	return MatchModel{
		ID:                 m.ID,
		Status:             string(m.Status),
		StartingPoints:     m.Settings.StartingPoints,
		BestOfSets:         m.Settings.BestOfSets,
		BestOfLegs:         m.Settings.BestOfLegs,
		DoubleOut:          m.Settings.DoubleOut,
		WinnerID:           m.WinnerID,
		CurrentPlayerIndex: m.CurrentTurn.PlayerIndex,
		SetNumber:          m.SetNumber,
		LegNumber:          m.LegNumber,
		LegsPlayed:         m.LegsPlayed,
		TurnNumber:         m.TurnNumber,
		CreatedAt:          m.CreatedAt,
		FinishedAt:         m.FinishedAt,
	}
}

func toPlayerModel(matchID string, p core.PlayerLegState) PlayerModel {
	return PlayerModel{
		MatchID:       matchID,
		UserID:        p.UserID,
		PlayerOrder:   p.Order,
		CurrentPoints: p.CurrentPoints,
		LegsWonInSet:  p.LegsWonInSet,
		LegsWon:       p.LegsWon,
		SetsWon:       p.SetsWon,
	}
}

func toThrowModel(matchID string, r core.ThrowRecord) ThrowModel {
	return ThrowModel{
		MatchID:     matchID,
		Seq:         r.Seq,
		SetNumber:   r.SetNumber,
		LegNumber:   r.LegNumber,
		TurnNumber:  r.TurnNumber,
		PlayerIndex: r.PlayerIndex,
		UserID:      r.UserID,
		Segment:     r.Segment,
		Multiplier:  r.Multiplier,
		Bust:        r.Bust,
		Checkout:    r.Checkout,
		ScoreAfter:  r.ScoreAfter,
	}
}

// toMatch rebuilds the in-memory match. players must be sorted by order and
// throws by seq.
func toMatch(mm MatchModel, players []PlayerModel, throws []ThrowModel) (*core.Match, error) {
	m := &core.Match{
		ID: mm.ID,
		Settings: core.Settings{
			StartingPoints: mm.StartingPoints,
			BestOfSets:     mm.BestOfSets,
			BestOfLegs:     mm.BestOfLegs,
			DoubleOut:      mm.DoubleOut,
		},
		Players:    make([]core.PlayerLegState, len(players)),
		Status:     core.Status(mm.Status),
		WinnerID:   mm.WinnerID,
		SetNumber:  mm.SetNumber,
		LegNumber:  mm.LegNumber,
		LegsPlayed: mm.LegsPlayed,
		TurnNumber: mm.TurnNumber,
		ThrowLog:   make([]core.ThrowRecord, len(throws)),
		CreatedAt:  mm.CreatedAt,
		FinishedAt: mm.FinishedAt,
	}
	for i, p := range players {
		m.Players[i] = core.PlayerLegState{
			UserID:        p.UserID,
			Order:         p.PlayerOrder,
			CurrentPoints: p.CurrentPoints,
			LegsWonInSet:  p.LegsWonInSet,
			LegsWon:       p.LegsWon,
			SetsWon:       p.SetsWon,
		}
	}

	var open []core.Throw
	for i, t := range throws {
		m.ThrowLog[i] = core.ThrowRecord{
			Seq:         t.Seq,
			SetNumber:   t.SetNumber,
			LegNumber:   t.LegNumber,
			TurnNumber:  t.TurnNumber,
			PlayerIndex: t.PlayerIndex,
			UserID:      t.UserID,
			Throw:       core.Throw{Segment: t.Segment, Multiplier: t.Multiplier},
			Bust:        t.Bust,
			Checkout:    t.Checkout,
			ScoreAfter:  t.ScoreAfter,
		}
		if t.TurnNumber == mm.TurnNumber {
			open = append(open, m.ThrowLog[i].Throw)
		}
	}

	idx := mm.CurrentPlayerIndex
	if idx < 0 || idx >= len(m.Players) {
		return nil, fmt.Errorf("match %s: current player %d out of range", mm.ID, idx)
	}
	if m.IsFinished() {
		// the checkout turn stays on display
		m.CurrentTurn = core.Turn{PlayerIndex: idx, ThrowNumber: len(open), Throws: open}
		for _, th := range open {
			m.CurrentTurn.Points += th.Value()
		}
		return m, nil
	}
	turn, err := core.RestoreTurn(idx, m.Players[idx].CurrentPoints, open, m.Settings.DoubleOut)
	if err != nil {
		return nil, fmt.Errorf("match %s: restore turn: %w", mm.ID, err)
	}
	m.CurrentTurn = turn
	return m, nil
}
