package core

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
)

const (
	MinPlayers = 1
	MaxPlayers = 4
)

type Settings struct {
	StartingPoints int  `json:"total_points"`
	BestOfSets     int  `json:"best_of_sets"`
	BestOfLegs     int  `json:"best_of_legs"`
	DoubleOut      bool `json:"double_out"`
}

func (s Settings) SetsToWin() int { return (s.BestOfSets + 1) / 2 }
func (s Settings) LegsToWin() int { return (s.BestOfLegs + 1) / 2 }

func (s Settings) withDefaults() Settings {
	if s.BestOfLegs == 0 {
		s.BestOfLegs = 1
	}
	return s
}

func (s Settings) Validate() error {
	if s.StartingPoints != 301 && s.StartingPoints != 501 {
		return fmt.Errorf("%w: total points must be 301 or 501, got %d", ErrInvalidSettings, s.StartingPoints)
	}
	if !oddBestOf(s.BestOfSets) {
		return fmt.Errorf("%w: best of sets must be 1, 3 or 5, got %d", ErrInvalidSettings, s.BestOfSets)
	}
	if !oddBestOf(s.BestOfLegs) {
		return fmt.Errorf("%w: best of legs must be 1, 3 or 5, got %d", ErrInvalidSettings, s.BestOfLegs)
	}
	return nil
}

func oddBestOf(n int) bool {
	return n == 1 || n == 3 || n == 5
}

// ThrowRecord is one entry of the append-only throw log.
// Every dart is recorded, including those of busted turns.
type ThrowRecord struct {
	Seq         int   `json:"seq"`
	SetNumber   int   `json:"set_number"`
	LegNumber   int   `json:"leg_number"`
	TurnNumber  int   `json:"turn_number"`
	PlayerIndex int   `json:"player_index"`
	UserID      int64 `json:"user_id"`
	Throw
	Bust       bool `json:"bust"`
	Checkout   bool `json:"checkout"`
	ScoreAfter int  `json:"score_after"`
}

// Match is the full state of one game. Published snapshots are never
// modified; the engine always works on a Clone.
type Match struct {
	ID          string           `json:"id"`
	Settings    Settings         `json:"settings"`
	Players     []PlayerLegState `json:"players"`
	CurrentTurn Turn             `json:"current_turn"`
	Status      Status           `json:"status"`
	WinnerID    *int64           `json:"winner_id,omitempty"`
	SetNumber   int              `json:"set_number"`
	LegNumber   int              `json:"leg_number"`
	LegsPlayed  int              `json:"legs_played"`
	TurnNumber  int              `json:"turn_number"`
	ThrowLog    []ThrowRecord    `json:"-"`
	CreatedAt   time.Time        `json:"created_at"`
	FinishedAt  *time.Time       `json:"finished_at,omitempty"`
}

// NewMatch validates the settings and seats the players in the given order.
func NewMatch(id string, settings Settings, playerIDs []int64, now time.Time) (*Match, error) {
	settings = settings.withDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if len(playerIDs) < MinPlayers || len(playerIDs) > MaxPlayers {
		return nil, fmt.Errorf("%w: number of players must be between %d and %d", ErrInvalidSettings, MinPlayers, MaxPlayers)
	}

	seen := make(map[int64]bool, len(playerIDs))
	players := make([]PlayerLegState, len(playerIDs))
	for i, uid := range playerIDs {
		if uid <= 0 {
			return nil, fmt.Errorf("%w: invalid player id %d", ErrInvalidSettings, uid)
		}
		if seen[uid] {
			return nil, fmt.Errorf("%w: player %d listed twice", ErrInvalidSettings, uid)
		}
		seen[uid] = true
		players[i] = NewPlayer(uid, i, settings.StartingPoints)
	}

	return &Match{
		ID:          id,
		Settings:    settings,
		Players:     players,
		CurrentTurn: newTurn(0, settings.StartingPoints),
		Status:      StatusInProgress,
		SetNumber:   1,
		LegNumber:   1,
		TurnNumber:  1,
		ThrowLog:    make([]ThrowRecord, 0),
		CreatedAt:   now,
	}, nil
}

func (m *Match) Clone() *Match {
	c := *m
	c.Players = make([]PlayerLegState, len(m.Players))
	copy(c.Players, m.Players)
	c.CurrentTurn = m.CurrentTurn.clone()
	c.ThrowLog = make([]ThrowRecord, len(m.ThrowLog), len(m.ThrowLog)+1)
	copy(c.ThrowLog, m.ThrowLog)
	if m.WinnerID != nil {
		w := *m.WinnerID
		c.WinnerID = &w
	}
	if m.FinishedAt != nil {
		f := *m.FinishedAt
		c.FinishedAt = &f
	}
	return &c
}

func (m *Match) IsFinished() bool {
	return m.Status == StatusFinished
}

func (m *Match) CurrentPlayer() PlayerLegState {
	return m.Players[m.CurrentTurn.PlayerIndex]
}

// PlayerIndex returns the seat of uid, or -1.
func (m *Match) PlayerIndex(uid int64) int {
	for i, p := range m.Players {
		if p.UserID == uid {
			return i
		}
	}
	return -1
}

func (m *Match) PlayerIDs() []int64 {
	ids := make([]int64, len(m.Players))
	for i, p := range m.Players {
		ids[i] = p.UserID
	}
	return ids
}
