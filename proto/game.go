// Package pb holds the messages and service contract between the gateway and
// the game service.
package pb

import "time"

type GameSettings struct {
	TotalPoints int32 `json:"total_points"`
	BestOfSets  int32 `json:"best_of_sets"`
	BestOfLegs  int32 `json:"best_of_legs"`
	DoubleOut   bool  `json:"double_out"`
}

type PlayerState struct {
	UserId        int64 `json:"user_id"`
	Order         int32 `json:"order"`
	CurrentPoints int32 `json:"current_points"`
	LegsWonInSet  int32 `json:"legs_won_in_set"`
	LegsWon       int32 `json:"legs_won"`
	SetsWon       int32 `json:"sets_won"`
}

type DartThrow struct {
	Segment    int32 `json:"segment"`
	Multiplier int32 `json:"multiplier"`
}

type TurnState struct {
	PlayerIndex int32        `json:"player_index"`
	ThrowNumber int32        `json:"throw_number"`
	Throws      []*DartThrow `json:"throws"`
	TurnPoints  int32        `json:"turn_points"`
	Remaining   int32        `json:"remaining"`
}

type Game struct {
	Id          string         `json:"id"`
	Status      string         `json:"status"`
	Settings    *GameSettings  `json:"settings"`
	Players     []*PlayerState `json:"players"`
	CurrentTurn *TurnState     `json:"current_turn"`
	WinnerId    *int64         `json:"winner_id,omitempty"`
	SetNumber   int32          `json:"set_number"`
	LegNumber   int32          `json:"leg_number"`
	LegsPlayed  int32          `json:"legs_played"`
	CreatedAt   time.Time      `json:"created_at"`
	FinishedAt  *time.Time     `json:"finished_at,omitempty"`
}

type CreateGameReq struct {
	TotalPoints int32   `json:"total_points"`
	BestOf      int32   `json:"best_of"`
	BestOfLegs  int32   `json:"best_of_legs"`
	DoubleOut   bool    `json:"double_out"`
	PlayerIds   []int64 `json:"player_ids"`
}

type GetGameReq struct {
	GameId string `json:"game_id"`
}

type SubmitThrowReq struct {
	GameId     string `json:"game_id"`
	UserId     int64  `json:"user_id"`
	Points     int32  `json:"points"`
	Multiplier int32  `json:"multiplier"`
}

type ListActiveGamesReq struct{}

type ListActiveGamesResp struct {
	GameIds []string `json:"game_ids"`
}
