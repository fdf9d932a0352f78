package pb

type SetStats struct {
	SetNumber    int32   `json:"set_number"`
	TotalThrows  int32   `json:"total_throws"`
	TotalPoints  int32   `json:"total_points"`
	Average3Dart float64 `json:"average_3_dart"`
	WonSet       bool    `json:"won_set"`
	HighestTurn  int32   `json:"highest_turn"`
	Checkout     int32   `json:"checkout,omitempty"`
}

type OverallStats struct {
	TotalThrows     int32   `json:"total_throws"`
	TotalPoints     int32   `json:"total_points"`
	Average3Dart    float64 `json:"average_3_dart"`
	HighestTurn     int32   `json:"highest_turn"`
	HighestCheckout int32   `json:"highest_checkout"`
	LegsWon         int32   `json:"legs_won"`
	SetsWon         int32   `json:"sets_won"`
}

type PlayerGameStats struct {
	UserId       int64         `json:"user_id"`
	OverallStats *OverallStats `json:"overall_stats"`
	SetStats     []*SetStats   `json:"set_stats"`
}

type GameStatistics struct {
	GameId          string             `json:"game_id"`
	Status          string             `json:"status"`
	WinnerId        *int64             `json:"winner_id,omitempty"`
	TotalSetsPlayed int32              `json:"total_sets_played"`
	Players         []*PlayerGameStats `json:"players"`
}

type GetGameStatisticsReq struct {
	GameId string `json:"game_id"`
}

type GetUserStatsReq struct {
	UserId int64 `json:"user_id"`
}

type UserStats struct {
	UserId          int64   `json:"user_id"`
	TotalGames      int32   `json:"total_games"`
	Wins            int32   `json:"wins"`
	TotalPoints     int32   `json:"total_points"`
	TotalThrows     int32   `json:"total_throws"`
	Average3Dart    float64 `json:"average_3_dart"`
	HighestCheckout int32   `json:"highest_checkout"`
	LegsWon         int32   `json:"legs_won"`
}
