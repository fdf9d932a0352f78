package core

// PlayerLegState is one player's standing inside a match.
// CurrentPoints only ever goes down within a leg and is changed by the engine alone.
type PlayerLegState struct {
	UserID        int64 `json:"user_id"`
	Order         int   `json:"order"`
	CurrentPoints int   `json:"current_points"`
	LegsWonInSet  int   `json:"legs_won_in_set"`
	LegsWon       int   `json:"legs_won"`
	SetsWon       int   `json:"sets_won"`
}

func NewPlayer(uid int64, order, startingPoints int) PlayerLegState {
	return PlayerLegState{
		UserID:        uid,
		Order:         order,
		CurrentPoints: startingPoints,
	}
}
