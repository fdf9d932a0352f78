package dao

import (
	"context"
	"errors"
	"fmt"

	"mydarts/server/game-service/internal/core"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB connects with the named driver ("mysql" or "sqlite") and migrates
// the match tables.
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.AutoMigrate(&MatchModel{}, &PlayerModel{}, &ThrowModel{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Store persists matches and their throw logs. Statistics are never stored;
// they are recomputed from the log.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateMatch inserts a new match with its players.
func (s *Store) CreateMatch(ctx context.Context, m *core.Match) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mm := toMatchModel(m)
		if err := tx.Create(&mm).Error; err != nil {
			return fmt.Errorf("create match: %w", err)
		}
		players := make([]PlayerModel, len(m.Players))
		for i, p := range m.Players {
			players[i] = toPlayerModel(m.ID, p)
		}
		if err := tx.Create(&players).Error; err != nil {
			return fmt.Errorf("create players: %w", err)
		}
		return nil
	})
}

// SaveThrow appends rec and writes the match state that resulted from it,
// all in one transaction.
func (s *Store) SaveThrow(ctx context.Context, m *core.Match, rec core.ThrowRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := toThrowModel(m.ID, rec)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("append throw %d: %w", rec.Seq, err)
		}

		mm := toMatchModel(m)
		res := tx.Model(&MatchModel{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
			"status":               mm.Status,
			"winner_id":            mm.WinnerID,
			"current_player_index": mm.CurrentPlayerIndex,
			"set_number":           mm.SetNumber,
			"leg_number":           mm.LegNumber,
			"legs_played":          mm.LegsPlayed,
			"turn_number":          mm.TurnNumber,
			"finished_at":          mm.FinishedAt,
		})
		if res.Error != nil {
			return fmt.Errorf("update match: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("update match %s: %w", m.ID, core.ErrNotFound)
		}

		for _, p := range m.Players {
			err := tx.Model(&PlayerModel{}).
				Where("match_id = ? AND user_id = ?", m.ID, p.UserID).
				Updates(map[string]interface{}{
					"current_points":  p.CurrentPoints,
					"legs_won_in_set": p.LegsWonInSet,
					"legs_won":        p.LegsWon,
					"sets_won":        p.SetsWon,
				}).Error
			if err != nil {
				return fmt.Errorf("update player %d: %w", p.UserID, err)
			}
		}
		return nil
	})
}

// GetMatch loads a match with its full throw log.
func (s *Store) GetMatch(ctx context.Context, id string) (*core.Match, error) {
	db := s.db.WithContext(ctx)

	var mm MatchModel
	if err := db.Where("id = ?", id).First(&mm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("match %s: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("get match %s: %w", id, err)
	}

	var players []PlayerModel
	if err := db.Where("match_id = ?", id).Order("player_order").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("get players of %s: %w", id, err)
	}
	var throws []ThrowModel
	if err := db.Where("match_id = ?", id).Order("seq").Find(&throws).Error; err != nil {
		return nil, fmt.Errorf("get throws of %s: %w", id, err)
	}
	return toMatch(mm, players, throws)
}

// FinishedMatchesForUser returns every finished match uid played in, oldest first.
func (s *Store) FinishedMatchesForUser(ctx context.Context, uid int64) ([]*core.Match, error) {
	db := s.db.WithContext(ctx)

	var ids []string
	if err := db.Model(&PlayerModel{}).Where("user_id = ?", uid).Pluck("match_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list matches of user %d: %w", uid, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var matches []MatchModel
	err := db.Where("id IN ? AND status = ?", ids, string(core.StatusFinished)).
		Order("created_at").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list finished matches of user %d: %w", uid, err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	finished := make([]string, len(matches))
	for i, mm := range matches {
		finished[i] = mm.ID
	}

	var players []PlayerModel
	if err := db.Where("match_id IN ?", finished).Order("match_id, player_order").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	var throws []ThrowModel
	if err := db.Where("match_id IN ?", finished).Order("match_id, seq").Find(&throws).Error; err != nil {
		return nil, fmt.Errorf("list throws: %w", err)
	}

	playersByMatch := make(map[string][]PlayerModel, len(matches))
	for _, p := range players {
		playersByMatch[p.MatchID] = append(playersByMatch[p.MatchID], p)
	}
	throwsByMatch := make(map[string][]ThrowModel, len(matches))
	for _, t := range throws {
		throwsByMatch[t.MatchID] = append(throwsByMatch[t.MatchID], t)
	}

	out := make([]*core.Match, 0, len(matches))
	for _, mm := range matches {
		m, err := toMatch(mm, playersByMatch[mm.ID], throwsByMatch[mm.ID])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
