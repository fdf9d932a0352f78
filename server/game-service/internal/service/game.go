// Package service ties the match engine to persistence, the cache and the
// event queue.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"mydarts/server/game-service/internal/core"
	"mydarts/server/game-service/internal/mq"
	"mydarts/server/game-service/internal/stats"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// MatchStore is the durable source of truth for matches.
type MatchStore interface {
	CreateMatch(ctx context.Context, m *core.Match) error
	SaveThrow(ctx context.Context, m *core.Match, rec core.ThrowRecord) error
	GetMatch(ctx context.Context, id string) (*core.Match, error)
	FinishedMatchesForUser(ctx context.Context, uid int64) ([]*core.Match, error)
}

// Cache is optional. GetCareer returns nil, nil on a miss.
type Cache interface {
	AddActive(ctx context.Context, matchID string) error
	ActiveMatches(ctx context.Context) ([]string, error)
	MarkFinished(ctx context.Context, matchID string, playerIDs []int64) error
	GetCareer(ctx context.Context, uid int64) (*stats.CareerStats, error)
	SetCareer(ctx context.Context, cs *stats.CareerStats) error
}

type Publisher interface {
	PublishGameResult(ctx context.Context, r mq.GameResult) error
}

type Options struct {
	LockTimeout time.Duration
	IdleTTL     time.Duration
}

type GameService struct {
	engine  *core.Engine
	matches *core.Manager
	store   MatchStore
	cache   Cache
	events  Publisher
	careers singleflight.Group
	newID   func() string

	// careerGen counts finished matches per user; a career computed across
	// a bump is not cached
	genMu     sync.Mutex
	careerGen map[int64]uint64
}

// NewGameService wires the service. cache and events may be nil.
func NewGameService(store MatchStore, cache Cache, events Publisher, opts Options) *GameService {
	return &GameService{
		engine:  core.NewEngine(),
		matches: core.NewManager(store.GetMatch, opts.LockTimeout, opts.IdleTTL),
		store:   store,
		cache:   cache,
		events:  events,
		newID:   uuid.NewString,

		careerGen: make(map[int64]uint64),
	}
}

// Run evicts idle matches from memory until ctx is done.
func (s *GameService) Run(ctx context.Context, cleanupInterval time.Duration) {
	s.matches.StartCleanupTask(ctx, cleanupInterval)
}

func (s *GameService) CreateGame(ctx context.Context, settings core.Settings, playerIDs []int64) (*core.Match, error) {
	m, err := core.NewMatch(s.newID(), settings, playerIDs, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateMatch(ctx, m); err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	s.matches.Add(m)

	if s.cache != nil {
		if err := s.cache.AddActive(ctx, m.ID); err != nil {
			slog.Warn("index active match failed", "match_id", m.ID, "error", err)
		}
	}
	slog.Info("game created", "match_id", m.ID, "players", playerIDs, "total_points", m.Settings.StartingPoints)
	return m, nil
}

func (s *GameService) GetGame(ctx context.Context, id string) (*core.Match, error) {
	return s.matches.Get(ctx, id)
}

// SubmitThrow applies one dart. The new state is visible only once its throw
// has been committed to the store.
func (s *GameService) SubmitThrow(ctx context.Context, id string, userID int64, th core.Throw) (*core.Match, error) {
	m, err := s.matches.Update(ctx, id, func(cur *core.Match) (*core.Match, error) {
		next, rec, err := s.engine.Submit(cur, userID, th)
		if err != nil {
			return nil, err
		}
		if err := s.store.SaveThrow(ctx, next, rec); err != nil {
			return nil, fmt.Errorf("commit throw %d of %s: %w", rec.Seq, id, err)
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	if m.IsFinished() {
		s.finished(ctx, m)
	}
	return m, nil
}

func (s *GameService) finished(ctx context.Context, m *core.Match) {
	slog.Info("game finished", "match_id", m.ID, "winner_id", *m.WinnerID)

	s.genMu.Lock()
	for _, uid := range m.PlayerIDs() {
		s.careerGen[uid]++
	}
	s.genMu.Unlock()

	if s.cache != nil {
		if err := s.cache.MarkFinished(ctx, m.ID, m.PlayerIDs()); err != nil {
			slog.Warn("update cache for finished match failed", "match_id", m.ID, "error", err)
		}
	}
	if s.events != nil {
		err := s.events.PublishGameResult(ctx, mq.GameResult{
			MatchID:    m.ID,
			WinnerID:   *m.WinnerID,
			PlayerIDs:  m.PlayerIDs(),
			FinishedAt: *m.FinishedAt,
		})
		if err != nil {
			slog.Warn("publish game result failed", "match_id", m.ID, "error", err)
		}
	}
}

func (s *GameService) GetGameStatistics(ctx context.Context, id string) (*stats.GameStatistics, error) {
	m, err := s.matches.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	st := stats.Compute(m)
	return &st, nil
}

// GetUserStats aggregates a user's finished matches. Concurrent requests for
// the same user share one computation.
func (s *GameService) GetUserStats(ctx context.Context, uid int64) (*stats.CareerStats, error) {
	if uid <= 0 {
		return nil, fmt.Errorf("user %d: %w", uid, core.ErrNotFound)
	}

	if s.cache != nil {
		cs, err := s.cache.GetCareer(ctx, uid)
		if err != nil {
			slog.Warn("read cached career failed", "user_id", uid, "error", err)
		}
		if cs != nil {
			return cs, nil
		}
	}

	// the shared load outlives any single caller
	shared := context.WithoutCancel(ctx)
	ch := s.careers.DoChan(strconv.FormatInt(uid, 10), func() (interface{}, error) {
		return s.loadCareer(shared, uid)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*stats.CareerStats), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *GameService) loadCareer(ctx context.Context, uid int64) (*stats.CareerStats, error) {
	s.genMu.Lock()
	gen := s.careerGen[uid]
	s.genMu.Unlock()

	matches, err := s.store.FinishedMatchesForUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("load matches of user %d: %w", uid, err)
	}
	cs := stats.ComputeCareer(uid, matches)

	if s.cache != nil {
		s.genMu.Lock()
		defer s.genMu.Unlock()
		if s.careerGen[uid] != gen {
			// a match finished while loading; the result may miss it
			return &cs, nil
		}
		if err := s.cache.SetCareer(ctx, &cs); err != nil {
			slog.Warn("cache career failed", "user_id", uid, "error", err)
		}
	}
	return &cs, nil
}

// ListActiveGames reads the shared index when there is one, otherwise the
// matches this instance holds in memory.
func (s *GameService) ListActiveGames(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		return s.cache.ActiveMatches(ctx)
	}
	return s.matches.ActiveIDs(), nil
}
