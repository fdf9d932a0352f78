package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"
)

// Invalidator drops cached per-user data.
type Invalidator interface {
	DeleteCareer(ctx context.Context, uids ...int64) error
}

type action int

const (
	ack action = iota
	drop
	requeue
)

// handle decides what to do with one delivery body.
func handle(ctx context.Context, body []byte, inv Invalidator) action {
	var r GameResult
	if err := json.Unmarshal(body, &r); err != nil {
		slog.Warn("dropping malformed game result", "error", err)
		return drop
	}
	if err := inv.DeleteCareer(ctx, r.PlayerIDs...); err != nil {
		slog.Error("invalidate career stats failed", "match_id", r.MatchID, "error", err)
		return requeue
	}
	slog.Debug("career stats invalidated", "match_id", r.MatchID, "players", r.PlayerIDs)
	return ack
}

// StartConsumer invalidates the cached career stats of every player in a
// finished match. Each instance binds its own exclusive queue to the fanout
// exchange, so every instance sees every result, including those published
// elsewhere. It returns when ctx is done or the delivery channel closes.
func StartConsumer(ctx context.Context, ch *amqp.Channel, exchange string, inv Invalidator) error {
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("declare consumer queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, "", exchange, false, nil); err != nil {
		return fmt.Errorf("bind %s to %s: %w", q.Name, exchange, err)
	}
	msgs, err := ch.Consume(q.Name, "", false, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("register consumer on %s: %w", q.Name, err)
	}

	slog.Info("mq consumer started", "exchange", exchange, "queue", q.Name)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			switch handle(ctx, msg.Body, inv) {
			case ack:
				msg.Ack(false)
			case drop:
				msg.Nack(false, false)
			case requeue:
				msg.Nack(false, true)
			}
		}
	}
}
