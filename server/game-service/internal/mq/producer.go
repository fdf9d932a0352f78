// Package mq carries game-finished events over AMQP.
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

// GameResult is published once per match, when it finishes.
type GameResult struct {
	MatchID    string    `json:"match_id"`
	WinnerID   int64     `json:"winner_id"`
	PlayerIDs  []int64   `json:"player_ids"`
	FinishedAt time.Time `json:"finished_at"`
}

// Dial opens a connection and channel and declares the durable fanout
// exchange that results are published to.
func Dial(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("mq connect: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("mq channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("mq exchange declare %s: %w", exchange, err)
	}
	return conn, ch, nil
}

// Channel is the part of *amqp.Channel the producer needs.
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Producer struct {
	mu       sync.Mutex
	ch       Channel
	exchange string
}

func NewProducer(ch Channel, exchange string) *Producer {
	return &Producer{ch: ch, exchange: exchange}
}

func (p *Producer) PublishGameResult(ctx context.Context, r GameResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(r)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.Publish(p.exchange, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    r.FinishedAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish result of %s: %w", r.MatchID, err)
	}
	return nil
}
