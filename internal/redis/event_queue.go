package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"emergencyAPI/internal/domain"
	"emergencyAPI/pkg/e"

	"github.com/redis/go-redis/v9"
)

// EventQueue is a FIFO of report events on a redis list: LPUSH in, BRPOP out.
type EventQueue struct {
	client *redis.Client
	key    string
}

func NewEventQueue(client *redis.Client, key string) *EventQueue {
	return &EventQueue{client: client, key: key}
}

func (q *EventQueue) Enqueue(ctx context.Context, event domain.ReportEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return e.Wrap("redis.EventQueue.Enqueue: encode", err)
	}
	if err := q.client.LPush(ctx, q.key, b).Err(); err != nil {
		return e.Wrap("redis.EventQueue.Enqueue", err)
	}
	return nil
}

// Dequeue blocks up to timeout and returns e.ErrQueueEmpty when nothing
// arrived.
func (q *EventQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.ReportEvent, error) {
	var ev domain.ReportEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, e.Wrap("redis.EventQueue.Dequeue", err)
	}
	if len(res) < 2 {
		return ev, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, e.Wrap("redis.EventQueue.Dequeue: decode", err)
	}
	return ev, nil
}

func (q *EventQueue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, e.Wrap("redis.EventQueue.Len", err)
	}
	return n, nil
}
