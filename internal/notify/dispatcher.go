package notify

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Channel is the pub/sub channel consumed by the out-of-process
// real-time delivery service.
const Channel = "notification"

type Event struct {
	Permalink      string `json:"permalink"`
	NotificationID uint   `json:"notificationId"`
}

// Dispatcher publishes notification events to Redis from a background
// worker. Delivery is fire-and-forget: a failed or dropped publish never
// fails the request that created the notification.
type Dispatcher struct {
	rdb   *redis.Client
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(rdb *redis.Client, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		rdb:   rdb,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		payload, err := json.Marshal(ev)
		if err != nil {
			continue
		}

		if err := d.rdb.Publish(context.Background(), Channel, payload).Err(); err != nil {
			d.log.Warn("notification publish failed",
				zap.Uint("notification_id", ev.NotificationID),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos o evento (nunca quebrar a API)
		d.log.Warn("notification queue full, dropping event",
			zap.Uint("notification_id", ev.NotificationID),
		)
	}
}

// Close stops the worker after draining the queue.
func (d *Dispatcher) Close() {
	close(d.queue)
}
