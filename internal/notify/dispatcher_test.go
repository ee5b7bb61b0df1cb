package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDispatcherPublishes(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	sub := rdb.Subscribe(context.Background(), Channel)
	defer sub.Close()

	_, err := sub.Receive(context.Background())
	require.NoError(t, err)

	d := NewDispatcher(rdb, zaptest.NewLogger(t))
	defer d.Close()

	d.Dispatch(Event{
		Permalink:      "account1f2e3d",
		NotificationID: 42,
	})

	select {
	case msg := <-sub.Channel():
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
		assert.Equal(t, "account1f2e3d", ev.Permalink)
		assert.Equal(t, uint(42), ev.NotificationID)
	case <-time.After(2 * time.Second):
		t.Fatal("no message published")
	}
}

func TestDispatcherPayloadShape(t *testing.T) {
	payload, err := json.Marshal(Event{
		Permalink:      "accountabc",
		NotificationID: 7,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"permalink":"accountabc","notificationId":7}`, string(payload))
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	d := &Dispatcher{
		rdb:   rdb,
		log:   zaptest.NewLogger(t),
		queue: make(chan Event, 1),
	}

	// No worker draining: the second dispatch must not block.
	d.Dispatch(Event{NotificationID: 1})

	done := make(chan struct{})
	go func() {
		d.Dispatch(Event{NotificationID: 2})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch blocked on a full queue")
	}
}
