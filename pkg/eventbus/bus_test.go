package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebridge-be/pkg/events"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	received := make(chan events.Event, 1)
	err := bus.Subscribe(context.Background(), "item.posted", func(ctx context.Context, event events.Event) error {
		received <- event
		return nil
	})
	require.NoError(t, err)

	err = bus.Publish(context.Background(), events.New("item.posted", map[string]interface{}{
		"item_id": "abc",
	}))
	require.NoError(t, err)

	select {
	case event := <-received:
		assert.Equal(t, "item.posted", event.EventType())
		assert.Equal(t, "abc", event.Payload()["item_id"])
		assert.WithinDuration(t, time.Now(), event.Timestamp(), 5*time.Second)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber never received the event")
	}
}

func TestSubscribersAreTopicScoped(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	var mu sync.Mutex
	var got []string
	err := bus.Subscribe(context.Background(), "claim.approved", func(ctx context.Context, event events.Event) error {
		mu.Lock()
		got = append(got, event.EventType())
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), events.New("claim.rejected", nil)))
	require.NoError(t, bus.Publish(context.Background(), events.New("claim.approved", nil)))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1 && got[0] == "claim.approved"
	}, 2*time.Second, 10*time.Millisecond)
}

type failingForwarder struct {
	calls int
}

func (f *failingForwarder) Publish(ctx context.Context, event events.Event) error {
	f.calls++
	return errors.New("nats is down")
}

// A dead forwarder must not fail local publishing.
func TestForwarderFailureIsSwallowed(t *testing.T) {
	forwarder := &failingForwarder{}
	bus := New(forwarder)
	defer bus.Close()

	err := bus.Publish(context.Background(), events.New("ngo.approved", nil))
	assert.NoError(t, err)
	assert.Equal(t, 1, forwarder.calls)
}
