package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	podredis "pod/internal/adapters/out/redis"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unknownEvent struct{ id kernel.UUID }

func (e unknownEvent) EventName() string        { return "delivery.unknown" }
func (e unknownEvent) AggregateID() kernel.UUID { return e.id }

func newClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func receive(t *testing.T, ch <-chan *goredis.Message) podredis.Message {
	t.Helper()
	select {
	case raw := <-ch:
		var msg podredis.Message
		require.NoError(t, json.Unmarshal([]byte(raw.Payload), &msg))
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
		return podredis.Message{}
	}
}

func TestEventPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes completed and reassigned events in order", func(t *testing.T) {
		_, client := newClient(t)
		sub := client.Subscribe(ctx, podredis.DefaultChannel)
		defer sub.Close()
		_, err := sub.Receive(ctx)
		require.NoError(t, err)
		ch := sub.Channel()

		deliveryID, billID := kernel.NewUUID(), kernel.NewUUID()
		oldMessenger, newMessenger := kernel.NewUUID(), kernel.NewUUID()
		at := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

		publisher := podredis.NewEventPublisher(client, "")
		err = publisher.Publish(ctx,
			delivery.DeliveryCompleted{DeliveryID: deliveryID, BillID: billID, MessengerID: oldMessenger, OccurredAt: at},
			delivery.DeliveryReassigned{DeliveryID: deliveryID, BillID: billID, PreviousMessengerID: oldMessenger, NewMessengerID: newMessenger, OccurredAt: at},
		)
		require.NoError(t, err)

		first := receive(t, ch)
		assert.Equal(t, "delivery.completed", first.Event)
		assert.Equal(t, deliveryID.String(), first.DeliveryID)
		assert.Equal(t, billID.String(), first.BillID)
		assert.Equal(t, oldMessenger.String(), first.MessengerID)
		assert.Empty(t, first.PreviousMessengerID)
		assert.True(t, at.Equal(first.OccurredAt))

		second := receive(t, ch)
		assert.Equal(t, "delivery.reassigned", second.Event)
		assert.Equal(t, newMessenger.String(), second.MessengerID)
		assert.Equal(t, oldMessenger.String(), second.PreviousMessengerID)
	})

	t.Run("custom channel", func(t *testing.T) {
		_, client := newClient(t)
		sub := client.Subscribe(ctx, "custom")
		defer sub.Close()
		_, err := sub.Receive(ctx)
		require.NoError(t, err)

		publisher := podredis.NewEventPublisher(client, "custom")
		require.NoError(t, publisher.Publish(ctx, delivery.DeliveryCompleted{
			DeliveryID: kernel.NewUUID(), BillID: kernel.NewUUID(), MessengerID: kernel.NewUUID(), OccurredAt: time.Now(),
		}))

		assert.Equal(t, "delivery.completed", receive(t, sub.Channel()).Event)
	})

	t.Run("no events is a no-op", func(t *testing.T) {
		_, client := newClient(t)
		assert.NoError(t, podredis.NewEventPublisher(client, "").Publish(ctx))
	})

	t.Run("unsupported event is rejected", func(t *testing.T) {
		_, client := newClient(t)
		err := podredis.NewEventPublisher(client, "").Publish(ctx, unknownEvent{id: kernel.NewUUID()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivery.unknown")
	})

	t.Run("server down returns error", func(t *testing.T) {
		mr, client := newClient(t)
		mr.Close()

		err := podredis.NewEventPublisher(client, "").Publish(ctx, delivery.DeliveryCompleted{
			DeliveryID: kernel.NewUUID(), BillID: kernel.NewUUID(), MessengerID: kernel.NewUUID(), OccurredAt: time.Now(),
		})
		assert.Error(t, err)
	})
}

func TestNopPublisher_Publish(t *testing.T) {
	assert.NoError(t, podredis.NopPublisher{}.Publish(context.Background(), delivery.DeliveryCompleted{}))
}
