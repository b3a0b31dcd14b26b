package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribeRoundTrip(t *testing.T) {
	bus := NewGoChannelBus(zerolog.Nop())
	defer bus.Close()

	received := make(chan Message, 1)
	err := bus.Subscribe(context.Background(), "team.abc", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = bus.Publish(context.Background(), Message{
		Topic:    "team.abc",
		Payload:  []byte(`{"hello":"world"}`),
		Metadata: map[string]string{"exclude_client": "c1"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "team.abc", msg.Topic)
		assert.JSONEq(t, `{"hello":"world"}`, string(msg.Payload))
		assert.Equal(t, "c1", msg.Metadata["exclude_client"])
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestSubscribeIsTopicScoped(t *testing.T) {
	bus := NewGoChannelBus(zerolog.Nop())
	defer bus.Close()

	received := make(chan Message, 1)
	err := bus.Subscribe(context.Background(), "team.a", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), Message{Topic: "team.b", Payload: []byte(`{}`)}))

	select {
	case <-received:
		t.Fatal("received message from another topic")
	case <-time.After(200 * time.Millisecond):
	}
}
