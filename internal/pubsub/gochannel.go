package pubsub

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"
)

// GoChannelBus 用 watermill 的 GoChannel 實作行程內的匯流排
type GoChannelBus struct {
	pub    message.Publisher
	sub    message.Subscriber
	logger zerolog.Logger
}

const metaKeyTopic = "topic"

func NewGoChannelBus(logger zerolog.Logger) *GoChannelBus {
	wmLogger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(gochannel.Config{}, wmLogger)

	return &GoChannelBus{
		pub:    goChannel,
		sub:    goChannel,
		logger: logger,
	}
}

func toWatermillMessage(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	return wmMsg
}

func fromWatermillMessage(wmMsg *message.Message) Message {
	metadata := make(map[string]string)
	for k, v := range wmMsg.Metadata {
		if k != metaKeyTopic {
			metadata[k] = v
		}
	}
	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

func (b *GoChannelBus) Publish(ctx context.Context, msg Message) error {
	return b.pub.Publish(msg.Topic, toWatermillMessage(msg))
}

func (b *GoChannelBus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	// 處理迴圈放到背景，讓 Subscribe 立刻回傳
	go func() {
		for wmMsg := range messages {
			msg := fromWatermillMessage(wmMsg)
			if err := handler(ctx, msg); err != nil {
				b.logger.Error().Err(err).Str("topic", topic).Str("msg_id", wmMsg.UUID).
					Msg("handle bus message failed")
				wmMsg.Nack()
				continue
			}
			wmMsg.Ack()
		}
	}()

	return nil
}

func (b *GoChannelBus) Close() error {
	return b.pub.Close()
}
