package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/dradle/my-bike-rent/internal/model"
)

type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration // default 50ms
	WriteTimeout time.Duration // default 5s
	Log          *zap.Logger   // receives async delivery failures
}

// Producer is a thin wrapper around segmentio/kafka-go Writer publishing
// lookup events as JSON keyed by identifier.
type Producer struct {
	w messageWriter
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewProducerFromConfig(c Config) *Producer {
	bt := c.BatchTimeout
	if bt <= 0 {
		bt = 50 * time.Millisecond
	}
	wt := c.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}
	lg := c.Log
	if lg == nil {
		lg = zap.NewNop()
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           bt,
		WriteTimeout:           wt,
		RequiredAcks:           kafka.RequireOne,
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion:             logFailedDeliveries(lg, c.Topic),
	}

	return &Producer{w: w}
}

// Async writes return before the broker answers; delivery errors only
// surface here.
func logFailedDeliveries(lg *zap.Logger, topic string) func([]kafka.Message, error) {
	return func(msgs []kafka.Message, err error) {
		if err == nil {
			return
		}
		lg.Warn("kafka: lookup events not delivered",
			zap.String("topic", topic),
			zap.Int("count", len(msgs)),
			zap.Error(err))
	}
}

func (p *Producer) Publish(ctx context.Context, ev model.LookupEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Identifier),
		Value: b,
		Time:  ev.At,
	})
}

func (p *Producer) Close() error { return p.w.Close() }
