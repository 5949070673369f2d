package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// enqueueTimeout bounds how long Publish waits for the producer to accept
// a message. Delivery itself happens in the background.
const enqueueTimeout = 100 * time.Millisecond

var ErrPublisherBusy = errors.New("kafka producer did not accept the message in time")

// KafkaPublisher sends events to a single topic, keyed by entity id so
// events of one entity stay ordered within a partition. Publish only queues
// the message; delivery results are logged by a background drain.
type KafkaPublisher struct {
	ap     sarama.AsyncProducer
	topic  string
	source string
	log    zerolog.Logger
	done   chan struct{}
}

func NewKafkaPublisher(ap sarama.AsyncProducer, topic, source string, log zerolog.Logger) *KafkaPublisher {
	p := &KafkaPublisher{
		ap:     ap,
		topic:  topic,
		source: source,
		log:    log.With().Str("component", "KafkaPublisher").Logger(),
		done:   make(chan struct{}),
	}
	go p.drain()
	return p
}

// NewAsyncProducer builds an idempotent producer for brokers.
func NewAsyncProducer(brokers []string) (sarama.AsyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_3_2_0
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Retry.Backoff = 100 * time.Millisecond
	return sarama.NewAsyncProducer(brokers, cfg)
}

// Close flushes queued messages and waits for the drain to finish.
func (p *KafkaPublisher) Close() error {
	if p == nil || p.ap == nil {
		return nil
	}
	p.ap.AsyncClose()
	<-p.done
	return nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	if p == nil || p.ap == nil {
		return errors.New("kafka producer is not initialized")
	}
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	headers := map[string]string{
		"event-type":   string(e.Type),
		"source":       p.source,
		"content-type": "application/json",
	}
	var hs []sarama.RecordHeader
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(e.EntityID),
		Value:   sarama.ByteEncoder(body),
		Headers: hs,
	}

	timer := time.NewTimer(enqueueTimeout)
	defer timer.Stop()
	select {
	case p.ap.Input() <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrPublisherBusy
	}
}

func (p *KafkaPublisher) drain() {
	defer close(p.done)
	errs, sent := p.ap.Errors(), p.ap.Successes()
	for errs != nil || sent != nil {
		select {
		case pe, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			ev := p.log.Error().Err(pe.Err).Str("topic", pe.Msg.Topic)
			if pe.Msg.Key != nil {
				if key, err := pe.Msg.Key.Encode(); err == nil {
					ev = ev.Str("key", string(key))
				}
			}
			ev.Msg("failed to send kafka message")
		case msg, ok := <-sent:
			if !ok {
				sent = nil
				continue
			}
			p.log.Debug().
				Str("topic", msg.Topic).
				Int32("partition", msg.Partition).
				Int64("offset", msg.Offset).
				Msg("kafka message sent")
		}
	}
}
