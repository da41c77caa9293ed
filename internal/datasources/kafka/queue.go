package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

const (
	DefaultTopic   = "articles.fetched"
	DefaultGroupID = "news-summarizer"
)

const (
	readTimeout         = 100 * time.Millisecond
	flushTimeoutMs      = 5000
	readErrorBackoff    = 500 * time.Millisecond
	producerEventsLabel = "kafka producer"
)

var _ datasources.ArticleQueue = (*Queue)(nil)

type Config struct {
	Brokers string
	Topic   string
	GroupID string
}

// Queue publishes fetched articles to a Kafka topic and consumes them in Run.
type Queue struct {
	cfg      Config
	producer *kafka.Producer
	handler  datasources.FeedItemHandler
}

func NewQueue(ctx context.Context, cfg Config, handler datasources.FeedItemHandler) (*Queue, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Brokers,
		"acks":              "all",
	})
	if err != nil {
		return nil, fmt.Errorf("creating Kafka producer: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	go func() {
		for e := range p.Events() {
			if kerr, ok := e.(kafka.Error); ok {
				logger.ErrorContext(ctx, "Kafka error", "source", producerEventsLabel, "error", kerr)
			}
		}
	}()

	return &Queue{cfg: cfg, producer: p, handler: handler}, nil
}

// Close flushes pending messages and releases the producer.
func (q *Queue) Close(ctx context.Context) {
	if remaining := q.producer.Flush(flushTimeoutMs); remaining > 0 {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "messages left unflushed on Kafka producer close", "remaining", remaining)
	}
	q.producer.Close()
}

// Enqueue publishes the item and waits for the broker to acknowledge it.
func (q *Queue) Enqueue(ctx context.Context, item domain.FeedItem) error {
	value, err := encodeFeedItem(item)
	if err != nil {
		return err
	}

	topic := q.cfg.Topic
	deliveryChan := make(chan kafka.Event, 1)

	err = q.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(item.URL),
		Value:          value,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("producing message: %w", err)
	}

	select {
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event: %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("delivering message: %w", m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// Run consumes the topic until ctx is done. An offset is committed once its item has been handled,
// whether or not handling succeeded; undecodable messages are skipped.
func (q *Queue) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  q.cfg.Brokers,
		"group.id":           q.cfg.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		return fmt.Errorf("creating Kafka consumer: %w", err)
	}
	defer func() { _ = c.Close() }()

	if err := c.SubscribeTopics([]string{q.cfg.Topic}, nil); err != nil {
		return fmt.Errorf("subscribing to topic %s: %w", q.cfg.Topic, err)
	}

	logger.InfoContext(ctx, "Kafka article consumer started", "topic", q.cfg.Topic, "group_id", q.cfg.GroupID)

	for {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "Kafka article consumer stopping", "topic", q.cfg.Topic)
			return ctx.Err()
		default:
		}

		msg, err := c.ReadMessage(readTimeout)
		if err != nil {
			var kerr kafka.Error
			if errors.As(err, &kerr) {
				if kerr.Code() == kafka.ErrTimedOut {
					continue
				}
				if kerr.IsFatal() {
					return fmt.Errorf("reading from topic %s: %w", q.cfg.Topic, err)
				}
			}
			logger.ErrorContext(ctx, "error reading Kafka message", "error", err, "topic", q.cfg.Topic)
			time.Sleep(readErrorBackoff)
			continue
		}

		item, err := decodeFeedItem(msg.Value)
		if err != nil {
			logger.ErrorContext(ctx, "skipping undecodable article message", "error", err, "topic", q.cfg.Topic)
		} else if err := q.handler(ctx, item); err != nil {
			logger.ErrorContext(ctx, "error processing queued article", "error", err, "url", item.URL)
		}

		if _, err := c.CommitMessage(msg); err != nil {
			logger.ErrorContext(ctx, "error committing Kafka offset", "error", err, "topic", q.cfg.Topic)
		}
	}
}

func encodeFeedItem(item domain.FeedItem) ([]byte, error) {
	value, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encoding feed item: %w", err)
	}
	return value, nil
}

func decodeFeedItem(value []byte) (domain.FeedItem, error) {
	var item domain.FeedItem
	if err := json.Unmarshal(value, &item); err != nil {
		return domain.FeedItem{}, fmt.Errorf("decoding feed item: %w", err)
	}
	if item.URL == "" {
		return domain.FeedItem{}, errors.New("decoding feed item: missing url")
	}
	return item, nil
}
