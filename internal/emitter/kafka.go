package emitter

import (
	"context"
	"encoding/json"
	"fmt"
	"lendboard/internal/core"
	"sync"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// TransactionEvent is published for every journaled lending operation.
type TransactionEvent struct {
	Type      string `json:"type"`
	Kind      string `json:"kind"`
	Hash      string `json:"hash"`
	Market    string `json:"market"`
	Currency  string `json:"currency"`
	Amount    string `json:"amount"`
	Sender    string `json:"sender"`
	ChainID   int64  `json:"chainId"`
	Timestamp int64  `json:"timestamp"`
}

const eventTypeSubmitted = "lending_operation_submitted"

// KafkaEmitter publishes transaction events keyed by transaction hash.
type KafkaEmitter struct {
	logs   *zap.SugaredLogger
	writer MessageWriter
	mu     sync.Mutex
}

func NewKafkaEmitter(logger *zap.SugaredLogger, brokerAddress, topic string) *KafkaEmitter {
	return NewEmitter(logger, &kafka.Writer{
		Addr:     kafka.TCP(brokerAddress),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})
}

func NewEmitter(logger *zap.SugaredLogger, writer MessageWriter) *KafkaEmitter {
	return &KafkaEmitter{
		logs:   logger,
		writer: writer,
	}
}

func (k *KafkaEmitter) Publish(ctx context.Context, record core.JournalRecord) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.writer == nil {
		return fmt.Errorf("emitter closed")
	}

	event := TransactionEvent{
		Type:      eventTypeSubmitted,
		Kind:      record.Kind,
		Hash:      record.Hash,
		Market:    record.Market,
		Currency:  record.Currency,
		Amount:    record.Amount,
		Sender:    record.Sender,
		ChainID:   record.ChainID,
		Timestamp: record.CreatedAt.Unix(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Hash),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	k.logs.Infow("event emitted", "kind", event.Kind, "hash", event.Hash)
	return nil
}

func (k *KafkaEmitter) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.writer != nil {
		err := k.writer.Close()
		k.writer = nil
		return err
	}
	return nil
}
