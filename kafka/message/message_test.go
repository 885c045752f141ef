package message_test

import (
	"errors"
	"it-inventory/kafka/message"
	"it-inventory/kafka/producer"
	"it-inventory/model"
	"testing"

	"github.com/segmentio/kafka-go"
)

func capture(sent map[string]int) producer.Provider {
	return func(token string) producer.MessageProducer {
		return func(p model.Provider[[]kafka.Message]) error {
			ms, err := p()
			if err != nil {
				return err
			}
			sent[token] += len(ms)
			return nil
		}
	}
}

func TestEmitSendsBufferedMessages(t *testing.T) {
	sent := make(map[string]int)
	err := message.Emit(capture(sent))(func(buf *message.Buffer) error {
		if err := buf.Put("A", producer.SingleMessageProvider(producer.CreateKey(1), map[string]string{"k": "v"})); err != nil {
			return err
		}
		return buf.Put("A", producer.SingleMessageProvider(producer.CreateKey(2), map[string]string{"k": "w"}))
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sent["A"] != 2 {
		t.Fatalf("Expected 2 messages on topic A, got %d.", sent["A"])
	}
}

func TestEmitSkipsOnFailure(t *testing.T) {
	sent := make(map[string]int)
	expected := errors.New("rollback")
	err := message.Emit(capture(sent))(func(buf *message.Buffer) error {
		_ = buf.Put("A", producer.SingleMessageProvider(producer.CreateKey(1), "x"))
		return expected
	})
	if !errors.Is(err, expected) {
		t.Fatalf("Expected [%v], got [%v].", expected, err)
	}
	if len(sent) != 0 {
		t.Fatalf("Expected nothing emitted, got %v.", sent)
	}
}
