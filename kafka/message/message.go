package message

import (
	"it-inventory/kafka/producer"
	"it-inventory/model"
	"sync"

	"github.com/segmentio/kafka-go"
)

// Buffer collects messages produced during a unit of work so they are only emitted once the
// work has committed.
type Buffer struct {
	mu       sync.Mutex
	messages map[string][]kafka.Message
	order    []string
}

func NewBuffer() *Buffer {
	return &Buffer{messages: make(map[string][]kafka.Message)}
}

func (b *Buffer) Put(topic string, p model.Provider[[]kafka.Message]) error {
	ms, err := p()
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.messages[topic]; !ok {
		b.order = append(b.order, topic)
	}
	b.messages[topic] = append(b.messages[topic], ms...)
	return nil
}

func (b *Buffer) GetAll() map[string][]kafka.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := make(map[string][]kafka.Message, len(b.messages))
	for k, v := range b.messages {
		r[k] = append([]kafka.Message(nil), v...)
	}
	return r
}

func (b *Buffer) Topics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.order...)
}

// Emit runs f against a fresh buffer and, if f succeeds, hands every buffered message to the producer.
func Emit(p producer.Provider) func(f func(buf *Buffer) error) error {
	return func(f func(buf *Buffer) error) error {
		buf := NewBuffer()
		if err := f(buf); err != nil {
			return err
		}
		all := buf.GetAll()
		for _, t := range buf.Topics() {
			if err := p(t)(model.FixedProvider(all[t])); err != nil {
				return err
			}
		}
		return nil
	}
}
