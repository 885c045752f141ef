package producer

import (
	"context"
	"encoding/json"
	"it-inventory/model"
	"os"
	"strconv"
	"sync"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type registry struct {
	mu      sync.RWMutex
	brokers []string
	topics  map[string]string
	writers map[string]*kafka.Writer
}

var r *registry
var once sync.Once

func getRegistry() *registry {
	once.Do(func() {
		r = &registry{topics: make(map[string]string), writers: make(map[string]*kafka.Writer)}
	})
	return r
}

// Configure sets the brokers that writers connect to and binds topic tokens to concrete topic
// names. With no brokers configured, messages are logged and dropped.
func Configure(brokers []string, topics map[string]string) {
	reg := getRegistry()
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.brokers = append([]string(nil), brokers...)
	for k, v := range topics {
		reg.topics[k] = v
	}
}

func (reg *registry) topic(token string) string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	if t, ok := reg.topics[token]; ok {
		return t
	}
	if t := os.Getenv(token); t != "" {
		return t
	}
	return token
}

func (reg *registry) writer(topic string) *kafka.Writer {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if len(reg.brokers) == 0 {
		return nil
	}
	if w, ok := reg.writers[topic]; ok {
		return w
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(reg.brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	reg.writers[topic] = w
	return w
}

type MessageProducer func(p model.Provider[[]kafka.Message]) error

type Provider func(token string) MessageProducer

func ProviderImpl(l logrus.FieldLogger) func(ctx context.Context) func(token string) MessageProducer {
	return func(ctx context.Context) func(token string) MessageProducer {
		return func(token string) MessageProducer {
			reg := getRegistry()
			t := reg.topic(token)
			return func(p model.Provider[[]kafka.Message]) error {
				ms, err := p()
				if err != nil {
					return err
				}
				w := reg.writer(t)
				if w == nil {
					l.Debugf("No brokers configured, dropping [%d] message(s) for topic [%s].", len(ms), t)
					return nil
				}
				if err = w.WriteMessages(ctx, ms...); err != nil {
					l.WithError(err).Errorf("Unable to emit [%d] message(s) to topic [%s].", len(ms), t)
					return err
				}
				return nil
			}
		}
	}
}

func CreateKey(key int) []byte {
	return []byte(strconv.Itoa(key))
}

func SingleMessageProvider(key []byte, value interface{}) model.Provider[[]kafka.Message] {
	return func() ([]kafka.Message, error) {
		b, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return []kafka.Message{{Key: key, Value: b}}, nil
	}
}

func Teardown(l logrus.FieldLogger) func() {
	return func() {
		reg := getRegistry()
		reg.mu.Lock()
		defer reg.mu.Unlock()
		for t, w := range reg.writers {
			if err := w.Close(); err != nil {
				l.WithError(err).Errorf("Unable to close writer for topic [%s].", t)
			}
		}
		reg.writers = make(map[string]*kafka.Writer)
	}
}
