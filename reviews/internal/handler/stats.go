package handler

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/Astemirdum/reviews-service/pkg/kafka"
	"github.com/Astemirdum/reviews-service/reviews/internal/errs"
	"github.com/IBM/sarama"
)

type statsLog struct {
	producer sarama.AsyncProducer
	topic    string

	mu     sync.RWMutex
	closed bool
}

// NewStatsLog publishes stats events to topic. A nil producer discards them.
func NewStatsLog(producer sarama.AsyncProducer, topic string) StatsLog {
	if producer == nil {
		return nopStatsLog{}
	}
	return &statsLog{
		producer: producer,
		topic:    topic,
	}
}

// Log never blocks: when the producer cannot take the event right away it is dropped.
func (l *statsLog) Log(sl kafka.EventStats) error {
	data, err := json.Marshal(sl)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(sl.ProductID)),
		Value: sarama.ByteEncoder(data),
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return errs.ErrStatsClosed
	}
	select {
	case l.producer.Input() <- msg:
		return nil
	default:
		return errs.ErrStatsDropped
	}
}

// Close shuts the producer down. Later Log calls return errs.ErrStatsClosed.
func (l *statsLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return l.producer.Close()
}

type nopStatsLog struct{}

func (nopStatsLog) Log(kafka.EventStats) error { return nil }

func (nopStatsLog) Close() error { return nil }
