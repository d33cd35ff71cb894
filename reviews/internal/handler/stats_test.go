package handler_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/reviews-service/pkg/kafka"
	"github.com/Astemirdum/reviews-service/reviews/internal/errs"
	"github.com/Astemirdum/reviews-service/reviews/internal/handler"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

func TestStatsLog_Log(t *testing.T) {
	t.Parallel()
	producer := mocks.NewAsyncProducer(t, nil)
	want := kafka.EventStats{
		ID:               "3f1d2f4e-5b0a-4c55-9f38-0a8a3f2f6a11",
		Service:          "reviews",
		Action:           "reviews.get",
		ProductID:        0,
		Status:           200,
		RatingsAvailable: true,
		Timestamp:        time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	producer.ExpectInputWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got kafka.EventStats
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.ID != want.ID || got.ProductID != want.ProductID || got.Status != want.Status ||
			got.Action != want.Action || got.RatingsAvailable != want.RatingsAvailable ||
			!got.Timestamp.Equal(want.Timestamp) {
			return errors.New("unexpected event")
		}
		return nil
	})

	sl := handler.NewStatsLog(producer, kafka.DefaultStatsTopic)
	require.NoError(t, sl.Log(want))
	require.NoError(t, sl.Close())
}

// stuckProducer never reads its input.
type stuckProducer struct {
	sarama.AsyncProducer
	input  chan *sarama.ProducerMessage
	closed int
}

func (p *stuckProducer) Input() chan<- *sarama.ProducerMessage { return p.input }

func (p *stuckProducer) Close() error {
	p.closed++
	return nil
}

func TestStatsLog_FullInputDropsEvent(t *testing.T) {
	t.Parallel()
	producer := &stuckProducer{input: make(chan *sarama.ProducerMessage)}
	sl := handler.NewStatsLog(producer, kafka.DefaultStatsTopic)

	done := make(chan error, 1)
	go func() { done <- sl.Log(kafka.EventStats{ProductID: 1}) }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, errs.ErrStatsDropped)
	case <-time.After(time.Second):
		t.Fatal("Log blocked on a full producer input")
	}
}

func TestStatsLog_LogAfterClose(t *testing.T) {
	t.Parallel()
	producer := &stuckProducer{input: make(chan *sarama.ProducerMessage, 1)}
	sl := handler.NewStatsLog(producer, kafka.DefaultStatsTopic)

	require.NoError(t, sl.Close())
	require.NoError(t, sl.Close())
	require.Equal(t, 1, producer.closed)

	// the input channel is left open here, a send would succeed if Close were ignored
	require.ErrorIs(t, sl.Log(kafka.EventStats{ProductID: 1}), errs.ErrStatsClosed)
	require.Len(t, producer.input, 0)
}

func TestStatsLog_NilProducer(t *testing.T) {
	t.Parallel()
	sl := handler.NewStatsLog(nil, kafka.DefaultStatsTopic)
	require.NoError(t, sl.Log(kafka.EventStats{ProductID: 1}))
	require.NoError(t, sl.Close())
}
