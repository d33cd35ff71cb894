package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const DefaultStatsTopic = "reviews-stats"

type Config struct {
	Addrs      []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
	StatsTopic string   `yaml:"statsTopic" envconfig:"KAFKA_STATS_TOPIC" default:"reviews-stats"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventStats struct {
	ID               string    `json:"id"`
	Service          string    `json:"service"`
	Action           string    `json:"action"`
	ProductID        int       `json:"productId"`
	Status           int       `json:"status"`
	RatingsAvailable bool      `json:"ratingsAvailable"`
	Timestamp        time.Time `json:"timestamp"`
}

// NewAsyncProducer returns a fire-and-forget producer. Successes are not
// reported, errors must be drained from Errors().
func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Successes = false
	defaultCfg.Producer.Return.Errors = true
	defaultCfg.Producer.Flush.Frequency = 500 * time.Millisecond

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}
