package config

import (
	"net"
	"strconv"
	"time"

	"github.com/Astemirdum/reviews-service/pkg/kafka"
	"github.com/Astemirdum/reviews-service/pkg/logger"
	"github.com/Astemirdum/reviews-service/pkg/trace"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	DefaultStarColor = "black"

	ratingsPort = "9080"
	ratingsPath = "/ratings"

	defaultColorTimeout = 10 * time.Second
	customColorTimeout  = 2500 * time.Millisecond
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"REVIEWS_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"REVIEWS_HTTP_PORT" default:"9080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"1m"`
	// RateLimitRPS throttles /reviews per client IP, 0 disables it.
	RateLimitRPS float64 `yaml:"rateLimitRPS" envconfig:"REVIEWS_RATE_LIMIT_RPS" default:"0"`
}

// Flag is a boolean that reads anything it cannot parse as false.
type Flag bool

func (f *Flag) Decode(value string) error {
	b, err := strconv.ParseBool(value)
	*f = Flag(err == nil && b)
	return nil
}

type Breaker struct {
	Enabled          bool          `envconfig:"RATINGS_BREAKER_ENABLED" default:"false"`
	RecordLength     int           `envconfig:"RATINGS_BREAKER_RECORD_LENGTH" default:"20"`
	Timeout          time.Duration `envconfig:"RATINGS_BREAKER_TIMEOUT" default:"5s"`
	Percentile       float64       `envconfig:"RATINGS_BREAKER_PERCENTILE" default:"0.5"`
	RecoveryRequests int           `envconfig:"RATINGS_BREAKER_RECOVERY_REQUESTS" default:"3"`
}

type Ratings struct {
	Enabled           Flag     `yaml:"enabled" envconfig:"ENABLE_RATINGS"`
	StarColor         string   `yaml:"starColor" envconfig:"STAR_COLOR" default:"black"`
	Hostname          string   `yaml:"hostname" envconfig:"RATINGS_HOSTNAME" default:"ratings"`
	ServicesDomain    string   `yaml:"servicesDomain" envconfig:"SERVICES_DOMAIN"`
	PropagatedHeaders []string `yaml:"propagatedHeaders" ignored:"true"`
	Breaker           Breaker  `yaml:"breaker"`
}

// ServiceURL is the ratings base URL, product ids are appended as a path segment.
func (r Ratings) ServiceURL() string {
	host := r.Hostname
	if r.ServicesDomain != "" {
		host += "." + r.ServicesDomain
	}
	return "http://" + net.JoinHostPort(host, ratingsPort) + ratingsPath
}

// Timeout bounds a single ratings call. The default star color gets the long timeout.
func (r Ratings) Timeout() time.Duration {
	if r.StarColor == DefaultStarColor {
		return defaultColorTimeout
	}
	return customColorTimeout
}

type Config struct {
	Server  HTTPServer   `yaml:"server"`
	Ratings Ratings      `yaml:"ratings"`
	Kafka   kafka.Config `yaml:"kafka"`
	Log     logger.Log   `yaml:"log"`
}

// NewConfig reads config from environment.
// Options are applied last and override the environment.
func NewConfig(ops ...Option) (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "envconfig.Process")
	}
	cfg.Ratings.PropagatedHeaders = append([]string(nil), trace.PropagatedHeaders...)
	for _, op := range ops {
		op(&cfg)
	}
	return cfg, nil
}
