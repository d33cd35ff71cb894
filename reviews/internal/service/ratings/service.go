package ratings

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Astemirdum/reviews-service/pkg/circuit_breaker"
	"github.com/Astemirdum/reviews-service/pkg/trace"
	"github.com/Astemirdum/reviews-service/reviews/config"
	"github.com/Astemirdum/reviews-service/reviews/internal/errs"
	"github.com/Astemirdum/reviews-service/reviews/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	log    *zap.Logger
	client *http.Client
	cb     circuit_breaker.CircuitBreaker
	cfg    config.Ratings
}

type Option func(s *Service)

// WithTransport replaces the transport used for ratings calls. The timeout is kept.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *Service) {
		s.client.Transport = rt
	}
}

// WithTimeout overrides the star-colour derived timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.client.Timeout = d
	}
}

func NewService(log *zap.Logger, cfg config.Config, opts ...Option) *Service {
	cb := circuit_breaker.Noop()
	if b := cfg.Ratings.Breaker; b.Enabled {
		cb = circuit_breaker.New(b.RecordLength, b.Timeout, b.Percentile, b.RecoveryRequests)
	}
	s := &Service{
		log: log.Named("ratings"),
		client: &http.Client{
			Timeout: cfg.Ratings.Timeout(),
		},
		cb:  cb,
		cfg: cfg.Ratings,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CB() circuit_breaker.CircuitBreaker {
	return s.cb
}

// Timeout bounds the whole ratings call, body included.
func (s *Service) Timeout() time.Duration {
	return s.client.Timeout
}

// GetRatings asks the ratings service about productID. Any failure is logged
// and reported as an unavailable result, never as an error.
func (s *Service) GetRatings(ctx context.Context, productID string, headers http.Header) model.RatingsResult {
	log := trace.Logger(s.log, headers)
	uri := s.cfg.ServiceURL() + "/" + productID

	var res model.RatingsResult
	if err := s.cb.Call(func() error {
		var err error
		res, err = s.fetch(ctx, log, uri, headers)
		return err
	}); err != nil {
		log.Error("Unable to contact ratings service",
			zap.String("url", s.cfg.ServiceURL()),
			zap.Error(err))
		return model.Unavailable()
	}
	return res
}

func (s *Service) fetch(ctx context.Context, log *zap.Logger, uri string, headers http.Header) (model.RatingsResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return model.RatingsResult{}, errors.Wrap(err, "http.NewRequest")
	}
	req.Header.Set("Accept", "application/json")
	trace.Propagate(req.Header, headers, s.cfg.PropagatedHeaders)

	log.Info("Calling ratings service", zap.String("method", req.Method), zap.String("uri", uri))
	resp, err := s.client.Do(req)
	if err != nil {
		return model.RatingsResult{}, errors.Wrap(err, "client.Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return model.RatingsResult{}, errors.Wrapf(errs.ErrRatingsStatus, "got status of %d", resp.StatusCode)
	}

	var body model.RatingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.RatingsResult{}, errors.Wrap(err, "decode ratings")
	}
	stars := body.Stars()
	log.Info("Ratings service returned 200", zap.Int("rated", len(stars)))

	return model.RatingsResult{Available: true, Stars: stars}, nil
}
