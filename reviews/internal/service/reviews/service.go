package reviews

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Astemirdum/reviews-service/pkg/trace"
	"github.com/Astemirdum/reviews-service/reviews/config"
	"github.com/Astemirdum/reviews-service/reviews/internal/errs"
	"github.com/Astemirdum/reviews-service/reviews/internal/model"
	"github.com/Astemirdum/reviews-service/reviews/internal/service/ratings"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

const (
	textReviewer1 = "An extremely entertaining play by Shakespeare. The slapstick humour is refreshing!"
	textReviewer2 = "Absolutely fun and entertaining. The play lacks thematic depth when compared to other plays by Shakespeare."
)

var _ RatingsService = (*ratings.Service)(nil)

type RatingsService interface {
	GetRatings(ctx context.Context, productID string, headers http.Header) model.RatingsResult
}

type Service struct {
	log        *zap.Logger
	ratingsSvc RatingsService
	cfg        config.Ratings
}

func NewService(log *zap.Logger, cfg config.Config, ratingsSvc RatingsService) *Service {
	return &Service{
		log:        log.Named("reviews"),
		ratingsSvc: ratingsSvc,
		cfg:        cfg.Ratings,
	}
}

// GetReviews builds the reviews of productID. With ratings disabled it fails
// with errs.ErrRatingsDisabled; a failing ratings service only degrades the payload.
func (s *Service) GetReviews(ctx context.Context, productID int, headers http.Header) (model.ReviewPayload, error) {
	log := trace.Logger(s.log, headers)
	id := strconv.Itoa(productID)
	log.Info("Finding reviews", zap.String("productId", id))

	if !s.cfg.Enabled {
		log.Warn("Ratings disabled")
		err := errors.WithStack(errs.ErrRatingsDisabled)
		log.Error("reviews requested while ratings are disabled", zap.String("productId", id), zap.Error(err))
		return model.ReviewPayload{}, err
	}

	res := s.ratingsSvc.GetRatings(ctx, id, headers)
	return s.Compose(id, res.StarsFor(model.Reviewer1), res.StarsFor(model.Reviewer2)), nil
}

// Compose lays out the two fixed reviews. Ratings are attached only when enabled.
func (s *Service) Compose(productID string, starsReviewer1, starsReviewer2 int) model.ReviewPayload {
	return model.ReviewPayload{
		ID: productID,
		Reviews: []model.Review{
			{Reviewer: model.Reviewer1, Text: textReviewer1, Rating: s.rating(starsReviewer1)},
			{Reviewer: model.Reviewer2, Text: textReviewer2, Rating: s.rating(starsReviewer2)},
		},
	}
}

func (s *Service) rating(stars int) *model.Rating {
	if !s.cfg.Enabled {
		return nil
	}
	if stars < model.MinStars || stars > model.MaxStars {
		return &model.Rating{Error: model.RatingsUnavailable}
	}
	return &model.Rating{Stars: stars, Color: s.cfg.StarColor}
}
