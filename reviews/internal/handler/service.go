package handler

import (
	"context"
	"net/http"

	"github.com/Astemirdum/reviews-service/pkg/kafka"
	"github.com/Astemirdum/reviews-service/reviews/internal/model"
	"github.com/Astemirdum/reviews-service/reviews/internal/service/reviews"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ ReviewsService = (*reviews.Service)(nil)
	_ StatsLog       = (*statsLog)(nil)
)

type ReviewsService interface {
	GetReviews(ctx context.Context, productID int, headers http.Header) (model.ReviewPayload, error)
}

type StatsLog interface {
	Log(sl kafka.EventStats) error
	Close() error
}
