package handler

import (
	"net/http"
	"time"

	"github.com/Astemirdum/reviews-service/pkg/kafka"
	md "github.com/Astemirdum/reviews-service/pkg/middleware"
	"github.com/Astemirdum/reviews-service/pkg/trace"
	"github.com/Astemirdum/reviews-service/pkg/validate"
	"github.com/Astemirdum/reviews-service/reviews/internal/errs"
	"github.com/Astemirdum/reviews-service/reviews/internal/model"
	_ "github.com/Astemirdum/reviews-service/swagger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	serviceName   = "reviews"
	actionReviews = "reviews.get"
)

type Handler struct {
	reviewsSvc ReviewsService
	stats      StatsLog
	log        *zap.Logger
	apiRPS     rate.Limit
}

type Option func(h *Handler)

// WithRateLimit limits /reviews per client IP. Zero or less leaves it unlimited.
func WithRateLimit(rps rate.Limit) Option {
	return func(h *Handler) {
		h.apiRPS = rps
	}
}

func New(reviewsSvc ReviewsService, stats StatsLog, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		reviewsSvc: reviewsSvc,
		stats:      stats,
		log:        log.Named("handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))

	e.Validator = validate.NewCustomValidator()

	// health is never throttled
	e.GET("/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.RequestID(),
	)
	if h.apiRPS > 0 {
		api.Use(md.NewRateLimiter(h.apiRPS))
	}
	api.GET("/reviews/:productId", h.GetReviews)

	return e
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} model.Health
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Health{Status: model.HealthyStatus})
}

// GetReviews godoc
// @Summary Reviews of a product
// @Description Returns the two reviews of a product, rated when the ratings service answers.
// @Tags reviews
// @Produce json
// @Param productId path int true "product id"
// @Success 200 {object} model.ReviewPayload
// @Failure 400 {object} echo.HTTPError
// @Failure 500 {object} echo.HTTPError
// @Router /reviews/{productId} [get]
func (h *Handler) GetReviews(c echo.Context) error {
	var req model.ReviewRequest
	if err := echo.PathParamsBinder(c).MustInt("productId", &req.ProductID).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrInvalidProductID.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrInvalidProductID.Error())
	}

	headers := c.Request().Header
	payload, err := h.reviewsSvc.GetReviews(c.Request().Context(), req.ProductID, headers)
	if err != nil {
		h.publish(headers, req.ProductID, http.StatusInternalServerError, false)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(headers, req.ProductID, http.StatusOK, ratingsAvailable(payload))
	return c.JSON(http.StatusOK, payload)
}

func (h *Handler) publish(headers http.Header, productID, status int, available bool) {
	if err := h.stats.Log(kafka.EventStats{
		ID:               uuid.NewString(),
		Service:          serviceName,
		Action:           actionReviews,
		ProductID:        productID,
		Status:           status,
		RatingsAvailable: available,
		Timestamp:        time.Now().UTC(),
	}); err != nil {
		trace.Logger(h.log, headers).Warn("stats.Log", zap.Error(err))
	}
}

func ratingsAvailable(payload model.ReviewPayload) bool {
	for _, r := range payload.Reviews {
		if r.Rating != nil && r.Rating.Error == "" {
			return true
		}
	}
	return false
}
