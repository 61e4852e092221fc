package api

import (
	_ "embed"
	"net/http"

	"github.com/Domenick1991/tripverse/config"
	"github.com/Domenick1991/tripverse/internal/metrics"
	"github.com/Domenick1991/tripverse/internal/service/booking"
	"github.com/Domenick1991/tripverse/internal/service/catalog"
	"github.com/Domenick1991/tripverse/internal/service/health"
	"github.com/Domenick1991/tripverse/internal/service/journal"
	"github.com/Domenick1991/tripverse/internal/service/navigation"
	"github.com/Domenick1991/tripverse/internal/service/profile"
	"github.com/Domenick1991/tripverse/internal/service/transport"
	"github.com/Domenick1991/tripverse/internal/service/trips"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed docs/openapi.json
var openAPIDoc []byte

type Services struct {
	Health     health.HealthUseCase
	Navigation navigation.NavigationUseCase
	Transports transport.TransportUseCase
	Bookings   booking.BookingUseCase
	Catalog    catalog.CatalogUseCase
	Trips      trips.TripUseCase
	Journal    journal.JournalUseCase
	Profile    profile.ProfileUseCase
	Tokens     TokenParser
}

func NewRouter(cfg *config.Config, svc Services, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log), metrics.Middleware(), CORS(cfg.HTTP.AllowedOrigins))

	r.GET("/healthz", liveness)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/docs/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPIDoc)
	})
	r.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/docs/openapi.json"))))

	apiGroup := r.Group("/api")
	apiGroup.Use(NewRateLimiter(float64(cfg.HTTP.RateLimitRPS), cfg.HTTP.RateLimitBurst).Middleware())
	requireTraveler := RequireTraveler(svc.Tokens)

	NewHealthHandler(svc.Health).Register(apiGroup)
	NewScreenHandler(svc.Navigation).Register(apiGroup)
	NewTransportHandler(svc.Transports).Register(apiGroup.Group("/transports"))

	bookings := NewBookingHandler(svc.Bookings)
	bookings.Register(apiGroup.Group("/bookings"))
	bookings.RegisterInsurance(apiGroup.Group("/insurance"))

	NewCatalogHandler(svc.Catalog, cfg.Catalog.HighlightsCount).Register(apiGroup)
	NewTripHandler(svc.Trips).Register(apiGroup.Group("/trips"), requireTraveler)
	NewJournalHandler(svc.Journal).Register(apiGroup.Group("/journal"), requireTraveler)
	NewProfileHandler(svc.Profile).Register(apiGroup, requireTraveler)

	return r
}
