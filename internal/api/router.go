package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/WahidMubarrat/CarBhara/internal/auth"
	"github.com/WahidMubarrat/CarBhara/internal/booking"
	bookingHttp "github.com/WahidMubarrat/CarBhara/internal/booking/http"
	"github.com/WahidMubarrat/CarBhara/internal/car"
	carHttp "github.com/WahidMubarrat/CarBhara/internal/car/http"
	"github.com/WahidMubarrat/CarBhara/internal/file"
	fileHttp "github.com/WahidMubarrat/CarBhara/internal/file/http"
	"github.com/WahidMubarrat/CarBhara/internal/identity"
	identityHttp "github.com/WahidMubarrat/CarBhara/internal/identity/http"
)

// Config holds everything the router needs to assemble middleware and
// register the per-module routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	IdentityService identity.Service
	CarService      car.Service
	BookingService  booking.Service
	FileService     file.Service
	JWTManager      *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: CORS, logging, recovery,
// and the module route groups under /api.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Logger prints request lines to the console; Recovery turns panics
	// into 500 responses instead of crashing the server.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"} // Vite dev server
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	identityHandler := identityHttp.NewHandler(cfg.IdentityService, cfg.JWTManager)
	carHandler := carHttp.NewHandler(cfg.CarService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	apiGroup := r.Group("/api")
	{
		identityHttp.RegisterRoutes(apiGroup, identityHandler, authMiddleware)
		carHttp.RegisterRoutes(apiGroup, carHandler, authMiddleware)
		bookingHttp.RegisterRoutes(apiGroup, bookingHandler, authMiddleware)
	}

	// Stored document URLs point at /files, outside the /api group.
	fileHttp.RegisterRoutes(r, fileHandler)

	return r
}
