package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WahidMubarrat/CarBhara/internal/api"
	"github.com/WahidMubarrat/CarBhara/internal/auth"
	"github.com/WahidMubarrat/CarBhara/internal/booking"
	"github.com/WahidMubarrat/CarBhara/internal/car"
	"github.com/WahidMubarrat/CarBhara/internal/file"
	"github.com/WahidMubarrat/CarBhara/internal/identity"
	"github.com/WahidMubarrat/CarBhara/internal/pkg/storage"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Storage      storage.Storage
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Identity module
	identityRepo := identity.NewPgxRepository(cfg.DBPool)
	identityService := identity.NewService(identityRepo, passwordHasher)

	// File module (uploaded car pictures and paperwork)
	fileRepo := file.NewRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, cfg.Storage)

	// Car module
	carRepo := car.NewPgxRepository(cfg.DBPool)
	carService := car.NewService(carRepo, fileService)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, carService)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		IdentityService: identityService,
		CarService:      carService,
		BookingService:  bookingService,
		FileService:     fileService,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
