package config

import (
	"Wanderpass-Backend/internal/api/handlers"
	"Wanderpass-Backend/internal/api/routes"
	"Wanderpass-Backend/internal/middleware"
	"Wanderpass-Backend/internal/utils"
	"Wanderpass-Backend/internal/utils/storage"
	"Wanderpass-Backend/pkg/attraction"
	"Wanderpass-Backend/pkg/coupon"
	"Wanderpass-Backend/pkg/jwt"
	"Wanderpass-Backend/pkg/review"
	"Wanderpass-Backend/pkg/token"
	"Wanderpass-Backend/pkg/tree"
	"Wanderpass-Backend/pkg/trip"
	"Wanderpass-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Hong_Kong",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	tokenRepository := token.NewTokenRepository(db)
	attractionRepository := attraction.NewAttractionRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	tripRepository := trip.NewTripRepository(db)
	couponRepository := coupon.NewCouponRepository(db)
	treeRepository := tree.NewTreeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	tokenService := token.NewTokenService(tokenRepository)
	userService := user.NewUserService(
		userRepository,
		jwtService,
		tokenService,
		tokenRepository,
		reviewRepository,
	)
	attractionService := attraction.NewAttractionService(attractionRepository)
	reviewService := review.NewReviewService(reviewRepository, attractionRepository, s3)
	tripService := trip.NewTripService(tripRepository, tokenRepository)
	couponService := coupon.NewCouponService(couponRepository, tokenRepository)
	treeService := tree.NewTreeService(treeRepository, tokenRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	tokenHandler := handlers.NewTokenHandler(tokenService, validator)
	attractionHandler := handlers.NewAttractionHandler(attractionService)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	tripHandler := handlers.NewTripHandler(tripService, validator)
	couponHandler := handlers.NewCouponHandler(couponService, validator)
	treeHandler := handlers.NewTreeHandler(treeService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		TokenHandler:      tokenHandler,
		AttractionHandler: attractionHandler,
		ReviewHandler:     reviewHandler,
		TripHandler:       tripHandler,
		CouponHandler:     couponHandler,
		TreeHandler:       treeHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
