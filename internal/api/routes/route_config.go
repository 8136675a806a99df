package routes

import (
	"Wanderpass-Backend/internal/api/handlers"
	"Wanderpass-Backend/internal/middleware"
	"Wanderpass-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	TokenHandler      handlers.TokenHandler
	AttractionHandler handlers.AttractionHandler
	ReviewHandler     handlers.ReviewHandler
	TripHandler       handlers.TripHandler
	CouponHandler     handlers.CouponHandler
	TreeHandler       handlers.TreeHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Tokens()
	c.Attractions()
	c.Reviews()
	c.Trips()
	c.Coupons()
	c.Trees()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("/me/stats", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetUserStats)
	}
}

func (c *Config) Tokens() {
	tokens := c.App.Group("/api/v1/tokens", c.Middleware.AuthMiddleware(c.JWTService))
	{
		tokens.Get("/history", c.TokenHandler.GetTokenHistory)
		tokens.Get("/stats", c.TokenHandler.GetTokenStats)
		tokens.Post("/transactions", c.TokenHandler.CreateTokenTransaction)
	}
}

func (c *Config) Attractions() {
	attractions := c.App.Group("/api/v1/attractions")
	{
		attractions.Get("", c.AttractionHandler.GetAttractions)
		attractions.Get("/:id/reviews", c.ReviewHandler.GetAttractionReviews)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/v1/reviews", c.Middleware.AuthMiddleware(c.JWTService))
	{
		reviews.Post("", c.ReviewHandler.CreateReview)
		reviews.Get("/me", c.ReviewHandler.GetMyReviews)
	}
}

func (c *Config) Trips() {
	trips := c.App.Group("/api/v1/trips", c.Middleware.AuthMiddleware(c.JWTService))
	{
		trips.Get("", c.TripHandler.GetTrips)
		trips.Post("/unlock", c.TripHandler.UnlockTrip)
		trips.Post("/claim", c.TripHandler.ClaimTrip)
		trips.Get("/me", c.TripHandler.GetUserTrips)
		trips.Patch("/me/status", c.TripHandler.UpdateTripStatus)
	}
}

func (c *Config) Coupons() {
	coupons := c.App.Group("/api/v1/coupons", c.Middleware.AuthMiddleware(c.JWTService))
	{
		coupons.Get("", c.CouponHandler.GetCoupons)
		coupons.Post("/redeem", c.CouponHandler.RedeemCoupon)
		coupons.Get("/me", c.CouponHandler.GetUserCoupons)
		coupons.Post("/use", c.CouponHandler.UseCoupon)
	}
}

func (c *Config) Trees() {
	trees := c.App.Group("/api/v1/trees", c.Middleware.AuthMiddleware(c.JWTService))
	{
		trees.Post("/plant", c.TreeHandler.PlantTrees)
		trees.Get("/me", c.TreeHandler.GetUserTrees)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
