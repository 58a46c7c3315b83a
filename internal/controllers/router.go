package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hbnb/internal/middleware"
	"hbnb/internal/service"
)

// RouterDeps is everything the HTTP layer needs
type RouterDeps struct {
	Facade         service.HBnBFacade
	AuthService    service.AuthService
	FrontendURL    string
	AllowedOrigins []string
	GeneralLimiter *middleware.RateLimiter
	AuthLimiter    *middleware.RateLimiter
	Logger         zerolog.Logger
}

// NewRouter builds the gin engine with every /api/v1 route
func NewRouter(deps RouterDeps) *gin.Engine {
	presenter := service.NewPresenter(deps.Facade)
	userController := NewUserController(deps.Facade, presenter)
	amenityController := NewAmenityController(deps.Facade, presenter)
	placeController := NewPlaceController(deps.Facade, presenter)
	reviewController := NewReviewController(deps.Facade, presenter)
	authController := NewAuthController(deps.AuthService)
	qrcodeController := NewQRCodeController(deps.Facade, deps.FrontendURL)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORS(deps.AllowedOrigins))

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api/v1")
	if deps.GeneralLimiter != nil {
		api.Use(deps.GeneralLimiter.LimitMiddleware())
	}
	{
		auth := api.Group("/auth")
		if deps.AuthLimiter != nil {
			auth.Use(deps.AuthLimiter.LimitMiddleware())
		}
		{
			auth.POST("/login", authController.Login)
			auth.POST("/logout", middleware.AuthMiddleware(deps.AuthService), authController.Logout)
			auth.GET("/me", middleware.AuthMiddleware(deps.AuthService), authController.Me)
		}

		users := api.Group("/users")
		{
			users.GET("/", userController.ListUsers)
			users.POST("/", userController.CreateUser)
			users.GET("/:user_id", userController.GetUser)
			users.PUT("/:user_id", userController.UpdateUser)
		}

		amenities := api.Group("/amenities")
		{
			amenities.GET("/", amenityController.ListAmenities)
			amenities.POST("/", amenityController.CreateAmenity)
			amenities.GET("/:amenity_id", amenityController.GetAmenity)
			amenities.PUT("/:amenity_id", amenityController.UpdateAmenity)
		}

		places := api.Group("/places")
		{
			places.GET("/", placeController.ListPlaces)
			places.POST("/", placeController.CreatePlace)
			places.GET("/:place_id", placeController.GetPlace)
			places.PUT("/:place_id", placeController.UpdatePlace)
			places.GET("/:place_id/reviews", placeController.ListPlaceReviews)
			places.GET("/:place_id/qrcode", qrcodeController.PlaceQRCode)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/", reviewController.ListReviews)
			reviews.POST("/", reviewController.CreateReview)
			reviews.GET("/:review_id", reviewController.GetReview)
			reviews.PUT("/:review_id", reviewController.UpdateReview)
			reviews.DELETE("/:review_id", reviewController.DeleteReview)
			reviews.GET("/places/:place_id", placeController.ListPlaceReviews)
		}
	}

	return router
}
