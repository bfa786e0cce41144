// Package server assembles the HTTP surface: middleware, routes, API docs,
// and CORS.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "nomix/internal/docs" // swagger spec
	"nomix/internal/handlers"
	"nomix/internal/middleware"
	"nomix/internal/services"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Users     services.UserServicer
	Market    services.MarketServicer
	Favorites services.FavoriteServicer
	Seeder    services.SeedServicer
	Tokens    *middleware.TokenManager

	// SeedAPIKey guards the seed endpoints when non-empty.
	SeedAPIKey string
	// CORSAllowedOrigins lists the browser origins allowed to call the API.
	CORSAllowedOrigins []string
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(d Deps) *gin.Engine {
	authHandler := handlers.NewAuthHandler(d.Users, d.Tokens)
	marketHandler := handlers.NewMarketHandler(d.Market)
	favoriteHandler := handlers.NewFavoriteHandler(d.Favorites)
	seedHandler := handlers.NewSeedHandler(d.Seeder)

	router := gin.New()
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Nomix Trade API is running"})
	})
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)

	router.GET("/stocks", marketHandler.GetStocks)
	router.GET("/index_data", marketHandler.GetIndex)
	router.GET("/companies", marketHandler.ListCompanies)
	router.GET("/company/:symbol", marketHandler.GetCompany)
	router.GET("/company/:symbol/graph", marketHandler.GetCompanyGraph)

	favorites := router.Group("/favorites", middleware.OptionalAuth(d.Tokens))
	favorites.POST("/add", favoriteHandler.AddFavorite)
	favorites.POST("/remove", favoriteHandler.RemoveFavorite)
	favorites.GET("/:user_id", favoriteHandler.ListFavorites)

	seed := router.Group("/", middleware.SeedKeyMiddleware(d.SeedAPIKey))
	seed.POST("/seed_full_data", seedHandler.SeedFull)
	seed.POST("/seed_week_data", seedHandler.SeedWeek)

	return router
}

// NewHandler returns the router wrapped with CORS handling.
func NewHandler(d Deps) http.Handler {
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   d.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	return corsMiddleware.Handler(NewRouter(d))
}
