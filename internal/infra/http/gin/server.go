package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"stellarstay/internal/infra/config"
	"stellarstay/internal/infra/obs"
)

type ReservationHTTP interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Cancel(c *gin.Context)
	Quote(c *gin.Context)
}

type RoomHTTP interface {
	Search(c *gin.Context)
	Get(c *gin.Context)
}

type Handlers struct {
	Reservations ReservationHTTP
	Rooms        RoomHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Rooms != nil {
		api.GET("/rooms", h.Rooms.Search)
		api.GET("/rooms/:id", h.Rooms.Get)
	}
	if h.Reservations != nil {
		api.POST("/reservations", h.Reservations.Create)
		api.GET("/reservations", h.Reservations.List)
		api.GET("/reservations/:id", h.Reservations.Get)
		api.DELETE("/reservations/:id", h.Reservations.Cancel)
		api.POST("/pricing/quote", h.Reservations.Quote)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
