package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/codeboard/codeboard-server/internal/auth"
	"github.com/codeboard/codeboard-server/internal/config"
	"github.com/codeboard/codeboard-server/internal/core"
	"github.com/codeboard/codeboard-server/internal/runner"
)

// NewServer builds the HTTP server: REST API plus the WebSocket endpoint.
func NewServer(hub *core.Hub, authService *auth.Service, execRunner *runner.Client, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	apiHandlers := NewAPIHandlers(authService, logger)
	roomHandlers := NewRoomHandlers(logger)
	execHandlers := NewExecHandlers(execRunner, logger)

	router.GET("/health", healthHandler)

	api := router.Group("/api")
	{
		api.POST("/register", apiHandlers.Register)
		api.POST("/login", apiHandlers.Login)

		authed := api.Group("")
		authed.Use(AuthMiddleware(authService, logger))
		{
			authed.POST("/rooms/create", roomHandlers.CreateRoom)
			authed.POST("/code/run", execHandlers.Run)
		}
	}

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg.WSMessageLimit, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
