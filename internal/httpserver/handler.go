package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	messageHTTP "hr-assistant/internal/message/delivery/http"
	"hr-assistant/internal/model"
)

const apiPrefix = "/api/v1"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		gin.Recovery(),
		srv.middleware.RequestID(),
		srv.middleware.Logger(),
		srv.middleware.Metrics(),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metricsPath != "" && srv.metricsHandler != nil {
		srv.gin.GET(srv.metricsPath, gin.WrapH(srv.metricsHandler))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes. Only API routes are
// rate limited.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group(apiPrefix)
	messageHTTP.RegisterRoutes(api, srv.messageHandler, srv.middleware.RateLimit())
	srv.l.Infof(ctx, "Message route registered at POST %s/message", apiPrefix)

	return nil
}
