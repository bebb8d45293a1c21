package bootstrap

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/Dipanshu0612/Time-Tracker-API/internal/api/http"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/api/http/middleware"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/api/http/routes"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth/credentials"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/ratelimit"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	CORSOrigins    []string
	RequestTimeout time.Duration
	DB             *sql.DB
	Credentials    *credentials.Service
	LoginLimiter   ratelimit.Limiter
}

// BuildRouter returns the engine together with the services it wired, so
// background jobs share the same instances.
func BuildRouter(dep RouterDeps) (*gin.Engine, routes.Services) {
	r := gin.New()
	if gin.Mode() != gin.TestMode {
		r.Use(gin.Logger())
	}
	r.Use(middleware.Recovery())
	r.Use(corsMiddleware(dep.CORSOrigins))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.Timeout(dep.RequestTimeout))

	var pinger httpapi.Pinger
	if dep.DB != nil {
		pinger = dep.DB
	}
	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger).RegisterRoutes(r)

	svc := routes.NewServices(dep.DB)
	routes.RegisterV1(r, routes.V1Deps{
		DB:           dep.DB,
		Credentials:  dep.Credentials,
		LoginLimiter: dep.LoginLimiter,
	}, svc)

	return r, svc
}

// corsMiddleware allows any origin unless CORS_ORIGINS narrows it.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID, "Content-Disposition"}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
