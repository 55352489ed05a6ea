package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-question-bank/internal/application"
	"github.com/oksasatya/go-question-bank/internal/container"
	handlers "github.com/oksasatya/go-question-bank/internal/interface/http"
	"github.com/oksasatya/go-question-bank/internal/interface/middleware"
	"github.com/oksasatya/go-question-bank/internal/router/modules"
)

// InitModules builds services and handlers from the container and adds
// every feature module to the registry.
func InitModules(r *Registry, c *container.Container) {
	authSvc := application.NewAuthService(c.Users, c.Hasher, c.Logger)
	catalogSvc := application.NewCatalogService(c.Subjects, c.Logger)
	questionSvc := application.NewQuestionService(c.Questions, c.Logger)

	r.Add(modules.NewRootModule())
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc), c.Redis, c.Config.AuthRateLimitPerMin))
	r.Add(modules.NewCourseModule(handlers.NewCourseHandler(catalogSvc)))
	r.Add(modules.NewQuestionModule(handlers.NewQuestionHandler(questionSvc)))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
}

// New returns a gin engine with global middleware and all modules registered.
func New(c *container.Container) *gin.Engine {
	cfg := c.Config

	r := gin.New()
	r.Use(middleware.Recovery(c.Logger))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP(cfg.TrustProxyHeaders))

	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(middleware.AccessLog(c.Logger))
	}

	reg := NewRegistry(r)
	InitModules(reg, c)
	reg.RegisterAll()
	return r
}
