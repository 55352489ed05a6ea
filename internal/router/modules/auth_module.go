package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-question-bank/internal/interface/http"
	"github.com/oksasatya/go-question-bank/internal/interface/middleware"
)

// AuthModule mounts POST /register and POST /login at the root, each limited
// per client IP and path.
type AuthModule struct {
	Handler   *handlers.AuthHandler
	Redis     *redis.Client
	PerMinute int
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client, perMinute int) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb, PerMinute: perMinute}
}

func (m *AuthModule) Register(root, _ *gin.RouterGroup) {
	limiter := middleware.RateLimit(m.Redis, m.PerMinute, time.Minute, middleware.KeyByIPAndPath())

	root.POST("/register", limiter, m.Handler.Register)
	root.POST("/login", limiter, m.Handler.Login)
}
