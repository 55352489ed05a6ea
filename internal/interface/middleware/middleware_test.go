package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-question-bank/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	var fromCtx, fromGin string
	r.GET("/", func(c *gin.Context) {
		fromGin = c.GetString("request_id")
		fromCtx = helpers.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	header := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(header); err != nil {
		t.Fatalf("expected uuid request id header, got %q", header)
	}
	if fromGin != header || fromCtx != header {
		t.Errorf("request id mismatch: header %q gin %q ctx %q", header, fromGin, fromCtx)
	}

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != incoming {
		t.Errorf("expected incoming id %q to be reused, got %q", incoming, got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got == "<script>" {
		t.Error("malformed incoming id must be replaced")
	}
}

func TestRecoveryReturnsJSON500(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(helpers.NewDiscardLogger()))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Body.String() != `{"error":"Internal server error"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusOK {
		t.Errorf("server must keep serving after a panic, got %d", w.Code)
	}
}

func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		trust   bool
		headers map[string]string
		want    string
	}{
		{"untrusted ignores headers", false, map[string]string{"X-Forwarded-For": "203.0.113.9"}, "192.0.2.1"},
		{"cloudflare header wins", true, map[string]string{"CF-Connecting-IP": "198.51.100.7", "X-Forwarded-For": "203.0.113.9"}, "198.51.100.7"},
		{"left-most forwarded", true, map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "203.0.113.9"},
		{"garbage falls back", true, map[string]string{"X-Forwarded-For": "nope"}, "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RealIP(tt.trust))
			var got string
			r.GET("/", func(c *gin.Context) { got = c.GetString("real_ip") })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)
			if got != tt.want {
				t.Errorf("real_ip = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimitWithoutRedisIsNoop(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(nil, 1, time.Minute, KeyByIP()), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestRateLimitWithRedis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set; skipping redis rate limit test")
	}
	rdb := helpers.NewRedisClient(addr, "", 0)
	defer func() { _ = rdb.Close() }()

	keyFn := func(c *gin.Context) string { return "rl:test:" + c.GetHeader("X-Test-Key") }
	key := uuid.NewString()
	t.Cleanup(func() { rdb.Del(context.Background(), "rl:test:"+key) })

	r := gin.New()
	r.POST("/login", RateLimit(rdb, 2, time.Minute, keyFn), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("X-Test-Key", key)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if i == 2 && w.Header().Get("Retry-After") == "" {
			t.Error("expected Retry-After on limited response")
		}
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected status sequence %v", codes)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer func() { _ = rdb.Close() }()

	r := gin.New()
	r.POST("/login", RateLimit(rdb, 1, time.Minute, KeyByIP()), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected fail-open 200, got %d", w.Code)
		}
	}
}

func TestKeyFuncs(t *testing.T) {
	r := gin.New()
	r.Use(RealIP(false))
	var byIP, byPath string
	r.POST("/login", func(c *gin.Context) {
		byIP = KeyByIP()(c)
		byPath = KeyByIPAndPath()(c)
	})
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	r.ServeHTTP(httptest.NewRecorder(), req)

	if byIP != "rl:ip:192.0.2.1" {
		t.Errorf("KeyByIP = %q", byIP)
	}
	if byPath != "rl:path:/login:ip:192.0.2.1" {
		t.Errorf("KeyByIPAndPath = %q", byPath)
	}
}
