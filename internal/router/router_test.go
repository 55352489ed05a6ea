package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-question-bank/config"
	"github.com/oksasatya/go-question-bank/internal/container"
	"github.com/oksasatya/go-question-bank/internal/interface/middleware"
	"github.com/oksasatya/go-question-bank/internal/testutil"
	"github.com/oksasatya/go-question-bank/pkg/helpers"
	"github.com/oksasatya/go-question-bank/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

func newTestContainer(cfg *config.Config) *container.Container {
	store := testutil.NewStore()
	return &container.Container{
		Config:    cfg,
		Logger:    helpers.NewDiscardLogger(),
		Users:     store.Users(),
		Subjects:  store.Subjects(),
		Questions: store.Questions(),
		Hasher:    helpers.NewBcryptHasher(bcrypt.MinCost),
	}
}

func routeSet(r *gin.Engine) map[string]bool {
	out := map[string]bool{}
	for _, ri := range r.Routes() {
		out[ri.Method+" "+ri.Path] = true
	}
	return out
}

func TestNewRegistersRoutes(t *testing.T) {
	r := New(newTestContainer(&config.Config{Env: "test", AuthRateLimitPerMin: 20}))
	routes := routeSet(r)

	want := []string{
		"GET /",
		"POST /register",
		"POST /login",
		"GET /api/courses",
		"GET /api/questions",
		"POST /api/questions",
		"GET /api/questions/:id",
		"PUT /api/questions/:id",
		"DELETE /api/questions/:id",
	}
	for _, w := range want {
		if !routes[w] {
			t.Errorf("missing route %s", w)
		}
	}
	if routes["GET /api/debug/vars"] {
		t.Error("debug vars must be off unless enabled")
	}
}

func TestDebugVarsWhenEnabled(t *testing.T) {
	r := New(newTestContainer(&config.Config{Env: "test", DebugMetricsEnabled: true}))

	req := httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "questions_created_total") {
		t.Fatalf("expected question counter in expvar output")
	}
}

func TestGlobalMiddleware(t *testing.T) {
	r := New(newTestContainer(&config.Config{Env: "test"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://client.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request id header")
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected permissive CORS, got %q", got)
	}
}

func TestCORSRestrictedOrigins(t *testing.T) {
	r := New(newTestContainer(&config.Config{Env: "test", CORSAllowedOrigins: "http://allowed.test"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://allowed.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://allowed.test" {
		t.Errorf("allowed origin: got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("disallowed origin: expected 403, got %d", w.Code)
	}
}
