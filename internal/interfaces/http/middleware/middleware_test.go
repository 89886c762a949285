package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingu-electrical/kingu-backend/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func corsConfig(origins ...string) *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			CORSAllowedOrigins: origins,
			CORSAllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		},
	}
}

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		allowed []string
		want    bool
	}{
		{"exact match", "https://kingu.co.tz", []string{"https://kingu.co.tz"}, true},
		{"wildcard", "https://anywhere.example", []string{"*"}, true},
		{"subdomain wildcard", "https://shop.kingu.co.tz", []string{"*.kingu.co.tz"}, true},
		{"not listed", "https://evil.example", []string{"https://kingu.co.tz"}, false},
		{"empty list", "https://kingu.co.tz", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := originAllowed(tt.origin, tt.allowed); got != tt.want {
				t.Errorf("originAllowed(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS(corsConfig("https://kingu.co.tz")))
	router.POST("/api/v1/cart/items", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/cart/items", nil)
	req.Header.Set("Origin", "https://kingu.co.tz")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://kingu.co.tz" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q", got)
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORS(corsConfig("https://kingu.co.tz")))
	router.GET("/api/v1/products", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Origin", "https://evil.example")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}

func TestTimeoutCancelsSlowHandlers(t *testing.T) {
	router := gin.New()
	router.Use(Timeout(20 * time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
		case <-time.After(time.Second):
			t.Error("handler context was never cancelled")
		}
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	if w.Code != http.StatusRequestTimeout {
		t.Errorf("status = %d, want %d", w.Code, http.StatusRequestTimeout)
	}
}

func TestTimeoutPassesFastHandlers(t *testing.T) {
	router := gin.New()
	router.Use(Timeout(time.Second))
	router.GET("/fast", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
