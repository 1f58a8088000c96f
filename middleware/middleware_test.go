package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"localpro/models"
	"localpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var testSecret = []byte("test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func echoIdentity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"userId": c.GetString(ContextUserID), "role": c.GetString(ContextRole)})
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, secret []byte, sub, role string, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateToken(secret, sub, role, ttl)
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token
}

func TestJWTAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", bearer(t, []byte("other"), "u1", models.RoleSeeker, time.Hour), http.StatusUnauthorized},
		{"expired", bearer(t, testSecret, "u1", models.RoleSeeker, -time.Minute), http.StatusUnauthorized},
		{"valid", bearer(t, testSecret, "u1", models.RoleSeeker, time.Hour), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/me", JWTAuthMiddleware(testSecret), echoIdentity)
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(testSecret), RequireRole(models.RoleAdmin), echoIdentity)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearer(t, testSecret, "u1", models.RoleSeeker, time.Hour))
	if w := serve(r, req); w.Code != http.StatusForbidden {
		t.Fatalf("seeker status = %d, want 403", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearer(t, testSecret, "a1", models.RoleAdmin, time.Hour))
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Fatalf("admin status = %d, want 200", w.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":1234"
		return serve(r, req).Code
	}

	if got := hit("10.0.0.1"); got != http.StatusOK {
		t.Fatalf("first = %d", got)
	}
	if got := hit("10.0.0.1"); got != http.StatusOK {
		t.Fatalf("second = %d", got)
	}
	if got := hit("10.0.0.1"); got != http.StatusTooManyRequests {
		t.Fatalf("third = %d, want 429", got)
	}
	if got := hit("10.0.0.2"); got != http.StatusOK {
		t.Fatalf("other client = %d, want 200", got)
	}
}

func TestRateLimitIgnoresUntrustedForwarding(t *testing.T) {
	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		t.Fatal(err)
	}
	r.Use(RateLimitMiddleware(2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for _, spoofed := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "9.9.9.9:1234"
		req.Header.Set("X-Forwarded-For", spoofed)
		req.Header.Set("X-Real-IP", spoofed)
		codes = append(codes, serve(r, req).Code)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("rotating forwarding headers escaped the limit: %v", codes)
	}
}

func TestRateLimitKeysOnForwardedClientBehindTrustedProxy(t *testing.T) {
	r := gin.New()
	if err := r.SetTrustedProxies([]string{"10.0.0.0/8"}); err != nil {
		t.Fatal(err)
	}
	r.Use(RateLimitMiddleware(1))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.5:1234"
		req.Header.Set("X-Forwarded-For", client)
		return serve(r, req).Code
	}
	if got := hit("1.1.1.1"); got != http.StatusOK {
		t.Fatalf("first client = %d", got)
	}
	if got := hit("2.2.2.2"); got != http.StatusOK {
		t.Fatalf("second client = %d, want its own bucket", got)
	}
	if got := hit("1.1.1.1"); got != http.StatusTooManyRequests {
		t.Fatalf("repeat client = %d, want 429", got)
	}
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/x", func(c *gin.Context) {
		if _, ok := c.Get(ContextLogger); !ok {
			t.Error("logger not set")
		}
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	id := w.Header().Get(requestIDHeader)
	if id == "" || w.Body.String() != id {
		t.Fatalf("request id header %q, body %q", id, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(requestIDHeader, "given-id")
	if got := serve(r, req).Header().Get(requestIDHeader); got != "given-id" {
		t.Errorf("request id = %q, want propagated", got)
	}
}
