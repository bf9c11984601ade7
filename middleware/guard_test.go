package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/FADHEEL1234/Online-Medical/models"
	"github.com/FADHEEL1234/Online-Medical/session"
)

func guardedRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware(store))

	protected := r.Group("")
	protected.Use(RequireAuth())
	protected.GET("/dashboard", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })

	admin := r.Group("/admin")
	admin.Use(RequireStaff())
	admin.GET("", func(c *gin.Context) { c.String(http.StatusOK, "admin") })

	return r
}

func request(r *gin.Engine, path, sid string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sid})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnonymousIsRedirectedToLogin(t *testing.T) {
	r := guardedRouter(session.NewMemoryStore())

	w := request(r, "/dashboard", "")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("got %d -> %q, want 302 -> /login", w.Code, w.Header().Get("Location"))
	}
}

func TestAuthenticatedUserPassesAuthGate(t *testing.T) {
	store := session.NewMemoryStore()
	store.Set(context.Background(), "sid", models.Session{AccessToken: "A", Username: "alice"})
	r := guardedRouter(store)

	w := request(r, "/dashboard", "sid")
	if w.Code != http.StatusOK || w.Body.String() != "dashboard" {
		t.Fatalf("got %d %q", w.Code, w.Body.String())
	}
}

func TestNonStaffIsRedirectedToDashboardNotLogin(t *testing.T) {
	store := session.NewMemoryStore()
	store.Set(context.Background(), "sid", models.Session{AccessToken: "A"})
	r := guardedRouter(store)

	w := request(r, "/admin", "sid")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("got %d -> %q, want 302 -> /dashboard", w.Code, w.Header().Get("Location"))
	}
}

func TestAnonymousStaffViewAlsoGoesToDashboard(t *testing.T) {
	r := guardedRouter(session.NewMemoryStore())

	w := request(r, "/admin", "")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("got %d -> %q, want 302 -> /dashboard", w.Code, w.Header().Get("Location"))
	}
}

func TestStaffPassesBothGates(t *testing.T) {
	store := session.NewMemoryStore()
	store.Set(context.Background(), "sid", models.Session{AccessToken: "A", IsStaff: true})
	r := guardedRouter(store)

	for _, path := range []string{"/dashboard", "/admin"} {
		if w := request(r, path, "sid"); w.Code != http.StatusOK {
			t.Fatalf("%s: got %d, want 200", path, w.Code)
		}
	}
}

func TestGuardSeesLogoutOnNextNavigation(t *testing.T) {
	store := session.NewMemoryStore()
	store.Set(context.Background(), "sid", models.Session{AccessToken: "A"})
	r := guardedRouter(store)

	if w := request(r, "/dashboard", "sid"); w.Code != http.StatusOK {
		t.Fatalf("precondition: got %d", w.Code)
	}

	// Decisions are never cached: a clear between navigations must flip the
	// very next one.
	store.Clear(context.Background(), "sid")
	if w := request(r, "/dashboard", "sid"); w.Code != http.StatusFound {
		t.Fatalf("after clear got %d, want 302", w.Code)
	}
}

func TestMissingCookieGetsMinted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware(session.NewMemoryStore()))
	r.GET("/login", func(c *gin.Context) { c.String(http.StatusOK, SessionID(c)) })

	w := request(r, "/login", "")
	if w.Code != http.StatusOK {
		t.Fatalf("got %d", w.Code)
	}
	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, SessionCookie+"=") {
		t.Fatalf("no session cookie issued: %q", setCookie)
	}
	if w.Body.String() == "" {
		t.Fatal("handler saw no session id")
	}
}
