package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"localpro/handlers"
	"localpro/models"
	bookingMocks "localpro/services/booking/mocks"
	providerMocks "localpro/services/provider/mocks"
	reviewMocks "localpro/services/review/mocks"
	searchMocks "localpro/services/search/mocks"
	"localpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var secret = []byte("routes-secret")

type fixture struct {
	router    *gin.Engine
	search    *searchMocks.MockSearchService
	bookings  *bookingMocks.MockBookingService
	reviews   *reviewMocks.MockReviewService
	providers *providerMocks.MockProviderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := &fixture{
		search:    searchMocks.NewMockSearchService(ctrl),
		bookings:  bookingMocks.NewMockBookingService(ctrl),
		reviews:   reviewMocks.NewMockReviewService(ctrl),
		providers: providerMocks.NewMockProviderService(ctrl),
	}
	sh := handlers.NewSearchHandler(f.search, 100)
	bh := handlers.NewBookingHandler(f.bookings)
	rh := handlers.NewReviewHandler(f.reviews)
	ph := handlers.NewProviderHandler(f.providers)
	hh := handlers.NewHealthHandler(map[string]utils.Pinger{})

	f.router = gin.New()
	RegisterRoutes(f.router, &handlers.HandlerBundle{
		JWTSecret:                   secret,
		SearchProvidersHandler:      sh.SearchProvidersHandler,
		GetProviderHandler:          ph.GetProviderHandler,
		UpdateAvatarHandler:         ph.UpdateAvatarHandler,
		ListProviderReviewsHandler:  rh.ListProviderReviewsHandler,
		CreateBookingHandler:        bh.CreateBookingHandler,
		UpdateBookingStatusHandler:  bh.UpdateStatusHandler,
		GetBookingHandler:           bh.GetBookingHandler,
		ListMyBookingsHandler:       bh.ListMyBookingsHandler,
		ListProviderBookingsHandler: bh.ListProviderBookingsHandler,
		CreateReviewHandler:         rh.CreateReviewHandler,
		UpdateReviewHandler:         rh.UpdateReviewHandler,
		DeleteReviewHandler:         rh.DeleteReviewHandler,
		ApproveReviewHandler:        rh.ApproveReviewHandler,
		RejectReviewHandler:         rh.RejectReviewHandler,
		HealthHandler:               hh.CheckHandler,
	})
	return f
}

func (f *fixture) do(t *testing.T, method, path, role, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		token, err := utils.GenerateToken(secret, "user-"+role, role, time.Hour)
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestPublicRoutes(t *testing.T) {
	f := newFixture(t)
	f.search.EXPECT().Search(gomock.Any(), gomock.Any()).Return(&models.SearchResult{Providers: []models.ProviderSummary{}, Page: 1, Limit: 9}, nil)
	f.providers.EXPECT().GetProfile(gomock.Any(), "p1").Return(&models.Provider{ID: "p1"}, nil)

	if w := f.do(t, http.MethodGet, "/api/providers/search", "", ""); w.Code != http.StatusOK {
		t.Errorf("search status = %d", w.Code)
	}
	if w := f.do(t, http.MethodGet, "/api/providers/p1", "", ""); w.Code != http.StatusOK {
		t.Errorf("profile status = %d", w.Code)
	}
	if w := f.do(t, http.MethodGet, "/health", "", ""); w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}
}

func TestProtectedRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		role   string
		want   int
	}{
		{"booking create needs a token", http.MethodPost, "/api/bookings", "", http.StatusUnauthorized},
		{"provider cannot create booking", http.MethodPost, "/api/bookings", models.RoleProvider, http.StatusForbidden},
		{"seeker cannot transition", http.MethodPatch, "/api/bookings/b1/status", models.RoleSeeker, http.StatusForbidden},
		{"seeker cannot list provider bookings", http.MethodGet, "/api/bookings/provider", models.RoleSeeker, http.StatusForbidden},
		{"review needs a token", http.MethodPost, "/api/reviews", "", http.StatusUnauthorized},
		{"moderation is admin only", http.MethodPatch, "/api/admin/reviews/r1/approve", models.RoleProvider, http.StatusForbidden},
		{"avatar is provider only", http.MethodPut, "/api/providers/me/avatar", models.RoleSeeker, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if w := f.do(t, tt.method, tt.path, tt.role, "{}"); w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestProviderTransitionRoute(t *testing.T) {
	f := newFixture(t)
	f.bookings.EXPECT().
		Transition(gomock.Any(), models.TransitionRequest{BookingID: "b1", ActorID: "user-provider", Status: models.BookingConfirmed}).
		Return(&models.Booking{ID: "b1", Status: models.BookingConfirmed}, nil)

	w := f.do(t, http.MethodPatch, "/api/bookings/b1/status", models.RoleProvider, `{"status":"confirmed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestAdminModerationRoute(t *testing.T) {
	f := newFixture(t)
	f.reviews.EXPECT().
		Moderate(gomock.Any(), models.Identity{UserID: "user-admin", Role: models.RoleAdmin}, "r1", false).
		Return(&models.Review{ID: "r1", IsRejected: true}, nil)

	if w := f.do(t, http.MethodPatch, "/api/admin/reviews/r1/reject", models.RoleAdmin, ""); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow origin = %q", got)
	}
}
