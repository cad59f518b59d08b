package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"tourcab/auth"
	"tourcab/blog"
	"tourcab/booking"
	"tourcab/cars"
	"tourcab/categories"
	"tourcab/inquiry"
	"tourcab/live"
	"tourcab/locations"
	"tourcab/media"
	"tourcab/middleware"
	"tourcab/pages"
	"tourcab/ratelim"
	"tourcab/receipts"
	"tourcab/store"
	"tourcab/tours"
)

var secret = []byte("routes-secret")

func newApp(t *testing.T) *App {
	t.Helper()
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	deps := store.Deps{Backend: backend}.WithDefaults()
	dir := t.TempDir()

	app := &App{
		Limiter:   ratelim.NewRateLimiter(600, 100),
		Hub:       live.NewHub(nil),
		Signer:    receipts.Signer{Secret: []byte("receipt")},
		Uploader:  &media.Uploader{Dir: dir, IDs: deps.IDs},
		Composer:  inquiry.Composer{Number: "919876543210"},
		UploadDir: dir,
	}
	var err error
	must := func(e error) {
		t.Helper()
		if e != nil {
			t.Fatal(e)
		}
	}
	app.Tours, err = tours.NewStore(ctx, deps)
	must(err)
	app.Bookings, err = booking.NewStore(ctx, deps)
	must(err)
	app.Cars, err = cars.NewStore(ctx, deps)
	must(err)
	app.Locations, err = locations.NewStore(ctx, deps)
	must(err)
	app.Pages, err = pages.NewStore(ctx, deps)
	must(err)
	app.Categories, err = categories.NewStore(ctx, deps)
	must(err)
	app.Posts, err = blog.NewStore(ctx, deps)
	must(err)
	app.Auth, err = auth.NewService(auth.Options{Backend: backend, Secret: secret, Cost: bcrypt.MinCost})
	must(err)
	app.Authn = &middleware.Authenticator{Secret: secret, Sessions: app.Auth}
	return app
}

func serve(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := serve(h, http.MethodPost, "/api/auth/login", "", `{"email":"admin@tourcab.in","password":"admin123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d %s", rec.Code, rec.Body)
	}
	var s auth.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatal(err)
	}
	return s.Token
}

func TestPublicRoutes(t *testing.T) {
	router := New(newApp(t))

	cases := []struct {
		path string
		code int
	}{
		{"/health", http.StatusOK},
		{"/api/site/tours", http.StatusOK},
		{"/api/site/featured-tours", http.StatusOK},
		{"/api/site/tour/tour-ajanta", http.StatusOK},
		{"/api/site/tour/nope", http.StatusNotFound},
		{"/api/site/cars", http.StatusOK},
		{"/api/site/locations", http.StatusOK},
		{"/api/site/homepage", http.StatusOK},
		{"/api/site/pages", http.StatusOK},
		{"/api/site/page/about-us", http.StatusOK},
		{"/api/site/page/monsoon-specials", http.StatusNotFound},
		{"/api/site/blog", http.StatusOK},
		{"/api/site/categories", http.StatusOK},
	}
	for _, tc := range cases {
		if rec := serve(router, http.MethodGet, tc.path, "", ""); rec.Code != tc.code {
			t.Errorf("GET %s = %d, want %d", tc.path, rec.Code, tc.code)
		}
	}
}

func TestAdminRequiresToken(t *testing.T) {
	router := New(newApp(t))
	for _, path := range []string{"/api/admin/tours", "/api/admin/dashboard", "/api/admin/stats/cars"} {
		if rec := serve(router, http.MethodGet, path, "", ""); rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d", path, rec.Code)
		}
	}
}

func TestInquiryShowsUpOnDashboard(t *testing.T) {
	app := newApp(t)
	router := New(app)
	token := login(t, router)

	rec := serve(router, http.MethodPost, "/api/site/booking-inquiry", "",
		`{"tourId":"tour-city","name":"Kavya Rao","email":"kavya@example.com","phone":"+91 99000 11122","date":"2024-04-01","guests":2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("inquiry = %d %s", rec.Code, rec.Body)
	}

	rec = serve(router, http.MethodGet, "/api/admin/stats/bookings", token, "")
	var st booking.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatal(err)
	}
	if st.Total != 6 || st.Pending != 3 {
		t.Errorf("stats = %+v", st)
	}

	rec = serve(router, http.MethodGet, "/api/admin/tours/tour-city/bookings", token, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Kavya Rao") {
		t.Errorf("tour bookings = %d %s", rec.Code, rec.Body)
	}
}

func TestAdminToggleAndStatusRoutes(t *testing.T) {
	app := newApp(t)
	router := New(app)
	token := login(t, router)

	if rec := serve(router, http.MethodPatch, "/api/admin/tours/tour-city/featured", token, ""); rec.Code != http.StatusOK {
		t.Fatalf("featured = %d", rec.Code)
	}
	if tr, _ := app.Tours.Get("tour-city"); !tr.Featured {
		t.Error("tour-city not featured")
	}

	if rec := serve(router, http.MethodPatch, "/api/admin/bookings/bk-1002/status", token, `{"status":"confirmed"}`); rec.Code != http.StatusOK {
		t.Fatalf("status = %d %s", rec.Code, rec.Body)
	}
	if b, _ := app.Bookings.Get("bk-1002"); b.Status != "confirmed" {
		t.Errorf("bk-1002 status = %s", b.Status)
	}

	rec := serve(router, http.MethodGet, "/api/admin/bookings/bk-1002/receipt", token, "")
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "application/pdf" {
		t.Errorf("receipt = %d %s", rec.Code, rec.Header().Get("Content-Type"))
	}
}
