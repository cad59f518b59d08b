package routes

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"tourcab/admin"
	"tourcab/auth"
	"tourcab/blog"
	"tourcab/booking"
	"tourcab/cars"
	"tourcab/categories"
	"tourcab/globals"
	"tourcab/inquiry"
	"tourcab/live"
	"tourcab/locations"
	"tourcab/media"
	"tourcab/middleware"
	"tourcab/models"
	"tourcab/pages"
	"tourcab/ratelim"
	"tourcab/receipts"
	"tourcab/tours"
	"tourcab/utils"
)

// App carries everything the route table needs.
type App struct {
	Tours      *tours.Store
	Bookings   *booking.Store
	Cars       *cars.Store
	Locations  *locations.Store
	Pages      *pages.Store
	Categories *categories.Store
	Posts      *blog.Store

	Auth     *auth.Service
	Authn    *middleware.Authenticator
	Limiter  *ratelim.RateLimiter
	Hub      *live.Hub
	Signer   receipts.Signer
	Uploader *media.Uploader
	Composer inquiry.Composer

	UploadDir string
	Logger    *zap.SugaredLogger
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// New builds the full router.
func New(app *App) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	AddStaticRoutes(router, app)
	AddSiteRoutes(router, app)
	AddAuthRoutes(router, app)
	AddAdminRoutes(router, app)
	AddLiveRoutes(router, app)
	return router
}

func AddStaticRoutes(router *httprouter.Router, app *App) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir(app.UploadDir))
}

func AddSiteRoutes(router *httprouter.Router, app *App) {
	th := &tours.Handlers{Store: app.Tours}
	router.GET("/api/site/tours", th.List)
	router.GET("/api/site/featured-tours", th.Featured)
	router.GET("/api/site/tour/:id", th.Get)

	ch := &cars.Handlers{Store: app.Cars}
	router.GET("/api/site/cars", ch.List)

	lh := &locations.Handlers{Store: app.Locations}
	router.GET("/api/site/locations", lh.List)

	ph := &pages.Handlers{Store: app.Pages}
	router.GET("/api/site/homepage", ph.Homepage)
	router.GET("/api/site/pages", ph.Published)
	router.GET("/api/site/page/:slug", ph.BySlug)

	bh := &blog.Handlers{Store: app.Posts}
	router.GET("/api/site/blog", bh.List)
	router.GET("/api/site/post/:slug", bh.BySlug)

	cth := &categories.Handlers{Store: app.Categories}
	router.GET("/api/site/categories", cth.List)

	ih := &inquiry.Handlers{Composer: app.Composer, Tours: app.Tours, Bookings: app.Bookings, Logger: app.Logger}
	router.POST("/api/site/booking-inquiry", app.Limiter.Limit(ih.Booking))
	router.POST("/api/site/contact-inquiry", app.Limiter.Limit(ih.Contact))
}

func AddAuthRoutes(router *httprouter.Router, app *App) {
	ah := &auth.Handlers{Service: app.Auth}
	router.POST("/api/auth/login", app.Limiter.Limit(ah.Login))
	router.POST("/api/auth/logout", app.Authn.Authenticate(ah.Logout))
	router.GET("/api/auth/me", app.Authn.Authenticate(ah.Me))
}

func AddAdminRoutes(router *httprouter.Router, app *App) {
	guard := app.Authn.Authenticate

	(&admin.CRUD[models.Tour, string, models.TourPatch]{Kind: "tour", Store: app.Tours, Query: app.Tours.Query, ParseID: admin.StringID, Match: tours.Match}).
		Register(router, "/api/admin/tours", guard)
	(&admin.CRUD[models.Booking, string, models.BookingPatch]{Kind: "booking", Store: app.Bookings, Query: app.Bookings.Query, ParseID: admin.StringID, Match: booking.Match}).
		Register(router, "/api/admin/bookings", guard)
	(&admin.CRUD[models.Car, string, models.CarPatch]{Kind: "car", Store: app.Cars, Query: app.Cars.Query, ParseID: admin.StringID, Match: cars.Match}).
		Register(router, "/api/admin/cars", guard)
	(&admin.CRUD[models.Location, string, models.LocationPatch]{Kind: "location", Store: app.Locations, Query: app.Locations.Query, ParseID: admin.StringID, Match: locations.Match}).
		Register(router, "/api/admin/locations", guard)
	(&admin.CRUD[models.Page, int64, models.PagePatch]{Kind: "page", Store: app.Pages, ParseID: admin.IntID, Match: pages.Match}).
		Register(router, "/api/admin/pages", guard)
	(&admin.CRUD[models.Category, string, models.CategoryPatch]{Kind: "category", Store: app.Categories, Query: app.Categories.Query, ParseID: admin.StringID, Match: categories.Match}).
		Register(router, "/api/admin/categories", guard)
	(&admin.CRUD[models.BlogPost, int64, models.BlogPostPatch]{Kind: "post", Store: app.Posts, Query: app.Posts.Query, ParseID: admin.IntID, Match: blog.Match}).
		Register(router, "/api/admin/posts", guard)

	router.PATCH("/api/admin/tours/:id/featured", guard(admin.Toggle("tour", admin.StringID, app.Tours.ToggleFeatured, app.Tours.Get)))
	router.PATCH("/api/admin/cars/:id/availability", guard(admin.Toggle("car", admin.StringID, app.Cars.ToggleAvailability, app.Cars.Get)))
	router.PATCH("/api/admin/locations/:id/status", guard(admin.Toggle("location", admin.StringID, app.Locations.ToggleStatus, app.Locations.Get)))
	router.PATCH("/api/admin/pages/:id/homepage", guard(admin.Toggle("page", admin.IntID, app.Pages.SetAsHomepage, app.Pages.Get)))

	bh := &booking.Handlers{Store: app.Bookings}
	router.PATCH("/api/admin/bookings/:id/status", guard(bh.UpdateStatus))
	router.GET("/api/admin/tours/:id/bookings", guard(bh.ByTour))

	posts := &blog.Handlers{Store: app.Posts}
	router.PATCH("/api/admin/posts/:id/status", guard(posts.SetStatus))

	rh := &receipts.Handlers{Signer: app.Signer, Bookings: app.Bookings}
	router.GET("/api/admin/bookings/:id/receipt", guard(rh.Print))
	router.POST("/api/admin/receipts/verify", guard(rh.Verify))

	router.POST("/api/admin/media/:kind", guard(app.Uploader.Handle))

	dash := &admin.Dashboard{
		Stats: map[string]func() any{
			"tours":      func() any { return app.Tours.Stats() },
			"bookings":   func() any { return app.Bookings.Stats() },
			"cars":       func() any { return app.Cars.Stats() },
			"locations":  func() any { return app.Locations.Stats() },
			"pages":      func() any { return app.Pages.Stats() },
			"categories": func() any { return app.Categories.Stats() },
			"posts":      func() any { return app.Posts.Stats() },
		},
		Bookings: app.Bookings,
	}
	router.GET("/api/admin/stats/:kind", guard(dash.KindStats))
	router.GET("/api/admin/dashboard", guard(dash.Overview))
}

// AddLiveRoutes mounts the dashboard websocket.
func AddLiveRoutes(router *httprouter.Router, app *App) {
	router.GET("/api/admin/live", app.Authn.Authenticate(live.WebSocketHandler(app.Hub, globals.AdminRoom, utils.GetUserIDFromRequest)))
}
