package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"tourcab/auth"
	"tourcab/blog"
	"tourcab/booking"
	"tourcab/cars"
	"tourcab/categories"
	"tourcab/config"
	"tourcab/db"
	"tourcab/globals"
	"tourcab/inquiry"
	"tourcab/live"
	"tourcab/locations"
	"tourcab/logging"
	"tourcab/media"
	"tourcab/middleware"
	"tourcab/pages"
	"tourcab/ratelim"
	"tourcab/rdx"
	"tourcab/receipts"
	"tourcab/routes"
	"tourcab/store"
	"tourcab/tours"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(logger *zap.SugaredLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Infow("request",
			"method", r.Method,
			"path", r.RequestURI,
			"remote", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}

// openBackend picks the durable slot store named by STORE_BACKEND. The
// returned func releases its connection.
func openBackend(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) (store.Backend, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client, err := rdx.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		logger.Infow("using redis backend", "addr", cfg.RedisAddr, "prefix", cfg.RedisPrefix)
		return store.NewRedisBackend(client, cfg.RedisPrefix), func() { client.Close() }, nil
	case config.BackendMongo:
		client, err := db.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		logger.Infow("using mongo backend", "db", cfg.MongoDB)
		return store.NewMongoBackend(db.Slots(client, cfg.MongoDB)), func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			client.Disconnect(dctx)
		}, nil
	default:
		if cfg.StoreBackend != config.BackendMemory {
			logger.Warnw("unknown store backend, using memory", "backend", cfg.StoreBackend)
		}
		return store.NewMemoryBackend(), func() {}, nil
	}
}

// buildApp opens every store on backend and joins their change feeds to hub.
func buildApp(ctx context.Context, cfg config.Config, backend store.Backend, hub *live.Hub, logger *zap.SugaredLogger) (*routes.App, error) {
	deps := store.Deps{Backend: backend, Logger: logger}.WithDefaults()

	app := &routes.App{
		Hub:       hub,
		Limiter:   ratelim.NewRateLimiter(10, 5),
		Signer:    receipts.Signer{Secret: cfg.ReceiptSecret},
		Uploader:  &media.Uploader{Dir: cfg.UploadDir, IDs: deps.IDs, Logger: logger},
		Composer:  inquiry.Composer{Number: cfg.WhatsAppNumber},
		UploadDir: cfg.UploadDir,
		Logger:    logger,
	}

	var err error
	if app.Tours, err = tours.NewStore(ctx, deps); err != nil {
		return nil, err
	}
	if app.Bookings, err = booking.NewStore(ctx, deps); err != nil {
		return nil, err
	}
	if app.Cars, err = cars.NewStore(ctx, deps); err != nil {
		return nil, err
	}
	if app.Locations, err = locations.NewStore(ctx, deps); err != nil {
		return nil, err
	}
	if app.Pages, err = pages.NewStore(ctx, deps); err != nil {
		return nil, err
	}
	if app.Categories, err = categories.NewStore(ctx, deps); err != nil {
		return nil, err
	}
	if app.Posts, err = blog.NewStore(ctx, deps); err != nil {
		return nil, err
	}

	relay := hub.Listener(globals.AdminRoom)
	app.Tours.Collection().Subscribe(relay)
	app.Bookings.Collection().Subscribe(relay)
	app.Cars.Collection().Subscribe(relay)
	app.Locations.Collection().Subscribe(relay)
	app.Pages.Collection().Subscribe(relay)
	app.Categories.Collection().Subscribe(relay)
	app.Posts.Collection().Subscribe(relay)

	app.Auth, err = auth.NewService(auth.Options{
		Backend: backend,
		Secret:  cfg.JWTSecret,
		Delay:   cfg.LoginDelay,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	app.Authn = &middleware.Authenticator{Secret: cfg.JWTSecret, Sessions: app.Auth}
	return app, nil
}

func main() {
	cfg, envFile := config.Load()

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	if !envFile {
		logger.Info("No .env file found; using system environment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	backend, closeBackend, err := openBackend(ctx, cfg, logger)
	if err != nil {
		cancel()
		logger.Fatalw("open store backend", "backend", cfg.StoreBackend, "error", err)
	}
	defer closeBackend()

	hub := live.NewHub(logger)
	go hub.Run()

	app, err := buildApp(ctx, cfg, backend, hub, logger)
	cancel()
	if err != nil {
		logger.Fatalw("open stores", "error", err)
	}
	if err := os.MkdirAll(filepath.Clean(cfg.UploadDir), 0o755); err != nil {
		logger.Fatalw("create upload dir", "dir", cfg.UploadDir, "error", err)
	}

	router := routes.New(app)

	// apply middleware: logging → security headers → CORS → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(logger, securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		logger.Info("Shutting down live hub")
		hub.Stop()
	})

	go func() {
		logger.Infow("Server listening", "addr", cfg.Port, "backend", cfg.StoreBackend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("ListenAndServe", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutdown signal received; shutting down gracefully")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("Graceful shutdown failed", "error", err)
		return
	}
	logger.Info("Server stopped cleanly")
}
