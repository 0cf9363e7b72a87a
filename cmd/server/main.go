package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopfront/backend/internal/handler"
	"github.com/shopfront/backend/internal/logging"
	"github.com/shopfront/backend/internal/repository"
	"github.com/shopfront/backend/internal/service"
	"github.com/shopfront/backend/pkg/mailer"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:4321"
	}

	rateLimit := 30
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateLimit = n
		}
	}

	// One shared mail client for all sends. Verified here, once; never
	// re-verified per request.
	mail := mailer.NewClient(
		os.Getenv("SMTP_HOST"),
		os.Getenv("SMTP_PORT"),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
		os.Getenv("SMTP_FROM"),
	)
	if mail.Configured() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mail.Verify(ctx); err != nil {
			slog.Error("mail transport verification failed; notifications will be attempted anyway", "error", err)
		} else {
			slog.Info("mail transport verified")
		}
		cancel()
	} else {
		slog.Warn("SMTP not configured; notification sends will fail and be reported as warnings")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		slog.Warn("ADMIN_EMAIL not set; admin notices fall back to the submitter's address")
	}

	orderRepo := repository.NewMemoryOrderRepository()
	contactRepo := repository.NewMemoryContactRepository()
	userRepo := repository.NewMemoryUserRepository(repository.SeedUsers())

	intakeService := service.NewIntakeService(orderRepo, contactRepo, mail, adminEmail)

	h := handler.New(frontendURL)
	contactHandler := handler.NewContactHandler(intakeService, contactRepo)
	orderHandler := handler.NewOrderHandler(intakeService, orderRepo)
	userHandler := handler.NewUserHandler(userRepo)

	limiter := handler.NewRateLimiter(rateLimit)

	r := mux.NewRouter()
	r.Use(handler.RequestLogger, handler.SecurityHeaders)

	r.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Submission endpoints are rate limited; reads are not.
	r.Handle("/api/contact", limiter.Middleware(http.HandlerFunc(contactHandler.Submit))).Methods(http.MethodPost)
	r.Handle("/api/orders", limiter.Middleware(http.HandlerFunc(orderHandler.Submit))).Methods(http.MethodPost)

	r.HandleFunc("/api/contacts", contactHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/orders", orderHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{id}", orderHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/users", userHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/users/{id}", userHandler.Get).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      h.CORS(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
