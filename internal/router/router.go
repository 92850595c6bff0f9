package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"tti-backend/internal/handlers"
	"tti-backend/internal/middleware"
	"tti-backend/internal/websocket"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	courseHandler *handlers.CourseHandler,
	moduleHandler *handlers.ModuleHandler,
	enrollmentHandler *handlers.EnrollmentHandler,
	paymentHandler *handlers.PaymentHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			// Logout requires auth
			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// ──── Course Routes ────
		r.Route("/courses", func(r chi.Router) {
			// Catalog is public
			r.Get("/", courseHandler.List)
			r.Get("/{id}", courseHandler.Get)

			// Curriculum requires auth + paid enrollment
			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Get("/{id}/modules", moduleHandler.List)
				r.Get("/{id}/modules/{number}", moduleHandler.Get)
				r.Get("/{id}/modules/{number}/quiz", moduleHandler.GetQuiz)
				r.Post("/{id}/modules/{number}/quiz/submit", moduleHandler.SubmitQuiz)
				r.Get("/{id}/progress", moduleHandler.GetProgress)
			})
		})

		// ──── Enrollment Routes ────
		r.Route("/enrollments", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/my", enrollmentHandler.My)
			r.Post("/checkout", enrollmentHandler.Checkout)
		})

		// ──── Payment Routes ────
		r.Route("/payments", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/status/{session_id}", paymentHandler.Status)
		})

		// Stripe calls this; auth is the signature header, not a JWT.
		r.Post("/webhook/stripe", paymentHandler.StripeWebhook)

		// ──── User Routes ────
		r.Route("/user", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/me", authHandler.Me)
		})

		// ──── Seed (development/bootstrap) ────
		r.Post("/seed", courseHandler.Seed)

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
