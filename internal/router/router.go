package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gulfstaffing/manpower-review/internal/auth"
	"github.com/gulfstaffing/manpower-review/internal/handler"
	"github.com/gulfstaffing/manpower-review/internal/metrics"
	mw "github.com/gulfstaffing/manpower-review/internal/middleware"
)

func New(
	jwtSecret string,
	log *zap.Logger,
	subH *handler.SubmissionHandler,
	payH *handler.PaymentHandler,
	dashH *handler.DashboardHandler,
	auditH *handler.AuditHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery(log))
	r.Use(mw.Logger(log))
	r.Use(mw.CORS)
	r.Use(mw.Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))
			r.Use(auth.RequireRole("admin"))

			// Dashboard
			r.Get("/dashboard", dashH.Overview)

			// Submissions
			r.Get("/submissions", subH.List)
			r.Get("/submissions/stats", subH.Stats)
			r.Post("/submissions/reload", subH.Reload)
			r.Post("/submissions/errors/dismiss", subH.DismissError)
			r.Get("/submissions/{id}", subH.Get)
			r.Patch("/submissions/{id}/status", subH.UpdateStatus)
			r.Patch("/submissions/{id}/verified", subH.SetVerified)
			r.Delete("/submissions/{id}", subH.Delete)
			r.Get("/submissions/{id}/document", subH.Document)
			r.Get("/submissions/{id}/document/download", subH.Download)

			// Payments
			r.Get("/payments", payH.List)
			r.Get("/payments/stats", payH.Stats)
			r.Post("/payments/reload", payH.Reload)
			r.Post("/payments/errors/dismiss", payH.DismissError)
			r.Get("/payments/{id}", payH.Get)
			r.Patch("/payments/{id}/status", payH.UpdateStatus)
			r.Patch("/payments/{id}/verified", payH.SetVerified)

			// Audit trail
			r.Get("/audit", auditH.Recent)
		})
	})

	return r
}
