package router

import (
	"net/http"

	"storefront-admin/internal/handler"
	"storefront-admin/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Health        *handler.HealthHandler
	Voucher       *handler.VoucherHandler
	FAQ           *handler.FAQHandler
	PaymentMethod *handler.PaymentMethodHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// metricsHandler is served at /metrics when non-nil.
func New(
	h Handlers,
	apiKey string,
	observer middleware.RequestObserver,
	metricsHandler http.Handler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging -> CORS -> Metrics
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.Metrics(observer))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"NOT_FOUND","message":"resource not found"}`))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"error":"Method not allowed"}`))
	})

	// Health check accepts every method so it can answer 405 itself.
	r.HandleFunc("/health", h.Health.Check)
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/faqs", h.FAQ.ListActive)
		r.Get("/payment-methods", h.PaymentMethod.ListActive)
		r.Post("/vouchers/validate", h.Voucher.Validate)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(apiKey, logger))

			r.Route("/vouchers", func(r chi.Router) {
				r.Get("/", h.Voucher.List)
				r.Post("/", h.Voucher.Create)
				r.Get("/{id}", h.Voucher.Get)
				r.Put("/{id}", h.Voucher.Update)
				r.Delete("/{id}", h.Voucher.Delete)
				r.Patch("/{id}/active", h.Voucher.SetActive)
			})

			r.Route("/faqs", func(r chi.Router) {
				r.Get("/", h.FAQ.ListAll)
				r.Post("/", h.FAQ.Create)
				r.Put("/order", h.FAQ.Reorder)
				r.Get("/{id}", h.FAQ.Get)
				r.Put("/{id}", h.FAQ.Update)
				r.Delete("/{id}", h.FAQ.Delete)
				r.Patch("/{id}/active", h.FAQ.SetActive)
			})

			r.Route("/payment-methods", func(r chi.Router) {
				r.Get("/", h.PaymentMethod.ListAll)
				r.Post("/", h.PaymentMethod.Create)
				r.Put("/order", h.PaymentMethod.Reorder)
				r.Get("/{id}", h.PaymentMethod.Get)
				r.Put("/{id}", h.PaymentMethod.Update)
				r.Delete("/{id}", h.PaymentMethod.Delete)
				r.Patch("/{id}/active", h.PaymentMethod.SetActive)
			})
		})
	})

	return r
}
