package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bf-tradehook/internal/health"
)

type RouterDeps struct {
	WebhookHandler *WebhookHandler
	HealthHandler  *health.Handler
	EventsWS       http.Handler
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeaders)
	r.Use(RateLimit(d.RateLimitRPS, d.RateLimitBurst))

	r.Get("/", d.HealthHandler.Root)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Post("/webhook", d.WebhookHandler.Webhook)
	if d.EventsWS != nil {
		r.Get("/events/ws", d.EventsWS.ServeHTTP)
	}

	return r
}
