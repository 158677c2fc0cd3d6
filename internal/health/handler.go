package health

import (
	"net/http"
	"time"

	"bf-tradehook/internal/httputil"
)

type Handler struct {
	startedAt time.Time
}

func NewHandler(startedAt time.Time) *Handler {
	start := startedAt.UTC()
	if start.IsZero() {
		start = time.Now().UTC()
	}
	return &Handler{startedAt: start}
}

type statusResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	UptimeSec int64  `json:"uptime_sec"`
}

// Root answers GET / so external monitors (and TradingView test pings) can
// confirm the relay is up.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.startedAt)
	if uptime < 0 {
		uptime = 0
	}
	httputil.WriteJSON(w, http.StatusOK, statusResponse{
		Status:    "ok",
		Message:   "Trading webhook is running",
		UptimeSec: int64(uptime.Seconds()),
	})
}
