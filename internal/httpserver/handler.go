package httpserver

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"bf-tradehook/internal/httputil"
	"bf-tradehook/internal/relay"
)

// WebhookHandler adapts relay outcomes onto the fixed HTTP contract.
type WebhookHandler struct {
	relay *relay.Relay
	log   *logrus.Logger
}

func NewWebhookHandler(rl *relay.Relay, log *logrus.Logger) *WebhookHandler {
	return &WebhookHandler{relay: rl, log: log}
}

type webhookSuccess struct {
	OK             bool `json:"ok"`
	BlofinResponse any  `json:"blofin_response"`
}

type webhookFailure struct {
	OK       bool           `json:"ok"`
	Error    string         `json:"error"`
	Received map[string]any `json:"received,omitempty"`
}

func (h *WebhookHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, webhookFailure{Error: "Invalid or missing JSON"})
		return
	}

	res := h.relay.Handle(r.Context(), raw)
	if res.Succeeded {
		httputil.WriteJSON(w, http.StatusOK, webhookSuccess{OK: true, BlofinResponse: res.ExchangeBody})
		return
	}

	status := http.StatusInternalServerError
	switch res.Failure {
	case relay.FailureInvalidPayload, relay.FailureMissingFields:
		status = http.StatusBadRequest
	case relay.FailureUnauthorized:
		status = http.StatusUnauthorized
	}
	h.log.WithFields(logrus.Fields{
		"failure": res.Failure,
		"status":  status,
	}).Info("webhook rejected")
	httputil.WriteJSON(w, status, webhookFailure{Error: res.ErrorMessage, Received: res.Received})
}
