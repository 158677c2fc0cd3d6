package relay

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/sirupsen/logrus"

	"bf-tradehook/internal/model"
	"bf-tradehook/internal/types"
)

type FailureKind string

const (
	FailureInvalidPayload  FailureKind = "invalid_payload"
	FailureUnauthorized    FailureKind = "unauthorized"
	FailureMissingFields   FailureKind = "missing_fields"
	FailureOrderSubmission FailureKind = "order_submission"
)

const (
	msgInvalidJSON   = "Invalid or missing JSON"
	msgUnauthorized  = "Unauthorized"
	msgMissingFields = "Missing instId/symbol, side, or size in payload"
)

// Result is the normalized terminal outcome of one webhook invocation.
type Result struct {
	Succeeded    bool
	Failure      FailureKind
	ErrorMessage string
	// Received echoes the original payload when the instruction was
	// incomplete, for diagnosability.
	Received map[string]any
	// ExchangeBody is the exchange response carried verbatim on success.
	ExchangeBody any
}

// OrderPlacer is the single-attempt submission dependency.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, instr model.TradeInstruction) (model.ExchangeOrderResult, error)
}

// Notifier delivers best-effort text notifications. Errors are logged by
// the relay and never alter the outcome.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Recorder journals terminal outcomes, also best-effort.
type Recorder interface {
	Record(ctx context.Context, rec model.RelayRecord) error
}

// Publisher fans events to in-process observers.
type Publisher interface {
	Publish(evt model.NotificationEvent)
}

// Relay drives one alert through validation, authorization and submission.
// It holds no per-request state; a single instance serves all concurrent
// invocations.
type Relay struct {
	placer   OrderPlacer
	secret   string
	notifier Notifier
	recorder Recorder
	bus      Publisher
	log      *logrus.Logger
}

func New(placer OrderPlacer, secret string, log *logrus.Logger) *Relay {
	return &Relay{placer: placer, secret: secret, log: log}
}

// WithNotifier attaches a notification channel.
func (r *Relay) WithNotifier(n Notifier) *Relay {
	r.notifier = n
	return r
}

// WithRecorder attaches an outcome journal.
func (r *Relay) WithRecorder(rec Recorder) *Relay {
	r.recorder = rec
	return r
}

// WithBus attaches an in-process event publisher.
func (r *Relay) WithBus(b Publisher) *Relay {
	r.bus = b
	return r
}

// Handle runs the per-request sequence
// ReceivedRaw → Validated → Authorized → Submitted → {Succeeded|Failed}.
func (r *Relay) Handle(ctx context.Context, raw []byte) Result {
	payload, err := decodeAlert(raw)
	if err != nil {
		res := Result{Failure: FailureInvalidPayload, ErrorMessage: msgInvalidJSON}
		r.emit(ctx, types.EventRejected, map[string]any{"error": res.ErrorMessage})
		r.record(ctx, model.RelayRecord{Kind: types.EventRejected, Error: res.ErrorMessage})
		return res
	}

	if r.secret != "" && !secretEqual(fieldString(payload, "secret"), r.secret) {
		res := Result{Failure: FailureUnauthorized, ErrorMessage: msgUnauthorized}
		r.emit(ctx, types.EventRejected, map[string]any{"error": res.ErrorMessage})
		r.record(ctx, model.RelayRecord{Kind: types.EventRejected, Error: res.ErrorMessage})
		return res
	}

	instr, ok := extractInstruction(payload)
	if !ok {
		res := Result{Failure: FailureMissingFields, ErrorMessage: msgMissingFields, Received: payload}
		r.emit(ctx, types.EventRejected, map[string]any{"error": res.ErrorMessage, "received": payload})
		r.record(ctx, model.RelayRecord{Kind: types.EventRejected, Error: res.ErrorMessage})
		return res
	}

	r.emit(ctx, types.EventReceived, instr)

	orderRes, err := r.placer.PlaceOrder(ctx, instr)
	if err != nil {
		res := Result{Failure: FailureOrderSubmission, ErrorMessage: err.Error()}
		r.emit(ctx, types.EventOrderFailed, map[string]any{"instruction": instr, "error": res.ErrorMessage})
		r.record(ctx, model.RelayRecord{
			Kind:       types.EventOrderFailed,
			InstID:     instr.InstID,
			Side:       string(instr.Side),
			Size:       instr.Size,
			HTTPStatus: orderRes.HTTPStatus,
			Error:      res.ErrorMessage,
		})
		return res
	}

	res := Result{Succeeded: true, ExchangeBody: orderRes.Body}
	r.emit(ctx, types.EventOrderSucceeded, map[string]any{"instruction": instr, "response": orderRes.Body})
	r.record(ctx, model.RelayRecord{
		Kind:       types.EventOrderSucceeded,
		InstID:     instr.InstID,
		Side:       string(instr.Side),
		Size:       instr.Size,
		HTTPStatus: orderRes.HTTPStatus,
	})
	return res
}

// emit publishes one NotificationEvent. Delivery failures are logged and
// swallowed so the relay outcome depends only on the order submission.
// Emission is synchronous, which keeps received → outcome ordering within
// a request.
func (r *Relay) emit(ctx context.Context, kind types.EventKind, payload any) {
	evt := model.NotificationEvent{Kind: kind, Payload: payload}
	if r.bus != nil {
		r.bus.Publish(evt)
	}
	if r.notifier == nil {
		return
	}
	if err := r.notifier.Send(ctx, eventText(evt)); err != nil {
		r.log.WithError(err).WithField("kind", kind).Warn("notification delivery failed")
	}
}

func (r *Relay) record(ctx context.Context, rec model.RelayRecord) {
	if r.recorder == nil {
		return
	}
	if err := r.recorder.Record(ctx, rec); err != nil {
		r.log.WithError(err).WithField("kind", rec.Kind).Warn("journal write failed")
	}
}

func eventText(evt model.NotificationEvent) string {
	switch p := evt.Payload.(type) {
	case model.TradeInstruction:
		return fmt.Sprintf("[%s] %s %s size=%s", evt.Kind, p.InstID, p.Side, p.Size)
	default:
		return fmt.Sprintf("[%s] %v", evt.Kind, evt.Payload)
	}
}

func secretEqual(provided, expected string) bool {
	if len(provided) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}
