package relay

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"bf-tradehook/internal/model"
	"bf-tradehook/internal/types"
)

// decodeAlert parses the inbound body as a JSON object. UseNumber keeps
// numeric sizes exactly as written so "0.01" never becomes "0.010000...".
func decodeAlert(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// fieldString coerces a payload field to string the way the alert contract
// allows: strings pass through, JSON numbers are rendered verbatim.
func fieldString(payload map[string]any, key string) string {
	switch v := payload[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// extractInstruction is the single parse/validate boundary: it either
// yields a well-formed TradeInstruction or reports the alert as incomplete.
// instId falls back to symbol; size must be a positive decimal string.
func extractInstruction(payload map[string]any) (model.TradeInstruction, bool) {
	instID := fieldString(payload, "instId")
	if instID == "" {
		instID = fieldString(payload, "symbol")
	}
	side := fieldString(payload, "side")
	size := fieldString(payload, "size")
	if instID == "" || side == "" || size == "" {
		return model.TradeInstruction{}, false
	}
	d, err := decimal.NewFromString(size)
	if err != nil || d.Sign() <= 0 {
		return model.TradeInstruction{}, false
	}
	return model.TradeInstruction{
		InstID:     instID,
		Side:       types.OrderSide(side),
		Size:       size,
		OrderType:  types.OrderTypeMarket,
		MarginMode: types.MarginModeIsolated,
	}, true
}
