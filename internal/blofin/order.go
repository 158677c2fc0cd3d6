package blofin

import (
	"encoding/json"

	"bf-tradehook/internal/model"
)

// orderPath is the fixed order-submission endpoint.
const orderPath = "/api/v1/trade/order"

// orderRequest mirrors BloFin's documented order schema. Field names and
// casing are the wire contract and must match verbatim.
type orderRequest struct {
	InstID     string `json:"instId"`
	MarginMode string `json:"marginMode"`
	Side       string `json:"side"`
	OrderType  string `json:"orderType"`
	Size       string `json:"size"`
	Price      string `json:"price,omitempty"`
}

// buildOrderBody maps a validated instruction onto the order schema and
// serializes it. encoding/json emits struct fields in declaration order with
// no inserted whitespace, so identical instructions always produce identical
// bytes — the same bytes are signed and sent.
func buildOrderBody(instr model.TradeInstruction) ([]byte, error) {
	return json.Marshal(orderRequest{
		InstID:     instr.InstID,
		MarginMode: string(instr.MarginMode),
		Side:       string(instr.Side),
		OrderType:  string(instr.OrderType),
		Size:       instr.Size,
		Price:      instr.Price,
	})
}
