package model

import (
	"bf-tradehook/internal/types"
)

// TradeInstruction is a validated trade extracted from an inbound alert.
// Immutable once built; InstID, Side and Size are guaranteed non-empty and
// Size is a positive decimal string.
type TradeInstruction struct {
	InstID     string           `json:"instId"`
	Side       types.OrderSide  `json:"side"`
	Size       string           `json:"size"`
	OrderType  types.OrderType  `json:"orderType"`
	MarginMode types.MarginMode `json:"marginMode"`
	Price      string           `json:"price,omitempty"`
}

// ExchangeOrderResult is the classified outcome of one order submission.
// Created per call and consumed immediately; never persisted by the core.
type ExchangeOrderResult struct {
	OK           bool   `json:"ok"`
	HTTPStatus   int    `json:"http_status"`
	Body         any    `json:"body"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// NotificationEvent is a fire-and-forget record of a relay state transition.
type NotificationEvent struct {
	Kind    types.EventKind `json:"kind"`
	Payload any             `json:"payload"`
}
