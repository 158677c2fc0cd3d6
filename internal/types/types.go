package types

type OrderSide string

type OrderType string

type MarginMode string

type EventKind string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

const (
	OrderTypeMarket OrderType = "market"
	OrderTypeLimit  OrderType = "limit"
)

const (
	MarginModeIsolated MarginMode = "isolated"
	MarginModeCross    MarginMode = "cross"
)

const (
	EventReceived       EventKind = "received"
	EventRejected       EventKind = "rejected"
	EventOrderFailed    EventKind = "order_failed"
	EventOrderSucceeded EventKind = "order_succeeded"
)
