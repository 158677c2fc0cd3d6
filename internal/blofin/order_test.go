package blofin

import (
	"testing"

	"bf-tradehook/internal/model"
	"bf-tradehook/internal/types"
)

func TestBuildOrderBody_MarketOrder(t *testing.T) {
	instr := model.TradeInstruction{
		InstID:     "BTC-USDT-SWAP",
		Side:       types.OrderSideBuy,
		Size:       "1",
		OrderType:  types.OrderTypeMarket,
		MarginMode: types.MarginModeIsolated,
	}

	body, err := buildOrderBody(instr)
	if err != nil {
		t.Fatalf("buildOrderBody failed: %v", err)
	}

	want := `{"instId":"BTC-USDT-SWAP","marginMode":"isolated","side":"buy","orderType":"market","size":"1"}`
	if string(body) != want {
		t.Errorf("body mismatch\n got %s\nwant %s", body, want)
	}
}

func TestBuildOrderBody_LimitOrderIncludesPrice(t *testing.T) {
	instr := model.TradeInstruction{
		InstID:     "SOL-USDT-SWAP",
		Side:       types.OrderSideSell,
		Size:       "2",
		OrderType:  types.OrderTypeLimit,
		MarginMode: types.MarginModeCross,
		Price:      "150.5",
	}

	body, err := buildOrderBody(instr)
	if err != nil {
		t.Fatalf("buildOrderBody failed: %v", err)
	}

	want := `{"instId":"SOL-USDT-SWAP","marginMode":"cross","side":"sell","orderType":"limit","size":"2","price":"150.5"}`
	if string(body) != want {
		t.Errorf("body mismatch\n got %s\nwant %s", body, want)
	}
}

func TestBuildOrderBody_Deterministic(t *testing.T) {
	instr := model.TradeInstruction{
		InstID:     "BTC-USDT-SWAP",
		Side:       types.OrderSideBuy,
		Size:       "1",
		OrderType:  types.OrderTypeMarket,
		MarginMode: types.MarginModeIsolated,
	}

	a, _ := buildOrderBody(instr)
	b, _ := buildOrderBody(instr)
	if string(a) != string(b) {
		t.Errorf("identical instructions serialized differently: %s vs %s", a, b)
	}
}
