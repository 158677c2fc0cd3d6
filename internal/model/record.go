package model

import (
	"time"

	"bf-tradehook/internal/types"
)

// RelayRecord is one journal row describing a terminal relay outcome.
// Recording is best-effort and never influences the relay result.
type RelayRecord struct {
	Kind       types.EventKind
	InstID     string
	Side       string
	Size       string
	HTTPStatus int
	Error      string
	CreatedAt  time.Time
}
