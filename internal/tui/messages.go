package tui

import (
	"time"

	"github.com/agbru/scorering/internal/viewmodel"
)

// frameMsg drives one animation frame.
type frameMsg time.Time

// statsTickMsg triggers memory and system samples for the stats panel.
type statsTickMsg time.Time

// fetchResultMsg carries a finished fetch back to the update loop.
type fetchResultMsg struct {
	Result viewmodel.Result
}

// contextCancelledMsg is sent when the parent context ends.
type contextCancelledMsg struct {
	Err error
}
