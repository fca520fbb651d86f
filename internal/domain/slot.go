package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Slot represents a fixed-duration bookable time interval
type Slot struct {
	Start types.DateTime `json:"start"`
	End   types.DateTime `json:"end"`
}

// Equal returns true if both interval boundaries match exactly.
// Slot identity is defined by exact boundary equality only — overlap or
// containment never makes two slots equal.
func (s Slot) Equal(other Slot) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End)
}

// Duration returns the length of the slot
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start.Time)
}
