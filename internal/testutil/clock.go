package testutil

import (
	"time"

	"github.com/light-bringer/machinery-catalog/internal/pkg/clock"
)

// FixedTime is the instant NewMockClock starts at.
var FixedTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// NewMockClock creates a mock clock that can be controlled in tests.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(FixedTime)
}
