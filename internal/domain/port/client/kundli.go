package client

import (
	"context"

	"github.com/astrodash/astro-api/internal/domain/entity"
)

// KundliChart is the structured astrological birth chart computed from
// birth parameters. The chart layout is owned by the kundli service; the
// orchestrator only carries it between stages.
type KundliChart map[string]any

// KundliClient computes a Vedic birth chart from date/time/place of birth.
// This is a pure function of birth data; the same input always yields the
// same chart.
type KundliClient interface {
	// ComputeChart calls the kundli service with the user's birth details.
	//
	// Possible errors:
	// - ErrKundliComputation: If the service rejects the input or is unreachable
	ComputeChart(ctx context.Context, name string, birth entity.BirthDetails) (KundliChart, error)
}
