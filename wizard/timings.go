package wizard

import "time"

// Timings collects every simulated delay in the wizard. The delays are
// UX pacing, not real work: generation and refinement model perceived
// AI latency, the publish floor keeps the "Publishing..." state on
// screen long enough to read. Tests inject near-zero values.
type Timings struct {
	// Generate is the simulated content-generation latency.
	Generate time.Duration
	// Refine is the delay before the assistant's chat reply lands.
	Refine time.Duration
	// Connect is the delay before a destination link is confirmed.
	Connect time.Duration
	// ConnectAdvance is the pause after linking before the wizard
	// auto-advances to the publish confirmation.
	ConnectAdvance time.Duration
	// PublishFloor is the minimum visible publishing duration, applied
	// even when the underlying call returns (or fails) faster.
	PublishFloor time.Duration
	// SuccessDismiss is how long the success state stays up before the
	// wizard resets itself.
	SuccessDismiss time.Duration
}

// DefaultTimings returns the production pacing.
func DefaultTimings() Timings {
	return Timings{
		Generate:       3200 * time.Millisecond,
		Refine:         1100 * time.Millisecond,
		Connect:        1000 * time.Millisecond,
		ConnectAdvance: 1500 * time.Millisecond,
		PublishFloor:   4000 * time.Millisecond,
		SuccessDismiss: 3000 * time.Millisecond,
	}
}
