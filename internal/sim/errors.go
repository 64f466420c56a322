package sim

import "errors"

// Domain errors for run orchestration.
var (
	// ErrInvalidState indicates the aircraft state went NaN/Inf.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrBadTimestep indicates a non-positive or oversized dt.
	ErrBadTimestep = errors.New("sim: timestep outside (0, 1] seconds")

	// ErrBadDuration indicates a non-positive run duration.
	ErrBadDuration = errors.New("sim: duration must be positive")
)
