package sim

import "errors"

var (
	// ErrNoSurface means the container could not supply a drawing surface.
	// Starting again once the container is ready is expected to succeed.
	ErrNoSurface = errors.New("sim: no drawing surface")

	ErrNilScheduler = errors.New("sim: nil scheduler")
)
