package game

import "errors"

// Construction errors. Both are fatal: New registers nothing when it
// returns one of them.
var (
	// ErrNoMountPoint means the host has no surface container to draw into.
	ErrNoMountPoint = errors.New("game: no mount point")

	// ErrNoRenderer means the host cannot provide 3D rendering.
	ErrNoRenderer = errors.New("game: 3D renderer unavailable")

	ErrNoSimulation = errors.New("game: nil simulation")
)
