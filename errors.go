package orthoroute

import "errors"

// Sentinel errors returned by the router's public API. Wrap with fmt.Errorf
// and %w when additional context (an offending ID, a coordinate) helps a
// caller diagnose the failure.
var (
	// ErrNoClientArea is returned by Solve when no client area has been set.
	ErrNoClientArea = errors.New("orthoroute: no client area set")

	// ErrUnknownObstacle is returned by RemoveObstacle and UpdateObstacle
	// when the given ObstacleID is not registered.
	ErrUnknownObstacle = errors.New("orthoroute: unknown obstacle id")

	// ErrUnknownPath is returned by RemovePath when the given ConnectionRef
	// is not registered.
	ErrUnknownPath = errors.New("orthoroute: unknown path reference")
)
