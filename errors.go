package cncsupervisor

import "errors"

// Sentinel errors returned by New when it is given construction-time
// arguments it cannot operate with. The supervisor itself never returns an
// error once running: illegal transitions and refused events are silent
// no-ops.
var (
	ErrNilCollaborator  = errors.New("cncsupervisor: required collaborator is nil")
	ErrInvalidAxisCount = errors.New("cncsupervisor: axis count must be positive")
	ErrInvalidParkAxis  = errors.New("cncsupervisor: parking axis out of range")
)
