package objects

import "errors"

// ErrConnectivity is returned when objects are requested from a grid graph
// that is not 8-connected. Objects are defined under 8-connectivity only.
var ErrConnectivity = errors.New("objects: grid graph must use 8-connectivity")
