package layout

import "errors"

// ErrInvalidConfiguration is returned when a bus configuration cannot
// produce a well-formed floor plan: capacity out of the supported
// range, a floor split larger than the capacity, or a template whose
// rows do not cover every seat.
var ErrInvalidConfiguration = errors.New("invalid layout configuration")
