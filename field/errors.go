package field

import "errors"

// ErrInvalidField indicates Metadata failed validation: non-positive point
// counts or spacing, or inverted bounds.
var ErrInvalidField = errors.New("field: invalid metadata")
