package place

import "errors"

// ErrNumericDegenerate reports that the field's derived density or dSepMax
// collapsed to a non-positive value, per spec.md §7's NumericDegenerate
// error kind. Construction aborts; there is nothing for the driver to
// recover.
var ErrNumericDegenerate = errors.New("place: numeric degeneracy in density or dSepMax")
