package epsel

import "errors"

// Sentinel errors for catalog and configuration failures. Callers
// discriminate with errors.Is; wrapped messages carry the detail.
var (
	// ErrNotFound flags a missing catalog or scenario file, or an unknown
	// thruster ID.
	ErrNotFound = errors.New("epsel: not found")

	// ErrInvalidSchema flags a catalog document that does not match the
	// expected shape: unparseable JSON, a missing "thrusters" list, or a
	// record without all of its fields.
	ErrInvalidSchema = errors.New("epsel: invalid catalog schema")

	// ErrInvalidParameter flags a mission requirement or scoring weight
	// outside its allowed range.
	ErrInvalidParameter = errors.New("epsel: invalid parameter")
)
