package kinematics

import "github.com/pkg/errors"

// InvalidGeometryErrString is contained in all errors returned for degenerate
// link geometry, so callers can check for them distinct from other errors.
const InvalidGeometryErrString = "invalid geometry"

// OutOfRangeErrString is contained in all errors returned for joint commands
// outside configured limits.
const OutOfRangeErrString = "out of range"

// NewInvalidGeometryError returns an error indicating degenerate link geometry.
func NewInvalidGeometryError(reason string) error {
	return errors.Errorf("%s: %s", InvalidGeometryErrString, reason)
}

// NewOutOfRangeError returns an error indicating a joint command outside its
// configured limit.
func NewOutOfRangeError(value, min, max float64) error {
	return errors.Errorf("%s: %f not in [%f, %f]", OutOfRangeErrString, value, min, max)
}

// NewWrongJointKindError returns an error indicating an operation was invoked
// on a joint kind that does not support it.
func NewWrongJointKindError(got, want Kind, op string) error {
	return errors.Errorf("cannot %s a %s joint, need %s", op, got, want)
}

// NewUnknownJointKindError returns an error for an unrecognized joint kind name.
func NewUnknownJointKindError(name string) error {
	return errors.Errorf("unknown joint kind %q", name)
}
