package interfaces

import "errors"

// ErrUniqueViolation is returned by repositories when a write collides with a
// primary key or unique constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")
