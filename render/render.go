// Package render defines the scene abstraction armviz draws into. A Scene
// hands out opaque handles to its primitives; each handle is owned by exactly
// one caller and mutated in place as the geometry it depicts moves. All
// methods are meant to be called from a single logical thread of control.
package render

import "github.com/golang/geo/r3"

// Primitive is implemented by every handle a Scene hands out.
type Primitive interface {
	// ID uniquely identifies the primitive within its scene.
	ID() string
}

// Box is a handle to a rectangular prism primitive.
type Box interface {
	Primitive

	SetPosition(pos r3.Vector)
	SetAxis(axis r3.Vector)
	SetSize(size r3.Vector)
	SetUp(up r3.Vector)

	// Rotate spins the box about its own axis by angle radians.
	Rotate(angle float64)
}

// TriadAxes is a handle to a set of three perpendicular axis indicators
// drawn at a point, oriented along a primary direction vector.
type TriadAxes interface {
	Primitive

	SetPosition(pos r3.Vector)

	// SetAxis reorients the triad along axis and rederives its up vector so
	// the two stay perpendicular.
	SetAxis(axis r3.Vector)

	// Up returns the triad's current up vector (unit length).
	Up() r3.Vector

	SetVisible(visible bool)
	Visible() bool

	// Rotate spins the triad about its own axis by angle radians.
	Rotate(angle float64)
}

// Scene creates and removes primitives.
type Scene interface {
	// NewBox adds a box with the given center position, axis, size, and up vector.
	NewBox(pos, axis, size, up r3.Vector) Box

	// NewTriadAxes adds axis indicators at origin oriented along axis, spun
	// about that axis by angle radians.
	NewTriadAxes(origin, axis r3.Vector, angle float64) TriadAxes

	// Remove releases the primitive from the scene. Using the handle after
	// removal is a caller error.
	Remove(p Primitive)
}
