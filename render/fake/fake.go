// Package fake implements an in-memory render.Scene that records every
// primitive and mutation, for use in tests.
package fake

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/google/uuid"

	"github.com/viam-labs/armviz/render"
	"github.com/viam-labs/armviz/spatialmath"
)

// Scene is an in-memory scene. It is not safe for concurrent use; armviz
// scenes are driven by a single logical thread.
type Scene struct {
	logger  golog.Logger
	boxes   []*Box
	triads  []*Triad
	removed int
}

// NewScene returns an empty fake scene.
func NewScene(logger golog.Logger) *Scene {
	return &Scene{logger: logger}
}

// NewBox adds a box and returns its handle.
func (s *Scene) NewBox(pos, axis, size, up r3.Vector) render.Box {
	b := &Box{
		id:       uuid.NewString(),
		Position: pos,
		Axis:     axis,
		Size:     size,
		UpVector: up,
	}
	s.boxes = append(s.boxes, b)
	s.logger.Debugw("created box", "id", b.id)
	return b
}

// NewTriadAxes adds a triad and returns its handle.
func (s *Scene) NewTriadAxes(origin, axis r3.Vector, angle float64) render.TriadAxes {
	tr := &Triad{
		id:       uuid.NewString(),
		Position: origin,
		Axis:     axis,
		UpVector: spatialmath.PerpendicularUp(axis),
		visible:  true,
	}
	if angle != 0 {
		tr.Rotate(angle)
	}
	s.triads = append(s.triads, tr)
	s.logger.Debugw("created triad", "id", tr.id)
	return tr
}

// Remove marks the primitive as removed.
func (s *Scene) Remove(p render.Primitive) {
	switch prim := p.(type) {
	case *Box:
		prim.Removed = true
	case *Triad:
		prim.Removed = true
	}
	s.removed++
}

// Boxes returns all boxes ever created, including removed ones.
func (s *Scene) Boxes() []*Box {
	return s.boxes
}

// Triads returns all triads ever created, including removed ones.
func (s *Scene) Triads() []*Triad {
	return s.triads
}

// RemovedCount returns how many primitives have been removed.
func (s *Scene) RemovedCount() int {
	return s.removed
}

// Box records the state of a fake box primitive.
type Box struct {
	id        string
	Position  r3.Vector
	Axis      r3.Vector
	Size      r3.Vector
	UpVector  r3.Vector
	Removed   bool
	Mutations int
}

// ID returns the box's unique ID.
func (b *Box) ID() string { return b.id }

// SetPosition moves the box center.
func (b *Box) SetPosition(pos r3.Vector) {
	b.Position = pos
	b.Mutations++
}

// SetAxis reorients the box.
func (b *Box) SetAxis(axis r3.Vector) {
	b.Axis = axis
	b.Mutations++
}

// SetSize resizes the box.
func (b *Box) SetSize(size r3.Vector) {
	b.Size = size
	b.Mutations++
}

// SetUp sets the box's up vector.
func (b *Box) SetUp(up r3.Vector) {
	b.UpVector = up
	b.Mutations++
}

// Rotate spins the box's up vector about its axis.
func (b *Box) Rotate(angle float64) {
	if angle != 0 {
		b.UpVector = spatialmath.RotateVectorAboutAxis(b.UpVector, b.Axis, angle)
	}
	b.Mutations++
}

// Triad records the state of a fake triad primitive.
type Triad struct {
	id        string
	Position  r3.Vector
	Axis      r3.Vector
	UpVector  r3.Vector
	Removed   bool
	Mutations int
	visible   bool
}

// ID returns the triad's unique ID.
func (tr *Triad) ID() string { return tr.id }

// SetPosition moves the triad's origin.
func (tr *Triad) SetPosition(pos r3.Vector) {
	tr.Position = pos
	tr.Mutations++
}

// SetAxis reorients the triad and rederives its up vector.
func (tr *Triad) SetAxis(axis r3.Vector) {
	tr.Axis = axis
	tr.UpVector = spatialmath.PerpendicularUp(axis)
	tr.Mutations++
}

// Up returns the triad's up vector.
func (tr *Triad) Up() r3.Vector {
	return tr.UpVector
}

// SetVisible toggles visibility.
func (tr *Triad) SetVisible(visible bool) {
	tr.visible = visible
	tr.Mutations++
}

// Visible reports whether the triad is visible.
func (tr *Triad) Visible() bool {
	return tr.visible
}

// Rotate spins the triad's up vector about its axis.
func (tr *Triad) Rotate(angle float64) {
	if angle != 0 {
		tr.UpVector = spatialmath.RotateVectorAboutAxis(tr.UpVector, tr.Axis, angle)
	}
	tr.Mutations++
}
