// Package kinematics models the rigid links and joints of a simple
// articulated arm and keeps their on-screen representation in sync as they
// move. All operations are synchronous recomputations of the link's frame
// vectors followed by direct mutation of the owned scene primitives.
package kinematics

import (
	"github.com/golang/geo/r3"

	"github.com/viam-labs/armviz/render"
	"github.com/viam-labs/armviz/spatialmath"
)

const (
	// defaultThickness is the box cross-section used until STL models are supported.
	defaultThickness = 0.1

	// coincidentEpsilon is the distance under which two points are considered the same.
	coincidentEpsilon = 1e-9
)

// Link is a rigid segment between two 3D points with a fixed length and a
// local coordinate frame anchored at its tool-point end. A link owns exactly
// one box primitive and one optional triad; both are released by Close.
type Link struct {
	scene render.Scene

	connectFrom r3.Vector
	connectTo   r3.Vector
	length      float64

	// Frame vectors, each rescaled to the link length: xVector points along
	// the link, yVector follows the triad's up, zVector is their cross product.
	xVector r3.Vector
	yVector r3.Vector
	zVector r3.Vector

	armAngle float64

	box   render.Box
	triad render.TriadAxes
}

// NewLink creates a link between from and to, drawing its primitives into
// scene. The distance between the endpoints becomes the link's fixed length.
func NewLink(scene render.Scene, from, to r3.Vector) (*Link, error) {
	direction := to.Sub(from)
	length := direction.Norm()
	if length < coincidentEpsilon {
		return nil, NewInvalidGeometryError("link endpoints are coincident")
	}

	l := &Link{
		scene:       scene,
		connectFrom: from,
		connectTo:   to,
		length:      length,
		xVector:     spatialmath.RescaledTo(direction, length),
	}
	l.triad = scene.NewTriadAxes(l.connectTo, l.xVector, 0)
	l.updateReferenceFrame()
	l.armAngle = ArmAngle(l.xVector, l.zVector)

	l.box = scene.NewBox(
		midpoint(l.connectFrom, l.connectTo),
		l.xVector,
		r3.Vector{X: l.length, Y: defaultThickness, Z: defaultThickness},
		r3.Vector{Z: 1},
	)
	return l, nil
}

// Translate moves both link endpoints by delta, then redraws the primitives.
func (l *Link) Translate(delta r3.Vector) {
	l.connectFrom = l.connectFrom.Add(delta)
	l.connectTo = l.connectTo.Add(delta)
	if l.triad != nil {
		l.DrawReferenceFrame(l.triad.Visible())
		l.updateReferenceFrame()
	}
	l.drawBox()
}

// UpdateOrientation reorients the link to face the direction of the given
// vector, keeping connectFrom in place and the length fixed, then redraws the
// primitives and recomputes the arm angle.
func (l *Link) UpdateOrientation(direction r3.Vector) error {
	if direction.Norm() < coincidentEpsilon {
		return NewInvalidGeometryError("direction vector has zero length")
	}
	direction = spatialmath.RescaledTo(direction, l.length)
	l.xVector = direction
	l.connectTo = l.connectFrom.Add(direction)
	if l.triad != nil {
		l.DrawReferenceFrame(l.triad.Visible())
		l.updateReferenceFrame()
	}
	l.drawBox()
	l.armAngle = ArmAngle(l.xVector, l.zVector)
	return nil
}

// DrawReferenceFrame shows or hides the triad at the tool point, creating it
// lazily the first time it is shown.
func (l *Link) DrawReferenceFrame(visible bool) {
	if !visible {
		if l.triad != nil {
			l.triad.SetVisible(false)
			l.triad.SetPosition(l.connectTo)
			l.triad.SetAxis(l.xVector)
		}
		return
	}
	if l.triad == nil {
		l.triad = l.scene.NewTriadAxes(l.connectTo, l.xVector, 0)
		return
	}
	l.triad.SetPosition(l.connectTo)
	l.triad.SetAxis(l.xVector)
	l.triad.SetVisible(true)
}

// updateReferenceFrame rederives the frame vectors from the endpoints and the
// triad's up vector, each rescaled to the link length.
func (l *Link) updateReferenceFrame() {
	l.xVector = spatialmath.RescaledTo(l.connectTo.Sub(l.connectFrom), l.length)
	l.yVector = spatialmath.RescaledTo(l.triad.Up(), l.length)
	l.zVector = spatialmath.RescaledTo(l.xVector.Cross(l.yVector), l.length)
}

func (l *Link) drawBox() {
	l.box.SetPosition(midpoint(l.connectFrom, l.connectTo))
	l.box.SetAxis(l.xVector)
	l.box.SetSize(r3.Vector{X: l.length, Y: defaultThickness, Z: defaultThickness})
}

// ConnectFrom returns the link's origin point.
func (l *Link) ConnectFrom() r3.Vector { return l.connectFrom }

// ConnectTo returns the link's tool point.
func (l *Link) ConnectTo() r3.Vector { return l.connectTo }

// Length returns the link's fixed length.
func (l *Link) Length() float64 { return l.length }

// ArmAngle returns the link's current arm angle in radians.
func (l *Link) ArmAngle() float64 { return l.armAngle }

// XVector returns the link's direction vector, scaled to the link length.
func (l *Link) XVector() r3.Vector { return l.xVector }

// YVector returns the frame's up vector, scaled to the link length.
func (l *Link) YVector() r3.Vector { return l.yVector }

// ZVector returns the frame's normal vector, scaled to the link length.
func (l *Link) ZVector() r3.Vector { return l.zVector }

// Close releases the link's scene primitives.
func (l *Link) Close() {
	if l.triad != nil {
		l.scene.Remove(l.triad)
		l.triad = nil
	}
	if l.box != nil {
		l.scene.Remove(l.box)
		l.box = nil
	}
}

func midpoint(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: (a.Z + b.Z) / 2}
}
