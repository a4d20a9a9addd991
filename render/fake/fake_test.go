package fake

import (
	"math"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestSceneAccounting(t *testing.T) {
	scene := NewScene(golog.NewTestLogger(t))

	box := scene.NewBox(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{X: 1, Y: 0.1, Z: 0.1}, r3.Vector{Z: 1})
	triad := scene.NewTriadAxes(r3.Vector{X: 1}, r3.Vector{X: 1}, 0)
	test.That(t, len(scene.Boxes()), test.ShouldEqual, 1)
	test.That(t, len(scene.Triads()), test.ShouldEqual, 1)
	test.That(t, box.ID(), test.ShouldNotEqual, triad.ID())

	box.SetPosition(r3.Vector{X: 2})
	box.SetAxis(r3.Vector{Y: 1})
	box.SetSize(r3.Vector{X: 2, Y: 0.1, Z: 0.1})
	test.That(t, scene.Boxes()[0].Mutations, test.ShouldEqual, 3)
	test.That(t, scene.Boxes()[0].Position, test.ShouldResemble, r3.Vector{X: 2})

	scene.Remove(box)
	scene.Remove(triad)
	test.That(t, scene.RemovedCount(), test.ShouldEqual, 2)
	test.That(t, scene.Boxes()[0].Removed, test.ShouldBeTrue)
	test.That(t, scene.Triads()[0].Removed, test.ShouldBeTrue)
}

func TestTriadUpTracksAxis(t *testing.T) {
	scene := NewScene(golog.NewTestLogger(t))
	triad := scene.NewTriadAxes(r3.Vector{}, r3.Vector{X: 1}, 0)

	// horizontal axis starts with world Y as up
	test.That(t, triad.Up().Sub(r3.Vector{Y: 1}).Norm(), test.ShouldAlmostEqual, 0)

	// reorienting rederives up so it stays perpendicular
	triad.SetAxis(r3.Vector{Z: 1})
	test.That(t, triad.Up().Dot(r3.Vector{Z: 1}), test.ShouldAlmostEqual, 0)

	triad.SetVisible(false)
	test.That(t, triad.Visible(), test.ShouldBeFalse)

	// a zero-angle spin leaves up untouched but still counts as a mutation
	before := triad.Up()
	triad.Rotate(0)
	test.That(t, triad.Up(), test.ShouldResemble, before)

	triad.Rotate(math.Pi)
	test.That(t, triad.Up().Add(before).Norm(), test.ShouldAlmostEqual, 0)
}
