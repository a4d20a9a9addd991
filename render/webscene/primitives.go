package webscene

import (
	"github.com/golang/geo/r3"

	"github.com/viam-labs/armviz/spatialmath"
)

// box is the streamed implementation of render.Box.
type box struct {
	scene *Scene
	state *PrimitiveState
}

func (b *box) ID() string { return b.state.ID }

func (b *box) SetPosition(pos r3.Vector) {
	b.scene.mutate(b.state, func() {
		b.state.Position = toArray(pos)
	})
}

func (b *box) SetAxis(axis r3.Vector) {
	b.scene.mutate(b.state, func() {
		b.state.Axis = toArray(axis)
	})
}

func (b *box) SetSize(size r3.Vector) {
	b.scene.mutate(b.state, func() {
		sizeArr := toArray(size)
		b.state.Size = &sizeArr
	})
}

func (b *box) SetUp(up r3.Vector) {
	b.scene.mutate(b.state, func() {
		b.state.Up = toArray(up)
	})
}

func (b *box) Rotate(angle float64) {
	b.scene.mutate(b.state, func() {
		if angle != 0 {
			up := spatialmath.RotateVectorAboutAxis(toVector(b.state.Up), toVector(b.state.Axis), angle)
			b.state.Up = toArray(up)
		}
	})
}

// triad is the streamed implementation of render.TriadAxes.
type triad struct {
	scene *Scene
	state *PrimitiveState
}

func (tr *triad) ID() string { return tr.state.ID }

func (tr *triad) SetPosition(pos r3.Vector) {
	tr.scene.mutate(tr.state, func() {
		tr.state.Position = toArray(pos)
	})
}

func (tr *triad) SetAxis(axis r3.Vector) {
	tr.scene.mutate(tr.state, func() {
		tr.state.Axis = toArray(axis)
		tr.state.Up = toArray(spatialmath.PerpendicularUp(axis))
	})
}

func (tr *triad) Up() r3.Vector {
	return toVector(tr.state.Up)
}

func (tr *triad) SetVisible(visible bool) {
	tr.scene.mutate(tr.state, func() {
		tr.state.Visible = visible
	})
}

func (tr *triad) Visible() bool {
	return tr.state.Visible
}

func (tr *triad) Rotate(angle float64) {
	tr.scene.mutate(tr.state, func() {
		if angle != 0 {
			up := spatialmath.RotateVectorAboutAxis(toVector(tr.state.Up), toVector(tr.state.Axis), angle)
			tr.state.Up = toArray(up)
		}
	})
}
