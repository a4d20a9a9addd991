package kinematics

import (
	"math"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/viam-labs/armviz/render/fake"
	"github.com/viam-labs/armviz/utils"
)

func TestParseKind(t *testing.T) {
	for _, name := range []string{"rotational", "translational", "static", "gripper"} {
		kind, err := ParseKind(name)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, string(kind), test.ShouldEqual, name)
	}
	_, err := ParseKind("prismatic")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewJointUnknownKind(t *testing.T) {
	scene := fake.NewScene(golog.NewTestLogger(t))
	_, err := NewJoint(scene, Kind("bogus"), r3.Vector{}, r3.Vector{X: 1}, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestShortestAngleDiff(t *testing.T) {
	// 170 to -170 goes 20 degrees the short way, not 340
	diff := shortestAngleDiff(utils.DegToRad(170), utils.DegToRad(-170))
	test.That(t, utils.RadToDeg(diff), test.ShouldAlmostEqual, -20)

	diff = shortestAngleDiff(utils.DegToRad(-170), utils.DegToRad(170))
	test.That(t, utils.RadToDeg(diff), test.ShouldAlmostEqual, 20)

	test.That(t, shortestAngleDiff(0, math.Pi/2), test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, shortestAngleDiff(math.Pi/4, -math.Pi/4), test.ShouldAlmostEqual, math.Pi/2)
}

func TestRotateTo(t *testing.T) {
	logger := golog.NewTestLogger(t)
	scene := fake.NewScene(logger)
	joint, err := NewJoint(scene, KindRotational, r3.Vector{}, r3.Vector{X: 1}, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, joint.Link().ArmAngle(), test.ShouldAlmostEqual, 0)

	test.That(t, joint.RotateTo(math.Pi/2), test.ShouldBeNil)
	link := joint.Link()
	test.That(t, link.ArmAngle(), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, link.XVector().Sub(r3.Vector{Z: 1}).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, link.ConnectTo().Sub(r3.Vector{Z: 1}).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, link.Length(), test.ShouldAlmostEqual, 1)
}

func TestRotateToShorterArc(t *testing.T) {
	logger := golog.NewTestLogger(t)
	scene := fake.NewScene(logger)

	// a link pointing up and back has arm angle 170 degrees
	a := utils.DegToRad(10)
	to := r3.Vector{X: -math.Cos(a), Y: 0, Z: math.Sin(a)}
	joint, err := NewJoint(scene, KindRotational, r3.Vector{}, to, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, utils.RadToDeg(joint.Link().ArmAngle()), test.ShouldAlmostEqual, 170)

	// crossing the wrap takes the 20 degree arc, not the 340 degree one
	test.That(t, joint.RotateTo(utils.DegToRad(-170)), test.ShouldBeNil)
	test.That(t, utils.RadToDeg(joint.Link().ArmAngle()), test.ShouldAlmostEqual, -170)
	want := r3.Vector{X: -math.Cos(a), Y: 0, Z: -math.Sin(a)}
	test.That(t, joint.Link().XVector().Sub(want).Norm(), test.ShouldAlmostEqual, 0)
}

func TestRotateToLimits(t *testing.T) {
	logger := golog.NewTestLogger(t)
	scene := fake.NewScene(logger)
	joint, err := NewJoint(scene, KindRotational, r3.Vector{}, r3.Vector{X: 1}, logger)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, joint.SetAngleLimit(Limit{Min: -math.Pi / 4, Max: math.Pi / 4}), test.ShouldBeNil)

	err = joint.RotateTo(math.Pi / 2)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, OutOfRangeErrString)
	// rejected commands leave the joint where it was
	test.That(t, joint.Link().ArmAngle(), test.ShouldAlmostEqual, 0)

	test.That(t, joint.RotateTo(math.Pi/8), test.ShouldBeNil)
	test.That(t, joint.Link().ArmAngle(), test.ShouldAlmostEqual, math.Pi/8)

	err = joint.SetAngleLimit(Limit{Min: 1, Max: -1})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestJointKindDispatch(t *testing.T) {
	logger := golog.NewTestLogger(t)
	scene := fake.NewScene(logger)

	static, err := NewJoint(scene, KindStatic, r3.Vector{}, r3.Vector{X: 1}, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, static.RotateTo(1), test.ShouldNotBeNil)
	test.That(t, static.TranslateJoint(1), test.ShouldNotBeNil)
	test.That(t, static.SetAngleLimit(Limit{}), test.ShouldNotBeNil)

	gripper, err := NewJoint(scene, KindGripper, r3.Vector{}, r3.Vector{X: 1}, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gripper.Kind(), test.ShouldEqual, KindGripper)
	test.That(t, gripper.RotateTo(1), test.ShouldNotBeNil)

	translational, err := NewJoint(scene, KindTranslational, r3.Vector{}, r3.Vector{X: 1}, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, translational.SetTranslationLimit(Limit{Min: 0, Max: 2}), test.ShouldBeNil)
	err = translational.TranslateJoint(1)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not implemented")
}
