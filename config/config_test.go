package config

import (
	"math"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/viam-labs/armviz/kinematics"
	"github.com/viam-labs/armviz/render/fake"
)

const sampleArm = `{
	"name": "two-link",
	"show_reference_frames": true,
	"joints": [
		{"kind": "static", "from": [0, 0, 0], "to": [0, 0, 1]},
		{
			"kind": "rotational",
			"from": [0, 0, 1],
			"to": [1, 0, 1],
			"angle_limit": {"min": -1.5707963, "max": 1.5707963}
		},
		{"kind": "gripper", "from": [1, 0, 1], "to": [1.2, 0, 1]}
	]
}`

func TestFromBytes(t *testing.T) {
	cfg, err := FromBytes([]byte(sampleArm))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Name, test.ShouldEqual, "two-link")
	test.That(t, len(cfg.Joints), test.ShouldEqual, 3)
	test.That(t, cfg.Joints[1].AngleLimit.Max, test.ShouldAlmostEqual, math.Pi/2, 1e-6)

	_, err = FromBytes([]byte("{not json"))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		json string
		want string
	}{
		{"no joints", `{"joints": []}`, "at least one joint"},
		{
			"unknown kind",
			`{"joints": [{"kind": "prismatic", "from": [0,0,0], "to": [1,0,0]}]}`,
			"unknown joint kind",
		},
		{
			"coincident endpoints",
			`{"joints": [{"kind": "static", "from": [1,1,1], "to": [1,1,1]}]}`,
			"coincident",
		},
		{
			"broken chain",
			`{"joints": [
				{"kind": "static", "from": [0,0,0], "to": [0,0,1]},
				{"kind": "static", "from": [5,5,5], "to": [6,5,5]}
			]}`,
			"does not match",
		},
		{
			"inverted limit",
			`{"joints": [{"kind": "rotational", "from": [0,0,0], "to": [1,0,0],
				"angle_limit": {"min": 1, "max": -1}}]}`,
			"exceeds max",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromBytes([]byte(tc.json))
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.want)
		})
	}
}

func TestBuild(t *testing.T) {
	logger := golog.NewTestLogger(t)
	scene := fake.NewScene(logger)

	cfg, err := FromBytes([]byte(sampleArm))
	test.That(t, err, test.ShouldBeNil)

	r, err := cfg.Build(scene, logger)
	test.That(t, err, test.ShouldBeNil)
	defer r.Close()

	test.That(t, len(r.Joints()), test.ShouldEqual, 3)
	test.That(t, len(scene.Boxes()), test.ShouldEqual, 3)
	test.That(t, len(scene.Triads()), test.ShouldEqual, 3)
	// show_reference_frames leaves every triad visible
	for _, triad := range scene.Triads() {
		test.That(t, triad.Visible(), test.ShouldBeTrue)
	}

	j, err := r.Joint(1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, j.Kind(), test.ShouldEqual, kinematics.KindRotational)
	// the configured limit is live
	err = j.RotateTo(math.Pi)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, kinematics.OutOfRangeErrString)
}
