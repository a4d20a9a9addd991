// Package config loads arm definitions from JSON and builds joint chains
// from them.
package config

import (
	"encoding/json"
	"os"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/viam-labs/armviz/kinematics"
	"github.com/viam-labs/armviz/render"
	"github.com/viam-labs/armviz/robot"
)

// LimitConfig bounds a joint's range of motion. Angles are in radians,
// translations in scene units.
type LimitConfig struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// JointConfig describes one joint of an arm: its kind and the two points its
// link spans.
type JointConfig struct {
	Name             string       `json:"name,omitempty"`
	Kind             string       `json:"kind"`
	From             [3]float64   `json:"from"`
	To               [3]float64   `json:"to"`
	AngleLimit       *LimitConfig `json:"angle_limit,omitempty"`
	TranslationLimit *LimitConfig `json:"translation_limit,omitempty"`
}

// ArmConfig describes a whole arm, joints ordered base to tool.
type ArmConfig struct {
	Name                string        `json:"name"`
	ShowReferenceFrames bool          `json:"show_reference_frames,omitempty"`
	Joints              []JointConfig `json:"joints"`
}

// FromFile reads and validates an arm definition.
func FromFile(path string) (*ArmConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read arm config %q", path)
	}
	return FromBytes(data)
}

// FromBytes parses and validates an arm definition.
func FromBytes(data []byte) (*ArmConfig, error) {
	var cfg ArmConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "cannot parse arm config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures all parts of the config are valid.
func (cfg *ArmConfig) Validate() error {
	var err error
	if len(cfg.Joints) == 0 {
		err = multierr.Append(err, errors.New("arm config needs at least one joint"))
	}
	for i, jc := range cfg.Joints {
		if _, kindErr := kinematics.ParseKind(jc.Kind); kindErr != nil {
			err = multierr.Append(err, errors.Wrapf(kindErr, "joint %d", i))
		}
		if jc.From == jc.To {
			err = multierr.Append(err, errors.Errorf("joint %d: from and to are coincident", i))
		}
		if i > 0 && jc.From != cfg.Joints[i-1].To {
			err = multierr.Append(err, errors.Errorf("joint %d: from does not match joint %d's to", i, i-1))
		}
		for _, lim := range []*LimitConfig{jc.AngleLimit, jc.TranslationLimit} {
			if lim != nil && lim.Min > lim.Max {
				err = multierr.Append(err, errors.Errorf("joint %d: limit min %f exceeds max %f", i, lim.Min, lim.Max))
			}
		}
	}
	return err
}

// Build constructs the configured joint chain in scene and wraps it in a
// Robot.
func (cfg *ArmConfig) Build(scene render.Scene, logger golog.Logger) (*robot.Robot, error) {
	joints := make([]*kinematics.Joint, 0, len(cfg.Joints))
	closeAll := func() {
		for _, j := range joints {
			j.Close()
		}
	}
	for i, jc := range cfg.Joints {
		kind, err := kinematics.ParseKind(jc.Kind)
		if err != nil {
			closeAll()
			return nil, errors.Wrapf(err, "joint %d", i)
		}
		j, err := kinematics.NewJoint(scene, kind, toVector(jc.From), toVector(jc.To), logger)
		if err != nil {
			closeAll()
			return nil, errors.Wrapf(err, "joint %d", i)
		}
		joints = append(joints, j)
		if jc.AngleLimit != nil {
			if err := j.SetAngleLimit(kinematics.Limit{Min: jc.AngleLimit.Min, Max: jc.AngleLimit.Max}); err != nil {
				closeAll()
				return nil, errors.Wrapf(err, "joint %d", i)
			}
		}
		if jc.TranslationLimit != nil {
			if err := j.SetTranslationLimit(kinematics.Limit{Min: jc.TranslationLimit.Min, Max: jc.TranslationLimit.Max}); err != nil {
				closeAll()
				return nil, errors.Wrapf(err, "joint %d", i)
			}
		}
	}

	r, err := robot.New(logger, joints...)
	if err != nil {
		closeAll()
		return nil, err
	}
	r.DrawReferenceFrames(cfg.ShowReferenceFrames)
	return r, nil
}

func toVector(p [3]float64) r3.Vector {
	return r3.Vector{X: p[0], Y: p[1], Z: p[2]}
}
