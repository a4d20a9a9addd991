package kinematics

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/viam-labs/armviz/render"
	"github.com/viam-labs/armviz/spatialmath"
	"github.com/viam-labs/armviz/utils"
)

// Kind discriminates the joint variants an arm chain can contain.
type Kind string

// The supported joint kinds.
const (
	KindRotational    = Kind("rotational")
	KindTranslational = Kind("translational")
	KindStatic        = Kind("static")
	KindGripper       = Kind("gripper")
)

// ParseKind converts a joint kind name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case KindRotational, KindTranslational, KindStatic, KindGripper:
		return k, nil
	default:
		return "", NewUnknownJointKindError(name)
	}
}

// Limit bounds a joint's range of motion.
type Limit struct {
	Min float64
	Max float64
}

// Joint is one segment of an arm chain: a Link plus kind-specific motion
// state. Motion operations check the kind tag rather than dispatching
// virtually, so a Robot can treat all joints uniformly.
type Joint struct {
	kind   Kind
	link   *Link
	logger golog.Logger

	// Rotational joints only; nil means the rotation is unbounded.
	angleLimit *Limit

	// Translational joints only; held for when translation is implemented.
	translationLimit *Limit
}

// NewJoint creates a joint of the given kind with a link between from and to.
func NewJoint(scene render.Scene, kind Kind, from, to r3.Vector, logger golog.Logger) (*Joint, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	link, err := NewLink(scene, from, to)
	if err != nil {
		return nil, err
	}
	return &Joint{kind: kind, link: link, logger: logger}, nil
}

// Kind returns the joint's kind tag.
func (j *Joint) Kind() Kind { return j.kind }

// Link returns the joint's link.
func (j *Joint) Link() *Link { return j.link }

// SetAngleLimit bounds a rotational joint's arm angle, in radians.
func (j *Joint) SetAngleLimit(limit Limit) error {
	if j.kind != KindRotational {
		return NewWrongJointKindError(j.kind, KindRotational, "set an angle limit on")
	}
	if limit.Min > limit.Max {
		return errors.Errorf("angle limit min %f exceeds max %f", limit.Min, limit.Max)
	}
	j.angleLimit = &limit
	return nil
}

// SetTranslationLimit bounds a translational joint's travel.
func (j *Joint) SetTranslationLimit(limit Limit) error {
	if j.kind != KindTranslational {
		return NewWrongJointKindError(j.kind, KindTranslational, "set a translation limit on")
	}
	if limit.Min > limit.Max {
		return errors.Errorf("translation limit min %f exceeds max %f", limit.Min, limit.Max)
	}
	j.translationLimit = &limit
	return nil
}

// RotateTo rotates a rotational joint so its arm angle reaches target
// radians, taking the shorter arc. When an angle limit is configured, targets
// outside it are rejected.
func (j *Joint) RotateTo(target float64) error {
	if j.kind != KindRotational {
		return NewWrongJointKindError(j.kind, KindRotational, "rotate")
	}
	if j.angleLimit != nil && (target < j.angleLimit.Min || target > j.angleLimit.Max) {
		return NewOutOfRangeError(target, j.angleLimit.Min, j.angleLimit.Max)
	}

	current := j.link.ArmAngle()
	diff := shortestAngleDiff(current, target)
	j.logger.Debugw("rotating joint",
		"current_deg", utils.RadToDeg(current),
		"target_deg", utils.RadToDeg(target),
		"diff_deg", utils.RadToDeg(diff),
	)
	rotated := spatialmath.RotateVectorAboutAxis(j.link.XVector(), j.link.YVector(), diff)
	return j.link.UpdateOrientation(rotated)
}

// TranslateJoint will slide a translational joint along its axis. Not yet
// implemented.
func (j *Joint) TranslateJoint(distance float64) error {
	if j.kind != KindTranslational {
		return NewWrongJointKindError(j.kind, KindTranslational, "translate")
	}
	return errors.New("joint translation is not implemented")
}

// Close releases the joint's link.
func (j *Joint) Close() {
	j.link.Close()
}

// shortestAngleDiff returns current minus target wrapped into [-pi, pi], the
// rotation that reaches the target by the shorter arc.
func shortestAngleDiff(current, target float64) float64 {
	diff := current - target
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}
