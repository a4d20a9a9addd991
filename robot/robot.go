// Package robot assembles ordered chains of joints into a single arm.
// Chain-level command propagation (forward kinematics) is not implemented;
// callers address joints individually for now.
package robot

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/viam-labs/armviz/kinematics"
)

// Robot owns an ordered chain of joints, base first.
type Robot struct {
	logger golog.Logger
	joints []*kinematics.Joint
}

// New creates a robot from the given joints, ordered base to tool.
func New(logger golog.Logger, joints ...*kinematics.Joint) (*Robot, error) {
	if len(joints) == 0 {
		return nil, errors.New("robot needs at least one joint")
	}
	return &Robot{logger: logger, joints: joints}, nil
}

// Joints returns the chain in order, base first.
func (r *Robot) Joints() []*kinematics.Joint {
	out := make([]*kinematics.Joint, len(r.joints))
	copy(out, r.joints)
	return out
}

// Joint returns the joint at the given position in the chain.
func (r *Robot) Joint(i int) (*kinematics.Joint, error) {
	if i < 0 || i >= len(r.joints) {
		return nil, errors.Errorf("no joint at index %d, chain has %d", i, len(r.joints))
	}
	return r.joints[i], nil
}

// DrawReferenceFrames shows or hides the reference frame triads of every
// link in the chain.
func (r *Robot) DrawReferenceFrames(visible bool) {
	for _, j := range r.joints {
		j.Link().DrawReferenceFrame(visible)
	}
}

// Close releases every joint's scene primitives.
func (r *Robot) Close() {
	r.logger.Debugw("closing robot", "joints", len(r.joints))
	for _, j := range r.joints {
		j.Close()
	}
}
