package system

// InputSnapshot is the per-tick view of the input collaborator's state.
// The core treats it as read-only, sampled once per tick. Camera yaw
// and pitch are supplied by the presentation layer's camera rig.
type InputSnapshot struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Run     bool
	Jump    bool

	Fire     bool
	Interact bool

	// Camera orientation, radians. Yaw rotates the horizontal movement
	// direction into world space; pitch only affects firing.
	Yaw   float64
	Pitch float64

	// MouseDX/MouseDY are the mouse deltas since the last frame,
	// Captured whether the pointer is captured. Consumed by the
	// presentation layer's camera, carried here for recording.
	MouseDX  float64
	MouseDY  float64
	Captured bool
}

// HasMovement reports whether any horizontal movement key is held
func (in InputSnapshot) HasMovement() bool {
	return in.Forward || in.Back || in.Left || in.Right
}
