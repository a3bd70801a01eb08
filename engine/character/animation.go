package character

// Animation identifies a character animation clip.
type Animation int

const (
	// AnimationIdle is the standing idle loop.
	AnimationIdle Animation = iota

	// AnimationWalk is the walk loop, played at a speed scaled by the
	// character's horizontal velocity.
	AnimationWalk
)

// String returns the clip name used by the animation controller.
func (a Animation) String() string {
	switch a {
	case AnimationWalk:
		return "walk"
	default:
		return "idle"
	}
}
