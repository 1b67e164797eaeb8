package play

import (
	"github.com/gonutz/glider/geometry"
	"github.com/gonutz/glider/object"
)

// Kind discriminates the player's current activity. Per spec §9 this
// is emulated as a discriminant plus a flat field union rather than an
// interface hierarchy, same as object.Kind.
type Kind uint8

const (
	Flying Kind = iota
	FadingIn
	FadingOut
	Turning
	Shredding
	Burning
	Ascending
	Descending
	Landed
	Escaping
	Sliding
)

// Frame counts for every finite-progress state (spec §4.G).
const (
	fadeFrames   = 16
	turnFrames   = 11
	burnFrames   = 150
	landedFrames = 12
	escapeFrames = 10
	slideFrames  = 16
)

// descendArrivalY is the y coordinate a Descending player must reach
// before the stair completes and the room change fires (spec §4.G,
// scenario S6: "Descending until player.y ≤ 130").
const descendArrivalY = 130

// State is the player's state for one frame: a Kind plus whatever
// countdown or auxiliary data that Kind needs. Progress counts frames
// elapsed, counting up to Total.
type State struct {
	Kind     Kind
	Progress int
	Total    int

	// Destination and Entrance carry a pending room change through a
	// state that must finish animating before it fires: Escaping's
	// Total countdown, or Ascending/Descending's y-threshold.
	Destination object.RoomID
	Entrance    Entrance
}

// rank orders States by how dominant they are when more than one
// transition is triggered in the same frame (spec §4.G step 7): the
// lowest rank wins. Shredding (instant, unrecoverable death) always
// wins; ordinary Flying never overrides an active special state.
func (s State) rank() int {
	switch s.Kind {
	case Shredding:
		return 0
	case Escaping:
		return 1
	case FadingOut:
		return 4
	case Sliding:
		return 15
	case Ascending, Descending:
		return 16
	case FadingIn:
		return 32
	case Landed:
		return 48
	case Burning:
		return 80
	case Turning:
		return 96
	default: // Flying
		return 1000
	}
}

// dominant returns whichever of a, b should become the frame's new
// state: the lower-ranked (more dominant) of the two, preferring a on
// a tie so an unchanged state is not churned.
func dominant(a, b State) State {
	if b.rank() < a.rank() {
		return b
	}
	return a
}

// Done reports whether a finite-progress state has counted down to
// completion.
func (s State) Done() bool { return s.Total > 0 && s.Progress >= s.Total }

// tick advances s's progress by one frame, saturating at Total.
func (s State) tick() State {
	if s.Total > 0 && s.Progress < s.Total {
		s.Progress++
	}
	return s
}

// suppressesCollision reports whether object collision detection is
// disabled while s is active (spec §4.G invariant: a freshly spawned
// glider cannot be hurt mid-fade-in).
func (s State) suppressesCollision() bool { return s.Kind == FadingIn }

// motion returns the displacement s imposes this frame in place of
// ordinary gravity+glide physics, and whether s overrides normal
// motion at all (spec §4.G: "each tick, the current state produces
// an optional (displacement, uses_facing)"). States not listed here
// return overrides=false, leaving Play's normal fall/glide motion in
// effect; fallDelta is the gravity delta Play already computed this
// frame, reused by states that keep falling while suspending steering
// (Turning) or freeze entirely (Landed/Escaping/Shredding).
func (s State) motion(facing geometry.Side, fallDelta int16) (d geometry.Displacement, overrides bool) {
	switch s.Kind {
	case Burning:
		// A burning glider spirals down and to the right regardless
		// of the facing it had at ignition.
		return geometry.Displacement{X: 1, Y: 2}, true
	case Ascending:
		return geometry.Displacement{Y: -2}, true
	case Descending:
		return geometry.Displacement{Y: 2}, true
	case Sliding:
		return geometry.Displacement{X: facing.Mul(2)}, true
	case Turning:
		return geometry.Displacement{Y: fallDelta}, true
	case Landed, Escaping, Shredding:
		return geometry.Displacement{}, true
	default:
		return geometry.Displacement{}, false
	}
}
