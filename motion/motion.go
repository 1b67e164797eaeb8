// Package motion implements the small integer-fixed-point ballistic
// iterator used by every accelerating or oscillating object in a
// room: Drop (gravity), Ball (floor/ceiling bounce), Fish and Toast
// (bounded upward arcs). It is grounded on the reference's
// `motion.rs`, which keeps a position in 1/32-pixel fixed point and
// reports only the integer-pixel delta each tick.
package motion

// Motion is a lazy per-frame pixel-delta generator: velocity
// integrates acceleration, position integrates velocity, and the
// reported delta is the change of (position >> 5) — 5 bits of
// fractional pixel precision, matching spec §4.C.
//
// When the fixed-point position reaches Limit pixels, one of two
// things happens, selected by Bounce:
//   - Bounce: velocity inverts, turning the motion into an
//     oscillator (used by Ball's floor/ceiling bounce).
//   - otherwise: velocity resets to zero and position jumps back to
//     -TailDelay pixels, so the ballistic arc restarts from scratch
//     and first has to climb those TailDelay pixels back up (used by Drop's
//     respawn and Drip's range reset, spec §8: "A Drip's Drop resets
//     to -7 after reaching its range and continues").
type Motion struct {
	Acceleration int16
	Limit        int16
	TailDelay    int16
	Bounce       bool

	velocity int16
	position int32 // fixed point, 5 fractional bits
	holding  int16 // frames still to wait before resuming motion
}

// New builds a Motion at rest, ready to be stepped.
func New(acceleration, limit, tailDelay int16, bounce bool) *Motion {
	return &Motion{Acceleration: acceleration, Limit: limit, TailDelay: tailDelay, Bounce: bounce}
}

// Hold freezes the motion for the given number of frames before its
// first Step does anything — used for Toaster/Fishbowl's initial
// per-object delay before the first launch.
func (m *Motion) Hold(frames int16) { m.holding = frames }

// Reset re-seeds velocity so that a motion which logically started
// mid-flight (position already negative, i.e. still in its holding
// tail) reports the same deltas it would have, had it been ticking
// since position 0. Mirrors motion.rs's `reset`.
func (m *Motion) Reset() {
	m.velocity = 0
	for m.position < 0 {
		m.velocity -= m.Acceleration
		m.position -= int32(m.velocity)
	}
	m.position = 0
}

// Step advances the motion by one 33ms tick and returns the signed
// pixel delta for this frame.
func (m *Motion) Step() int16 {
	if m.holding > 0 {
		m.holding--
		return 0
	}
	before := int16(m.position >> 5)
	m.velocity += m.Acceleration
	m.position += int32(m.velocity)
	after := int16(m.position >> 5)

	if after >= m.Limit {
		if m.Bounce {
			m.velocity = -m.velocity
		} else {
			m.velocity = 0
			m.position = -int32(m.TailDelay) << 5
		}
	}
	return after - before
}

// Position returns the current whole-pixel position, for callers
// that need to know where the motion currently sits (e.g. play's live
// objects, whose collision box follows it).
func (m *Motion) Position() int16 { return int16(m.position >> 5) }

// AtRest reports whether the motion is still inside the delay set by
// Hold. The reset at Limit sets no such delay.
func (m *Motion) AtRest() bool { return m.holding > 0 }
