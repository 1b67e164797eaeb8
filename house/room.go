package house

import (
	"github.com/gonutz/glider/geometry"
	"github.com/gonutz/glider/object"
)

// Enemy names the kind of hazard a room's animate slot spawns (spec §3
// "Room"): Dart, Copter, or Balloon. play.Start adds Animate.Count of
// them to the room; each crosses the screen and re-enters at an
// rng-chosen height.
type Enemy int8

const (
	DartEnemy Enemy = iota
	CopterEnemy
	BalloonEnemy
)

// Animate is a room's periodic-hazard spawner configuration, decoded
// from the animate_kind/animate_number/animate_delay wire fields.
// A Room with no animate slot (animate_kind outside 0..2) has a nil
// *Animate.
type Animate struct {
	Kind  Enemy
	Count uint16

	// DelayFrames is the raw wire tick count between spawns, stored
	// as read. The reference divides this by 30 into a Duration; Play
	// does not read it, since it spawns all Count hazards at Start.
	DelayFrames uint32
}

// Room is the house-owned, static description of one room (spec §3):
// its backdrop, floor tiles, left/right neighbor openness, periodic
// hazard spawner, ambient environment state, and placed objects. It
// carries no player or live object state — Play builds that from a
// Room at Start.
type Room struct {
	Name       string
	BackdropID uint16
	TileRow    [8]uint16

	LeftOpen  bool
	RightOpen bool

	Animate *Animate

	AirOn    bool
	LightsOn bool

	Objects []object.Object
}

const (
	// FloorY is the implicit floor's top edge, shared by every room
	// (spec §3): nothing is placed below it, and it always catches a
	// descending glider that clears every other obstacle.
	FloorY = 325

	wallThickness = 8
)

// Walls returns the synthetic Wall objects for sides that have no
// open exit. A side with an open exit has no wall: the player leaves
// into the neighboring room instead of bouncing (spec §3, §4.G).
func (r Room) Walls() []object.Object {
	var walls []object.Object
	if !r.LeftOpen {
		walls = append(walls, object.Object{
			Kind:     object.Kind{Code: object.Wall, WallSide: geometry.Left},
			Position: geometry.Point{X: 0, Y: 0},
		})
	}
	if !r.RightOpen {
		walls = append(walls, object.Object{
			Kind:     object.Kind{Code: object.Wall, WallSide: geometry.Right},
			Position: geometry.Point{X: ScreenWidth, Y: 0},
		})
	}
	return walls
}

// WallBounds returns the active collision rect for a wall object,
// spanning the full room height at the screen edge it occupies. Walls
// have no wire-decoded size (spec §4.B), so object.Object.ActiveArea
// cannot compute this alone.
func WallBounds(side geometry.Side) geometry.Rect {
	if side == geometry.Left {
		r, _ := geometry.NewRect(0, 0, wallThickness, ScreenHeight)
		return r
	}
	r, _ := geometry.NewRect(ScreenWidth-wallThickness, 0, ScreenWidth, ScreenHeight)
	return r
}
