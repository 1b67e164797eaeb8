package object

import "github.com/gonutz/glider/geometry"

// Object is the room-owned, decoded form of a placed object: a kind
// plus the point it is anchored on. It carries no mutable runtime
// state — Play owns a live per-run copy of each room's objects (spec
// §3) that layers motion, spill/spark progress, and removal on top
// of this immutable value.
type Object struct {
	Kind     Kind
	Position geometry.Point
}

// Anchor returns the fixed placement anchor for o's kind (spec §4.B).
func (o Object) Anchor() geometry.Anchor {
	switch o.Kind.Code {
	case Table, Shelf:
		return geometry.TopCenter
	case FloorVent, CeilingDuctBlow, CeilingDuctTravel, CeilingVent:
		return geometry.BottomCenter
	case Candle, Thermostat, Switch, Lights, Guitar, Outlet, Steam:
		return geometry.Center
	case Flame:
		return geometry.BottomCenter
	case Fan:
		if o.Kind.Faces == geometry.Left {
			return geometry.CenterRight
		}
		return geometry.CenterLeft
	case Exit, Stair, Window, Painting, Teakettle:
		return geometry.BottomCenter
	case Wall:
		if o.Kind.WallSide == geometry.Left {
			return geometry.TopLeft
		}
		return geometry.TopRight
	default:
		return geometry.BottomCenter
	}
}

// BaseSize returns the nominal box size for kinds whose active area
// is a plain anchor-algebra box at rest; the second return is false
// for kinds whose area can only be computed with live progress/motion
// (Play supplies those — see play.liveObject).
func (o Object) BaseSize() (geometry.Size, bool) {
	switch o.Kind.Code {
	case Cabinet, Obstacle, Bonus, Mirror, Window:
		return o.Kind.Size, true
	case Table, Shelf:
		const thickness = 8
		if size, ok := geometry.NewSize(o.Kind.Width, thickness); ok {
			return size, true
		}
		return geometry.Size{}, false
	case Books:
		size, _ := geometry.NewSize(32, 16)
		return size, true
	case Basket, Macintosh:
		size, _ := geometry.NewSize(28, 22)
		return size, true
	case Flame:
		const width = 12
		height := o.Position.Y - o.Kind.Height
		if height < 1 {
			height = 1
		}
		size, _ := geometry.NewSize(width, uint16(height))
		return size, true
	case Clock, Paper, Battery, RubberBands:
		size, _ := geometry.NewSize(20, 20)
		return size, true
	case Exit:
		size, _ := geometry.NewSize(36, 64)
		return size, true
	case Stair:
		size, _ := geometry.NewSize(36, 24)
		return size, true
	case Switch, Thermostat, Guitar:
		size, _ := geometry.NewSize(16, 16)
		return size, true
	case Fan:
		size, _ := geometry.NewSize(uint16(o.Kind.Range), 28)
		return size, true
	default:
		return geometry.Size{}, false
	}
}

// ActiveArea returns the default, non-time-varying collision box for
// o, or false if o is either cosmetic or a kind whose area can only
// be computed from live runtime progress (handled by Play).
func (o Object) ActiveArea() (geometry.Rect, bool) {
	if o.IsCosmetic() {
		return geometry.Rect{}, false
	}
	size, ok := o.BaseSize()
	if !ok {
		return geometry.Rect{}, false
	}
	return geometry.At(size, o.Anchor(), o.Position), true
}

// IsDynamic reports whether o can change state mid-room: collected,
// spilled, sparking, or otherwise mutated during play (spec §4.B).
func (o Object) IsDynamic() bool {
	switch o.Kind.Code {
	case Clock, Paper, Grease, Battery, RubberBands, Bonus,
		Drip, Drop, Ball, Fishbowl, Fish, Toaster, Toast,
		Outlet, Steam, Teakettle, Switch, Lights, Thermostat,
		Shredder, Dart, Copter, Balloon, Flame, Candle, Window:
		return true
	default:
		return false
	}
}

// IsCosmetic reports whether o participates in rendering only (spec
// §4.B): Painting, Mirror, Basket, Macintosh never interact with the
// player, Candle/Teakettle are inert shells whose actual hazard comes
// from a spawned child (spec §4.B "effect"), and Window is decoration
// with no child.
func (o Object) IsCosmetic() bool {
	switch o.Kind.Code {
	case Painting, Mirror, Basket, Macintosh, Candle, Teakettle, Window:
		return true
	default:
		return false
	}
}

// Collidable reports whether o ever participates in the per-frame
// collision pass — the complement of cosmetic. Play does not call it:
// it keeps every room object and relies on ActiveArea returning false
// for cosmetic ones.
func (o Object) Collidable() bool { return !o.IsCosmetic() }
