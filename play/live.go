package play

import (
	"github.com/gonutz/glider/geometry"
	"github.com/gonutz/glider/house"
	"github.com/gonutz/glider/motion"
	"github.com/gonutz/glider/object"
	"github.com/gonutz/glider/rng"
)

// patrolSpeed is the horizontal pixels/frame a screen-crossing hazard
// travels (spec §4.G step 4: Dart/Copter/Balloon patrol the room).
const patrolSpeed = 2

// liveObject is Play's mutable runtime wrapper around a room-owned
// object.Object (spec §3): the static Kind/Position, plus whatever
// per-object progress or motion the object has accrued since room
// start. A nil Motion means the object never moves on its own (spec
// §4.B kinds with a fixed position); Velocity is the separate,
// simpler driver for the screen-crossing patrol hazards.
type liveObject struct {
	Object   object.Object
	Motion   *motion.Motion
	Velocity int16 // Dart/Copter/Balloon: signed horizontal patrol speed
	Progress int   // generic frame counter: spark timers, spill growth, fade cycles
	Active   bool  // false once collected, shredded, or otherwise removed
	On       bool  // current on/off state for Switch/Fan/Outlet/Grease/CeilingDuct
}

// newLiveObject builds the initial runtime wrapper for a freshly
// placed object, seeding Motion (or patrol Velocity) for the kinds
// that move on their own. src seeds the patrol hazards' initial
// direction and vertical placement (spec §9: explicit, Play-owned
// RNG, never process-global).
func newLiveObject(o object.Object, src *rng.Source) liveObject {
	lo := liveObject{Object: o, Active: true, On: o.Kind.Ready}
	switch o.Kind.Code {
	case object.Drop:
		lo.Motion = motion.New(1, int16(o.Kind.Range), 7, false)
	case object.Ball:
		lo.Motion = motion.New(2, int16(o.Kind.Range), 0, true)
	case object.Fish, object.Toast, object.Steam:
		m := motion.New(2, int16(o.Kind.Range), 0, true)
		m.Hold(int16(o.Kind.Delay))
		lo.Motion = m
	case object.Dart, object.Copter, object.Balloon:
		lo.Velocity = patrolSpeed
		if src.Bool() {
			lo.Velocity = -patrolSpeed
		}
		lo.Object.Position.Y = src.Range(20, house.ScreenHeight-20)
	}
	return lo
}

// area returns the live object's current collision rect, folding in
// any accumulated spill/motion progress for kinds whose area depends
// on it. Flame's height already derives from Position so needs no
// progress term.
func (lo liveObject) area() (geometry.Rect, bool) {
	if !lo.Active || lo.Object.IsCosmetic() {
		return geometry.Rect{}, false
	}
	if size, ok := lo.Object.BaseSize(); ok {
		return geometry.At(size, lo.Object.Anchor(), lo.Object.Position), true
	}
	switch lo.Object.Kind.Code {
	case object.Grease:
		width := uint16(lo.Progress)
		if width == 0 {
			width = 1
		}
		size, ok := geometry.NewSize(width, 4)
		if !ok {
			return geometry.Rect{}, false
		}
		return geometry.At(size, geometry.BottomLeft, lo.Object.Position), true
	case object.Drop, object.Toast, object.Fish, object.Steam:
		size, _ := geometry.NewSize(8, 8)
		pos := lo.Object.Position
		if lo.Motion != nil {
			pos = pos.Add(geometry.Displacement{Y: lo.Motion.Position()})
		}
		return geometry.At(size, geometry.Center, pos), true
	case object.Dart, object.Copter, object.Balloon:
		size, _ := geometry.NewSize(24, 16)
		return geometry.At(size, geometry.Center, lo.Object.Position), true
	default:
		return geometry.Rect{}, false
	}
}

// step advances lo by one frame: ballistic Motion for the kinds that
// have it, horizontal patrol-and-respawn for the screen-crossing
// hazards, and spill growth for Grease. src provides the respawn
// placement for hazards that cross a screen edge (spec §8: "Balloon/
// Copter/Dart that cross the screen boundary respawn").
func (lo *liveObject) step(src *rng.Source) {
	if !lo.Active {
		return
	}
	switch lo.Object.Kind.Code {
	case object.Dart, object.Copter, object.Balloon:
		lo.patrol(src)
	default:
		if lo.Motion != nil {
			lo.Motion.Step()
		}
	}
	if lo.Object.Kind.Code == object.Grease && lo.On {
		if uint16(lo.Progress) < lo.Object.Kind.Range {
			lo.Progress++
		}
	}
}

// patrol moves a screen-crossing hazard by its Velocity and, once it
// crosses either screen edge, respawns it on the opposite edge at a
// freshly randomized height, continuing in the same direction.
func (lo *liveObject) patrol(src *rng.Source) {
	lo.Object.Position = lo.Object.Position.Add(geometry.Displacement{X: lo.Velocity})
	switch {
	case lo.Object.Position.X < 0:
		lo.Object.Position.X = house.ScreenWidth
		lo.Object.Position.Y = src.Range(20, house.ScreenHeight-20)
	case lo.Object.Position.X > house.ScreenWidth:
		lo.Object.Position.X = 0
		lo.Object.Position.Y = src.Range(20, house.ScreenHeight-20)
	}
}
