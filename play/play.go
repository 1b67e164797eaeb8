// Package play runs the deterministic, frame-stepped simulation of a
// glider moving through one room at a time: motion integration,
// collision against the room's objects and walls, and the resulting
// state transitions and outcomes (spec §4.G, §4.H). It has no
// knowledge of rendering, audio, or input devices — those are the
// host's job (spec §6); Play only consumes an Input each Frame call
// and reports an Outcome.
package play

import (
	"github.com/gonutz/glider/geometry"
	"github.com/gonutz/glider/house"
	"github.com/gonutz/glider/motion"
	"github.com/gonutz/glider/object"
	"github.com/gonutz/glider/rng"
)

const (
	playerWidth  = 16
	playerHeight = 8

	glideSpeed = 3 // horizontal pixels/frame while Flying
	fallAccel  = 1 // vertical fixed-point acceleration while Flying
	fallLimit  = house.ScreenHeight << 5

	ventPush = 6 // FloorVent lift / CeilingVent downward push, pixels/frame
	ductPush = 8 // active CeilingDuctBlow downward push, pixels/frame
	fanPush  = 7 // Fan force, pixels/frame, signed by the fan's facing
)

// Play is the live, single-room simulation state. It is built once
// per room via Start and advanced one frame at a time via Frame.
type Play struct {
	rooms *house.House
	rng   *rng.Source

	roomID object.RoomID
	room   house.Room
	walls  []object.Object

	objects []liveObject

	player geometry.Point
	facing geometry.Side
	fall   *motion.Motion

	score int
	now   State
}

// Start builds a Play for the given room, entered the way entrance
// describes, with rngSeed seeding all of this room's hazard respawn
// randomness (spec §9: the generator is explicit and owned by Play,
// never process-global). The glider always spawns FadingIn (spec
// §4.G): collision is suppressed and an UpdateFade(true) is queued
// for the first Frame call to report.
func Start(h *house.House, roomID object.RoomID, entrance Entrance, rngSeed uint64) (*Play, error) {
	room, ok := h.Room(roomID)
	if !ok {
		return nil, house.ErrNoSuchRoom
	}

	p := &Play{
		rooms:  h,
		rng:    rng.New(rngSeed),
		roomID: roomID,
		room:   room,
		walls:  room.Walls(),
		fall:   motion.New(fallAccel, fallLimit, 0, true),
		now:    State{Kind: FadingIn, Total: fadeFrames},
	}

	for _, o := range room.Objects {
		p.objects = append(p.objects, newLiveObject(o, p.rng))
		if child, ok := o.Effect(); ok {
			p.objects = append(p.objects, newLiveObject(child, p.rng))
		}
	}
	if a := room.Animate; a != nil {
		code := object.Dart
		switch a.Kind {
		case house.CopterEnemy:
			code = object.Copter
		case house.BalloonEnemy:
			code = object.Balloon
		}
		for i := 0; i < int(a.Count); i++ {
			p.objects = append(p.objects, newLiveObject(object.Object{Kind: object.Kind{Code: code}}, p.rng))
		}
	}

	if entrance.FromSide {
		p.facing = entrance.Side.Opposite()
		y := int16(house.ScreenHeight / 2)
		x := int16(8)
		if entrance.Side == geometry.Right {
			x = house.ScreenWidth - 8
		}
		p.player = geometry.Point{X: x, Y: y}
	} else {
		p.facing = geometry.Right
		p.player = geometry.Point{X: house.ScreenWidth / 2, Y: int16(house.FloorY - 4)}
	}

	return p, nil
}

// Score returns the player's accumulated points so far.
func (p *Play) Score() int { return p.score }

// State returns the current dominant player state.
func (p *Play) State() State { return p.now }

// Player returns the glider's current position and facing, for a
// host renderer to draw (spec §6).
func (p *Play) Player() (geometry.Point, geometry.Side) { return p.player, p.facing }

// playerArea returns the glider's current collision box.
func (p *Play) playerArea() geometry.Rect {
	size, _ := geometry.NewSize(playerWidth, playerHeight)
	return geometry.At(size, geometry.Center, p.player)
}

// Frame advances the simulation by one tick and reports what
// happened, following the per-frame algorithm of spec §4.G:
//  1. stop at once if the glider is already Shredding
//  2. apply steering/flip input, if the state allows control
//  3. let the dominant state produce this frame's motion (or fall
//     back to ordinary gravity+glide physics)
//  4. step every live object, including patrol hazard respawn
//  5. detect this frame's reactions (collision, collect, exit...),
//     suppressed while FadingIn
//  6. check positional room exit (crossing an open screen edge)
//  7. turn Ascending/Descending into Escaping once the stair's y
//     threshold is reached
//  8. advance the dominant state's countdown and resolve a finished
//     one (Escaping emits UpdateLeave, Burning/Landed become Shredding)
//  9. report the outcome
func (p *Play) Frame(in Input) Outcome {
	if p.now.Kind == Shredding {
		return Outcome{GameOver: true}
	}

	was := p.now
	candidate := p.now
	var updates []Update
	if was.Kind == FadingIn && was.Progress == 0 {
		updates = append(updates, Update{Kind: UpdateFade, On: true})
	}

	if p.controllable() {
		if in.Flip {
			p.facing = p.facing.Opposite()
		} else if in.Steering && in.Bank != p.facing {
			p.facing = in.Bank
			candidate = dominant(candidate, State{Kind: Turning, Total: turnFrames})
			updates = append(updates, Update{Kind: UpdateTurn})
		}
	}

	fallDelta := p.fall.Step()
	if d, overrides := p.now.motion(p.facing, fallDelta); overrides {
		p.player = p.player.Add(d)
	} else {
		p.player = p.player.Add(geometry.Displacement{X: p.facing.Mul(glideSpeed), Y: fallDelta})
	}

	for i := range p.objects {
		p.objects[i].step(p.rng)
	}

	if in.Shoot {
		updates = append(updates, Update{Kind: UpdateShoot})
	}
	if in.Zoom {
		updates = append(updates, Update{Kind: UpdateZoom})
	}

	if !p.now.suppressesCollision() {
		var reactions []Update
		candidate, reactions = p.react(candidate)
		updates = append(updates, reactions...)

		if left, ok := p.checkRoomEdge(); ok {
			candidate = dominant(candidate, State{Kind: Escaping, Total: escapeFrames, Destination: left.Destination, Entrance: left.Entrance})
		}
	}

	if (candidate.Kind == Ascending || candidate.Kind == Descending) && p.player.Y <= descendArrivalY {
		candidate = State{Kind: Escaping, Total: escapeFrames, Destination: candidate.Destination, Entrance: candidate.Entrance}
	}

	next := candidate
	if next.Kind == was.Kind {
		next = next.tick()
	}
	if (next.Kind == Burning || next.Kind == Landed) && next.Done() {
		// Burning and Landed (landing on solid furniture) are both
		// death animations, not survivable pauses: once their count
		// elapses the room ends for good, the same way Shredding does.
		next = State{Kind: Shredding}
	} else if next.Done() {
		if next.Kind == Escaping && next.Destination != 0 {
			updates = append(updates, Update{Kind: UpdateLeave, Destination: next.Destination, Entrance: next.Entrance})
		}
		next = State{Kind: Flying}
		updates = append(updates, Update{Kind: UpdateStart})
	}
	if was.Kind == FadingIn && next.Kind != FadingIn {
		updates = append(updates, Update{Kind: UpdateFade, On: false})
	}
	p.now = next

	return Outcome{Updates: updates, GameOver: p.now.Kind == Shredding}
}

// controllable reports whether player input applies this frame:
// suspended during a committed transition like Shredding, Burning,
// Landed, Escaping, Ascending, Descending or Sliding.
func (p *Play) controllable() bool {
	switch p.now.Kind {
	case Flying, Turning, FadingIn, FadingOut:
		return true
	default:
		return false
	}
}

// checkRoomEdge reports the room change triggered by the glider
// crossing a fully open screen edge (spec §4.G step 9): a side with
// no wall (Room.Walls omits it) hands off to the neighboring room
// via House.Neighbor. The glider enters that room at the opposite
// edge (Entrance.Side), facing away from it.
func (p *Play) checkRoomEdge() (LeftRoom, bool) {
	if p.player.X < 0 {
		if next, ok := p.rooms.Neighbor(p.roomID, geometry.Left); ok {
			return LeftRoom{Destination: next, Entrance: Entrance{Side: geometry.Right, FromSide: true}}, true
		}
	}
	if p.player.X > house.ScreenWidth {
		if next, ok := p.rooms.Neighbor(p.roomID, geometry.Right); ok {
			return LeftRoom{Destination: next, Entrance: Entrance{Side: geometry.Left, FromSide: true}}, true
		}
	}
	return LeftRoom{}, false
}

// LeftRoom describes a transition out of the current room.
type LeftRoom struct {
	Destination object.RoomID
	Entrance    Entrance
}

// react checks the player's current box against walls, the floor,
// and every active object, returning the dominant next-state
// candidate and this frame's Updates (spec §4.G step 5-6, arbitrated
// the same way as state transitions: only the most dominant state
// wins, but every triggered Update is still reported).
func (p *Play) react(candidate State) (State, []Update) {
	area := p.playerArea()
	var updates []Update

	for _, w := range p.walls {
		if _, hit := area.Intersect(house.WallBounds(w.Kind.WallSide)); hit {
			candidate = dominant(candidate, State{Kind: Turning, Total: turnFrames})
			updates = append(updates, Update{Kind: UpdateBump, Position: p.player})
		}
	}

	// The implicit floor is a synthetic boundary like the screen's
	// side walls (spec §3 Room invariants), not furniture: touching
	// it bumps and turns the glider rather than ending the room, and
	// holds it on the floor line.
	if area.Bottom() >= house.FloorY {
		candidate = dominant(candidate, State{Kind: Turning, Total: turnFrames})
		updates = append(updates, Update{Kind: UpdateBump, Position: p.player})
		p.player.Y = house.FloorY - playerHeight/2
	}

	for i := range p.objects {
		lo := &p.objects[i]
		if !lo.Active {
			continue
		}
		oarea, ok := lo.area()
		if !ok {
			continue
		}
		if _, hit := area.Intersect(oarea); !hit {
			continue
		}
		nextCandidate, reaction, consume := p.reactTo(lo)
		candidate = dominant(candidate, nextCandidate)
		if reaction != nil {
			updates = append(updates, *reaction)
		}
		if consume {
			lo.Active = false
		}
	}

	return candidate, updates
}

// reactTo resolves a single player/object overlap into a state
// candidate and Update, per the per-kind reaction table of spec
// §4.B/§4.G. consume reports whether the object should be removed
// from play (collected or destroyed).
func (p *Play) reactTo(lo *liveObject) (State, *Update, bool) {
	k := lo.Object.Kind
	switch k.Code {
	case object.Table, object.Shelf, object.Cabinet, object.Books, object.Obstacle:
		return State{Kind: Landed, Total: landedFrames}, nil, false

	case object.Clock, object.Bonus:
		p.score += int(k.Points)
		return State{Kind: Flying}, &Update{Kind: UpdateScore, Amount: int(k.Points)}, true
	case object.Paper:
		return State{Kind: Flying}, &Update{Kind: UpdateLife, Amount: int(k.Lives)}, true
	case object.Battery:
		return State{Kind: Flying}, &Update{Kind: UpdateEnergy, Amount: int(k.Energy)}, true
	case object.RubberBands:
		return State{Kind: Flying}, &Update{Kind: UpdateBands, Amount: int(k.Bands)}, true

	case object.Flame:
		return State{Kind: Burning, Total: burnFrames}, &Update{Kind: UpdateBurn}, false
	case object.Outlet:
		if lo.On {
			return State{Kind: Burning, Total: burnFrames}, &Update{Kind: UpdateBurn}, false
		}
		return State{Kind: Flying}, nil, false
	case object.Shredder:
		if lo.On {
			return State{Kind: Shredding}, nil, false
		}
		return State{Kind: Flying}, nil, false

	case object.Drop, object.Toast, object.Fish, object.Ball, object.Dart, object.Copter, object.Balloon:
		return State{Kind: FadingOut, Total: fadeFrames}, nil, false

	case object.Grease:
		if lo.On {
			return State{Kind: Sliding, Total: slideFrames}, nil, false
		}
		return State{Kind: Flying}, nil, false

	case object.Stair:
		kind := Descending
		if k.Direction == object.Up {
			kind = Ascending
		}
		entrance := Entrance{FromSide: false}
		return State{Kind: kind, Destination: k.Destination, Entrance: entrance}, nil, false

	case object.Exit:
		if !k.HasDest {
			return State{Kind: Flying}, nil, false
		}
		entrance := Entrance{Side: p.facing, FromSide: true}
		return State{Kind: Escaping, Total: escapeFrames, Destination: k.Destination, Entrance: entrance}, nil, false

	case object.CeilingDuctTravel:
		if lo.On {
			entrance := Entrance{FromSide: false}
			return State{Kind: Escaping, Total: escapeFrames, Destination: k.Destination, Entrance: entrance}, nil, false
		}
		return State{Kind: Flying}, nil, false

	case object.FloorVent:
		p.player = p.player.Add(geometry.Displacement{Y: -ventPush})
		return State{Kind: Flying}, nil, false
	case object.CeilingVent:
		p.player = p.player.Add(geometry.Displacement{Y: ventPush})
		return State{Kind: Flying}, nil, false
	case object.CeilingDuctBlow:
		if lo.On {
			p.player = p.player.Add(geometry.Displacement{Y: ductPush})
		}
		return State{Kind: Flying}, nil, false
	case object.Fan:
		if !lo.On {
			return State{Kind: Flying}, nil, false
		}
		dx := k.Faces.Mul(fanPush)
		p.player = p.player.Add(geometry.Displacement{X: dx})
		return State{Kind: Turning, Total: turnFrames}, nil, false

	case object.Switch, object.Lights, object.Thermostat, object.Guitar:
		lo.On = !lo.On
		var u *Update
		switch k.Code {
		case object.Lights:
			u = &Update{Kind: UpdateLights, On: lo.On}
		case object.Thermostat:
			u = &Update{Kind: UpdateAir, On: lo.On}
		}
		return State{Kind: Flying}, u, false

	default:
		return State{Kind: Flying}, nil, false
	}
}
