package play

import (
	"github.com/gonutz/glider/geometry"
	"github.com/gonutz/glider/object"
)

// Input is the one piece of host-supplied data a Frame call consumes
// (spec §6): steering, an instant flip, and the two cosmetic/host
// actions a glider can request, shoot and zoom.
type Input struct {
	Bank     geometry.Side // only meaningful when Steering is true
	Steering bool
	Flip     bool // instant facing reversal, bypassing Turning
	Shoot    bool
	Zoom     bool
}

// Entrance says where in a room a glider appears: through a side
// exit (facing away from the wall it came from) or down/up a stair
// (always centered, facing forward).
type Entrance struct {
	Side     geometry.Side
	FromSide bool // true: arrived through a left/right exit; false: through a stair
}

// UpdateKind discriminates the closed set of per-frame notifications
// a Frame call can emit (spec §4.H). Like object.Code and play.Kind,
// this is a discriminant-plus-union rather than an interface.
type UpdateKind uint8

const (
	UpdateFade UpdateKind = iota
	UpdateTurn
	UpdateBurn
	UpdateLights
	UpdateAir
	UpdateShoot
	UpdateZoom
	UpdateBump
	UpdateScore
	UpdateLife
	UpdateEnergy
	UpdateBands
	UpdateStart
	UpdateLeave
)

// Update is one notification emitted by a Frame call. Only the
// fields relevant to Kind are meaningful:
//
//	UpdateFade    On       fading in (true) or out (false)
//	UpdateTurn    (none)
//	UpdateBurn    (none)
//	UpdateLights  On       room lights switched on/off
//	UpdateAir     On       room air switched on/off
//	UpdateShoot   (none)
//	UpdateZoom    (none)
//	UpdateBump    Position the glider's position when it touched a wall or the floor
//	UpdateScore   Amount   points gained (Clock, Bonus)
//	UpdateLife    Amount   lives gained (Paper)
//	UpdateEnergy  Amount   energy gained (Battery)
//	UpdateBands   Amount   rubber bands gained (RubberBands)
//	UpdateStart   (none)   a timed state (FadingIn, Turning, Escaping...) finished; back to Flying
//	UpdateLeave   Destination, Entrance
type Update struct {
	Kind        UpdateKind
	On          bool
	Position    geometry.Point
	Amount      int
	Destination object.RoomID
	Entrance    Entrance
}

// Outcome is everything a Frame call reports happened this frame
// (spec §4.H): the ordered stream of Updates, plus whether the glider
// is now destroyed (Shredding). Leaving the room is reported by an
// UpdateLeave in Updates, not by GameOver.
type Outcome struct {
	Updates  []Update
	GameOver bool
}

// Left returns the room-change Update in o, if any.
func (o Outcome) Left() (Update, bool) {
	for _, u := range o.Updates {
		if u.Kind == UpdateLeave {
			return u, true
		}
	}
	return Update{}, false
}
