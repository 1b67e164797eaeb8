// Package object implements the closed set of object kinds a house
// can contain (spec §3 "Object Kind"), their placement anchors, and
// their collision/active-area geometry (spec §4.B). Per spec §9, the
// variant set is emulated as a discriminant (Code) plus a flat union
// of parameter fields, matched exhaustively — never as an interface
// hierarchy, since the set is closed and new kinds never appear at
// runtime.
package object

import "github.com/gonutz/glider/geometry"

// RoomID identifies a room within a House. It is always decoded from
// an unsigned 16-bit wire value (spec §4.F).
type RoomID uint16

// Vertical is a stair's direction of travel.
type Vertical int8

const (
	Up Vertical = iota
	Down
)

// Code discriminates the closed set of object kinds. Values are
// assigned independently of the wire kind-codes in spec §4.F's table
// — DecodeKind translates between the two.
type Code uint8

const (
	_ Code = iota
	// Structure
	Table
	Shelf
	Cabinet
	Books
	Obstacle
	Wall
	// Transit
	Exit
	Stair
	CeilingDuctBlow
	CeilingDuctTravel
	// Air sources
	FloorVent
	CeilingVent
	Candle
	Fan
	// Collectibles
	Clock
	Paper
	Bonus
	Battery
	RubberBands
	// Controls
	Lights
	Switch
	Thermostat
	Outlet
	Shredder
	Grease
	Guitar
	// Hazards / animated
	Dart
	Copter
	Balloon
	Flame
	Drip
	Drop
	Toaster
	Toast
	Ball
	Fishbowl
	Fish
	Teakettle
	Steam
	// Decoration
	Painting
	Mirror
	Basket
	Macintosh
	Window
)

// Kind is the tagged union of object parameters. Only the fields
// relevant to Code are meaningful; the comment on each field below
// lists the Codes that use it, and DecodeKind shows how each is set.
type Kind struct {
	Code Code

	Height      int16         // FloorVent/CeilingVent/Candle/CeilingDuctBlow: absolute y of the blow column's far edge
	Width       uint16        // Table/Shelf
	Size        geometry.Size // Cabinet/Obstacle/Bonus/Mirror/Window
	Destination RoomID        // Exit/Stair/CeilingDuctTravel
	HasDest     bool          // Exit may have no destination (last house in a sequence)
	Points      uint16        // Clock/Bonus
	Lives       uint16        // Paper
	Energy      uint16        // Battery
	Bands       uint16        // RubberBands
	Faces       geometry.Side // Fan
	Range       uint16        // Fan/Grease/Drip/Toaster/Ball/Fishbowl
	Delay       uint16        // Toaster/Fishbowl/Outlet/Teakettle, in frames
	Ready       bool          // Fan/Grease/Outlet/Shredder/CeilingDuct/Window-open
	Target      int           // Switch: target object id (0 = none)
	HasTarget   bool
	Direction   Vertical // Stair
	WallSide    geometry.Side
}
