package house

import (
	"github.com/pkg/errors"

	"github.com/gonutz/glider/geometry"
	"github.com/gonutz/glider/object"
)

// ErrNoSuchRoom is returned when a RoomID falls outside a House's
// 1-indexed room range.
var ErrNoSuchRoom = errors.New("house: no such room")

// HighScore is one entry of a house file's built-in scoreboard.
type HighScore struct {
	Score int32
	Level uint16
	Name  string
	Room  string
}

// House is an ordered, 1-indexed sequence of rooms plus the bundled
// high-score table and companion filenames (spec §3 "House"). Room
// ids are positions in this sequence; id 0 is never valid.
type House struct {
	Version    uint16
	HighScores []HighScore
	PictFile   string
	NextFile   string
	FirstFile  string

	rooms []Room // rooms[i] has id i+1
}

// Room returns the room with the given id, or false if none exists.
func (h *House) Room(id object.RoomID) (Room, bool) {
	if id < 1 || int(id) > len(h.rooms) {
		return Room{}, false
	}
	return h.rooms[id-1], true
}

// RoomCount returns the number of rooms in h.
func (h *House) RoomCount() int { return len(h.rooms) }

// Neighbor returns the room id reachable from id's left or right
// exit. Per spec §4.F, an exit's destination is not stored on the
// wire: it is synthesized as id-1 (left) or id+1 (right), and only
// exists if that side's open flag is set and the neighbor is in
// range.
func (h *House) Neighbor(id object.RoomID, side geometry.Side) (object.RoomID, bool) {
	room, ok := h.Room(id)
	if !ok {
		return 0, false
	}
	if side == geometry.Left {
		if !room.LeftOpen || id <= 1 {
			return 0, false
		}
		return id - 1, true
	}
	if !room.RightOpen || int(id) >= len(h.rooms) {
		return 0, false
	}
	return id + 1, true
}

// Append concatenates other's rooms onto h, offsetting every
// Exit/Stair/CeilingDuctTravel destination in other's objects by h's
// current room count so cross-file references keep pointing at the
// same logical room (spec §3: house files are concatenable).
func (h *House) Append(other House) {
	offset := object.RoomID(len(h.rooms))
	for _, r := range other.rooms {
		r.Objects = append([]object.Object(nil), r.Objects...)
		for i, obj := range r.Objects {
			if obj.Kind.HasDest {
				obj.Kind.Destination += offset
				r.Objects[i] = obj
			}
		}
		h.rooms = append(h.rooms, r)
	}
	h.HighScores = append(h.HighScores, other.HighScores...)
	if h.PictFile == "" {
		h.PictFile = other.PictFile
	}
	h.NextFile = other.NextFile
	if h.FirstFile == "" {
		h.FirstFile = other.FirstFile
	}
}
