package house

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gonutz/glider/geometry"
)

// buildFile assembles a single minimal, well-formed house file with
// the given rooms already encoded as 314-byte records.
func buildFile(t *testing.T, rooms ...[]byte) []byte {
	t.Helper()
	require.LessOrEqual(t, len(rooms), maxRoomsPerFile)

	buf := make([]byte, FileSize)
	binary.BigEndian.PutUint16(buf[0:2], 1) // version
	binary.BigEndian.PutUint16(buf[2:4], uint16(len(rooms)))
	for i, room := range rooms {
		require.Len(t, room, roomRecordSize)
		start := houseHeaderSize + i*roomRecordSize
		copy(buf[start:start+roomRecordSize], room)
	}
	return buf
}

func putPascal(buf []byte, s string) {
	buf[0] = byte(len(s))
	copy(buf[1:], s)
}

// buildRoom assembles one 314-byte room record with zero objects.
func buildRoom(t *testing.T, name string, leftOpen, rightOpen bool) []byte {
	t.Helper()
	buf := make([]byte, roomRecordSize)
	putPascal(buf[0:26], name)
	binary.BigEndian.PutUint16(buf[26:28], 0) // object_count
	if leftOpen {
		buf[46] = 1
	}
	if rightOpen {
		buf[47] = 1
	}
	binary.BigEndian.PutUint16(buf[48:50], 0xFFFF) // animate_kind: none
	return buf
}

func Test_Decode_rejects_wrong_size(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrTruncated)
}

func Test_Decode_single_room_round_trip(t *testing.T) {
	room := buildRoom(t, "Attic", false, true)
	data := buildFile(t, room)

	h, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, 1, h.RoomCount())

	r, ok := h.Room(1)
	require.True(t, ok)
	require.Equal(t, "Attic", r.Name)
	require.False(t, r.LeftOpen)
	require.True(t, r.RightOpen)
	require.Nil(t, r.Animate)
	require.True(t, r.AirOn)
	require.True(t, r.LightsOn)
}

func Test_Decode_two_rooms_neighbor(t *testing.T) {
	a := buildRoom(t, "Attic", false, true)
	b := buildRoom(t, "Hall", true, false)
	data := buildFile(t, a, b)

	h, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, 2, h.RoomCount())

	next, ok := h.Neighbor(1, geometry.Right)
	require.True(t, ok)
	require.EqualValues(t, 2, next)

	_, ok = h.Neighbor(2, geometry.Right)
	require.False(t, ok)
}

func Test_decodeRoom_too_many_objects_fails(t *testing.T) {
	buf := buildRoom(t, "Bad", false, false)
	binary.BigEndian.PutUint16(buf[26:28], maxObjectsPerRoom+1)
	_, err := decodeRoom(buf)
	require.ErrorIs(t, err, ErrTooManyObjects)
}

func Test_House_Append_offsets_destinations(t *testing.T) {
	first := buildFile(t, buildRoom(t, "Attic", false, true))
	hall := buildRoom(t, "Hall", true, false)
	binary.BigEndian.PutUint16(hall[26:28], 1) // object_count
	obj := hall[roomHeaderSize : roomHeaderSize+objectRecordSize]
	binary.BigEndian.PutUint16(obj[0:2], 5)    // Exit
	binary.BigEndian.PutUint16(obj[2:4], 100)  // top
	binary.BigEndian.PutUint16(obj[4:6], 100)  // left
	binary.BigEndian.PutUint16(obj[6:8], 164)  // bottom
	binary.BigEndian.PutUint16(obj[8:10], 136) // right
	binary.BigEndian.PutUint16(obj[10:12], 1)  // destination: room 1 of its own file
	second := buildFile(t, hall, buildRoom(t, "Den", true, false))

	h, err := Decode(append(append([]byte{}, first...), second...))
	require.NoError(t, err)
	require.Equal(t, 3, h.RoomCount())

	r, ok := h.Room(2)
	require.True(t, ok)
	require.Equal(t, "Hall", r.Name)
	require.Len(t, r.Objects, 1)
	require.EqualValues(t, 2, r.Objects[0].Kind.Destination)
}

func Test_condition_code_disables_exactly_one(t *testing.T) {
	buf := buildRoom(t, "Cellar", false, false)
	binary.BigEndian.PutUint16(buf[56:58], 1) // air off
	data := buildFile(t, buf)

	h, err := Decode(data)
	require.NoError(t, err)
	r, _ := h.Room(1)
	require.False(t, r.AirOn)
	require.True(t, r.LightsOn)
}
