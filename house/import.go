package house

import (
	"github.com/pkg/errors"

	"github.com/gonutz/glider/geometry"
	"github.com/gonutz/glider/object"
)

// ErrTruncated marks a byte slice that is not a whole multiple of
// FileSize: house files never arrive partial.
var ErrTruncated = errors.New("house: truncated file")

// ErrTooManyObjects marks a room whose wire object_count exceeds
// maxObjectsPerRoom; per spec §7 this invalidates the whole house,
// unlike a single bad object kind which only drops its own slot.
var ErrTooManyObjects = errors.New("house: room has too many objects")

// Decode parses one or more concatenated house files from data,
// returning the single House formed by appending them in order (spec
// §3). Each file-sized chunk is decoded independently; a decode error
// in any chunk fails the whole call.
func Decode(data []byte) (House, error) {
	if len(data) == 0 || len(data)%FileSize != 0 {
		return House{}, errors.Wrapf(ErrTruncated, "got %d bytes", len(data))
	}
	var out House
	for offset := 0; offset < len(data); offset += FileSize {
		h, err := decodeOne(data[offset : offset+FileSize])
		if err != nil {
			return House{}, errors.Wrapf(err, "file at offset %d", offset)
		}
		out.Append(h)
	}
	return out, nil
}

func decodeOne(data []byte) (House, error) {
	if len(data) != FileSize {
		return House{}, errors.Wrapf(ErrTruncated, "got %d bytes, want %d", len(data), FileSize)
	}

	var h House
	h.Version = be16(data[0:2])
	roomCount := be16(data[2:4])
	// bytes 4:8 are a timestamp, not meaningful to simulation state.

	const (
		scoresOff    = 8
		levelsOff    = scoresOff + maxHighScores*4
		scoreNames   = levelsOff + maxHighScores*2
		scoreRooms   = scoreNames + maxHighScores*26
		pictNameOff  = scoreRooms + maxHighScores*26
		nextFileOff  = pictNameOff + 34
		firstFileOff = nextFileOff + 34
	)
	h.HighScores = make([]HighScore, maxHighScores)
	for i := 0; i < maxHighScores; i++ {
		h.HighScores[i].Score = int32(be32(data[scoresOff+i*4 : scoresOff+i*4+4]))
		h.HighScores[i].Level = be16(data[levelsOff+i*2 : levelsOff+i*2+2])
		h.HighScores[i].Name = pascalString(data[scoreNames+i*26 : scoreNames+i*26+26])
		h.HighScores[i].Room = pascalString(data[scoreRooms+i*26 : scoreRooms+i*26+26])
	}
	h.PictFile = pascalString(data[pictNameOff : pictNameOff+34])
	h.NextFile = pascalString(data[nextFileOff : nextFileOff+34])
	h.FirstFile = pascalString(data[firstFileOff : firstFileOff+34])

	if int(roomCount) > maxRoomsPerFile {
		return House{}, errors.Errorf("house: room count %d exceeds %d", roomCount, maxRoomsPerFile)
	}

	h.rooms = make([]Room, 0, roomCount)
	for i := 0; i < int(roomCount); i++ {
		start := houseHeaderSize + i*roomRecordSize
		room, err := decodeRoom(data[start : start+roomRecordSize])
		if err != nil {
			return House{}, errors.Wrapf(err, "room %d", i+1)
		}
		h.rooms = append(h.rooms, room)
	}
	return h, nil
}

func decodeRoom(data []byte) (Room, error) {
	var r Room
	r.Name = pascalString(data[0:26])

	objectCount := be16(data[26:28])
	if objectCount > maxObjectsPerRoom {
		return Room{}, errors.Wrapf(ErrTooManyObjects, "count %d", objectCount)
	}

	r.BackdropID = be16(data[28:30])
	for i := 0; i < 8; i++ {
		r.TileRow[i] = be16(data[30+i*2 : 32+i*2])
	}

	leftRightOpen := data[46:48]
	r.LeftOpen = leftRightOpen[0] != 0
	r.RightOpen = leftRightOpen[1] != 0

	animateKind := be16(data[48:50])
	animateNumber := be16(data[50:52])
	animateDelay := be32(data[52:56])
	if animateKind <= 2 {
		r.Animate = &Animate{
			Kind:        Enemy(animateKind),
			Count:       animateNumber,
			DelayFrames: animateDelay,
		}
	}

	conditionCode := be16(data[56:58])
	r.AirOn = conditionCode != 1
	r.LightsOn = conditionCode != 2

	objStart := roomHeaderSize
	for i := 0; i < int(objectCount); i++ {
		start := objStart + i*objectRecordSize
		obj, ok, err := decodeObject(data[start : start+objectRecordSize])
		if err != nil {
			// Spec §7: an individually invalid object drops its own
			// slot but does not invalidate the room.
			continue
		}
		if ok {
			r.Objects = append(r.Objects, obj)
		}
	}
	return r, nil
}

func decodeObject(data []byte) (object.Object, bool, error) {
	code := be16(data[0:2])
	top := int16(be16(data[2:4]))
	left := int16(be16(data[4:6]))
	bottom := int16(be16(data[6:8]))
	right := int16(be16(data[8:10]))
	amount := be16(data[10:12])
	extra := be16(data[12:14])
	isOn := be16(data[14:16]) != 0

	bounds, ok := geometry.NewRect(left, top, right, bottom)
	if !ok {
		return object.Object{}, false, errors.New("house: degenerate object bounds")
	}

	kind, err := object.DecodeKind(code, bounds, amount, extra, isOn)
	if err == object.ErrNullKind {
		return object.Object{}, false, nil
	}
	if err != nil {
		return object.Object{}, false, err
	}

	return object.Object{Kind: kind, Position: bounds.At(object.Object{Kind: kind}.Anchor())}, true, nil
}
