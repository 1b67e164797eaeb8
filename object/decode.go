package object

import (
	"github.com/gonutz/glider/geometry"
	"github.com/pkg/errors"
)

// ErrNullKind marks a wire kind-code of 0: spec §4.F says such a
// record must be skipped silently, never treated as a decode failure.
var ErrNullKind = errors.New("object: null kind code")

// ErrUnknownKind marks a wire kind-code with no entry in the table
// of spec §4.F. Unlike ErrNullKind, this fails the object's slot but
// (per spec §7) not the room that contains it.
var ErrUnknownKind = errors.New("object: unknown kind code")

// DecodeKind interprets a single wire object record's kind-code and
// auxiliary numeric fields (amount, extra, isOn) against its already
// -normalized bounds, following the table in spec §4.F verbatim.
func DecodeKind(code uint16, bounds geometry.Rect, amount, extra uint16, isOn bool) (Kind, error) {
	switch code {
	case 0:
		return Kind{}, ErrNullKind

	case 1:
		return Kind{Code: Table, Width: uint16(bounds.Width())}, nil
	case 2:
		return Kind{Code: Shelf, Width: uint16(bounds.Width())}, nil
	case 3:
		return Kind{Code: Books}, nil
	case 4:
		return Kind{Code: Cabinet, Size: bounds.Size}, nil
	case 5:
		return Kind{Code: Exit, Destination: RoomID(amount), HasDest: amount != 0}, nil
	case 6:
		return Kind{Code: Obstacle, Size: bounds.Size}, nil

	case 8:
		return Kind{Code: FloorVent, Height: subInt16(bounds.Top, int16(amount))}, nil
	case 9:
		return Kind{Code: CeilingVent, Height: subInt16(int16(amount), bounds.Bottom())}, nil
	case 10:
		if extra != 0 {
			return Kind{Code: CeilingDuctTravel, Destination: RoomID(extra), HasDest: true, Ready: isOn}, nil
		}
		return Kind{Code: CeilingDuctBlow, Height: subInt16(int16(amount), bounds.Bottom()), Ready: isOn}, nil
	case 11:
		return Kind{Code: Candle, Height: subInt16(bounds.Top, int16(amount))}, nil
	case 12:
		return Kind{Code: Fan, Faces: geometry.Left, Range: subUint16(bounds.Left, int16(amount)), Ready: isOn}, nil
	case 13:
		return Kind{Code: Fan, Faces: geometry.Right, Range: subUint16(int16(amount), bounds.Right()), Ready: isOn}, nil

	case 16:
		return Kind{Code: Clock, Points: amount}, nil
	case 17:
		return Kind{Code: Paper, Lives: amount}, nil
	case 18:
		return Kind{Code: Grease, Range: subUint16(int16(amount), bounds.Right()), Ready: isOn}, nil
	case 19:
		return Kind{Code: Bonus, Points: amount, Size: bounds.Size}, nil
	case 20:
		return Kind{Code: Battery, Energy: amount}, nil
	case 21:
		return Kind{Code: RubberBands, Bands: amount}, nil

	case 24:
		return Kind{Code: Switch}, nil
	case 25:
		return Kind{Code: Outlet, Delay: amount, Ready: isOn}, nil
	case 26:
		return Kind{Code: Thermostat}, nil
	case 27:
		return Kind{Code: Shredder, Ready: isOn}, nil
	case 28:
		return Kind{Code: Switch, Target: int(amount), HasTarget: true}, nil
	case 29:
		return Kind{Code: Guitar}, nil

	case 32:
		return Kind{Code: Drip, Range: subUint16(int16(amount), bounds.Top)}, nil
	case 33:
		return Kind{Code: Toaster, Range: subUint16(bounds.Top, int16(amount)), Delay: extra}, nil
	case 34:
		return Kind{Code: Ball, Range: subUint16(bounds.Bottom(), int16(amount))}, nil
	case 35:
		return Kind{Code: Fishbowl, Range: subUint16(bounds.Center().Y, int16(amount)), Delay: extra}, nil
	case 36:
		return Kind{Code: Teakettle, Delay: amount}, nil
	case 37:
		return Kind{Code: Window, Size: bounds.Size, Ready: isOn}, nil

	case 40:
		return Kind{Code: Painting}, nil
	case 41:
		return Kind{Code: Mirror, Size: bounds.Size}, nil
	case 42:
		return Kind{Code: Basket}, nil
	case 43:
		return Kind{Code: Macintosh}, nil
	case 44:
		return Kind{Code: Stair, Direction: Up, Destination: RoomID(amount), HasDest: true}, nil
	case 45:
		return Kind{Code: Stair, Direction: Down, Destination: RoomID(amount), HasDest: true}, nil

	default:
		return Kind{}, errors.Wrapf(ErrUnknownKind, "code %d", code)
	}
}

// subInt16 and subUint16 compute wire-table differences such as
// "top-amount" without panicking: subInt16 wraps around on 16-bit
// overflow, and subUint16 clamps a negative difference to 0. Neither
// reports an error, so a corrupt file yields odd values rather than a
// failed object.
func subInt16(a int16, b int16) int16 { return a - b }
func subUint16(a int16, b int16) uint16 {
	d := a - b
	if d < 0 {
		return 0
	}
	return uint16(d)
}
