package object

import (
	"testing"

	"github.com/gonutz/glider/geometry"
)

func rect(t *testing.T, l, top, r, b int16) geometry.Rect {
	t.Helper()
	rc, ok := geometry.NewRect(l, top, r, b)
	if !ok {
		t.Fatalf("bad rect %d,%d,%d,%d", l, top, r, b)
	}
	return rc
}

func Test_DecodeKind_null_is_skipped(t *testing.T) {
	if _, err := DecodeKind(0, rect(t, 0, 0, 10, 10), 0, 0, false); err != ErrNullKind {
		t.Errorf("expected ErrNullKind, got %v", err)
	}
}

func Test_DecodeKind_unknown_code_fails(t *testing.T) {
	if _, err := DecodeKind(99, rect(t, 0, 0, 10, 10), 0, 0, false); err == nil {
		t.Error("expected an error for unknown kind code")
	}
}

func Test_DecodeKind_table_keeps_width(t *testing.T) {
	k, err := DecodeKind(1, rect(t, 10, 20, 50, 28), 0, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if k.Code != Table || k.Width != 40 {
		t.Errorf("got %+v", k)
	}
}

func Test_DecodeKind_exit_reads_destination(t *testing.T) {
	k, err := DecodeKind(5, rect(t, 0, 0, 10, 10), 7, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if k.Code != Exit || k.Destination != RoomID(7) || !k.HasDest {
		t.Errorf("got %+v", k)
	}
}

func Test_DecodeKind_floor_vent_height(t *testing.T) {
	k, err := DecodeKind(8, rect(t, 0, 300, 20, 320), 100, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if k.Code != FloorVent || k.Height != 200 { // top(300) - amount(100)
		t.Errorf("got %+v", k)
	}
}

func Test_DecodeKind_fan_left_vs_right(t *testing.T) {
	left, _ := DecodeKind(12, rect(t, 100, 0, 120, 20), 40, 0, true)
	if left.Code != Fan || left.Faces != geometry.Left || left.Range != 60 || !left.Ready {
		t.Errorf("got %+v", left)
	}
	right, _ := DecodeKind(13, rect(t, 100, 0, 120, 20), 200, 0, false)
	if right.Code != Fan || right.Faces != geometry.Right || right.Range != 80 {
		t.Errorf("got %+v", right)
	}
}

func Test_DecodeKind_switch_with_and_without_target(t *testing.T) {
	bare, _ := DecodeKind(24, rect(t, 0, 0, 10, 10), 0, 0, false)
	if bare.HasTarget {
		t.Error("bare switch should have no target")
	}
	targeted, _ := DecodeKind(28, rect(t, 0, 0, 10, 10), 5, 0, false)
	if !targeted.HasTarget || targeted.Target != 5 {
		t.Errorf("got %+v", targeted)
	}
}

func Test_DecodeKind_ceiling_duct_travel_vs_blow(t *testing.T) {
	travel, _ := DecodeKind(10, rect(t, 0, 0, 10, 10), 0, 3, true)
	if travel.Code != CeilingDuctTravel || travel.Destination != RoomID(3) {
		t.Errorf("got %+v", travel)
	}
	blow, _ := DecodeKind(10, rect(t, 0, 10, 20, 30), 50, 0, true)
	if blow.Code != CeilingDuctBlow {
		t.Errorf("got %+v", blow)
	}
}

func Test_stair_directions(t *testing.T) {
	up, _ := DecodeKind(44, rect(t, 0, 0, 10, 10), 3, 0, false)
	if up.Direction != Up || up.Destination != RoomID(3) {
		t.Errorf("got %+v", up)
	}
	down, _ := DecodeKind(45, rect(t, 0, 0, 10, 10), 9, 0, false)
	if down.Direction != Down || down.Destination != RoomID(9) {
		t.Errorf("got %+v", down)
	}
}

func Test_cosmetic_kinds_have_no_active_area(t *testing.T) {
	painting := Object{Kind: Kind{Code: Painting}, Position: geometry.Point{10, 10}}
	if !painting.IsCosmetic() {
		t.Error("painting should be cosmetic")
	}
	if _, ok := painting.ActiveArea(); ok {
		t.Error("painting should have no active area")
	}
}

func Test_obstacle_has_active_area_from_size(t *testing.T) {
	size, _ := geometry.NewSize(40, 20)
	obstacle := Object{Kind: Kind{Code: Obstacle, Size: size}, Position: geometry.Point{100, 200}}
	area, ok := obstacle.ActiveArea()
	if !ok {
		t.Fatal("expected an active area")
	}
	if area.Size != size {
		t.Errorf("got %+v", area)
	}
}

func Test_candle_effect_spawns_flame(t *testing.T) {
	candle := Object{Kind: Kind{Code: Candle, Height: 50}, Position: geometry.Point{100, 90}}
	flame, ok := candle.Effect()
	if !ok {
		t.Fatal("expected a flame effect")
	}
	if flame.Kind.Code != Flame {
		t.Errorf("got %+v", flame.Kind)
	}
	size, ok := flame.BaseSize()
	if !ok || size.Height != 40 { // 90 - 50
		t.Errorf("got size %+v", size)
	}
}

func Test_drip_effect_spawns_drop(t *testing.T) {
	drip := Object{Kind: Kind{Code: Drip, Range: 30}, Position: geometry.Point{10, 20}}
	drop, ok := drip.Effect()
	if !ok || drop.Kind.Code != Drop || drop.Kind.Range != 30 {
		t.Errorf("got %+v %v", drop, ok)
	}
}

func Test_painting_has_no_effect(t *testing.T) {
	if _, ok := (Object{Kind: Kind{Code: Painting}}).Effect(); ok {
		t.Error("painting should not spawn a child")
	}
}
