package play

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gonutz/glider/geometry"
	"github.com/gonutz/glider/house"
	"github.com/gonutz/glider/object"
)

// buildHouse assembles a minimal one- or two-room house directly from
// wire bytes, the same way house's own tests do, so play's tests stay
// independent of any on-disk fixture.
func buildHouse(t *testing.T, rooms ...[]byte) house.House {
	t.Helper()
	const fileSize = 13830
	const headerSize = 1270
	const roomSize = 314

	buf := make([]byte, fileSize)
	binary.BigEndian.PutUint16(buf[0:2], 1)
	binary.BigEndian.PutUint16(buf[2:4], uint16(len(rooms)))
	for i, r := range rooms {
		require.Len(t, r, roomSize)
		start := headerSize + i*roomSize
		copy(buf[start:start+roomSize], r)
	}
	h, err := house.Decode(buf)
	require.NoError(t, err)
	return h
}

func putPascal(buf []byte, s string) {
	buf[0] = byte(len(s))
	copy(buf[1:], s)
}

func blankRoom(t *testing.T, name string, leftOpen, rightOpen bool) []byte {
	t.Helper()
	buf := make([]byte, 314)
	putPascal(buf[0:26], name)
	binary.BigEndian.PutUint16(buf[26:28], 0)
	if leftOpen {
		buf[46] = 1
	}
	if rightOpen {
		buf[47] = 1
	}
	binary.BigEndian.PutUint16(buf[48:50], 0xFFFF)
	return buf
}

func findUpdate(updates []Update, kind UpdateKind) (Update, bool) {
	for _, u := range updates {
		if u.Kind == kind {
			return u, true
		}
	}
	return Update{}, false
}

func hasUpdate(updates []Update, kind UpdateKind) bool {
	_, ok := findUpdate(updates, kind)
	return ok
}

func Test_Start_spawns_fading_in(t *testing.T) {
	h := buildHouse(t, blankRoom(t, "Attic", false, false))
	p, err := Start(&h, 1, Entrance{}, 1)
	require.NoError(t, err)
	require.Equal(t, FadingIn, p.State().Kind)
}

// S1: the very first Frame call after Start reports Fade(true), and
// the glider cannot be hurt until the fade-in completes.
func Test_S1_fade_in_reports_on_first_frame_and_suppresses_collision(t *testing.T) {
	h := buildHouse(t, blankRoom(t, "Attic", false, false))
	p, err := Start(&h, 1, Entrance{}, 1)
	require.NoError(t, err)

	out := p.Frame(Input{})
	require.True(t, hasUpdate(out.Updates, UpdateFade))
	fade, _ := findUpdate(out.Updates, UpdateFade)
	require.True(t, fade.On)
	// The glider spawns touching the floor, so a floor bump here would
	// mean collision was not suppressed.
	require.False(t, hasUpdate(out.Updates, UpdateBump))

	for i := 0; i < fadeFrames-1; i++ {
		out = p.Frame(Input{})
		require.False(t, hasUpdate(out.Updates, UpdateBump))
	}
	require.True(t, hasUpdate(out.Updates, UpdateFade))
	fade, _ = findUpdate(out.Updates, UpdateFade)
	require.False(t, fade.On)
	require.Equal(t, Flying, p.State().Kind)
}

// The implicit floor is a boundary like the side walls, not
// furniture (spec §3): an idle glider bumps to a stop, it does not
// die from gravity alone.
func Test_Frame_idle_bumps_to_a_stop_on_the_floor_without_dying(t *testing.T) {
	h := buildHouse(t, blankRoom(t, "Attic", false, false))
	p, err := Start(&h, 1, Entrance{}, 1)
	require.NoError(t, err)

	reachedFloor := false
	var out Outcome
	for i := 0; i < 200; i++ {
		out = p.Frame(Input{})
		require.False(t, out.GameOver)
		if hasUpdate(out.Updates, UpdateBump) {
			reachedFloor = true
			break
		}
	}
	require.True(t, reachedFloor, "idle glider should eventually bump the floor")
}

// Solid furniture is fatal (spec: "Solid furniture -> Landed (death)").
func Test_furniture_collision_is_fatal(t *testing.T) {
	h := buildHouse(t, blankRoom(t, "Attic", false, false))
	p, err := Start(&h, 1, Entrance{}, 1)
	require.NoError(t, err)

	next, _, _ := p.reactTo(&liveObject{
		Object: object.Object{Kind: object.Kind{Code: object.Cabinet}},
		Active: true,
	})
	require.Equal(t, Landed, next.Kind)

	p.now = next
	var out Outcome
	for i := 0; i < landedFrames; i++ {
		out = p.Frame(Input{})
	}
	require.True(t, out.GameOver)
}

func Test_Frame_wall_bump_triggers_turning(t *testing.T) {
	h := buildHouse(t, blankRoom(t, "Sealed", false, false))
	p, err := Start(&h, 1, Entrance{}, 1)
	require.NoError(t, err)
	for i := 0; i < fadeFrames; i++ {
		p.Frame(Input{})
	}
	p.facing = geometry.Right
	p.player.X = house.ScreenWidth - 2

	out := p.Frame(Input{})
	require.True(t, hasUpdate(out.Updates, UpdateBump))
	require.Equal(t, Turning, p.State().Kind)
}

// S5: a glider crossing a fully open screen edge leaves the room
// positionally, with no Exit object required (spec §8.5).
func Test_S5_crossing_open_edge_leaves_room(t *testing.T) {
	h := buildHouse(t, blankRoom(t, "Attic", false, true), blankRoom(t, "Hall", true, false))
	p, err := Start(&h, 1, Entrance{}, 1)
	require.NoError(t, err)
	for i := 0; i < fadeFrames; i++ {
		p.Frame(Input{})
	}

	var left Update
	var ok bool
	for i := 0; i < 50 && !ok; i++ {
		p.player.X = house.ScreenWidth + 1 // force past the open right edge
		out := p.Frame(Input{})
		left, ok = out.Left()
	}
	require.True(t, ok, "crossing the open edge should eventually report UpdateLeave")
	require.EqualValues(t, 2, left.Destination)
}

func Test_Score_starts_at_zero(t *testing.T) {
	h := buildHouse(t, blankRoom(t, "Attic", false, false))
	p, err := Start(&h, 1, Entrance{}, 1)
	require.NoError(t, err)
	require.Equal(t, 0, p.Score())
}

// S4: a Flame (or an active Outlet) sets the glider Burning, a
// terminal state that ends the room once burnFrames elapse.
func Test_S4_flame_ignites_burning_then_game_over(t *testing.T) {
	h := buildHouse(t, blankRoom(t, "Attic", false, false))
	p, err := Start(&h, 1, Entrance{}, 1)
	require.NoError(t, err)

	next, reaction, consume := p.reactTo(&liveObject{
		Object: object.Object{Kind: object.Kind{Code: object.Flame}},
		Active: true,
	})
	require.Equal(t, Burning, next.Kind)
	require.NotNil(t, reaction)
	require.Equal(t, UpdateBurn, reaction.Kind)
	require.False(t, consume)

	p.now = next
	var out Outcome
	for i := 0; i < burnFrames; i++ {
		out = p.Frame(Input{})
	}
	require.True(t, out.GameOver)
}

func Test_active_outlet_burns_but_inactive_outlet_is_harmless(t *testing.T) {
	h := buildHouse(t, blankRoom(t, "Attic", false, false))
	p, err := Start(&h, 1, Entrance{}, 1)
	require.NoError(t, err)

	off := &liveObject{Object: object.Object{Kind: object.Kind{Code: object.Outlet}}, Active: true, On: false}
	next, _, _ := p.reactTo(off)
	require.Equal(t, Flying, next.Kind)

	on := &liveObject{Object: object.Object{Kind: object.Kind{Code: object.Outlet}}, Active: true, On: true}
	next, reaction, _ := p.reactTo(on)
	require.Equal(t, Burning, next.Kind)
	require.Equal(t, UpdateBurn, reaction.Kind)
}

func Test_collectibles_emit_kind_specific_updates(t *testing.T) {
	h := buildHouse(t, blankRoom(t, "Attic", false, false))
	p, err := Start(&h, 1, Entrance{}, 1)
	require.NoError(t, err)

	cases := []struct {
		code object.Code
		kind UpdateKind
	}{
		{object.Clock, UpdateScore},
		{object.Bonus, UpdateScore},
		{object.Paper, UpdateLife},
		{object.Battery, UpdateEnergy},
		{object.RubberBands, UpdateBands},
	}
	for _, c := range cases {
		_, reaction, consume := p.reactTo(&liveObject{
			Object: object.Object{Kind: object.Kind{Code: c.code, Points: 5, Lives: 1, Energy: 10, Bands: 1}},
			Active: true,
		})
		require.True(t, consume)
		require.NotNil(t, reaction)
		require.Equal(t, c.kind, reaction.Kind)
	}
}

// S6: a Stair enters Ascending/Descending, and the room change fires
// only once the glider reaches the y-threshold, not immediately.
func Test_S6_descending_stair_completes_at_y_threshold(t *testing.T) {
	h := buildHouse(t, blankRoom(t, "Attic", false, false))
	p, err := Start(&h, 1, Entrance{}, 1)
	require.NoError(t, err)
	for i := 0; i < fadeFrames; i++ {
		p.Frame(Input{})
	}

	next, _, _ := p.reactTo(&liveObject{
		Object: object.Object{Kind: object.Kind{Code: object.Stair, Direction: object.Down, Destination: 2, HasDest: true}},
		Active: true,
	})
	require.Equal(t, Descending, next.Kind)
	p.now = next
	p.player.Y = descendArrivalY - 20 // Descending increments y (spec §4.G); starts already below the threshold

	var left Update
	var ok bool
	for i := 0; i < 30 && !ok; i++ {
		out := p.Frame(Input{})
		left, ok = out.Left()
	}
	require.True(t, ok, "descending past the y-threshold should report UpdateLeave")
	require.EqualValues(t, 2, left.Destination)
}
