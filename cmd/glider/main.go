// Command glider hosts the simulation core in a desktop window,
// wiring the renderer/input boundary of spec §6 to play.Play: it
// reads the arrow keys, steps one Play frame per update, and draws
// the current room's objects and the glider itself.
package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gonutz/glider/draw"
	"github.com/gonutz/glider/geometry"
	"github.com/gonutz/glider/house"
	"github.com/gonutz/glider/object"
	"github.com/gonutz/glider/play"
)

var log = logrus.New()

func main() {
	cmd := &cobra.Command{
		Use:   "glider [house file]",
		Short: "Run a house file in a desktop window",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Fatal("glider exited with an error")
	}
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	h, err := house.Decode(data)
	if err != nil {
		return err
	}

	roomID := object.RoomID(1)
	p, err := play.Start(&h, roomID, play.Entrance{}, uint64(time.Now().UnixNano()))
	if err != nil {
		return err
	}
	log.WithField("rooms", h.RoomCount()).Info("house loaded")

	return draw.RunWindow("Glider", house.ScreenWidth, house.ScreenHeight, func(window draw.Window) {
		input := play.Input{}
		if window.WasKeyPressed("left") {
			input.Steering = true
			input.Bank = geometry.Left
		}
		if window.WasKeyPressed("right") {
			input.Steering = true
			input.Bank = geometry.Right
		}
		if window.WasKeyPressed("up") {
			input.Flip = true
		}
		if window.WasKeyPressed("space") {
			input.Shoot = true
		}
		if window.WasKeyPressed("tab") {
			input.Zoom = true
		}
		if window.WasKeyPressed("escape") {
			window.Close()
			return
		}

		out := p.Frame(input)
		if out.GameOver {
			log.Info("glider destroyed")
		}
		if left, ok := out.Left(); ok {
			next, ok := h.Room(left.Destination)
			if ok {
				log.WithField("room", next.Name).Info("entered room")
				roomID = left.Destination
				p, err = play.Start(&h, roomID, left.Entrance, uint64(time.Now().UnixNano()))
				if err != nil {
					log.WithError(err).Error("failed to enter room")
				}
			}
		}

		window.FillRect(0, 0, house.ScreenWidth, house.ScreenHeight, draw.RGB(0, 0, 0.2))

		room, _ := h.Room(roomID)
		for _, obj := range room.Objects {
			drawObject(window, obj)
		}

		pos, _ := p.Player()
		window.FillRect(int(pos.X)-8, int(pos.Y)-4, 16, 8, draw.RGB(1, 1, 1))
	})
}

func drawObject(window draw.Window, o object.Object) {
	if o.IsCosmetic() {
		return
	}
	area, ok := o.ActiveArea()
	if !ok {
		return
	}
	window.DrawRect(int(area.Left), int(area.Top), int(area.Width()), int(area.Height()), draw.RGB(1, 1, 0))
}
