// Command houseimport inspects and validates house files without
// running the simulation: a decode-only entry point useful for house
// editors and CI checks on committed house data (spec §7).
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gonutz/glider/house"
	"github.com/gonutz/glider/object"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:   "houseimport",
		Short: "Inspect and validate house files",
	}
	root.AddCommand(inspectCmd(), validateCmd(), mergeCmd())
	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("houseimport exited with an error")
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print a summary of each room in a house file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := decodeFile(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("version %d, %d rooms\n", h.Version, h.RoomCount())
			for id := 1; id <= h.RoomCount(); id++ {
				r, _ := h.Room(object.RoomID(id))
				fmt.Printf("  %3d  %-20s  %d objects  left=%v right=%v\n",
					id, r.Name, len(r.Objects), r.LeftOpen, r.RightOpen)
			}
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Decode a house file, reporting any structural error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := decodeFile(args[0])
			if err != nil {
				return err
			}
			log.Info("house file is well-formed")
			return nil
		},
	}
}

func mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <first> <second>",
		Short: "Append the second house file's rooms onto the first's and print the result's room count",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := decodeFile(args[0])
			if err != nil {
				return err
			}
			second, err := decodeFile(args[1])
			if err != nil {
				return err
			}
			first.Append(second)
			log.WithField("rooms", first.RoomCount()).Info("merged")
			return nil
		},
	}
}

func decodeFile(path string) (house.House, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return house.House{}, errors.Wrapf(err, "reading %s", path)
	}
	h, err := house.Decode(data)
	if err != nil {
		return house.House{}, errors.Wrapf(err, "decoding %s", path)
	}
	return h, nil
}
