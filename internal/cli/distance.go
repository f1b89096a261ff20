package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visitaup/visitas-api/internal/distance"
)

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <id> <origin> <destination>",
		Short: "Check the distance between two points",
		Long:  "Ask the distance service how far apart two points are, in the context of a visit. Points are given as lat,lon pairs, e.g. -23.5614,-46.6558.",
		Args:  cobra.ExactArgs(3),
		RunE:  runDistance,
	}
}

func runDistance(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid visit ID: %s", args[0])
	}

	origin, err := parsePoint(args[1])
	if err != nil {
		return err
	}
	dest, err := parsePoint(args[2])
	if err != nil {
		return err
	}

	c := newAPIClient()

	raw, err := c.CheckDistance(id, origin, dest)
	if err != nil {
		return err
	}

	// The payload comes straight from the distance service; print it
	// as-is, just indented.
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	if _, err := out.WriteTo(os.Stdout); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	fmt.Println()
	return nil
}

// parsePoint parses a "lat,lon" pair.
func parsePoint(s string) (distance.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return distance.Point{}, fmt.Errorf("invalid point %q (want lat,lon)", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return distance.Point{}, fmt.Errorf("invalid latitude in %q", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return distance.Point{}, fmt.Errorf("invalid longitude in %q", s)
	}

	return distance.Point{Lat: lat, Lon: lon}, nil
}
