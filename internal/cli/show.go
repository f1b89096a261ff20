package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show visit details",
		Long:  "Show the full record of a single visit.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid visit ID: %s", args[0])
	}

	c := newAPIClient()

	v, err := c.GetVisit(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	printVisitDetails(v)
	return nil
}
