package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a visit",
		Long:  "Remove a visit. Removing an id that does not exist is not an error.",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid visit ID: %s", args[0])
	}

	c := newAPIClient()

	if err := c.DeleteVisit(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]int64{"deleted": id})
	}

	fmt.Printf("Visit #%d removed.\n", id)
	return nil
}
