package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	var flags visitFlags

	cmd := &cobra.Command{
		Use:   "update <id> <title>",
		Short: "Update a visit",
		Long:  "Replace the stored fields of a visit. The update is a full replace, so resupply every field you want to keep.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, &flags, args)
		},
	}

	flags.register(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, flags *visitFlags, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid visit ID: %s", args[0])
	}
	title := strings.Join(args[1:], " ")

	c := newAPIClient()

	if err := c.UpdateVisit(id, flags.params(cmd, title)); err != nil {
		return fmt.Errorf("updating visit: %w", err)
	}

	if isJSON() {
		return printJSON(map[string]int64{"updated": id})
	}

	v, err := c.GetVisit(id)
	if err != nil {
		return fmt.Errorf("reading back visit: %w", err)
	}

	fmt.Println("Visit updated.")
	printVisitDetails(v)
	return nil
}
