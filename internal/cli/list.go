package cli

import (
	"github.com/spf13/cobra"

	"github.com/visitaup/visitas-api/internal/client"
)

func newListCmd() *cobra.Command {
	var (
		page   int
		size   int
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visits",
		Long:  "List visits, newest first, optionally filtered by status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(page, size, status)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number (default: 1)")
	cmd.Flags().IntVar(&size, "size", 0, "page size, max 100 (default: 50)")
	cmd.Flags().StringVar(&status, "status", "", "only visits with this status")

	return cmd
}

func runList(page, size int, status string) error {
	c := newAPIClient()

	visits, err := c.ListVisits(client.ListOptions{Page: page, Size: size, Status: status})
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(visits)
	}

	return printVisitTable(visits)
}
