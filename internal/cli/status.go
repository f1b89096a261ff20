package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the server connection",
		Long:  "Tests the connection to the visitas server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	serverURL := getServerURL()

	fmt.Printf("Server: %s\n", serverURL)

	c := newAPIClient()
	if err := c.Health(); err != nil {
		fmt.Printf("Status: %s cannot reach server (%v)\n", color.New(color.FgRed).Sprint("✗"), err)
		return nil
	}

	fmt.Printf("Status: %s up\n", color.New(color.FgGreen).Sprint("✓"))
	return nil
}
