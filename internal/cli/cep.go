package cli

import (
	"github.com/spf13/cobra"
)

func newCepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cep <code>",
		Short: "Look up an address by CEP",
		Long:  "Resolve a Brazilian postal code to a street address through the server's address gateway. Punctuation in the code is ignored.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCep,
	}
}

func runCep(cmd *cobra.Command, args []string) error {
	c := newAPIClient()

	addr, err := c.LookupAddress(args[0])
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(addr)
	}

	printAddress(addr)
	return nil
}
