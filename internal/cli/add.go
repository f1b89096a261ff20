package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visitaup/visitas-api/internal/client"
)

// visitFlags holds the field flags shared by add and update.
type visitFlags struct {
	description string
	date        string
	cep         string
	address     string
	lat         float64
	lon         float64
	responsible string
	status      string
}

// register adds the field flags to a command.
func (f *visitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.description, "desc", "", "what the visit is about")
	cmd.Flags().StringVar(&f.date, "date", "", "scheduled date, e.g. 2026-09-10T14:00:00")
	cmd.Flags().StringVar(&f.cep, "cep", "", "postal code of the site")
	cmd.Flags().StringVar(&f.address, "address", "", "street address of the site")
	cmd.Flags().Float64Var(&f.lat, "lat", 0, "site latitude")
	cmd.Flags().Float64Var(&f.lon, "lon", 0, "site longitude")
	cmd.Flags().StringVar(&f.responsible, "responsible", "", "person in charge of the visit")
	cmd.Flags().StringVar(&f.status, "status", "", "visit status (default: scheduled)")
}

// params converts the flags into API parameters. Only flags the user
// actually set are sent; lat and lon need the Changed check because
// zero is a valid coordinate.
func (f *visitFlags) params(cmd *cobra.Command, title string) client.VisitParams {
	p := client.VisitParams{Title: title, Status: f.status}
	if f.description != "" {
		p.Description = &f.description
	}
	if f.date != "" {
		p.Date = &f.date
	}
	if f.cep != "" {
		p.CEP = &f.cep
	}
	if f.address != "" {
		p.Address = &f.address
	}
	if cmd.Flags().Changed("lat") {
		p.Lat = &f.lat
	}
	if cmd.Flags().Changed("lon") {
		p.Lon = &f.lon
	}
	if f.responsible != "" {
		p.Responsible = &f.responsible
	}
	return p
}

func newAddCmd() *cobra.Command {
	var flags visitFlags

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Record a new visit",
		Long:  "Record a new technical visit. The title is required; everything else is optional.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, &flags, strings.Join(args, " "))
		},
	}

	flags.register(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, flags *visitFlags, title string) error {
	c := newAPIClient()

	id, err := c.CreateVisit(flags.params(cmd, title))
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}

	if isJSON() {
		return printJSON(map[string]int64{"id": id})
	}

	v, err := c.GetVisit(id)
	if err != nil {
		return fmt.Errorf("reading back visit: %w", err)
	}

	fmt.Println("Visit recorded.")
	printVisitDetails(v)
	return nil
}
