package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/visitaup/visitas-api/internal/cep"
	"github.com/visitaup/visitas-api/internal/visit"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printVisitDetails prints a single visit in text format.
func printVisitDetails(v *visit.Visit) {
	fmt.Printf("Visit #%d\n", v.ID)
	fmt.Printf("  Title:       %s\n", v.Title)
	if v.Description != nil {
		fmt.Printf("  Description: %s\n", *v.Description)
	}
	if v.Date != nil {
		fmt.Printf("  Date:        %s\n", *v.Date)
	}
	if v.CEP != nil {
		fmt.Printf("  CEP:         %s\n", *v.CEP)
	}
	if v.Address != nil {
		fmt.Printf("  Address:     %s\n", *v.Address)
	}
	if v.Lat != nil && v.Lon != nil {
		fmt.Printf("  Location:    %g, %g\n", *v.Lat, *v.Lon)
	}
	if v.Responsible != nil {
		fmt.Printf("  Responsible: %s\n", *v.Responsible)
	}
	fmt.Printf("  Status:      %s\n", v.Status)
	fmt.Printf("  Created:     %s\n", v.CreatedAt)
	fmt.Printf("  Updated:     %s\n", v.UpdatedAt)
}

// printVisitTable prints a list of visits as a formatted table.
func printVisitTable(visits []*visit.Visit) error {
	if len(visits) == 0 {
		fmt.Println("No visits found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tDATE\tSTATUS\tRESPONSIBLE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-----\t----\t------\t-----------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, v := range visits {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			v.ID,
			truncate(v.Title, 40),
			truncate(strOr(v.Date, "-"), 19),
			v.Status,
			truncate(strOr(v.Responsible, "-"), 20)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d visits\n", len(visits))
	return nil
}

// printAddress prints a resolved CEP address in text format.
func printAddress(a *cep.Address) {
	fmt.Printf("CEP:          %s\n", a.CEP)
	fmt.Printf("Street:       %s\n", a.Street)
	if a.Complement != "" {
		fmt.Printf("Complement:   %s\n", a.Complement)
	}
	fmt.Printf("Neighborhood: %s\n", a.Neighborhood)
	fmt.Printf("City:         %s\n", a.City)
	fmt.Printf("UF:           %s\n", a.UF)
}

// strOr returns the pointed-to string, or fallback when nil.
func strOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
