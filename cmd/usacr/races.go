package main

import (
	"fmt"

	"github.com/fwojciec/usacr"
)

// Run executes the races command.
func (c *RacesCmd) Run(deps *Dependencies) error {
	races, err := deps.Client.GetRacesForPermit(deps.Ctx, c.Permit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", usacr.ErrorMessage(err))
		return err
	}

	if len(races) == 0 {
		fmt.Fprintf(deps.Stdout, "No races found for permit %s.\n", c.Permit)
		return nil
	}

	for _, r := range races {
		fmt.Fprintf(deps.Stdout, "%-8s %-20s %s\n", r.ID, r.DisciplineName, r.Name)
	}
	fmt.Fprintf(deps.Stdout, "\n%d races.\n", len(races))

	return nil
}
