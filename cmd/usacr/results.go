package main

import (
	"fmt"

	"github.com/fwojciec/usacr"
	"github.com/fwojciec/usacr/etree"
)

// Run executes the results command.
func (c *ResultsCmd) Run(deps *Dependencies) error {
	res, err := deps.Client.GetRaceResults(deps.Ctx, c.RaceID, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", usacr.ErrorMessage(err))
		return err
	}

	if c.Format == "xml" {
		if err := etree.WriteResults(deps.Stdout, res); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", usacr.ErrorMessage(err))
			return err
		}
		return nil
	}

	fmt.Fprint(deps.Stdout, usacr.FormatResults(res))
	return nil
}
