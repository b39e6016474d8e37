package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/usacr"
)

// Run executes the event command.
func (c *EventCmd) Run(deps *Dependencies) error {
	deps.Client.Concurrency = c.Concurrency

	complete, err := deps.Client.GetCompleteEvent(deps.Ctx, c.Permit, c.Results)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", usacr.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(complete)
	}

	fmt.Fprintf(deps.Stdout, "%s (%s)\n", complete.Details.Name, complete.Details.Permit)
	fmt.Fprintf(deps.Stdout, "Disciplines: %d  Categories: %d\n", len(complete.Details.Disciplines), len(complete.Categories))

	if c.Results {
		var riders, failures int
		for _, res := range complete.Results {
			riders += len(res.Result.Riders)
			failures += len(res.Result.Failures)
		}
		fmt.Fprintf(deps.Stdout, "Races: %d  Riders: %d  Unparsed rows: %d\n", len(complete.Results), riders, failures)
	}

	return nil
}
