package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/usacr"
)

// Run executes the events command.
func (c *EventsCmd) Run(deps *Dependencies) error {
	events, err := deps.Client.GetEvents(deps.Ctx, strings.ToUpper(c.State), c.Year)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", usacr.ErrorMessage(err))
		return err
	}

	if len(events) == 0 {
		fmt.Fprintf(deps.Stdout, "No events found for %s in %d.\n", strings.ToUpper(c.State), c.Year)
		return nil
	}

	for _, e := range events {
		date := "          "
		if !e.Date.IsZero() {
			date = e.Date.Format("2006-01-02")
		}
		fmt.Fprintf(deps.Stdout, "%s  %-12s %s\n", date, e.Permit, e.Name)
	}
	fmt.Fprintf(deps.Stdout, "\n%d events.\n", len(events))

	return nil
}
