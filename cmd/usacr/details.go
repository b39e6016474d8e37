package main

import (
	"fmt"

	"github.com/fwojciec/usacr"
)

// Run executes the details command.
func (c *DetailsCmd) Run(deps *Dependencies) error {
	details, err := deps.Client.GetEventDetails(deps.Ctx, c.Permit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", usacr.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s (%s)\n", details.Name, details.Permit)
	if !details.StartDate.IsZero() {
		dates := details.StartDate.Format("2006-01-02")
		if !details.EndDate.IsZero() && !details.EndDate.Equal(details.StartDate) {
			dates += " - " + details.EndDate.Format("2006-01-02")
		}
		fmt.Fprintf(deps.Stdout, "Dates:    %s\n", dates)
	}
	if details.Location != "" {
		fmt.Fprintf(deps.Stdout, "Location: %s\n", details.Location)
	}
	if details.Promoter != "" {
		fmt.Fprintf(deps.Stdout, "Promoter: %s\n", details.Promoter)
	}
	if details.Website != "" {
		fmt.Fprintf(deps.Stdout, "Website:  %s\n", details.Website)
	}

	if len(details.Disciplines) > 0 {
		fmt.Fprintln(deps.Stdout, "\nDisciplines:")
		for _, d := range details.Disciplines {
			fmt.Fprintf(deps.Stdout, "  %-8s %s\n", d.InfoID, d.Name)
		}
	}

	if c.Announcement {
		title, markdown, err := deps.Client.GetAnnouncement(deps.Ctx, c.Permit)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", usacr.ErrorMessage(err))
			return err
		}
		if title != "" {
			fmt.Fprintf(deps.Stdout, "\n# %s\n\n", title)
		} else {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, markdown)
	}

	return nil
}
