package usacr

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders a finish time the way results pages print it:
// h:mm:ss above an hour, mm:ss below, with tenths when present.
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}

	tenths := (d % time.Second) / (100 * time.Millisecond)
	secs := int(d / time.Second)
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%d:%02d:%02d", h, m, s)
	} else {
		fmt.Fprintf(&b, "%d:%02d", m, s)
	}
	if tenths > 0 {
		fmt.Fprintf(&b, ".%d", tenths)
	}
	return b.String()
}

// FormatResults formats a race result as an aligned text table for display.
// Failures are appended below the table so a skimming reader still sees
// every row the page carried.
func FormatResults(res *RaceResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Race %s", res.ID)
	if res.Category != "" {
		fmt.Fprintf(&b, "  %s", res.Category)
	}
	if !res.Date.IsZero() {
		fmt.Fprintf(&b, "  %s", res.Date.Format("2006-01-02"))
	}
	b.WriteString("\n\n")

	if len(res.Result.Riders) == 0 && len(res.Result.Failures) == 0 {
		b.WriteString("No starters.\n")
		return b.String()
	}

	nameW := len("Name")
	teamW := len("Team")
	for _, r := range res.Result.Riders {
		if len(r.Name) > nameW {
			nameW = len(r.Name)
		}
		if len(r.Team) > teamW {
			teamW = len(r.Team)
		}
	}

	fmt.Fprintf(&b, "%-5s %-4s %-*s %-*s %s\n", "Place", "Bib", nameW, "Name", teamW, "Team", "Time")
	for _, r := range res.Result.Riders {
		bib := ""
		if r.Bib > 0 {
			bib = fmt.Sprintf("%d", r.Bib)
		}
		fmt.Fprintf(&b, "%-5s %-4s %-*s %-*s %s\n",
			r.Place.String(), bib, nameW, r.Name, teamW, r.Team, FormatDuration(r.Time))
	}

	for _, f := range res.Result.Failures {
		fmt.Fprintf(&b, "row %d unparsed: %s (%s)\n", f.Row+1, f.Field, f.Reason)
	}

	return b.String()
}
