package main

import (
	"context"
	"io"

	"github.com/fwojciec/usacr/client"
	"github.com/fwojciec/usacr/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB
	Client *client.Client
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool    `short:"v" help:"Log fetch and cache activity"`
	Browser   bool    `help:"Fetch with a headless browser instead of plain HTTP"`
	NoCache   bool    `help:"Bypass the page cache"`
	RateLimit float64 `default:"1.0" help:"Maximum requests per second"`

	Events     EventsCmd     `cmd:"" help:"List events for a state and year"`
	Details    DetailsCmd    `cmd:"" help:"Show details for a permitted event"`
	Categories CategoriesCmd `cmd:"" help:"List race categories for a discipline"`
	Results    ResultsCmd    `cmd:"" help:"Show results for a race"`
	Races      RacesCmd      `cmd:"" help:"List all races under a permit"`
	Event      EventCmd      `cmd:"" help:"Assemble complete data for a permitted event"`
}

// EventsCmd is the "events" subcommand.
type EventsCmd struct {
	State string `arg:"" help:"Two-letter state code"`
	Year  int    `arg:"" help:"Season year"`
}

// DetailsCmd is the "details" subcommand.
type DetailsCmd struct {
	Permit       string `arg:"" help:"Permit number (e.g. 2020-26)"`
	Announcement bool   `short:"a" help:"Render the event announcement as markdown"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct {
	InfoID string `arg:"" help:"Discipline info ID"`
	Label  string `arg:"" help:"Discipline label from the permit page"`
	Permit string `help:"Permit to associate categories with"`
}

// ResultsCmd is the "results" subcommand.
type ResultsCmd struct {
	RaceID string `arg:"" help:"Race ID"`
	Format string `default:"table" enum:"table,xml" help:"Output format (table or xml)"`
}

// RacesCmd is the "races" subcommand.
type RacesCmd struct {
	Permit string `arg:"" help:"Permit number"`
}

// EventCmd is the "event" subcommand.
type EventCmd struct {
	Permit      string `arg:"" help:"Permit number"`
	Results     bool   `short:"r" help:"Fetch results for every race"`
	JSON        bool   `help:"Print the assembled event as JSON"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent result fetch limit"`
}
