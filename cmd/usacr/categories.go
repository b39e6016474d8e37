package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/usacr"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	categories, err := deps.Client.GetRaceCategories(deps.Ctx, c.InfoID, c.Label, c.Permit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", usacr.ErrorMessage(err))
		return err
	}

	if len(categories) == 0 {
		fmt.Fprintln(deps.Stdout, "No categories found.")
		return nil
	}

	for _, cat := range categories {
		var attrs []string
		if cat.Gender != "" {
			attrs = append(attrs, cat.Gender)
		}
		if cat.CategoryType != "" {
			attrs = append(attrs, cat.CategoryType)
		}
		if cat.AgeRange != "" {
			attrs = append(attrs, cat.AgeRange)
		}
		line := fmt.Sprintf("%-8s %s", cat.ID, cat.Name)
		if len(attrs) > 0 {
			line += "  [" + strings.Join(attrs, ", ") + "]"
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}
