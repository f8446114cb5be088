package main

import (
	"fmt"

	"github.com/fwojciec/aidharvest"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.FindRecords(deps.Ctx, aidharvest.RecordFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aidharvest.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No finding aids found. Use 'aidharvest harvest' to add one.")
		return nil
	}

	for _, r := range records {
		title := r.Title
		if title == "" {
			title = r.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %d leaves  %s\n", r.ObjectID, title, r.LeafCount, r.HarvestedAt.Format("2006-01-02"))
	}

	return nil
}
