package main

import (
	"fmt"

	"github.com/fwojciec/aidharvest"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the paths command.
func (c *PathsCmd) Run(deps *Dependencies) error {
	items, err := recordItems(deps, c.ObjectID)
	if err != nil {
		return err
	}

	paths := aidharvest.BuildPaths(items)
	if len(paths) == 0 {
		fmt.Fprintf(deps.Stdout, "Finding aid %s has no leaf items.\n", c.ObjectID)
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(deps.Stdout)
	t.AppendHeader(table.Row{"ID", "Title", "Context"})
	for _, p := range paths {
		t.AppendRow(table.Row{p.ID, p.Title, p.Context})
	}
	t.Render()

	return nil
}
