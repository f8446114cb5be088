package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/aidharvest"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the leaves command.
func (c *LeavesCmd) Run(deps *Dependencies) error {
	items, err := recordItems(deps, c.ObjectID)
	if err != nil {
		return err
	}

	leaves := aidharvest.CollectLeaves(items)
	if len(leaves) == 0 {
		fmt.Fprintf(deps.Stdout, "Finding aid %s has no leaf items.\n", c.ObjectID)
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(deps.Stdout)
	t.AppendHeader(table.Row{"ID", "Title", "Digitised", "First Page"})
	for _, leaf := range leaves {
		digitised := ""
		if leaf.Digitised {
			digitised = "yes"
		}
		t.AppendRow(table.Row{leaf.ID, leaf.Title, digitised, leaf.FirstPage})
	}
	t.Render()

	return nil
}

// recordItems loads the stored hierarchy for a harvested finding aid.
func recordItems(deps *Dependencies, objectID string) ([]*aidharvest.FindingAidNode, error) {
	record, err := deps.Records.FindRecordByObjectID(deps.Ctx, objectID)
	if err != nil {
		if aidharvest.ErrorCode(err) == aidharvest.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: finding aid %q not found. Use 'aidharvest list' to see harvested finding aids.\n", objectID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", aidharvest.ErrorMessage(err))
		}
		return nil, err
	}

	var content struct {
		Items []*aidharvest.FindingAidNode `json:"items"`
	}
	if err := json.Unmarshal([]byte(record.Content), &content); err != nil {
		fmt.Fprintf(deps.Stderr, "error: stored content for %q is not valid JSON: %v\n", objectID, err)
		return nil, err
	}

	return content.Items, nil
}
