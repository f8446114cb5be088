package main

import (
	"fmt"

	"github.com/fwojciec/aidharvest"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return aidharvest.Errorf(aidharvest.EINVALID, "use --force to confirm deletion")
	}

	record, err := deps.Records.FindRecordByObjectID(deps.Ctx, c.ObjectID)
	if err != nil {
		if aidharvest.ErrorCode(err) == aidharvest.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: finding aid %q not found. Use 'aidharvest list' to see harvested finding aids.\n", c.ObjectID)
			return aidharvest.Errorf(aidharvest.ENOTFOUND, "finding aid %q not found", c.ObjectID)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", aidharvest.ErrorMessage(err))
		return err
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, record.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aidharvest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted finding aid %q\n", c.ObjectID)
	return nil
}
