package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/aidharvest"
	"github.com/fwojciec/aidharvest/fs"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	html, objectID, sourceURL, err := c.load(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aidharvest.ErrorMessage(err))
		return err
	}

	aid, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aidharvest.ErrorMessage(err))
		return err
	}

	aid.ObjectID = objectID
	aid.SourceURL = sourceURL
	aid.HarvestedAt = time.Now().UTC()

	writer := fs.NewWriter(c.Out, fs.WithConverter(deps.Converter))
	if err := writer.WriteFindingAid(deps.Ctx, aid); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aidharvest.ErrorMessage(err))
		return err
	}

	leaves := len(aidharvest.CollectLeaves(aid.Items))
	fmt.Fprintf(deps.Stdout, "Converted %s (%d series, %d leaf items)\n", objectID, len(aid.Items), leaves)

	return nil
}

// load returns the document HTML along with the object ID and source URL.
// A source naming an existing file is read locally; anything else is
// treated as a finding aid URL.
func (c *ConvertCmd) load(deps *Dependencies) (html, objectID, sourceURL string, err error) {
	if _, statErr := os.Stat(c.Source); statErr == nil {
		content, err := os.ReadFile(c.Source)
		if err != nil {
			return "", "", "", fmt.Errorf("failed to read %s: %w", c.Source, err)
		}
		base := filepath.Base(c.Source)
		objectID = strings.TrimSuffix(base, filepath.Ext(base))
		return string(content), objectID, "", nil
	}

	objectID, err = aidharvest.ObjectIDFromURL(c.Source)
	if err != nil {
		return "", "", "", err
	}

	html, err = deps.Fetcher.Fetch(deps.Ctx, c.Source)
	if err != nil {
		return "", "", "", err
	}

	return html, objectID, c.Source, nil
}
