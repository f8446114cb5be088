package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/aidharvest"
	"github.com/fwojciec/aidharvest/harvest"
)

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	urls := append([]string{}, c.URLs...)

	if c.File != "" {
		fromFile, err := readURLFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		urls = append(urls, fromFile...)
	}

	if len(urls) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no URLs given. Pass URLs as arguments or with -f.\n")
		return aidharvest.Errorf(aidharvest.EINVALID, "no URLs given")
	}

	progress := func(event harvest.ProgressEvent) {
		switch event.Type {
		case harvest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Harvesting %d finding aids\n", event.Total)
		case harvest.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, harvest.TruncateURL(event.URL, 60))
		case harvest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case harvest.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := deps.Harvester.Run(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error harvesting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Harvested %d finding aids, %d failed (%d leaf items, %s)\n",
		result.Harvested, result.Failed, result.Leaves, harvest.FormatBytes(result.Bytes))

	return nil
}

// readURLFile reads one URL per line, skipping blanks and # comments.
func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open URL file: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
