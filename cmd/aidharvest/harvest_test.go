package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/aidharvest"
	main "github.com/fwojciec/aidharvest/cmd/aidharvest"
	"github.com/fwojciec/aidharvest/harvest"
	"github.com/fwojciec/aidharvest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHarvester(failURL string) *harvest.Harvester {
	return &harvest.Harvester{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == failURL {
					return "", aidharvest.Errorf(aidharvest.ENOTFOUND, "document not found")
				}
				return "<html></html>", nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*aidharvest.FindingAid, error) {
				return &aidharvest.FindingAid{
					Summary: map[string]string{"title": "Papers of Jane Example"},
					Items: []*aidharvest.FindingAidNode{
						{ID: "nla.obj-1", Title: "Correspondence"},
					},
				}, nil
			},
		},
		Writer: &mock.ArtifactWriter{
			WriteFindingAidFn: func(ctx context.Context, aid *aidharvest.FindingAid) error {
				return nil
			},
		},
	}
}

func TestHarvestCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("harvests URLs and prints a summary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Harvester: testHarvester(""),
		}

		cmd := &main.HarvestCmd{URLs: []string{
			"http://nla.gov.au/nla.obj-123/findingaid",
			"http://nla.gov.au/nla.obj-456/findingaid",
		}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Harvesting 2 finding aids")
		assert.Contains(t, output, "Harvested 2 finding aids, 0 failed")
		assert.Contains(t, output, "2 leaf items")
	})

	t.Run("reports failed URLs and continues", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		failURL := "http://nla.gov.au/nla.obj-456/findingaid"
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Harvester: testHarvester(failURL),
		}

		cmd := &main.HarvestCmd{URLs: []string{
			"http://nla.gov.au/nla.obj-123/findingaid",
			failURL,
			"http://nla.gov.au/nla.obj-789/findingaid",
		}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "skip "+failURL)
		assert.Contains(t, stdout.String(), "Harvested 2 finding aids, 1 failed")
	})

	t.Run("reads URLs from a file skipping comments and blanks", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "urls.txt")
		content := "# harvest batch\nhttp://nla.gov.au/nla.obj-123/findingaid\n\nhttp://nla.gov.au/nla.obj-456/findingaid\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Harvester: testHarvester(""),
		}

		cmd := &main.HarvestCmd{File: path}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Harvesting 2 finding aids")
	})

	t.Run("returns error when no URLs are given", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Harvester: testHarvester(""),
		}

		cmd := &main.HarvestCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, aidharvest.EINVALID, aidharvest.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no URLs given")
	})
}
