package fs_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/aidharvest"
	"github.com/fwojciec/aidharvest/fs"
	"github.com/fwojciec/aidharvest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Writer implements aidharvest.ArtifactWriter at compile time.
var _ aidharvest.ArtifactWriter = (*fs.Writer)(nil)

func testAid() *aidharvest.FindingAid {
	return &aidharvest.FindingAid{
		ObjectID:  "nla.obj-123",
		SourceURL: "http://nla.gov.au/nla.obj-123/findingaid",
		Summary: map[string]string{
			"title":             "Papers of Jane Example",
			"collection_number": "MS 1234",
		},
		Items: []*aidharvest.FindingAidNode{
			{
				ID: "s1", Title: "Series 1",
				Children: []*aidharvest.FindingAidNode{
					{
						ID: "i1", Title: "Item 1", Description: "A letter",
						Digitised: true, FirstPage: "nla.obj-999",
						Children: []*aidharvest.FindingAidNode{},
					},
				},
			},
		},
	}
}

func TestWriter_WriteFindingAid(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON, items CSV, and paths CSV", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		err := w.WriteFindingAid(context.Background(), testAid())
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "nla.obj-123.json"))
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "Papers of Jane Example", doc["title"])
		assert.Equal(t, "MS 1234", doc["collection_number"])
		require.Contains(t, doc, "items")

		itemsFile, err := os.Open(filepath.Join(dir, "nla.obj-123-items.csv"))
		require.NoError(t, err)
		defer itemsFile.Close()

		rows, err := csv.NewReader(itemsFile).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"id", "title", "description", "digitised", "first_page", "children"}, rows[0])
		assert.Equal(t, []string{"i1", "Item 1", "A letter", "true", "nla.obj-999", "[]"}, rows[1])

		pathsFile, err := os.Open(filepath.Join(dir, "nla.obj-123-paths.csv"))
		require.NoError(t, err)
		defer pathsFile.Close()

		rows, err = csv.NewReader(pathsFile).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"id", "title", "context"}, rows[0])
		assert.Equal(t, []string{"i1", "Item 1", "Series 1"}, rows[1])
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		require.NoError(t, w.WriteFindingAid(context.Background(), testAid()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "stray temp file %s", e.Name())
		}
	})

	t.Run("writes markdown summary when configured and region present", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "**Title** Papers of Jane Example", nil
			},
		}
		w := fs.NewWriter(dir, fs.WithConverter(conv))

		aid := testAid()
		aid.AboutHTML = `<dl class="collection-summary"><dt>Title</dt><dd>Papers of Jane Example</dd></dl>`

		require.NoError(t, w.WriteFindingAid(context.Background(), aid))

		data, err := os.ReadFile(filepath.Join(dir, "nla.obj-123.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "source: http://nla.gov.au/nla.obj-123/findingaid")
		assert.Contains(t, string(data), "Papers of Jane Example")
	})

	t.Run("skips markdown when the summary region is absent", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				t.Fatal("converter should not be called")
				return "", nil
			},
		}
		w := fs.NewWriter(dir, fs.WithConverter(conv))

		require.NoError(t, w.WriteFindingAid(context.Background(), testAid()))

		_, err := os.Stat(filepath.Join(dir, "nla.obj-123.md"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rejects a finding aid without an object ID", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		aid := testAid()
		aid.ObjectID = ""

		err := w.WriteFindingAid(context.Background(), aid)
		assert.Equal(t, aidharvest.EINVALID, aidharvest.ErrorCode(err))
	})
}
