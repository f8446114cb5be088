// Package fs writes the export artifacts for harvested finding aids.
package fs

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/aidharvest"
)

// Ensure Writer implements aidharvest.ArtifactWriter at compile time.
var _ aidharvest.ArtifactWriter = (*Writer)(nil)

// Writer exports each finding aid as a nested JSON document, a CSV of
// leaf items, a CSV of leaf context paths, and (when the collection
// summary region exists) a Markdown summary. Every artifact is built in
// memory and written atomically, so a failed conversion never leaves a
// partial file behind.
type Writer struct {
	baseDir   string
	converter aidharvest.Converter
}

// Option configures a Writer.
type Option func(*Writer)

// WithConverter enables the Markdown summary export.
func WithConverter(c aidharvest.Converter) Option {
	return func(w *Writer) {
		w.converter = c
	}
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, opts ...Option) *Writer {
	w := &Writer{baseDir: baseDir}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteFindingAid writes all artifacts for one finding aid.
func (w *Writer) WriteFindingAid(ctx context.Context, aid *aidharvest.FindingAid) error {
	if aid.ObjectID == "" {
		return aidharvest.Errorf(aidharvest.EINVALID, "finding aid object ID required")
	}

	doc, err := json.MarshalIndent(aid, "", "  ")
	if err != nil {
		return err
	}

	leaves, err := leavesCSV(aid.Items)
	if err != nil {
		return err
	}

	paths, err := pathsCSV(aid.Items)
	if err != nil {
		return err
	}

	if err := w.writeFileAtomic(aid.ObjectID+".json", doc); err != nil {
		return err
	}
	if err := w.writeFileAtomic(aid.ObjectID+"-items.csv", leaves); err != nil {
		return err
	}
	if err := w.writeFileAtomic(aid.ObjectID+"-paths.csv", paths); err != nil {
		return err
	}

	if w.converter != nil && aid.AboutHTML != "" {
		md, err := w.converter.Convert(aid.AboutHTML)
		if err != nil {
			return err
		}
		summary := FormatSummary(aid, md)
		if err := w.writeFileAtomic(aid.ObjectID+".md", []byte(summary)); err != nil {
			return err
		}
	}

	return nil
}

// FormatSummary formats the Markdown summary with YAML frontmatter.
func FormatSummary(aid *aidharvest.FindingAid, markdown string) string {
	harvested := aid.HarvestedAt
	if harvested.IsZero() {
		harvested = time.Now()
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(aid.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(aid.Title())
	b.WriteString("\nharvested: ")
	b.WriteString(harvested.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}

// leavesCSV renders the flat leaf view: one row per content item, with
// the children column always an empty list.
func leavesCSV(items []*aidharvest.FindingAidNode) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"id", "title", "description", "digitised", "first_page", "children"}); err != nil {
		return nil, err
	}
	for leaf := range aidharvest.Leaves(items) {
		row := []string{
			leaf.ID,
			leaf.Title,
			leaf.Description,
			strconv.FormatBool(leaf.Digitised),
			leaf.FirstPage,
			"[]",
		}
		if err := cw.Write(row); err != nil {
			return nil, err
		}
	}

	cw.Flush()
	return buf.Bytes(), cw.Error()
}

// pathsCSV renders the leaf context-path view.
func pathsCSV(items []*aidharvest.FindingAidNode) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"id", "title", "context"}); err != nil {
		return nil, err
	}
	for _, p := range aidharvest.BuildPaths(items) {
		if err := cw.Write([]string{p.ID, p.Title, p.Context}); err != nil {
			return nil, err
		}
	}

	cw.Flush()
	return buf.Bytes(), cw.Error()
}

// writeFileAtomic writes to a temporary file in the target directory and
// renames it into place.
func (w *Writer) writeFileAtomic(name string, data []byte) error {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	final := filepath.Join(w.baseDir, name)
	tmp := final + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}
