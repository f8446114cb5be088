package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/aidharvest"
	"github.com/fwojciec/aidharvest/mock"
	aidslog "github.com/fwojciec/aidharvest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs item and leaf counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*aidharvest.FindingAid, error) {
				return &aidharvest.FindingAid{
					Items: []*aidharvest.FindingAidNode{
						{
							ID:    "nla.obj-1",
							Title: "Correspondence",
							Children: []*aidharvest.FindingAidNode{
								{ID: "nla.obj-2", Title: "Letters 1901-1910"},
								{ID: "nla.obj-3", Title: "Letters 1911-1920"},
							},
						},
					},
				}, nil
			},
		}

		extractor := aidslog.NewLoggingExtractor(inner, logger)
		aid, err := extractor.Extract("<html></html>")

		require.NoError(t, err)
		require.NotNil(t, aid)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "items=1")
		assert.Contains(t, output, "leaves=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*aidharvest.FindingAid, error) {
				return nil, aidharvest.Errorf(aidharvest.EMISSINGID, "heading %q has no id attribute", "Series 1")
			},
		}

		extractor := aidslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "items=0")
		assert.Contains(t, output, "err=")
	})
}
