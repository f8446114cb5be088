package mock

import (
	"context"

	"github.com/fwojciec/aidharvest"
)

var _ aidharvest.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of aidharvest.ArtifactWriter.
type ArtifactWriter struct {
	WriteFindingAidFn func(ctx context.Context, aid *aidharvest.FindingAid) error
}

func (w *ArtifactWriter) WriteFindingAid(ctx context.Context, aid *aidharvest.FindingAid) error {
	return w.WriteFindingAidFn(ctx, aid)
}
