package api

import (
	"context"

	"storycoach/internal/app/model"
)

// Reviewer produces a structured content review for a transcript.
type Reviewer interface {
	Review(ctx context.Context, transcript string) (model.Review, error)
}
