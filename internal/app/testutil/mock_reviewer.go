package testutil

import (
	"context"
	"sync"

	"storycoach/internal/app/model"
)

// MockReviewer is a configurable mock implementation of api.Reviewer.
type MockReviewer struct {
	mu sync.Mutex

	DefaultReview model.Review
	DefaultError  error

	CallCount   int
	CallHistory []string
}

// NewMockReviewer creates a MockReviewer that returns a fixed, valid review.
func NewMockReviewer() *MockReviewer {
	return &MockReviewer{
		DefaultReview: model.Review{
			Summary:       "A mock review summary.",
			StoryStrength: "good",
			StoryLength:   "just right",
			Suggestions:   []string{"Open with a stronger hook."},
		},
	}
}

// Review implements the api.Reviewer interface.
func (m *MockReviewer) Review(ctx context.Context, transcript string) (model.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.CallHistory = append(m.CallHistory, transcript)

	if m.DefaultError != nil {
		return model.Review{}, m.DefaultError
	}
	return m.DefaultReview, nil
}
