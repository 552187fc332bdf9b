package testutil

import (
	"context"
	"sync"
)

// MockTranscriber is a configurable mock implementation of api.Transcriber.
type MockTranscriber struct {
	mu sync.Mutex

	DefaultResponse string
	DefaultError    error
	ResponseMap     map[string]string
	ErrorMap        map[string]error

	CallCount   int
	CallHistory []string
}

// NewMockTranscriber creates a new MockTranscriber with sensible defaults.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcription result.",
		ResponseMap:     make(map[string]string),
		ErrorMap:        make(map[string]error),
	}
}

// Transcript implements the api.Transcriber interface.
func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.CallHistory = append(m.CallHistory, inputFilePath)

	if err, ok := m.ErrorMap[inputFilePath]; ok {
		return "", err
	}
	if m.DefaultError != nil {
		return "", m.DefaultError
	}
	if resp, ok := m.ResponseMap[inputFilePath]; ok {
		return resp, nil
	}
	return m.DefaultResponse, nil
}
