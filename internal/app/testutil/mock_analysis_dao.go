package testutil

import (
	"sync"

	"storycoach/internal/app/model"
)

// MockAnalysisDAO is an in-memory implementation of repository.AnalysisDAO.
type MockAnalysisDAO struct {
	mu sync.Mutex

	RecordError error
	CloseError  error

	Records []model.RunRecord
	Closed  bool
}

func NewMockAnalysisDAO() *MockAnalysisDAO {
	return &MockAnalysisDAO{}
}

func (m *MockAnalysisDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return m.CloseError
}

func (m *MockAnalysisDAO) RecordRun(record model.RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordError != nil {
		return m.RecordError
	}
	record.ID = len(m.Records) + 1
	m.Records = append(m.Records, record)
	return nil
}

func (m *MockAnalysisDAO) GetAll() ([]model.RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.RunRecord, len(m.Records))
	copy(out, m.Records)
	return out, nil
}
