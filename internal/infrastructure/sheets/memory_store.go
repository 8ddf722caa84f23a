package sheets

import (
	"context"
	"sync"
)

// MemoryStore keeps tabs in process memory. It backs the "memory" driver and
// the repository tests.
type MemoryStore struct {
	mu     sync.Mutex
	sheets map[string][][]string
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sheets: make(map[string][][]string)}
}

func (s *MemoryStore) EnsureSheet(_ context.Context, sheet string, header []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sheets[sheet]; !ok {
		s.sheets[sheet] = [][]string{append([]string(nil), header...)}
	}
	return nil
}

func (s *MemoryStore) Rows(_ context.Context, sheet string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.sheets[sheet]
	if len(rows) <= 1 {
		return [][]string{}, nil
	}
	return copyRows(rows[1:]), nil
}

func (s *MemoryStore) Append(_ context.Context, sheet string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.sheets[sheet]
	if !ok {
		rows = [][]string{{}}
	}
	s.sheets[sheet] = append(rows, append([]string(nil), row...))
	return nil
}

func (s *MemoryStore) Update(_ context.Context, sheet string, index int, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.sheets[sheet]
	if index < 0 || index+1 >= len(rows) {
		return ErrRowOutOfRange
	}
	rows[index+1] = append([]string(nil), row...)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sheet string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.sheets[sheet]
	if index < 0 || index+1 >= len(rows) {
		return ErrRowOutOfRange
	}
	s.sheets[sheet] = append(rows[:index+1], rows[index+2:]...)
	return nil
}
