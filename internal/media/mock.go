package media

import (
	"fmt"
)

// MockProber returns canned metadata for tests
type MockProber struct {
	results map[string]*Metadata
	errors  map[string]error
	calls   []string
}

// NewMockProber creates an empty MockProber
func NewMockProber() *MockProber {
	return &MockProber{
		results: make(map[string]*Metadata),
		errors:  make(map[string]error),
	}
}

// SetResult registers the metadata returned for path
func (m *MockProber) SetResult(path string, md *Metadata) {
	m.results[path] = md
}

// SetError registers an error returned for path
func (m *MockProber) SetError(path string, err error) {
	m.errors[path] = err
}

// Calls returns the paths probed so far, in order
func (m *MockProber) Calls() []string {
	return m.calls
}

func (m *MockProber) Probe(path string) (*Metadata, error) {
	m.calls = append(m.calls, path)
	if err, ok := m.errors[path]; ok {
		return nil, err
	}
	if md, ok := m.results[path]; ok {
		clone := *md
		return &clone, nil
	}
	return nil, fmt.Errorf("no probe result registered for %s", path)
}
