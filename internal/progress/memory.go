package progress

import "sync"

// MemoryPersister keeps the record in memory. Saves counts successful writes.
type MemoryPersister struct {
	mu    sync.Mutex
	state *State
	Saves int
	Err   error
}

func (m *MemoryPersister) Load() (State, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return State{}, false, nil
	}
	return m.state.clone(), true, nil
}

func (m *MemoryPersister) Save(s State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	cp := s.clone()
	m.state = &cp
	m.Saves++
	return nil
}

func (m *MemoryPersister) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = nil
	return nil
}
