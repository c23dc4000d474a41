package storage

// MemoryStore is an in-process Provider used by tests and dry runs.
type MemoryStore struct {
	state map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: make(map[string]string),
	}
}

func (s *MemoryStore) Init() error  { return nil }
func (s *MemoryStore) Load() error  { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Get(key string) (string, error) {
	value, ok := s.state[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.state[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	delete(s.state, key)
	return nil
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
