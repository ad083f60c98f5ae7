package statemachines

// Store is the mutable key/value scratch space shared by every action,
// guard and assertion of a single run. It lets a transition pass data
// forward to later assertions (a generated username, a captured URL, a
// loop counter).
//
// A Store lives for exactly one run: Run creates it fresh and exposes the
// final contents on the RunResult afterwards. It is not safe for
// concurrent use; the walk is single-threaded by design.
type Store struct {
	data map[string]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: make(map[string]any)}
}

// Set stores value under key, silently overwriting any previous value.
func (s *Store) Set(key string, value any) {
	s.data[key] = value
}

// Get returns the value stored under key. The boolean reports whether the
// key was present; absent keys are not an error.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// GetString returns the value under key if it is a string.
func (s *Store) GetString(key string) (string, bool) {
	v, ok := s.data[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// GetInt returns the value under key if it is an int.
func (s *Store) GetInt(key string) (int, bool) {
	v, ok := s.data[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// Delete removes key from the store. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) {
	delete(s.data, key)
}

// Len returns the number of keys currently stored.
func (s *Store) Len() int {
	return len(s.data)
}
