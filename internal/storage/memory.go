package storage

import "sync"

// MemoryAdapter is an in-memory Adapter used by tests and by the CLI's
// --ephemeral mode. Writes can be made to fail to exercise the best-effort
// persistence contract.
type MemoryAdapter struct {
	mu       sync.Mutex
	data     map[string][]byte
	failWith error
}

// NewMemoryAdapter returns an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{data: make(map[string][]byte)}
}

// FailWrites makes every subsequent Write return err (nil restores normal
// behavior).
func (a *MemoryAdapter) FailWrites(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failWith = err
}

// Read returns the value stored under key, ok=false when absent.
func (a *MemoryAdapter) Read(key string) ([]byte, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	value, ok := a.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Write stores value under key.
func (a *MemoryAdapter) Write(key string, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failWith != nil {
		return a.failWith
	}
	out := make([]byte, len(value))
	copy(out, value)
	a.data[key] = out
	return nil
}

// Close is a no-op.
func (a *MemoryAdapter) Close() error { return nil }
