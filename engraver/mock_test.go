package engraver

import "time"

// mockTransport captures everything written through it.
type mockTransport struct {
	writes     [][]byte
	written    []byte
	writeErr   error
	shortWrite bool
	drainCalls int
	drainDelay time.Duration
	drainErr   error
	closed     bool
}

func (m *mockTransport) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	if m.shortWrite && len(p) > 1 {
		p = p[:len(p)-1]
	}
	chunk := append([]byte(nil), p...)
	m.writes = append(m.writes, chunk)
	m.written = append(m.written, chunk...)
	return len(chunk), nil
}

func (m *mockTransport) Drain() error {
	if m.drainDelay > 0 {
		time.Sleep(m.drainDelay)
	}
	m.drainCalls++
	return m.drainErr
}

func (m *mockTransport) Close() error {
	m.closed = true
	return nil
}
