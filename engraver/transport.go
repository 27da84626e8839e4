package engraver

import "io"

// Transport is the writable byte link to the engraver. The protocol is
// send-only from the host, so the contract carries no read side.
type Transport interface {
	io.WriteCloser

	// Drain blocks until every previously written byte has been handed
	// to the device.
	Drain() error
}

// -------------------- RAW --------------------

// RawTransport adapts any io.WriteCloser into a Transport with a no-op
// Drain, for links that complete writes synchronously.
type RawTransport struct {
	conn io.WriteCloser
}

func NewRawTransport(conn io.WriteCloser) *RawTransport {
	return &RawTransport{conn: conn}
}

func (r *RawTransport) Write(b []byte) (int, error) { return r.conn.Write(b) }
func (r *RawTransport) Drain() error                { return nil }
func (r *RawTransport) Close() error                { return r.conn.Close() }

// -------------------- helpers --------------------

type nopCloser struct {
	io.Writer
}

func (n nopCloser) Close() error { return nil }

// NopCloserTransport wraps a plain writer (for example a bytes.Buffer)
// into a Transport whose Close does nothing.
func NopCloserTransport(w io.Writer) *RawTransport {
	return &RawTransport{conn: nopCloser{w}}
}
