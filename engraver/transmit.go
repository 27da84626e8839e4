package engraver

import (
	"fmt"
	"time"

	"github.com/AlexStarov/ezgraver-GoLang-lib/util"
)

// Transmitter writes byte buffers to the transport in bounded chunks.
// The device buffers a limited amount of data, so each chunk is drained
// before the next one is started. A failed or truncated chunk aborts
// the whole transfer; partial uploads cannot be resumed.
type Transmitter struct {
	t Transport
}

func NewTransmitter(t Transport) *Transmitter {
	return &Transmitter{t: t}
}

// Send writes data in consecutive chunks of at most chunkSize bytes and
// returns the total number of bytes handed to the transport.
func (tr *Transmitter) Send(data []byte, chunkSize int) (int, error) {
	sent := 0
	for _, chunk := range util.Chunks(data, chunkSize) {
		n, err := tr.t.Write(chunk)
		sent += n
		if err != nil {
			return sent, fmt.Errorf("engraver: chunk write failed after %d bytes: %w", sent, err)
		}
		if n != len(chunk) {
			return sent, ErrShortWrite
		}
		if err := tr.t.Drain(); err != nil {
			return sent, fmt.Errorf("engraver: drain failed after %d bytes: %w", sent, err)
		}
	}
	return sent, nil
}

// Await blocks until the transport reports its outgoing queue drained
// or the timeout elapses. A negative timeout waits indefinitely.
func (tr *Transmitter) Await(timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- tr.t.Drain() }()

	if timeout < 0 {
		return <-done
	}
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return ErrDrainTimeout
	}
}
