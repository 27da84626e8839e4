package engraver

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	logInternal "github.com/AlexStarov/ezgraver-GoLang-lib/log"
)

// DefaultBaudRate is the fixed line speed of the engraver.
const DefaultBaudRate = 57600

// AvailablePorts lists the serial ports present on the system.
func AvailablePorts() ([]string, error) {
	return serial.GetPortsList()
}

type serialConn struct {
	port serial.Port
}

func (c *serialConn) Write(b []byte) (int, error) { return c.port.Write(b) }
func (c *serialConn) Drain() error                { return c.port.Drain() }
func (c *serialConn) Close() error                { return c.port.Close() }

// NewSerialEngraver opens the engraver on the given serial port and
// returns a connected session owning it.
func NewSerialEngraver(portName string) (*Engraver, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		logInternal.Errlog.Printf("listing serial ports: %v", err)
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	logInternal.Stdlog.Printf("available ports: %v", ports)

	if !contains(ports, portName) {
		return nil, fmt.Errorf("%w: %s", ErrPortNotFound, portName)
	}

	mode := &serial.Mode{
		BaudRate: DefaultBaudRate,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		logInternal.Errlog.Printf("opening port %s: %v", portName, err)
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}
	logInternal.Stdlog.Printf("port %s opened at %d baud", portName, DefaultBaudRate)
	port.SetReadTimeout(100 * time.Millisecond)

	return New(&serialConn{port: port}), nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
