package engraver

import (
	"image"
	"time"

	imgInternal "github.com/AlexStarov/ezgraver-GoLang-lib/image"
)

// Device constants of the NEJE v1 engraver.
const (
	// EraseTime is the time the device needs to clear its EEPROM.
	EraseTime = 6 * time.Second

	// ChunkSize is the device receive buffer capacity. Image data is
	// never written in larger pieces.
	ChunkSize = 8192

	// Burn time window the device accepts.
	MinBurnTime byte = 0x01
	MaxBurnTime byte = 0xF0
)

// State labels the engraver session.
type State int

const (
	Connected State = iota
	Erasing
	Erased
	Engraving
	Paused
)

// Engraver drives a single engraver over the transport it owns. All
// operations block until the command is written (or a timeout fires);
// callers invoking it from several goroutines must serialize access
// themselves. Closing the session releases the transport.
type Engraver struct {
	t  Transport
	tr *Transmitter

	// Converter prepares source images for upload. Callers may adjust
	// its threshold or enable dithering before calling UploadImage.
	Converter *imgInternal.Converter

	// EraseDelay is slept after the erase command. The device drops
	// leading image bytes when data arrives too early after an erase,
	// so this must stay at EraseTime for real hardware.
	EraseDelay time.Duration

	state State
}

// New creates a session that takes ownership of t.
func New(t Transport) *Engraver {
	return &Engraver{
		t:          t,
		tr:         NewTransmitter(t),
		Converter:  imgInternal.NewConverter(),
		EraseDelay: EraseTime,
		state:      Connected,
	}
}

// State returns the current session state label.
func (e *Engraver) State() State { return e.state }

// Close releases the transport. The session must not be used afterwards.
func (e *Engraver) Close() error { return e.t.Close() }

func (e *Engraver) command(c Command) error {
	_, err := e.tr.Send(c.Encode(), ChunkSize)
	return err
}

// Start begins engraving with the given burn time, or resumes it after
// a pause. The device rejects burn times outside MinBurnTime..MaxBurnTime.
func (e *Engraver) Start(burnTime byte) error {
	if burnTime < MinBurnTime || burnTime > MaxBurnTime {
		return ErrBurnTime
	}
	if err := e.command(Start{BurnTime: burnTime}); err != nil {
		return err
	}
	e.state = Engraving
	return nil
}

// Pause stops the engraving process at the current location. Start
// resumes from there; the device keeps the position.
func (e *Engraver) Pause() error {
	if err := e.command(Pause); err != nil {
		return err
	}
	if e.state == Engraving {
		e.state = Paused
	}
	return nil
}

// Reset resets the engraver.
func (e *Engraver) Reset() error { return e.command(Reset) }

// Home moves the engraver to the home position.
func (e *Engraver) Home() error { return e.command(Home) }

// Center moves the engraver to the center.
func (e *Engraver) Center() error { return e.command(Center) }

// Preview outlines the currently loaded image.
func (e *Engraver) Preview() error { return e.command(Preview) }

// Up moves the engraver up.
func (e *Engraver) Up() error { return e.command(Up) }

// Down moves the engraver down.
func (e *Engraver) Down() error { return e.command(Down) }

// Left moves the engraver left.
func (e *Engraver) Left() error { return e.command(Left) }

// Right moves the engraver right.
func (e *Engraver) Right() error { return e.command(Right) }

// Erase clears the device EEPROM and blocks for EraseDelay. Erasing is
// mandatory before every upload; sending image data too early causes
// the device to drop leading pixels, so the delay is never skipped.
func (e *Engraver) Erase() error {
	prev := e.state
	e.state = Erasing
	if err := e.command(Erase); err != nil {
		e.state = prev
		return err
	}
	time.Sleep(e.EraseDelay)
	e.state = Erased
	return nil
}

// UploadImage converts img to the device raster and uploads it. The
// EEPROM must have been erased since the last upload or engraving run.
// Returns the number of bytes sent to the device.
func (e *Engraver) UploadImage(img image.Image) (int, error) {
	if e.state != Erased {
		return 0, ErrNotErased
	}
	raster, err := e.Converter.Convert(img)
	if err != nil {
		return 0, err
	}
	return e.tr.Send(raster, ChunkSize)
}

// UploadRaster uploads an already prepared packed monochrome raster of
// exactly image.RasterSize bytes, bypassing the converter.
func (e *Engraver) UploadRaster(data []byte) (int, error) {
	if e.state != Erased {
		return 0, ErrNotErased
	}
	if err := imgInternal.ValidateRaster(data); err != nil {
		return 0, err
	}
	return e.tr.Send(data, ChunkSize)
}

// AwaitTransmission blocks until the outgoing buffer is fully written
// to the device or the timeout elapses. A negative timeout waits
// indefinitely.
func (e *Engraver) AwaitTransmission(timeout time.Duration) error {
	return e.tr.Await(timeout)
}
