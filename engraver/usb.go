package engraver

import (
	"fmt"

	"github.com/google/gousb"

	logInternal "github.com/AlexStarov/ezgraver-GoLang-lib/log"
)

type usbConn struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	out  *gousb.OutEndpoint
}

// NewUSBEngraver opens an engraver attached through a USB bridge with
// the given vendor and product IDs and returns a session owning it.
// Bulk writes complete synchronously, so Drain is a no-op on this
// transport.
func NewUSBEngraver(vendorID, productID gousb.ID) (*Engraver, error) {
	ctx := gousb.NewContext()
	dev, err := ctx.OpenDeviceWithVIDPID(vendorID, productID)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to open USB device %s:%s: %w", vendorID, productID, err)
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("USB device %s:%s not found", vendorID, productID)
	}

	dev.SetAutoDetach(true)
	cfg, err := dev.Config(1)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, err
	}

	intf, err := cfg.Interface(0, 0)
	if err != nil {
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, err
	}

	outEp, err := intf.OutEndpoint(0x01)
	if err != nil {
		intf.Close()
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, err
	}
	logInternal.Stdlog.Printf("USB device %s:%s opened", vendorID, productID)

	return New(&usbConn{ctx: ctx, dev: dev, cfg: cfg, intf: intf, out: outEp}), nil
}

func (u *usbConn) Write(p []byte) (int, error) {
	return u.out.Write(p)
}

func (u *usbConn) Drain() error { return nil }

func (u *usbConn) Close() error {
	if u.intf != nil {
		u.intf.Close()
	}
	if u.cfg != nil {
		u.cfg.Close()
	}
	if u.dev != nil {
		u.dev.Close()
	}
	if u.ctx != nil {
		u.ctx.Close()
	}
	return nil
}
