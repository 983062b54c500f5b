//go:build !linux

package device

import "errors"

var errUnsupported = errors.New("videograbber: unsupported platform")

type Device struct{}

func Open(path string) (*Device, error) {
	return nil, errUnsupported
}

func (d *Device) Setup(s Setup) error { return errUnsupported }

func (d *Device) GetFrame() (*Frame, error) { return nil, errUnsupported }

func (d *Device) Map(addr uint64, length int) ([]byte, error) { return nil, errUnsupported }

func (d *Device) Unmap(b []byte) error { return errUnsupported }

func (d *Device) Read(p []byte) (int, error) { return 0, errUnsupported }

func (d *Device) Close() error { return nil }
