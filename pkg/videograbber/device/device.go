//go:build linux

package device

import (
	"unsafe"

	"github.com/videograbber/grab/pkg/ioctl"
	"golang.org/x/sys/unix"
)

// Device is one open session on the grabber. It is owned by a single caller.
type Device struct {
	fd int
}

func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	return &Device{fd: fd}, nil
}

func (d *Device) Setup(s Setup) error {
	v := newSetup(&s)
	return ioctl.Ioctl(d.fd, VIDEOGRABBER_IOC_SETUP, unsafe.Pointer(&v))
}

func (d *Device) GetFrame() (*Frame, error) {
	var v videograbber_vframe_t
	if err := ioctl.Ioctl(d.fd, VIDEOGRABBER_IOC_GET_FRAME, unsafe.Pointer(&v)); err != nil {
		return nil, err
	}
	return v.frame(), nil
}

// Map maps length bytes of device memory at the physical address addr.
// The mapping is valid until Unmap or Close.
func (d *Device) Map(addr uint64, length int) ([]byte, error) {
	return unix.Mmap(d.fd, int64(addr), length, unix.PROT_READ, unix.MAP_SHARED)
}

func (d *Device) Unmap(b []byte) error {
	return unix.Munmap(b)
}

// Read blocks until the driver returns pixel data for the last Setup.
func (d *Device) Read(p []byte) (int, error) {
	n, err := unix.Read(d.fd, p)
	if n < 0 {
		n = 0
	}
	return n, err
}

func (d *Device) Close() error {
	if d.fd < 0 {
		return unix.EBADF
	}
	fd := d.fd
	d.fd = -1
	return unix.Close(fd)
}
