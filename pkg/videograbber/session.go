package videograbber

import (
	"github.com/videograbber/grab/pkg/videograbber/device"
)

// Session is an open device handle, see device.Device.
type Session interface {
	Setup(s device.Setup) error
	GetFrame() (*device.Frame, error)
	Map(addr uint64, length int) ([]byte, error)
	Unmap(b []byte) error
	Read(p []byte) (int, error)
	Close() error
}

type Opener func(path string) (Session, error)

func Open(path string) (Session, error) {
	dev, err := device.Open(path)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// Allocator owns the client side frame buffer of the buffered path.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(b []byte)
}

const MaxFrameSize = 1 << 30

type heapAllocator struct{}

func (heapAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 || size > MaxFrameSize {
		return nil, errInvalidSize
	}
	return make([]byte, size), nil
}

func (heapAllocator) Free([]byte) {}

var HeapAllocator Allocator = heapAllocator{}
