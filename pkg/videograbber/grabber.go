package videograbber

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/videograbber/grab/pkg/videograbber/device"
)

// Sink receives the whole frame. The slice is only valid during the call.
type Sink func(frame []byte) error

// Grabber acquires a single ABGR8888 frame of the given size.
type Grabber interface {
	Grab(width, height int, sink Sink) error
}

const format = device.FormatABGR8888

var (
	errInvalidSize = errors.New("invalid frame size")
	errOutOfRange  = errors.New("value out of int32 range")
)

// Mapped maps the driver frame buffer directly, no copy is made.
// Each Grab is a separate session: open, setup, get frame, mmap, sink, unmap, close.
type Mapped struct {
	Path string
	Open Opener
}

func NewMapped(path string) *Mapped {
	return &Mapped{Path: path, Open: Open}
}

func (m *Mapped) Grab(width, height int, sink Sink) error {
	ses, err := m.Open(m.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer ses.Close()

	stride := int64(width) * int64(format.BytesPerPixel())
	if !fitsInt32(int64(width)) || !fitsInt32(int64(height)) || !fitsInt32(stride) {
		return fmt.Errorf("%w: %w: %dx%d", ErrSetup, errOutOfRange, width, height)
	}

	setup := device.Setup{
		Width:  width,
		Height: height,
		Stride: int(stride),
		Format: format,
	}
	if err = ses.Setup(setup); err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}

	frame, err := ses.GetFrame()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGetFrame, err)
	}

	plane := frame.Planes[0]
	if plane.Stride <= 0 || plane.Height <= 0 {
		return fmt.Errorf("%w: stride=%d height=%d", ErrMap, plane.Stride, plane.Height)
	}

	src, err := ses.Map(plane.Addr, plane.Size())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMap, err)
	}
	defer ses.Unmap(src)

	return sink(src)
}

// Buffered copies the frame into a client owned buffer with one blocking read.
type Buffered struct {
	Path  string
	Open  Opener
	Alloc Allocator
}

func NewBuffered(path string) *Buffered {
	return &Buffered{Path: path, Open: Open, Alloc: HeapAllocator}
}

func (b *Buffered) Grab(width, height int, sink Sink) error {
	ses, err := b.Open(b.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer ses.Close()

	if !fitsInt32(int64(width)) || !fitsInt32(int64(height)) {
		return fmt.Errorf("%w: %w: %dx%d", ErrSetup, errOutOfRange, width, height)
	}

	setup := device.Setup{
		Width:  width,
		Height: height,
		Stride: device.StrideAuto,
		Format: format,
	}
	if err = ses.Setup(setup); err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}

	size, err := frameSize(width, height)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAlloc, err)
	}

	buf, err := b.Alloc.Alloc(size)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAlloc, err)
	}
	defer b.Alloc.Free(buf)

	n, err := ses.Read(buf)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	if n != size {
		return fmt.Errorf("%w: %w (%d of %d bytes)", ErrRead, io.ErrUnexpectedEOF, n, size)
	}

	return sink(buf)
}

// setup fields are C int on the driver side
func fitsInt32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func frameSize(width, height int) (int, error) {
	bpp := format.BytesPerPixel()
	if width <= 0 || height <= 0 || width > MaxFrameSize/bpp/height {
		return 0, errInvalidSize
	}
	return bpp * width * height, nil
}

// FileSink writes the frame verbatim to a raw file.
func FileSink(path string) Sink {
	return func(frame []byte) error {
		if err := os.WriteFile(path, frame, 0644); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		return nil
	}
}
