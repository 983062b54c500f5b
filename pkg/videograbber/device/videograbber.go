package device

import (
	"unsafe"

	"github.com/videograbber/grab/pkg/ioctl"
)

const DefaultPath = "/dev/videograbber"

const iocMagic = 'D'

var (
	VIDEOGRABBER_IOC_SETUP     = ioctl.IOW(iocMagic, 0x00, unsafe.Sizeof(videograbber_setup_t{}))
	VIDEOGRABBER_IOC_GET_FRAME = ioctl.IOR(iocMagic, 0x01, unsafe.Sizeof(videograbber_vframe_t{}))
)

// StrideAuto lets the driver pick bytes per line.
const StrideAuto = -1

const MaxPlanes = 3

// Setup is sent once per session before any frame is fetched.
type Setup struct {
	Width  int
	Height int
	Stride int
	Format PixelFormat
}

type Plane struct {
	Addr   uint64 // physical address, used as mmap offset
	Width  int
	Stride int
	Height int
}

// Size is the mapping length of the plane in bytes.
func (p Plane) Size() int {
	return p.Stride * p.Height
}

// Frame describes the last captured frame. The driver overwrites it on every
// get frame call, so a Frame must not be reused after the next call.
type Frame struct {
	Planes [MaxPlanes]Plane
}

type videograbber_setup_t struct { // size 16
	out_width  int32 // offset 0, size 4
	out_height int32 // offset 4, size 4
	out_stride int32 // offset 8, size 4
	out_format int32 // offset 12, size 4
}

// unsigned long follows the Go uint size on linux (LP64 and ILP32)
type videograbber_vframe_t struct { // size 64 (48 on 32-bit)
	canvas_phys_addr [MaxPlanes]uint  // offset 0, size 24 (12)
	width            [MaxPlanes]int32 // offset 24 (12), size 12
	stride           [MaxPlanes]int32 // offset 36 (24), size 12
	height           [MaxPlanes]int32 // offset 48 (36), size 12
}

func newSetup(s *Setup) videograbber_setup_t {
	return videograbber_setup_t{
		out_width:  int32(s.Width),
		out_height: int32(s.Height),
		out_stride: int32(s.Stride),
		out_format: int32(s.Format),
	}
}

func (v *videograbber_vframe_t) frame() *Frame {
	f := &Frame{}
	for i := range f.Planes {
		f.Planes[i] = Plane{
			Addr:   uint64(v.canvas_phys_addr[i]),
			Width:  int(v.width[i]),
			Stride: int(v.stride[i]),
			Height: int(v.height[i]),
		}
	}
	return f
}
