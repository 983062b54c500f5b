package device

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	require.Equal(t, 16, int(unsafe.Sizeof(videograbber_setup_t{})))

	switch runtime.GOARCH {
	case "amd64", "arm64":
		require.Equal(t, 64, int(unsafe.Sizeof(videograbber_vframe_t{})))
		require.Equal(t, uintptr(0x80404401), VIDEOGRABBER_IOC_GET_FRAME)
	case "386", "arm":
		require.Equal(t, 48, int(unsafe.Sizeof(videograbber_vframe_t{})))
		require.Equal(t, uintptr(0x80304401), VIDEOGRABBER_IOC_GET_FRAME)
	}

	require.Equal(t, uintptr(0x40104400), VIDEOGRABBER_IOC_SETUP)
}

func TestSetup(t *testing.T) {
	v := newSetup(&Setup{Width: 1280, Height: 720, Stride: StrideAuto, Format: FormatABGR8888})
	require.Equal(t, videograbber_setup_t{1280, 720, -1, 2}, v)
}

func TestFrame(t *testing.T) {
	v := videograbber_vframe_t{
		canvas_phys_addr: [3]uint{0x7f000000, 0, 0},
		width:            [3]int32{1280, 0, 0},
		stride:           [3]int32{5120, 0, 0},
		height:           [3]int32{720, 0, 0},
	}
	f := v.frame()
	require.Equal(t, Plane{Addr: 0x7f000000, Width: 1280, Stride: 5120, Height: 720}, f.Planes[0])
	require.Equal(t, 5120*720, f.Planes[0].Size())
	require.Equal(t, Plane{}, f.Planes[1])
}

func TestFormats(t *testing.T) {
	require.Equal(t, "ABGR8888", FormatABGR8888.String())
	require.Equal(t, 4, FormatABGR8888.BytesPerPixel())
	require.Equal(t, 3, FormatRGB888.BytesPerPixel())
	require.Equal(t, "unknown", PixelFormat(7).String())

	format, ok := FormatABGR8888.Format()
	require.True(t, ok)
	require.Equal(t, "RGB32", format.Viewer)
}
