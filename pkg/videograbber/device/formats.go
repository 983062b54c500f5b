package device

type PixelFormat int32

const (
	FormatRGB888 PixelFormat = iota
	FormatBGR888
	FormatABGR8888
)

type Format struct {
	Value         PixelFormat
	Name          string
	BytesPerPixel int
	Viewer        string // rawpixels.net predefined format
}

var Formats = []Format{
	{FormatRGB888, "RGB888", 3, "RGB24"},
	{FormatBGR888, "BGR888", 3, "BGR24"},
	{FormatABGR8888, "ABGR8888", 4, "RGB32"},
}

func (f PixelFormat) Format() (Format, bool) {
	for _, format := range Formats {
		if format.Value == f {
			return format, true
		}
	}
	return Format{}, false
}

func (f PixelFormat) String() string {
	if format, ok := f.Format(); ok {
		return format.Name
	}
	return "unknown"
}

func (f PixelFormat) BytesPerPixel() int {
	format, _ := f.Format()
	return format.BytesPerPixel
}
