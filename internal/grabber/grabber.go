package grabber

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/videograbber/grab/internal/app"
	"github.com/videograbber/grab/pkg/sysfs"
	"github.com/videograbber/grab/pkg/videograbber"
	"github.com/videograbber/grab/pkg/videograbber/device"
	"gopkg.in/yaml.v3"
)

func Init() {
	var cfg struct {
		Mod Config `yaml:"grabber"`
	}

	cfg.Mod = DefaultConfig()

	app.LoadConfig(&cfg)

	log = app.GetLogger("grabber")

	if b, err := yaml.Marshal(cfg.Mod); err == nil {
		log.Debug().Msgf("[grabber] config\n%s", b)
	}

	_ = Run(cfg.Mod, videograbber.Open, os.Stdout)
}

var log = zerolog.Nop()

// Report holds the result of both acquisition paths. A nil error is success.
type Report struct {
	Width  int
	Height int
	Mapped error
	Read   error
}

// Run grabs one frame with mmap and one with read. Both paths always run,
// failures are only logged and printed.
func Run(cfg Config, open videograbber.Opener, w io.Writer) Report {
	width, height, aspect := readGeometry(cfg)

	if aspect <= 0 {
		log.Warn().Int("aspect", aspect).Msg("[grabber] invalid aspect, keep source width")
	}

	corrected := videograbber.CorrectWidth(width, height, aspect)
	log.Info().Int("width", width).Int("height", height).Int("aspect", aspect).
		Int("corrected", corrected).Msg("[grabber] frame size")

	r := Report{Width: corrected, Height: height}

	mapped := &videograbber.Mapped{Path: cfg.Device, Open: open}
	r.Mapped = grab("mmap", mapped, corrected, height, cfg.Output.Mmap)
	if r.Mapped == nil {
		_, _ = fmt.Fprintf(w, "Mapping video frame into %s\n", cfg.Output.Mmap)
		printVerify(w, corrected, height)
	} else {
		_, _ = fmt.Fprintln(w, "Mapping failed")
	}

	buffered := &videograbber.Buffered{Path: cfg.Device, Open: open, Alloc: videograbber.HeapAllocator}
	r.Read = grab("read", buffered, corrected, height, cfg.Output.Read)
	if r.Read == nil {
		_, _ = fmt.Fprintf(w, "Read video frame into %s\n", cfg.Output.Read)
		printVerify(w, corrected, height)
	} else {
		_, _ = fmt.Fprintln(w, "Reading failed")
	}

	return r
}

func readGeometry(cfg Config) (width, height, aspect int) {
	d := cfg.Defaults
	width, height, aspect = d.Width, d.Height, d.Aspect

	attrs := []struct {
		path string
		base int
		out  *int
	}{
		{cfg.Sysfs.Width, 10, &width},
		{cfg.Sysfs.Height, 10, &height},
		{cfg.Sysfs.Aspect, 16, &aspect},
	}

	for _, attr := range attrs {
		if attr.path == "" {
			continue
		}
		if err := sysfs.ReadInt(attr.path, attr.base, attr.out); err != nil {
			log.Debug().Err(err).Msg("[grabber] use default")
		}
	}

	return
}

func grab(name string, g videograbber.Grabber, width, height int, path string) error {
	l := log.With().Str("path", name).Str("session", uuid.NewString()).Logger()
	l.Debug().Str("output", path).Msg("[grabber] start")

	var size int
	sink := videograbber.FileSink(path)

	err := g.Grab(width, height, func(frame []byte) error {
		size = len(frame)
		return sink(frame)
	})
	if err != nil {
		l.Error().Err(err).Msg("[grabber] grab failed")
		return err
	}

	l.Debug().Int("size", size).Msg("[grabber] frame dumped")
	return nil
}

func printVerify(w io.Writer, width, height int) {
	format, _ := device.FormatABGR8888.Format()
	_, _ = fmt.Fprintf(w, "Verify: Upload file to www.rawpixels.net, set width to %d, height to %d and predefined format to %s\n\n", width, height, format.Viewer)
}
