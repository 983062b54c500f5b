package grabber

import (
	"github.com/videograbber/grab/pkg/videograbber/device"
)

type Config struct {
	Device   string   `yaml:"device"`
	Sysfs    Sysfs    `yaml:"sysfs"`
	Output   Output   `yaml:"output"`
	Defaults Defaults `yaml:"defaults"`
}

type Sysfs struct {
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
	Aspect string `yaml:"aspect"` // hex
}

type Output struct {
	Mmap string `yaml:"mmap"`
	Read string `yaml:"read"`
}

// Defaults are used for every value that can't be read from sysfs.
type Defaults struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Aspect int `yaml:"aspect"` // 256*height/width, 0x90 is 16:9
}

func DefaultConfig() Config {
	return Config{
		Device: device.DefaultPath,
		Sysfs: Sysfs{
			Width:  "/sys/class/video/frame_width",
			Height: "/sys/class/video/frame_height",
			Aspect: "/sys/class/video/frame_aspect_ratio",
		},
		Output: Output{
			Mmap: "/tmp/dump1.abgr8888",
			Read: "/tmp/dump2.abgr8888",
		},
		Defaults: Defaults{
			Width:  1280,
			Height: 720,
			Aspect: 0x90,
		},
	}
}
