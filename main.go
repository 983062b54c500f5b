package main

import (
	"github.com/videograbber/grab/internal/app"
	"github.com/videograbber/grab/internal/grabber"
)

func main() {
	app.Init()     // init config and logs
	grabber.Init() // grab one frame with mmap and one with read

	// exit status is always zero, failures are reported on stdout and in logs
}
