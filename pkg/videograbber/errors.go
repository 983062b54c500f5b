package videograbber

import "errors"

var (
	ErrOpen     = errors.New("videograbber: failed to open device")
	ErrSetup    = errors.New("videograbber: can't setup videograbber")
	ErrGetFrame = errors.New("videograbber: can't get current frame")
	ErrMap      = errors.New("videograbber: error while mapping src buffer")
	ErrAlloc    = errors.New("videograbber: failed to alloc framebuffer")
	ErrRead     = errors.New("videograbber: error while read")
	ErrOutput   = errors.New("videograbber: can't write output file")
)
