package videograbber

// Aspect returns the base-256 fixed point ratio 256*height/width.
func Aspect(width, height int) int {
	if width <= 0 {
		return 0
	}
	return 256 * height / width
}

// CorrectWidth returns the width that gives the source height the target
// aspect (256*height/width). Non-positive width or aspect keep width as is.
func CorrectWidth(width, height, aspect int) int {
	if width <= 0 || aspect <= 0 {
		return width
	}
	if Aspect(width, height) == aspect {
		return width
	}
	return 256 * height / aspect
}
