// Package sysfs reads single integer attributes like /sys/class/video/frame_width.
package sysfs

import (
	"errors"
	"io"
	"os"
	"strconv"
)

var ErrBase = errors.New("sysfs: unsupported base")

// sysfs attributes never exceed one page
const pageSize = 4096

// ReadInt parses the first integer from the file at path like scanf with
// %d (base 10) or %x (base 16) does. Errors are returned only when the
// file can't be opened or base is unsupported. When the content has no
// number, nil is returned and out keeps its previous value.
func ReadInt(path string, base int, out *int) error {
	if base != 10 && base != 16 {
		return ErrBase
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := io.ReadAll(io.LimitReader(f, pageSize))
	if err != nil {
		return nil
	}

	if i, ok := ParseInt(b, base); ok {
		*out = i
	}

	return nil
}

// ParseInt scans an integer the way scanf does: skip leading spaces,
// optional sign, optional 0x for base 16, the longest run of digits.
func ParseInt(b []byte, base int) (int, bool) {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}

	start := i
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	sign := string(b[start:i])

	if base == 16 && i+1 < len(b) && b[i] == '0' && (b[i+1] == 'x' || b[i+1] == 'X') {
		if i+2 < len(b) && isDigit(b[i+2], base) {
			i += 2
		} else {
			// "0x" without digits reads as zero
			return 0, true
		}
	}

	j := i
	for j < len(b) && isDigit(b[j], base) {
		j++
	}
	if j == i {
		return 0, false
	}

	v, err := strconv.ParseInt(sign+string(b[i:j]), base, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte, base int) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case base == 16 && 'a' <= c && c <= 'f', base == 16 && 'A' <= c && c <= 'F':
		return true
	}
	return false
}
