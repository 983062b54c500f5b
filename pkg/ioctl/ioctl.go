package ioctl

// request direction bits for asm-generic (x86, arm, arm64, riscv)
const (
	write = 1
	read  = 2
)

func io(mode byte, type_ byte, number byte, size uint16) uintptr {
	return uintptr(mode)<<30 | uintptr(size&0x3FFF)<<16 | uintptr(type_)<<8 | uintptr(number)
}

func IOR(type_ byte, number byte, size uintptr) uintptr {
	return io(read, type_, number, uint16(size))
}

func IOW(type_ byte, number byte, size uintptr) uintptr {
	return io(write, type_, number, uint16(size))
}
