package bitops

func Bswap16(x uint16) uint16 {
	return x>>8 | x<<8
}

func Bswap32(x uint32) uint32 {
	return x<<24 | (x<<8)&0x00FF0000 | (x>>8)&0x0000FF00 | x>>24
}

func Bswap64(x uint64) uint64 {
	x = (x&0x00000000FFFFFFFF)<<32 | (x&0xFFFFFFFF00000000)>>32
	x = (x&0x0000FFFF0000FFFF)<<16 | (x&0xFFFF0000FFFF0000)>>16
	x = (x&0x00FF00FF00FF00FF)<<8 | (x&0xFF00FF00FF00FF00)>>8
	return x
}
