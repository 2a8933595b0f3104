package astipsi

const (
	crc32Init       = uint32(0xffffffff)
	crc32Polynomial = uint32(0x04c11db7)
)

// MPEG-2 CRC32 is the non reflected CRC32 with no final xor, which hash/crc32 doesn't provide
// https://github.com/videolan/vlc/blob/master/modules/mux/mpeg/ps.c
var tableCRC32 = func() (t [256]uint32) {
	for i := range t {
		c := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if c&0x80000000 != 0 {
				c = c<<1 ^ crc32Polynomial
			} else {
				c <<= 1
			}
		}
		t[i] = c
	}
	return
}()

func computeCRC32(bs []byte) uint32 {
	return updateCRC32(crc32Init, bs)
}

func updateCRC32(crc uint32, bs []byte) uint32 {
	for _, b := range bs {
		crc = crc<<8 ^ tableCRC32[(crc>>24^uint32(b))&0xff]
	}
	return crc
}
