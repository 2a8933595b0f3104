package astipsi

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	testDataPat = []byte{0x00, 0xb0, 0x0d, 0x00, 0x01, 0xe1, 0x00, 0x00, 0x00, 0x01, 0xf0, 0x00, 0xe2, 0x95, 0xf6, 0x9d}
	testDataPmt = []byte{0x02, 0xb0, 0x1d, 0x00, 0x01, 0xf5, 0x00, 0x00, 0xe1, 0x00, 0xf0, 0x00, 0x1b, 0xe1, 0x00, 0x00,
		0x00, 0x0f, 0xe1, 0x04, 0x00, 0x06, 0x0a, 0x04, 0x72, 0x75, 0x73, 0x00, 0x38, 0x92, 0x85, 0xac}
)

var crc32Tests = []struct {
	name string
	crc  uint32
	data []byte
}{
	{
		name: "PAT",
		crc:  binary.BigEndian.Uint32(testDataPat[len(testDataPat)-4:]),
		data: testDataPat[:len(testDataPat)-4],
	}, {
		name: "PMT",
		crc:  binary.BigEndian.Uint32(testDataPmt[len(testDataPmt)-4:]),
		data: testDataPmt[:len(testDataPmt)-4],
	},
}

func BenchmarkComputeCRC32(b *testing.B) {
	for _, test := range crc32Tests {
		b.Run(test.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				computeCRC32(test.data)
			}
		})
	}
}

func TestComputeCRC32(t *testing.T) {
	for _, test := range crc32Tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.crc, computeCRC32(test.data))
		})
	}

	// A section followed by its CRC32 sums to 0
	assert.Equal(t, uint32(0), computeCRC32(testDataPat))
	assert.Equal(t, uint32(0x04c11db7), tableCRC32[1])
}
