package astipsi

import (
	"testing"

	"github.com/asticode/go-astikit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pat = &PATData{
	Programs: []*PATProgram{
		{NetworkPID: 0x10, ProgramNumber: 0},
		{ProgramMapID: 0x100, ProgramNumber: 2},
		{ProgramMapID: 0x200, ProgramNumber: 3},
	},
	TransportStreamID: 1,
}

func patBytes() []byte {
	return sectionBytes(PSITableTypeIdPAT, true, 1, bitsBytes(func(w *astikit.BitsWriter) {
		w.Write(uint16(0))          // Program #1 number
		w.Write("111")              // Program #1 reserved bits
		w.WriteN(uint16(0x10), 13)  // Program #1 network PID
		w.Write(uint16(2))          // Program #2 number
		w.Write("111")              // Program #2 reserved bits
		w.WriteN(uint16(0x100), 13) // Program #2 map ID
		w.Write(uint16(3))          // Program #3 number
		w.Write("111")              // Program #3 reserved bits
		w.WriteN(uint16(0x200), 13) // Program #3 map ID
	}), true)
}

func TestDecodePAT(t *testing.T) {
	bs := patBytes()
	c := NewCursor(bs)
	s, err := DecodePAT(c)
	require.NoError(t, err)
	checkSectionHeader(t, s, PSITableTypeIdPAT, true, 1, bs)
	assert.Equal(t, &PSISectionSyntaxData{PAT: pat}, s.Syntax.Data)
	assert.Equal(t, int64(len(bs)-4)*8, c.Position())

	assert.True(t, s.Syntax.Data.PAT.Programs[0].IsNetworkPID())
	assert.Equal(t, uint16(0x10), s.Syntax.Data.PAT.Programs[0].PID())
	assert.False(t, s.Syntax.Data.PAT.Programs[1].IsNetworkPID())
	assert.Equal(t, uint16(0x100), s.Syntax.Data.PAT.Programs[1].PID())

	// Wrong table id
	_, err = DecodePAT(NewCursor(sectionBytes(PSITableTypeIdCAT, true, 1, nil, true)))
	assert.ErrorIs(t, err, ErrUnexpectedValue)
}

func TestDecodePATEmpty(t *testing.T) {
	bs := sectionBytes(PSITableTypeIdPAT, true, 5, nil, true)
	s, err := ParseSection(bs, WithCRC32Check())
	require.NoError(t, err)
	assert.Equal(t, &PATData{TransportStreamID: 5}, s.Syntax.Data.PAT)
}

func BenchmarkDecodePAT(b *testing.B) {
	b.ReportAllocs()
	bs := patBytes()
	for i := 0; i < b.N; i++ {
		DecodePAT(NewCursor(bs)) //nolint:errcheck
	}
}
