package astipsi

import (
	"testing"
	"time"

	"github.com/asticode/go-astikit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTDT(t *testing.T) {
	bs := sectionBytes(PSITableTypeIdTDT, false, 0, dvbTimeBytes, false)
	c := NewCursor(bs)
	s, err := parsePSISection(c, parseOptions{checkCRC32: true})
	require.NoError(t, err)
	checkSectionHeader(t, s, PSITableTypeIdTDT, false, 0, bs)
	assert.Equal(t, &PSISectionSyntaxData{TDT: &TDTData{UTCTime: dvbTime}}, s.Syntax.Data)
	assert.Equal(t, int64(len(bs)*8), c.Position())

	// Truncated UTC time
	_, err = ParseSection(sectionBytes(PSITableTypeIdTDT, false, 0, dvbTimeBytes[:3], false))
	assert.ErrorIs(t, err, ErrOutOfData)
}

func TestDecodeTOT(t *testing.T) {
	bs := sectionBytes(PSITableTypeIdTOT, false, 0, bitsBytes(func(w *astikit.BitsWriter) {
		w.Write(dvbTimeBytes)                        // UTC time
		w.Write("1111")                              // Reserved
		w.WriteN(uint16(15), 12)                     // Descriptors loop length
		w.Write(uint8(DescriptorTagLocalTimeOffset)) // Descriptor tag
		w.Write(uint8(13))                           // Descriptor length
		w.Write([]byte("fra"))                       // Country code
		w.Write("000001")                            // Country region ID
		w.Write("1")                                 // Reserved
		w.Write("0")                                 // Local time offset polarity
		w.Write([]byte{0x01, 0x00})                  // Local time offset
		w.Write(dvbTimeBytes)                        // Time of change
		w.Write([]byte{0x02, 0x00})                  // Next time offset
	}), true)
	s, err := ParseSection(bs, WithCRC32Check())
	require.NoError(t, err)
	checkSectionHeader(t, s, PSITableTypeIdTOT, false, 0, bs)
	assert.Equal(t, &PSISectionSyntaxData{TOT: &TOTData{
		Descriptors: []*Descriptor{{
			Length: 13,
			LocalTimeOffset: &DescriptorLocalTimeOffset{Items: []*DescriptorLocalTimeOffsetItem{{
				CountryCode:     "fra",
				CountryRegionID: 1,
				LocalTimeOffset: time.Hour,
				NextTimeOffset:  2 * time.Hour,
				TimeOfChange:    dvbTime,
			}}},
			Tag: DescriptorTagLocalTimeOffset,
		}},
		UTCTime: dvbTime,
	}}, s.Syntax.Data)
}
