package astipsi

import (
	"testing"

	"github.com/asticode/go-astikit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nit = &NITData{
	NetworkDescriptors: []*Descriptor{{
		Length:      4,
		NetworkName: &DescriptorNetworkName{Name: "name"},
		Tag:         DescriptorTagNetworkName,
	}},
	NetworkID: 2,
	TransportStreams: []*NITDataTransportStream{
		{
			OriginalNetworkID: 3,
			TransportDescriptors: []*Descriptor{{
				Length:  3,
				Tag:     0x41,
				Unknown: &DescriptorUnknown{Data: []byte{0x0, 0x1, 0x1}},
			}},
			TransportStreamID: 4,
		},
		{
			OriginalNetworkID: 5,
			TransportStreamID: 6,
		},
	},
}

func nitBytes(tableID PSITableTypeId) []byte {
	return sectionBytes(tableID, true, 2, bitsBytes(func(w *astikit.BitsWriter) {
		w.Write("1111")                               // Reserved
		w.WriteN(uint16(6), 12)                       // Network descriptors length
		w.Write(uint8(DescriptorTagNetworkName))      // Network descriptor tag
		w.Write(uint8(4))                             // Network descriptor length
		w.Write([]byte("name"))                       // Network name
		w.Write("1111")                               // Reserved
		w.WriteN(uint16(17), 12)                      // Transport stream loop length
		w.Write(uint16(4))                            // Transport stream #1 ID
		w.Write(uint16(3))                            // Transport stream #1 original network ID
		w.Write("1111")                               // Transport stream #1 reserved
		w.WriteN(uint16(5), 12)                       // Transport stream #1 descriptors length
		w.Write([]byte{0x41, 0x03, 0x00, 0x01, 0x01}) // Transport stream #1 service list descriptor
		w.Write(uint16(6))                            // Transport stream #2 ID
		w.Write(uint16(5))                            // Transport stream #2 original network ID
		w.Write("1111")                               // Transport stream #2 reserved
		w.WriteN(uint16(0), 12)                       // Transport stream #2 descriptors length
	}), true)
}

func TestDecodeNIT(t *testing.T) {
	for _, id := range []PSITableTypeId{PSITableTypeIdNITVariant1, PSITableTypeIdNITVariant2} {
		bs := nitBytes(id)
		s, err := ParseSection(bs, WithCRC32Check())
		require.NoError(t, err)
		checkSectionHeader(t, s, id, true, 2, bs)
		assert.Equal(t, &PSISectionSyntaxData{NIT: nit}, s.Syntax.Data)
	}
}
