package astipsi

// NITData represents a NIT data
// Page: 29 | Chapter: 5.2.1 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type NITData struct {
	NetworkDescriptors []*Descriptor
	NetworkID          uint16
	TransportStreams   []*NITDataTransportStream
}

// NITDataTransportStream represents a NIT data transport stream
type NITDataTransportStream struct {
	OriginalNetworkID    uint16
	TransportDescriptors []*Descriptor
	TransportStreamID    uint16
}

var nitTransportStreamRecord = NewRecord("NIT transport stream",
	Fixed("transport_stream_id", 16),
	Fixed("original_network_id", 16),
	Reserved(4),
	Fixed("transport_descriptors_length", 12),
	Repeated("transport_descriptors", DecodeDescriptor, ForLength("transport_descriptors_length")),
)

func newNITDataTransportStream(c *Cursor) (*NITDataTransportStream, error) {
	return decodeRecord(c, nitTransportStreamRecord, func(b *Bindings) *NITDataTransportStream {
		return &NITDataTransportStream{
			OriginalNetworkID:    uint16(b.Uint("original_network_id")),
			TransportDescriptors: Bound[[]*Descriptor](b, "transport_descriptors"),
			TransportStreamID:    uint16(b.Uint("transport_stream_id")),
		}
	})
}

var nitRecord = longSectionRecord("NIT section", []PSITableTypeId{PSITableTypeIdNITVariant1, PSITableTypeIdNITVariant2},
	Reserved(4),
	Fixed("network_descriptors_length", 12),
	Repeated("network_descriptors", DecodeDescriptor, ForLength("network_descriptors_length")),
	Reserved(4),
	Fixed("transport_stream_loop_length", 12),
	Repeated("transport_streams", newNITDataTransportStream, ForLength("transport_stream_loop_length")),
)

// DecodeNIT decodes a NIT section, for the actual or for another network, and leaves the cursor on the first bit of
// its CRC32
func DecodeNIT(c *Cursor) (*PSISection, error) {
	return decodeSection(c, nitRecord, func(d *PSISectionSyntaxData, b *Bindings) {
		d.NIT = &NITData{
			NetworkDescriptors: Bound[[]*Descriptor](b, "network_descriptors"),
			NetworkID:          uint16(b.Uint("table_id_extension")),
			TransportStreams:   Bound[[]*NITDataTransportStream](b, "transport_streams"),
		}
	})
}
