package astipsi

// Stream types
const (
	StreamTypeMPEG1Video                 = 0x01 // ISO/IEC 11172-2
	StreamTypeMPEG2Video                 = 0x02 // ISO/IEC 13818-2
	StreamTypeMPEG1Audio                 = 0x03 // ISO/IEC 11172-3
	StreamTypeMPEG2HalvedSampleRateAudio = 0x04 // ISO/IEC 13818-3
	StreamTypeMPEG2PacketizedData        = 0x06 // ITU-T Rec. H.222 and ISO/IEC 13818-1 i.e., DVB subtitles/VBI and AC-3
	StreamTypeADTS                       = 0x0f // ISO/IEC 13818-7
	StreamTypeLowerBitrateVideo          = 0x1b // ITU-T Rec. H.264 and ISO/IEC 14496-10
	StreamTypeH265Video                  = 0x24 // ITU-T Rec. H.265 and ISO/IEC 23008-2
)

// PMTData represents a PMT data
// https://en.wikipedia.org/wiki/Program-specific_information
type PMTData struct {
	ElementaryStreams  []*PMTElementaryStream
	PCRPID             uint16        // The packet identifier that contains the program clock reference used to improve the random access accuracy of the stream's timing that is derived from the program timestamp. If this is unused. then it is set to 0x1FFF (all bits on).
	ProgramDescriptors []*Descriptor // Program descriptors
	ProgramNumber      uint16
}

// PMTElementaryStream represents a PMT elementary stream
type PMTElementaryStream struct {
	ElementaryPID               uint16        // The packet identifier that contains the stream type data.
	ElementaryStreamDescriptors []*Descriptor // Elementary stream descriptors
	StreamType                  uint8         // This defines the structure of the data contained within the elementary packet identifier.
}

var pmtElementaryStreamRecord = NewRecord("PMT elementary stream",
	Fixed("stream_type", 8),
	Reserved(3),
	Fixed("elementary_pid", 13),
	Reserved(4),
	Fixed("es_info_length", 12),
	Repeated("descriptors", DecodeDescriptor, ForLength("es_info_length")),
)

func newPMTElementaryStream(c *Cursor) (*PMTElementaryStream, error) {
	return decodeRecord(c, pmtElementaryStreamRecord, func(b *Bindings) *PMTElementaryStream {
		return &PMTElementaryStream{
			ElementaryPID:               uint16(b.Uint("elementary_pid")),
			ElementaryStreamDescriptors: Bound[[]*Descriptor](b, "descriptors"),
			StreamType:                  uint8(b.Uint("stream_type")),
		}
	})
}

var pmtRecord = longSectionRecord("PMT section", []PSITableTypeId{PSITableTypeIdPMT},
	Reserved(3),
	Fixed("pcr_pid", 13),
	Reserved(4),
	Fixed("program_info_length", 12),
	Repeated("program_descriptors", DecodeDescriptor, ForLength("program_info_length")),
	Repeated("elementary_streams", newPMTElementaryStream, UntilEnd(SectionFraming)),
)

// DecodePMT decodes a PMT section and leaves the cursor on the first bit of its CRC32
func DecodePMT(c *Cursor) (*PSISection, error) {
	return decodeSection(c, pmtRecord, func(d *PSISectionSyntaxData, b *Bindings) {
		d.PMT = &PMTData{
			ElementaryStreams:  Bound[[]*PMTElementaryStream](b, "elementary_streams"),
			PCRPID:             uint16(b.Uint("pcr_pid")),
			ProgramDescriptors: Bound[[]*Descriptor](b, "program_descriptors"),
			ProgramNumber:      uint16(b.Uint("table_id_extension")),
		}
	})
}
