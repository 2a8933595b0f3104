package astipsi

// Framing describes how a length-prefixed record is laid out: how many bits precede the first byte counted by its
// length field and how many bits at the end of the counted bytes belong to a trailer (the section CRC32).
// Positions are measured from the record's first bit.
type Framing struct {
	HeaderBits  int64
	LengthField string
	TrailerBits int64
}

// Framings
var (
	// table_id (8) + section_syntax_indicator (1) + private_indicator (1) + reserved (2) + section_length (12)
	SectionFraming      = Framing{HeaderBits: 24, LengthField: "section_length", TrailerBits: 32}
	SectionNoCRCFraming = Framing{HeaderBits: 24, LengthField: "section_length"}
	// descriptor_tag (8) + descriptor_length (8)
	DescriptorFraming = Framing{HeaderBits: 16, LengthField: "descriptor_length"}
)

// End returns the position of the first trailer bit, or of the first bit after the record when there's no trailer
func (f Framing) End(length uint64) int64 {
	return f.HeaderBits + int64(length)*8 - f.TrailerBits
}

// BitsRemaining returns the number of bits left between position and End. It is negative once position went past
// End.
func (f Framing) BitsRemaining(length uint64, position int64) int64 {
	return f.End(length) - position
}

// Size returns the total size in bits of a record whose length field holds length
func (f Framing) Size(length uint64) int64 {
	return f.HeaderBits + int64(length)*8
}
