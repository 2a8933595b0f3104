package astipsi

// PATData represents a PAT data
// https://en.wikipedia.org/wiki/Program-specific_information
type PATData struct {
	Programs          []*PATProgram
	TransportStreamID uint16
}

// PATProgram represents a PAT program. A program number of 0 makes it a network PID association.
type PATProgram struct {
	NetworkPID    uint16 // The packet identifier that contains the NIT. Only set when ProgramNumber is 0.
	ProgramMapID  uint16 // The packet identifier that contains the associated PMT. Only set when ProgramNumber is not 0.
	ProgramNumber uint16 // Relates to the Table ID extension in the associated PMT. A value of 0 is reserved for a NIT packet identifier.
}

// IsNetworkPID checks whether the program holds the NIT packet identifier
func (p PATProgram) IsNetworkPID() bool {
	return p.ProgramNumber == 0
}

// PID returns the packet identifier of the association, whatever its form
func (p PATProgram) PID() uint16 {
	if p.IsNetworkPID() {
		return p.NetworkPID
	}
	return p.ProgramMapID
}

var patProgramRecord = NewRecord("PAT program",
	Fixed("program_number", 16),
	Reserved(3),
	Fixed("pid", 13),
)

func newPATProgram(c *Cursor) (*PATProgram, error) {
	return decodeRecord(c, patProgramRecord, func(b *Bindings) *PATProgram {
		p := &PATProgram{ProgramNumber: uint16(b.Uint("program_number"))}
		if p.IsNetworkPID() {
			p.NetworkPID = uint16(b.Uint("pid"))
		} else {
			p.ProgramMapID = uint16(b.Uint("pid"))
		}
		return p
	})
}

var patRecord = longSectionRecord("PAT section", []PSITableTypeId{PSITableTypeIdPAT},
	RepeatedFixed("programs", 32, newPATProgram, UntilEnd(SectionFraming)),
)

// DecodePAT decodes a PAT section and leaves the cursor on the first bit of its CRC32
func DecodePAT(c *Cursor) (*PSISection, error) {
	return decodeSection(c, patRecord, func(d *PSISectionSyntaxData, b *Bindings) {
		d.PAT = &PATData{
			Programs:          Bound[[]*PATProgram](b, "programs"),
			TransportStreamID: uint16(b.Uint("table_id_extension")),
		}
	})
}
