package astipsi

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// PSI table types
const (
	PSITableTypeBAT     = "BAT"
	PSITableTypeCAT     = "CAT"
	PSITableTypeDIT     = "DIT"
	PSITableTypeEIT     = "EIT"
	PSITableTypeNIT     = "NIT"
	PSITableTypeNull    = "Null"
	PSITableTypePAT     = "PAT"
	PSITableTypePMT     = "PMT"
	PSITableTypeRST     = "RST"
	PSITableTypeSDT     = "SDT"
	PSITableTypeSIT     = "SIT"
	PSITableTypeST      = "ST"
	PSITableTypeTDT     = "TDT"
	PSITableTypeTOT     = "TOT"
	PSITableTypeUnknown = "Unknown"
)

// PSITableTypeId is the first byte of a PSI section
type PSITableTypeId uint8

// PSI table IDs
const (
	PSITableTypeIdPAT  PSITableTypeId = 0x00
	PSITableTypeIdCAT  PSITableTypeId = 0x01
	PSITableTypeIdPMT  PSITableTypeId = 0x02
	PSITableTypeIdBAT  PSITableTypeId = 0x4a
	PSITableTypeIdDIT  PSITableTypeId = 0x7e
	PSITableTypeIdRST  PSITableTypeId = 0x71
	PSITableTypeIdSIT  PSITableTypeId = 0x7f
	PSITableTypeIdST   PSITableTypeId = 0x72
	PSITableTypeIdTDT  PSITableTypeId = 0x70
	PSITableTypeIdTOT  PSITableTypeId = 0x73
	PSITableTypeIdNull PSITableTypeId = 0xff

	PSITableTypeIdEITStart    PSITableTypeId = 0x4e
	PSITableTypeIdEITEnd      PSITableTypeId = 0x6f
	PSITableTypeIdSDTVariant1 PSITableTypeId = 0x42
	PSITableTypeIdSDTVariant2 PSITableTypeId = 0x46
	PSITableTypeIdNITVariant1 PSITableTypeId = 0x40
	PSITableTypeIdNITVariant2 PSITableTypeId = 0x41
)

// PSIData represents a PSI data
// https://en.wikipedia.org/wiki/Program-specific_information
type PSIData struct {
	PointerField int // Present at the start of the TS packet payload signaled by the payload_unit_start_indicator bit in the TS header. Used to set packet alignment bytes or content before the start of tabled payload data.
	Sections     []*PSISection
}

// PSISection represents a PSI section
type PSISection struct {
	CRC32  uint32 // A checksum of the entire table excluding the pointer field, pointer filler bytes and the trailing CRC32.
	Header *PSISectionHeader
	Syntax *PSISectionSyntax
}

// PSISectionHeader represents a PSI section header
type PSISectionHeader struct {
	PrivateBit             bool           // The PAT, PMT, and CAT all set this to 0. Other tables set this to 1.
	SectionLength          uint16         // The number of bytes that follow for the syntax section (with CRC value) and/or table data. These bytes must not exceed a value of 1021.
	SectionSyntaxIndicator bool           // A flag that indicates if the syntax section follows the section length. The PAT, PMT, and CAT all set this to 1.
	TableID                PSITableTypeId // Table Identifier, that defines the structure of the syntax section and other contained data.
	TableType              string
}

// PSISectionSyntax represents a PSI section syntax
type PSISectionSyntax struct {
	Data   *PSISectionSyntaxData
	Header *PSISectionSyntaxHeader // Not set for tables without syntax section (TDT, TOT and unknown tables)
}

// PSISectionSyntaxHeader represents a PSI section syntax header
type PSISectionSyntaxHeader struct {
	CurrentNextIndicator bool   // Indicates if data is current in effect or is for future use. If the bit is flagged on, then the data is to be used at the present moment.
	LastSectionNumber    uint8  // This indicates which table is the last table in the sequence of tables.
	SectionNumber        uint8  // This is an index indicating which table this is in a related sequence of tables. The first table starts from 0.
	TableIDExtension     uint16 // Informational only identifier. The PAT uses this for the transport stream identifier and the PMT uses this for the Program number.
	VersionNumber        uint8  // Syntax version number. Incremented when data is changed and wrapped around on overflow for values greater than 32.
}

// PSISectionSyntaxData represents a PSI section syntax data. Exactly one field is set.
type PSISectionSyntaxData struct {
	CAT     *CATData
	EIT     *EITData
	NIT     *NITData
	PAT     *PATData
	PMT     *PMTData
	SDT     *SDTData
	TDT     *TDTData
	TOT     *TOTData
	Unknown *SectionUnknown
}

// SectionUnknown represents a section whose table id is not listed. Its payload is kept as is, CRC32 included if
// any.
type SectionUnknown struct {
	Data []byte
}

type sectionDecoder func(c *Cursor) (*PSISection, error)

var sectionRegistry = [256]sectionDecoder{
	PSITableTypeIdPAT:         DecodePAT,
	PSITableTypeIdCAT:         DecodeCAT,
	PSITableTypeIdPMT:         DecodePMT,
	PSITableTypeIdNITVariant1: DecodeNIT,
	PSITableTypeIdNITVariant2: DecodeNIT,
	PSITableTypeIdSDTVariant1: DecodeSDT,
	PSITableTypeIdSDTVariant2: DecodeSDT,
	PSITableTypeIdTDT:         DecodeTDT,
	PSITableTypeIdTOT:         DecodeTOT,
}

var registeredTableIDs []PSITableTypeId

func init() {
	for id := PSITableTypeIdEITStart; id <= PSITableTypeIdEITEnd; id++ {
		sectionRegistry[id] = DecodeEIT
	}
	for id := range sectionRegistry {
		if sectionRegistry[id] != nil {
			registeredTableIDs = append(registeredTableIDs, PSITableTypeId(id))
			continue
		}
		sectionRegistry[id] = decodeSectionUnknown
	}
}

// RegisteredTableIDs returns the sorted list of table ids that don't fall back to the opaque decoder
func RegisteredTableIDs() []PSITableTypeId {
	return slices.Clone(registeredTableIDs)
}

// psiSectionHeaderFields returns the fields shared by all sections, up to the section length
func psiSectionHeaderFields(tableIDs ...PSITableTypeId) []Field {
	vs := make([]uint64, 0, len(tableIDs))
	for _, id := range tableIDs {
		vs = append(vs, uint64(id))
	}
	return []Field{
		ExpectOneOf("table_id", 8, vs...),
		Flag("section_syntax_indicator", 1),
		Flag("private_indicator", 1),
		Reserved(2),
		Fixed("section_length", 12),
	}
}

// psiSectionSyntaxHeaderFields returns the fields of the long form section header following the section length
func psiSectionSyntaxHeaderFields() []Field {
	return []Field{
		Fixed("table_id_extension", 16),
		Reserved(2),
		Fixed("version_number", 5),
		Flag("current_next_indicator", 1),
		Fixed("section_number", 8),
		Fixed("last_section_number", 8),
	}
}

// sectionRecord builds the record of a section: its header, its fields and a skip to the CRC32 or to its end
func sectionRecord(name string, f Framing, header []Field, fs ...Field) *Record {
	all := make([]Field, 0, len(header)+len(fs)+1)
	all = append(all, header...)
	all = append(all, fs...)
	all = append(all, SkipToEnd(f))
	return NewRecord(name, all...)
}

// longSectionRecord builds the record of a section having a syntax section
func longSectionRecord(name string, tableIDs []PSITableTypeId, fs ...Field) *Record {
	return sectionRecord(name, SectionFraming, append(psiSectionHeaderFields(tableIDs...), psiSectionSyntaxHeaderFields()...), fs...)
}

// decodeSection decodes r and lets fill set the typed data of the section
func decodeSection(c *Cursor, r *Record, fill func(d *PSISectionSyntaxData, b *Bindings)) (*PSISection, error) {
	return decodeRecord(c, r, func(b *Bindings) *PSISection {
		s := &PSISection{
			Header: &PSISectionHeader{
				PrivateBit:             b.Bool("private_indicator"),
				SectionLength:          uint16(b.Uint("section_length")),
				SectionSyntaxIndicator: b.Bool("section_syntax_indicator"),
				TableID:                PSITableTypeId(b.Uint("table_id")),
			},
			Syntax: &PSISectionSyntax{Data: &PSISectionSyntaxData{}},
		}
		s.Header.TableType = s.Header.TableID.String()
		if b.Has("table_id_extension") {
			s.Syntax.Header = &PSISectionSyntaxHeader{
				CurrentNextIndicator: b.Bool("current_next_indicator"),
				LastSectionNumber:    uint8(b.Uint("last_section_number")),
				SectionNumber:        uint8(b.Uint("section_number")),
				TableIDExtension:     uint16(b.Uint("table_id_extension")),
				VersionNumber:        uint8(b.Uint("version_number")),
			}
		}
		fill(s.Syntax.Data, b)
		return s
	})
}

// Unknown tables may not have a CRC32: their whole payload is kept
var sectionUnknownRecord = NewRecord("unknown section",
	Fixed("table_id", 8),
	Flag("section_syntax_indicator", 1),
	Flag("private_indicator", 1),
	Fixed("reserved", 2),
	Fixed("section_length", 12),
	Bytes("data", "section_length"),
	SkipToEnd(SectionNoCRCFraming),
)

func decodeSectionUnknown(c *Cursor) (*PSISection, error) {
	return decodeSection(c, sectionUnknownRecord, func(d *PSISectionSyntaxData, b *Bindings) {
		logger.Debugf("astipsi: unlisted table id 0x%x", b.Uint("table_id"))
		d.Unknown = &SectionUnknown{Data: b.Bytes("data")}
	})
}

// DecodeSection decodes the section at the cursor position, picking the decoder matching its table id.
// The cursor is left on the first bit of the CRC32 when the table has one.
func DecodeSection(c *Cursor) (s *PSISection, err error) {
	// Peek table id
	var id uint8
	if id, err = peekUint[uint8](c, 8); err != nil {
		err = fmt.Errorf("astipsi: peeking table id failed: %w", err)
		return
	}

	// Decode
	if s, err = sectionRegistry[id](c); err != nil {
		err = fmt.Errorf("astipsi: decoding %s section failed: %w", PSITableTypeId(id), err)
		return
	}
	return
}

// ParseOption configures ParseSection and ParsePSIData
type ParseOption func(o *parseOptions)

type parseOptions struct {
	checkCRC32 bool
}

// WithCRC32Check makes parsing fail with ErrInvalidCRC32 when a section's CRC32 doesn't match its content
func WithCRC32Check() ParseOption {
	return func(o *parseOptions) { o.checkCRC32 = true }
}

func newParseOptions(opts []ParseOption) (o parseOptions) {
	for _, opt := range opts {
		opt(&o)
	}
	return
}

// ParseSection parses a single section, CRC32 included
func ParseSection(bs []byte, opts ...ParseOption) (*PSISection, error) {
	return parsePSISection(NewCursor(bs), newParseOptions(opts))
}

// parsePSISection decodes a section and its CRC32
func parsePSISection(c *Cursor, o parseOptions) (s *PSISection, err error) {
	// Decode section
	start := c.AbsolutePosition()
	if s, err = DecodeSection(c); err != nil {
		return
	}

	// No CRC32
	if !s.Header.TableID.hasCRC32() {
		return
	}

	// Decode CRC32
	end := c.AbsolutePosition()
	if s.CRC32, err = readUint[uint32](c, 32); err != nil {
		err = fmt.Errorf("astipsi: reading CRC32 failed: %w", err)
		return
	}

	// Check CRC32
	if o.checkCRC32 {
		if crc32 := computeCRC32(c.bs[start>>3 : end>>3]); crc32 != s.CRC32 {
			err = fmt.Errorf("astipsi: table CRC32 %x != computed CRC32 %x: %w", s.CRC32, crc32, ErrInvalidCRC32)
			return
		}
	}
	return
}

// ParsePSIData parses a PSI data, as found in a TS packet payload: a pointer field, filler bytes and sections up to
// the end of the buffer or to stuffing bytes
func ParsePSIData(bs []byte, opts ...ParseOption) (d *PSIData, err error) {
	// Init
	d = &PSIData{}
	c := NewCursor(bs)
	o := newParseOptions(opts)

	// Pointer field
	var b uint8
	if b, err = readUint[uint8](c, 8); err != nil {
		err = fmt.Errorf("astipsi: reading pointer field failed: %w", err)
		return
	}
	d.PointerField = int(b)

	// Pointer filler bytes
	if err = c.Skip(int64(d.PointerField) * 8); err != nil {
		err = fmt.Errorf("astipsi: skipping pointer filler bytes failed: %w", err)
		return
	}

	// Parse sections
	for c.BitsLeft() > 0 {
		// Check whether we need to stop the parsing
		var id uint8
		if id, err = peekUint[uint8](c, 8); err != nil {
			err = fmt.Errorf("astipsi: peeking table id failed: %w", err)
			return
		}
		if PSITableTypeId(id) == PSITableTypeIdNull {
			break
		}

		// Parse section
		var s *PSISection
		if s, err = parsePSISection(c, o); err != nil {
			err = fmt.Errorf("astipsi: parsing PSI section #%d failed: %w", len(d.Sections), err)
			return
		}
		d.Sections = append(d.Sections, s)
	}
	return
}

// String returns the table type based on the table id
// Page: 28 | https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
func (t PSITableTypeId) String() string {
	switch {
	case t == PSITableTypeIdBAT:
		return PSITableTypeBAT
	case t == PSITableTypeIdCAT:
		return PSITableTypeCAT
	case t >= PSITableTypeIdEITStart && t <= PSITableTypeIdEITEnd:
		return PSITableTypeEIT
	case t == PSITableTypeIdDIT:
		return PSITableTypeDIT
	case t == PSITableTypeIdNITVariant1, t == PSITableTypeIdNITVariant2:
		return PSITableTypeNIT
	case t == PSITableTypeIdNull:
		return PSITableTypeNull
	case t == PSITableTypeIdPAT:
		return PSITableTypePAT
	case t == PSITableTypeIdPMT:
		return PSITableTypePMT
	case t == PSITableTypeIdRST:
		return PSITableTypeRST
	case t == PSITableTypeIdSDTVariant1, t == PSITableTypeIdSDTVariant2:
		return PSITableTypeSDT
	case t == PSITableTypeIdSIT:
		return PSITableTypeSIT
	case t == PSITableTypeIdST:
		return PSITableTypeST
	case t == PSITableTypeIdTDT:
		return PSITableTypeTDT
	case t == PSITableTypeIdTOT:
		return PSITableTypeTOT
	default:
		return PSITableTypeUnknown
	}
}

// hasCRC32 checks whether the table has a CRC32
func (t PSITableTypeId) hasCRC32() bool {
	return t == PSITableTypeIdPAT ||
		t == PSITableTypeIdCAT ||
		t == PSITableTypeIdPMT ||
		t == PSITableTypeIdTOT ||
		t == PSITableTypeIdNITVariant1 || t == PSITableTypeIdNITVariant2 ||
		t == PSITableTypeIdSDTVariant1 || t == PSITableTypeIdSDTVariant2 ||
		(t >= PSITableTypeIdEITStart && t <= PSITableTypeIdEITEnd)
}

// IsRegistered checks whether the table id has a dedicated decoder
func (t PSITableTypeId) IsRegistered() bool {
	_, ok := slices.BinarySearch(registeredTableIDs, t)
	return ok
}
