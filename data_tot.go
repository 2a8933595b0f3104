package astipsi

import "time"

// TDTData represents a TDT data
// Page: 39 | Chapter: 5.2.5 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type TDTData struct {
	UTCTime time.Time
}

var tdtRecord = sectionRecord("TDT section", SectionNoCRCFraming, psiSectionHeaderFields(PSITableTypeIdTDT),
	DVBTime("utc_time"),
)

// DecodeTDT decodes a TDT section. TDT sections have no CRC32.
func DecodeTDT(c *Cursor) (*PSISection, error) {
	return decodeSection(c, tdtRecord, func(d *PSISectionSyntaxData, b *Bindings) {
		d.TDT = &TDTData{UTCTime: Bound[time.Time](b, "utc_time")}
	})
}

// TOTData represents a TOT data
// Page: 39 | Chapter: 5.2.6 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type TOTData struct {
	Descriptors []*Descriptor
	UTCTime     time.Time
}

var totRecord = sectionRecord("TOT section", SectionFraming, psiSectionHeaderFields(PSITableTypeIdTOT),
	DVBTime("utc_time"),
	Reserved(4),
	Fixed("descriptors_loop_length", 12),
	Repeated("descriptors", DecodeDescriptor, ForLength("descriptors_loop_length")),
)

// DecodeTOT decodes a TOT section and leaves the cursor on the first bit of its CRC32
func DecodeTOT(c *Cursor) (*PSISection, error) {
	return decodeSection(c, totRecord, func(d *PSISectionSyntaxData, b *Bindings) {
		d.TOT = &TOTData{
			Descriptors: Bound[[]*Descriptor](b, "descriptors"),
			UTCTime:     Bound[time.Time](b, "utc_time"),
		}
	})
}
