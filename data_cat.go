package astipsi

// CATData represents a CAT data
// Chapter: 2.4.4.6 | Link: ISO/IEC 13818-1
type CATData struct {
	Descriptors []*Descriptor
}

var catRecord = longSectionRecord("CAT section", []PSITableTypeId{PSITableTypeIdCAT},
	Repeated("descriptors", DecodeDescriptor, UntilEnd(SectionFraming)),
)

// DecodeCAT decodes a CAT section and leaves the cursor on the first bit of its CRC32
func DecodeCAT(c *Cursor) (*PSISection, error) {
	return decodeSection(c, catRecord, func(d *PSISectionSyntaxData, b *Bindings) {
		d.CAT = &CATData{Descriptors: Bound[[]*Descriptor](b, "descriptors")}
	})
}
