package astipsi

// Running statuses.
const (
	RunningStatusNotRunning          = 1
	RunningStatusPausing             = 3
	RunningStatusRunning             = 4
	RunningStatusServiceOffAir       = 5
	RunningStatusStartsInAFewSeconds = 2
	RunningStatusUndefined           = 0
)

// SDTData represents an SDT data.
// Page: 33 | Chapter: 5.2.3 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type SDTData struct {
	OriginalNetworkID uint16
	Services          []*SDTDataService
	TransportStreamID uint16
}

// SDTDataService represents an SDT data service.
type SDTDataService struct {
	Descriptors []*Descriptor

	// When true indicates that EIT present/following
	// information for the service is present in the current TS.
	HasEITPresentFollowing bool

	// When true indicates that EIT schedule information
	// for the service is present in the current TS.
	HasEITSchedule bool

	// When true indicates that access to one or
	// more streams may be controlled by a CA system.
	HasFreeCSAMode bool
	RunningStatus  uint8
	ServiceID      uint16
}

var sdtServiceRecord = NewRecord("SDT service",
	Fixed("service_id", 16),
	Reserved(6),
	Flag("eit_schedule_flag", 1),
	Flag("eit_present_following_flag", 1),
	Fixed("running_status", 3),
	Flag("free_ca_mode", 1),
	Fixed("descriptors_loop_length", 12),
	Repeated("descriptors", DecodeDescriptor, ForLength("descriptors_loop_length")),
)

func newSDTDataService(c *Cursor) (*SDTDataService, error) {
	return decodeRecord(c, sdtServiceRecord, func(b *Bindings) *SDTDataService {
		return &SDTDataService{
			Descriptors:            Bound[[]*Descriptor](b, "descriptors"),
			HasEITPresentFollowing: b.Bool("eit_present_following_flag"),
			HasEITSchedule:         b.Bool("eit_schedule_flag"),
			HasFreeCSAMode:         b.Bool("free_ca_mode"),
			RunningStatus:          uint8(b.Uint("running_status")),
			ServiceID:              uint16(b.Uint("service_id")),
		}
	})
}

var sdtRecord = longSectionRecord("SDT section", []PSITableTypeId{PSITableTypeIdSDTVariant1, PSITableTypeIdSDTVariant2},
	Fixed("original_network_id", 16),
	Reserved(8),
	Repeated("services", newSDTDataService, UntilEnd(SectionFraming)),
)

// DecodeSDT decodes an SDT section and leaves the cursor on the first bit of its CRC32
func DecodeSDT(c *Cursor) (*PSISection, error) {
	return decodeSection(c, sdtRecord, func(d *PSISectionSyntaxData, b *Bindings) {
		d.SDT = &SDTData{
			OriginalNetworkID: uint16(b.Uint("original_network_id")),
			Services:          Bound[[]*SDTDataService](b, "services"),
			TransportStreamID: uint16(b.Uint("table_id_extension")),
		}
	})
}
