package astipsi

import "time"

// EITData represents an EIT data
// Page: 36 | Chapter: 5.2.4 | Link:
// https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type EITData struct {
	Events                   []*EITDataEvent
	LastTableID              uint8
	OriginalNetworkID        uint16
	SegmentLastSectionNumber uint8
	ServiceID                uint16
	TransportStreamID        uint16
}

// EITDataEvent represents an EIT data event.
type EITDataEvent struct {
	Duration      time.Duration
	EventID       uint16
	StartTime     time.Time
	RunningStatus uint8

	// When true indicates that access to one or
	// more streams may be controlled by a CA system.
	HasFreeCSAMode bool
	Descriptors    []*Descriptor
}

var eitEventRecord = NewRecord("EIT event",
	Fixed("event_id", 16),
	DVBTime("start_time"),
	DVBDurationSeconds("duration"),
	Fixed("running_status", 3),
	Flag("free_ca_mode", 1),
	Fixed("descriptors_loop_length", 12),
	Repeated("descriptors", DecodeDescriptor, ForLength("descriptors_loop_length")),
)

func newEITDataEvent(c *Cursor) (*EITDataEvent, error) {
	return decodeRecord(c, eitEventRecord, func(b *Bindings) *EITDataEvent {
		return &EITDataEvent{
			Descriptors:    Bound[[]*Descriptor](b, "descriptors"),
			Duration:       Bound[time.Duration](b, "duration"),
			EventID:        uint16(b.Uint("event_id")),
			HasFreeCSAMode: b.Bool("free_ca_mode"),
			RunningStatus:  uint8(b.Uint("running_status")),
			StartTime:      Bound[time.Time](b, "start_time"),
		}
	})
}

func eitTableIDs() (ids []PSITableTypeId) {
	for id := PSITableTypeIdEITStart; id <= PSITableTypeIdEITEnd; id++ {
		ids = append(ids, id)
	}
	return
}

var eitRecord = longSectionRecord("EIT section", eitTableIDs(),
	Fixed("transport_stream_id", 16),
	Fixed("original_network_id", 16),
	Fixed("segment_last_section_number", 8),
	Fixed("last_table_id", 8),
	Repeated("events", newEITDataEvent, UntilEnd(SectionFraming)),
)

// DecodeEIT decodes an EIT section, present/following or schedule, and leaves the cursor on the first bit of its
// CRC32
func DecodeEIT(c *Cursor) (*PSISection, error) {
	return decodeSection(c, eitRecord, func(d *PSISectionSyntaxData, b *Bindings) {
		d.EIT = &EITData{
			Events:                   Bound[[]*EITDataEvent](b, "events"),
			LastTableID:              uint8(b.Uint("last_table_id")),
			OriginalNetworkID:        uint16(b.Uint("original_network_id")),
			SegmentLastSectionNumber: uint8(b.Uint("segment_last_section_number")),
			ServiceID:                uint16(b.Uint("table_id_extension")),
			TransportStreamID:        uint16(b.Uint("transport_stream_id")),
		}
	})
}
