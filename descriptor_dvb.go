package astipsi

import "time"

// Descriptor extension tags
// Page: 111 | Chapter: 6.1 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
const (
	DescriptorTagExtensionSupplementaryAudio = 0x6
)

// Service types
// Page: 97 | Chapter: 6.2.33 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
const (
	ServiceTypeDigitalTelevisionService = 0x1
	ServiceTypeDigitalRadioSoundService = 0x2
	ServiceTypeTeletextService          = 0x3
)

// Teletext types
// Page: 106 | Chapter: 6.2.43 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
const (
	TeletextTypeAdditionalInformationPage                    = 0x3
	TeletextTypeInitialTeletextPage                          = 0x1
	TeletextTypeProgramSchedulePage                          = 0x4
	TeletextTypeTeletextSubtitlePage                         = 0x2
	TeletextTypeTeletextSubtitlePageForHearingImpairedPeople = 0x5
)

// DescriptorNetworkName represents a network name descriptor
// Page: 93 | Chapter: 6.2.27 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorNetworkName struct {
	Name string
}

var descriptorNetworkNameRecord = descriptorRecord("network name descriptor", DescriptorTagNetworkName,
	TextToEnd("name", DescriptorFraming),
)

func newDescriptorNetworkName(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorNetworkNameRecord, func(d *Descriptor, b *Bindings) {
		d.NetworkName = &DescriptorNetworkName{Name: b.String("name")}
	})
}

// DescriptorSatelliteDeliverySystem represents a satellite delivery system descriptor
// Chapter: 6.2.13.2 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorSatelliteDeliverySystem struct {
	FECInner         uint8
	Frequency        uint64 // In 10 kHz
	ModulationSystem bool   // DVB-S2 when true
	ModulationType   uint8
	OrbitalPosition  uint64 // In 0.1 degree
	Polarization     uint8
	RollOff          uint8  // Only meaningful for DVB-S2
	SymbolRate       uint64 // In 100 symbols/second
	WestEastFlag     bool   // East when true
}

var descriptorSatelliteDeliverySystemRecord = descriptorRecord("satellite delivery system descriptor", DescriptorTagSatelliteDeliverySystem,
	Fixed("frequency", 32),
	Fixed("orbital_position", 16),
	Flag("west_east_flag", 1),
	Fixed("polarization", 2),
	Fixed("roll_off_raw", 2),
	Flag("modulation_system", 1),
	Value("roll_off", func(b *Bindings) interface{} {
		if b.Bool("modulation_system") {
			return b.Uint("roll_off_raw")
		}
		return uint64(0)
	}),
	Fixed("modulation_type", 2),
	Fixed("symbol_rate", 28),
	Fixed("fec_inner", 4),
)

func newDescriptorSatelliteDeliverySystem(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorSatelliteDeliverySystemRecord, func(d *Descriptor, b *Bindings) {
		d.SatelliteDeliverySystem = &DescriptorSatelliteDeliverySystem{
			FECInner:         uint8(b.Uint("fec_inner")),
			Frequency:        decodeBCD(b.Uint("frequency"), 32),
			ModulationSystem: b.Bool("modulation_system"),
			ModulationType:   uint8(b.Uint("modulation_type")),
			OrbitalPosition:  decodeBCD(b.Uint("orbital_position"), 16),
			Polarization:     uint8(b.Uint("polarization")),
			RollOff:          uint8(b.Uint("roll_off")),
			SymbolRate:       decodeBCD(b.Uint("symbol_rate"), 28),
			WestEastFlag:     b.Bool("west_east_flag"),
		}
	})
}

// DescriptorCableDeliverySystem represents a cable delivery system descriptor
// Chapter: 6.2.13.1 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorCableDeliverySystem struct {
	FECInner   uint8
	FECOuter   uint8
	Frequency  uint64 // In 100 Hz
	Modulation uint8
	SymbolRate uint64 // In 100 symbols/second
}

var descriptorCableDeliverySystemRecord = descriptorRecord("cable delivery system descriptor", DescriptorTagCableDeliverySystem,
	Fixed("frequency", 32),
	Reserved(12),
	Fixed("fec_outer", 4),
	Fixed("modulation", 8),
	Fixed("symbol_rate", 28),
	Fixed("fec_inner", 4),
)

func newDescriptorCableDeliverySystem(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorCableDeliverySystemRecord, func(d *Descriptor, b *Bindings) {
		d.CableDeliverySystem = &DescriptorCableDeliverySystem{
			FECInner:   uint8(b.Uint("fec_inner")),
			FECOuter:   uint8(b.Uint("fec_outer")),
			Frequency:  decodeBCD(b.Uint("frequency"), 32),
			Modulation: uint8(b.Uint("modulation")),
			SymbolRate: decodeBCD(b.Uint("symbol_rate"), 28),
		}
	})
}

// DescriptorBouquetName represents a bouquet name descriptor
type DescriptorBouquetName struct {
	Name string
}

var descriptorBouquetNameRecord = descriptorRecord("bouquet name descriptor", DescriptorTagBouquetName,
	TextToEnd("name", DescriptorFraming),
)

func newDescriptorBouquetName(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorBouquetNameRecord, func(d *Descriptor, b *Bindings) {
		d.BouquetName = &DescriptorBouquetName{Name: b.String("name")}
	})
}

// DescriptorService represents a service descriptor
// Page: 96 | Chapter: 6.2.33 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorService struct {
	Name     string
	Provider string
	Type     uint8
}

var descriptorServiceRecord = descriptorRecord("service descriptor", DescriptorTagService,
	Fixed("service_type", 8),
	Fixed("service_provider_name_length", 8),
	Text("service_provider_name", "service_provider_name_length"),
	Fixed("service_name_length", 8),
	Text("service_name", "service_name_length"),
)

func newDescriptorService(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorServiceRecord, func(d *Descriptor, b *Bindings) {
		d.Service = &DescriptorService{
			Name:     b.String("service_name"),
			Provider: b.String("service_provider_name"),
			Type:     uint8(b.Uint("service_type")),
		}
	})
}

// DescriptorCountryAvailability represents a country availability descriptor
type DescriptorCountryAvailability struct {
	CountryAvailable bool
	CountryCodes     []string
}

var descriptorCountryAvailabilityRecord = descriptorRecord("country availability descriptor", DescriptorTagCountryAvailability,
	Flag("country_availability_flag", 1),
	Reserved(7),
	RepeatedFixed("country_codes", 24, decodeLanguageCode, UntilEnd(DescriptorFraming)),
)

func newDescriptorCountryAvailability(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorCountryAvailabilityRecord, func(d *Descriptor, b *Bindings) {
		d.CountryAvailability = &DescriptorCountryAvailability{
			CountryAvailable: b.Bool("country_availability_flag"),
			CountryCodes:     Bound[[]string](b, "country_codes"),
		}
	})
}

// DescriptorShortEvent represents a short event descriptor
// Page: 99 | Chapter: 6.2.37 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorShortEvent struct {
	EventName string
	Language  string
	Text      string
}

var descriptorShortEventRecord = descriptorRecord("short event descriptor", DescriptorTagShortEvent,
	LanguageCode("iso_639_language_code"),
	Fixed("event_name_length", 8),
	Text("event_name", "event_name_length"),
	Fixed("text_length", 8),
	Text("text", "text_length"),
)

func newDescriptorShortEvent(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorShortEventRecord, func(d *Descriptor, b *Bindings) {
		d.ShortEvent = &DescriptorShortEvent{
			EventName: b.String("event_name"),
			Language:  b.String("iso_639_language_code"),
			Text:      b.String("text"),
		}
	})
}

// DescriptorExtendedEvent represents an extended event descriptor
// Page: 58 | Chapter: 6.2.15 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorExtendedEvent struct {
	ISO639LanguageCode   string
	Items                []*DescriptorExtendedEventItem
	LastDescriptorNumber uint8
	Number               uint8
	Text                 string
}

// DescriptorExtendedEventItem represents an extended event item descriptor
type DescriptorExtendedEventItem struct {
	Content     string
	Description string
}

var descriptorExtendedEventItemRecord = NewRecord("extended event item",
	Fixed("item_description_length", 8),
	Text("item_description", "item_description_length"),
	Fixed("item_length", 8),
	Text("item", "item_length"),
)

func newDescriptorExtendedEventItem(c *Cursor) (*DescriptorExtendedEventItem, error) {
	return decodeRecord(c, descriptorExtendedEventItemRecord, func(b *Bindings) *DescriptorExtendedEventItem {
		return &DescriptorExtendedEventItem{
			Content:     b.String("item"),
			Description: b.String("item_description"),
		}
	})
}

var descriptorExtendedEventRecord = descriptorRecord("extended event descriptor", DescriptorTagExtendedEvent,
	Fixed("descriptor_number", 4),
	Fixed("last_descriptor_number", 4),
	LanguageCode("iso_639_language_code"),
	Fixed("length_of_items", 8),
	Repeated("items", newDescriptorExtendedEventItem, ForLength("length_of_items")),
	Fixed("text_length", 8),
	Text("text", "text_length"),
)

func newDescriptorExtendedEvent(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorExtendedEventRecord, func(d *Descriptor, b *Bindings) {
		d.ExtendedEvent = &DescriptorExtendedEvent{
			ISO639LanguageCode:   b.String("iso_639_language_code"),
			Items:                Bound[[]*DescriptorExtendedEventItem](b, "items"),
			LastDescriptorNumber: uint8(b.Uint("last_descriptor_number")),
			Number:               uint8(b.Uint("descriptor_number")),
			Text:                 b.String("text"),
		}
	})
}

// DescriptorComponent represents a component descriptor
// Page: 51 | https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorComponent struct {
	ComponentTag       uint8
	ComponentType      uint8
	ISO639LanguageCode string
	StreamContent      uint8
	StreamContentExt   uint8
	Text               string
}

var descriptorComponentRecord = descriptorRecord("component descriptor", DescriptorTagComponent,
	Fixed("stream_content_ext", 4),
	Fixed("stream_content", 4),
	Fixed("component_type", 8),
	Fixed("component_tag", 8),
	LanguageCode("iso_639_language_code"),
	TextToEnd("text", DescriptorFraming),
)

func newDescriptorComponent(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorComponentRecord, func(d *Descriptor, b *Bindings) {
		d.Component = &DescriptorComponent{
			ComponentTag:       uint8(b.Uint("component_tag")),
			ComponentType:      uint8(b.Uint("component_type")),
			ISO639LanguageCode: b.String("iso_639_language_code"),
			StreamContent:      uint8(b.Uint("stream_content")),
			StreamContentExt:   uint8(b.Uint("stream_content_ext")),
			Text:               b.String("text"),
		}
	})
}

// DescriptorStreamIdentifier represents a stream identifier descriptor
// Page: 102 | Chapter: 6.2.39 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorStreamIdentifier struct{ ComponentTag uint8 }

var descriptorStreamIdentifierRecord = descriptorRecord("stream identifier descriptor", DescriptorTagStreamIdentifier,
	Fixed("component_tag", 8),
)

func newDescriptorStreamIdentifier(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorStreamIdentifierRecord, func(d *Descriptor, b *Bindings) {
		d.StreamIdentifier = &DescriptorStreamIdentifier{ComponentTag: uint8(b.Uint("component_tag"))}
	})
}

// DescriptorCAIdentifier represents a CA identifier descriptor
type DescriptorCAIdentifier struct {
	CASystemIDs []uint16
}

var descriptorCAIdentifierRecord = descriptorRecord("CA identifier descriptor", DescriptorTagCAIdentifier,
	RepeatedFixed("ca_system_ids", 16, func(c *Cursor) (uint16, error) { return readUint[uint16](c, 16) }, UntilEnd(DescriptorFraming)),
)

func newDescriptorCAIdentifier(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorCAIdentifierRecord, func(d *Descriptor, b *Bindings) {
		d.CAIdentifier = &DescriptorCAIdentifier{CASystemIDs: Bound[[]uint16](b, "ca_system_ids")}
	})
}

// DescriptorContent represents a content descriptor
// Page: 58 | Chapter: 6.2.9 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorContent struct {
	Items []*DescriptorContentItem
}

// DescriptorContentItem represents a content item descriptor
// Check page 59 of https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf for content nibble
// levels associations
type DescriptorContentItem struct {
	ContentNibbleLevel1 uint8
	ContentNibbleLevel2 uint8
	UserByte            uint8
}

var descriptorContentItemRecord = NewRecord("content item",
	Fixed("content_nibble_level_1", 4),
	Fixed("content_nibble_level_2", 4),
	Fixed("user_byte", 8),
)

func newDescriptorContentItem(c *Cursor) (*DescriptorContentItem, error) {
	return decodeRecord(c, descriptorContentItemRecord, func(b *Bindings) *DescriptorContentItem {
		return &DescriptorContentItem{
			ContentNibbleLevel1: uint8(b.Uint("content_nibble_level_1")),
			ContentNibbleLevel2: uint8(b.Uint("content_nibble_level_2")),
			UserByte:            uint8(b.Uint("user_byte")),
		}
	})
}

var descriptorContentRecord = descriptorRecord("content descriptor", DescriptorTagContent,
	RepeatedFixed("items", 16, newDescriptorContentItem, UntilEnd(DescriptorFraming)),
)

func newDescriptorContent(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorContentRecord, func(d *Descriptor, b *Bindings) {
		d.Content = &DescriptorContent{Items: Bound[[]*DescriptorContentItem](b, "items")}
	})
}

// DescriptorParentalRating represents a parental rating descriptor
// Page: 93 | Chapter: 6.2.28 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorParentalRating struct {
	Items []*DescriptorParentalRatingItem
}

// DescriptorParentalRatingItem represents a parental rating item descriptor
type DescriptorParentalRatingItem struct {
	CountryCode string
	Rating      uint8
}

// MinimumAge returns the minimum age for the parental rating
func (d DescriptorParentalRatingItem) MinimumAge() int {
	// Undefined or user defined ratings
	if d.Rating == 0 || d.Rating > 0x10 {
		return 0
	}
	return int(d.Rating) + 3
}

var descriptorParentalRatingItemRecord = NewRecord("parental rating item",
	LanguageCode("country_code"),
	Fixed("rating", 8),
)

func newDescriptorParentalRatingItem(c *Cursor) (*DescriptorParentalRatingItem, error) {
	return decodeRecord(c, descriptorParentalRatingItemRecord, func(b *Bindings) *DescriptorParentalRatingItem {
		return &DescriptorParentalRatingItem{
			CountryCode: b.String("country_code"),
			Rating:      uint8(b.Uint("rating")),
		}
	})
}

var descriptorParentalRatingRecord = descriptorRecord("parental rating descriptor", DescriptorTagParentalRating,
	RepeatedFixed("items", 32, newDescriptorParentalRatingItem, UntilEnd(DescriptorFraming)),
)

func newDescriptorParentalRating(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorParentalRatingRecord, func(d *Descriptor, b *Bindings) {
		d.ParentalRating = &DescriptorParentalRating{Items: Bound[[]*DescriptorParentalRatingItem](b, "items")}
	})
}

// DescriptorTeletext represents a teletext descriptor
// Page: 105 | Chapter: 6.2.43 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorTeletext struct {
	Items []*DescriptorTeletextItem
}

// DescriptorTeletextItem represents a teletext item descriptor
type DescriptorTeletextItem struct {
	Language string
	Magazine uint8
	Page     uint8
	Type     uint8
}

var descriptorTeletextItemRecord = NewRecord("teletext item",
	LanguageCode("iso_639_language_code"),
	Fixed("teletext_type", 5),
	Fixed("teletext_magazine_number", 3),
	Fixed("teletext_page_number", 8),
)

func newDescriptorTeletextItem(c *Cursor) (*DescriptorTeletextItem, error) {
	return decodeRecord(c, descriptorTeletextItemRecord, func(b *Bindings) *DescriptorTeletextItem {
		return &DescriptorTeletextItem{
			Language: b.String("iso_639_language_code"),
			Magazine: uint8(b.Uint("teletext_magazine_number")),
			Page:     uint8(decodeBCD(b.Uint("teletext_page_number"), 8)),
			Type:     uint8(b.Uint("teletext_type")),
		}
	})
}

var descriptorTeletextRecord = descriptorRecord("teletext descriptor", DescriptorTagTeletext,
	RepeatedFixed("items", 40, newDescriptorTeletextItem, UntilEnd(DescriptorFraming)),
)

func newDescriptorTeletext(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorTeletextRecord, func(d *Descriptor, b *Bindings) {
		d.Teletext = &DescriptorTeletext{Items: Bound[[]*DescriptorTeletextItem](b, "items")}
	})
}

// DescriptorLocalTimeOffset represents a local time offset descriptor
// Page: 84 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorLocalTimeOffset struct {
	Items []*DescriptorLocalTimeOffsetItem
}

// DescriptorLocalTimeOffsetItem represents a local time offset item descriptor
type DescriptorLocalTimeOffsetItem struct {
	CountryCode             string
	CountryRegionID         uint8
	LocalTimeOffset         time.Duration
	LocalTimeOffsetPolarity bool
	NextTimeOffset          time.Duration
	TimeOfChange            time.Time
}

var descriptorLocalTimeOffsetItemRecord = NewRecord("local time offset item",
	LanguageCode("country_code"),
	Fixed("country_region_id", 6),
	Reserved(1),
	Flag("local_time_offset_polarity", 1),
	DVBDurationMinutes("local_time_offset"),
	DVBTime("time_of_change"),
	DVBDurationMinutes("next_time_offset"),
)

func newDescriptorLocalTimeOffsetItem(c *Cursor) (*DescriptorLocalTimeOffsetItem, error) {
	return decodeRecord(c, descriptorLocalTimeOffsetItemRecord, func(b *Bindings) *DescriptorLocalTimeOffsetItem {
		return &DescriptorLocalTimeOffsetItem{
			CountryCode:             b.String("country_code"),
			CountryRegionID:         uint8(b.Uint("country_region_id")),
			LocalTimeOffset:         Bound[time.Duration](b, "local_time_offset"),
			LocalTimeOffsetPolarity: b.Bool("local_time_offset_polarity"),
			NextTimeOffset:          Bound[time.Duration](b, "next_time_offset"),
			TimeOfChange:            Bound[time.Time](b, "time_of_change"),
		}
	})
}

var descriptorLocalTimeOffsetRecord = descriptorRecord("local time offset descriptor", DescriptorTagLocalTimeOffset,
	RepeatedFixed("items", 104, newDescriptorLocalTimeOffsetItem, UntilEnd(DescriptorFraming)),
)

func newDescriptorLocalTimeOffset(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorLocalTimeOffsetRecord, func(d *Descriptor, b *Bindings) {
		d.LocalTimeOffset = &DescriptorLocalTimeOffset{Items: Bound[[]*DescriptorLocalTimeOffsetItem](b, "items")}
	})
}

// DescriptorSubtitling represents a subtitling descriptor
// Page: 103 | Chapter: 6.2.41 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorSubtitling struct {
	Items []*DescriptorSubtitlingItem
}

// DescriptorSubtitlingItem represents subtitling descriptor item
type DescriptorSubtitlingItem struct {
	AncillaryPageID   uint16
	CompositionPageID uint16
	Language          string
	Type              uint8
}

var descriptorSubtitlingItemRecord = NewRecord("subtitling item",
	LanguageCode("iso_639_language_code"),
	Fixed("subtitling_type", 8),
	Fixed("composition_page_id", 16),
	Fixed("ancillary_page_id", 16),
)

func newDescriptorSubtitlingItem(c *Cursor) (*DescriptorSubtitlingItem, error) {
	return decodeRecord(c, descriptorSubtitlingItemRecord, func(b *Bindings) *DescriptorSubtitlingItem {
		return &DescriptorSubtitlingItem{
			AncillaryPageID:   uint16(b.Uint("ancillary_page_id")),
			CompositionPageID: uint16(b.Uint("composition_page_id")),
			Language:          b.String("iso_639_language_code"),
			Type:              uint8(b.Uint("subtitling_type")),
		}
	})
}

var descriptorSubtitlingRecord = descriptorRecord("subtitling descriptor", DescriptorTagSubtitling,
	RepeatedFixed("items", 64, newDescriptorSubtitlingItem, UntilEnd(DescriptorFraming)),
)

func newDescriptorSubtitling(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorSubtitlingRecord, func(d *Descriptor, b *Bindings) {
		d.Subtitling = &DescriptorSubtitling{Items: Bound[[]*DescriptorSubtitlingItem](b, "items")}
	})
}

// DescriptorTerrestrialDeliverySystem represents a terrestrial delivery system descriptor
// Chapter: 6.2.13.4 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorTerrestrialDeliverySystem struct {
	Bandwidth            uint8
	CentreFrequency      uint32 // In 10 Hz
	CodeRateHPStream     uint8
	CodeRateLPStream     uint8
	Constellation        uint8
	GuardInterval        uint8
	HierarchyInformation uint8
	MPEFECIndicator      bool
	OtherFrequency       bool
	Priority             bool
	TimeSlicingIndicator bool
	TransmissionMode     uint8
}

var descriptorTerrestrialDeliverySystemRecord = descriptorRecord("terrestrial delivery system descriptor", DescriptorTagTerrestrialDeliverySystem,
	Fixed("centre_frequency", 32),
	Fixed("bandwidth", 3),
	Flag("priority", 1),
	Flag("time_slicing_indicator", 1),
	Flag("mpe_fec_indicator", 1),
	Reserved(2),
	Fixed("constellation", 2),
	Fixed("hierarchy_information", 3),
	Fixed("code_rate_hp_stream", 3),
	Fixed("code_rate_lp_stream", 3),
	Fixed("guard_interval", 2),
	Fixed("transmission_mode", 2),
	Flag("other_frequency_flag", 1),
	Reserved(32),
)

func newDescriptorTerrestrialDeliverySystem(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorTerrestrialDeliverySystemRecord, func(d *Descriptor, b *Bindings) {
		d.TerrestrialDeliverySystem = &DescriptorTerrestrialDeliverySystem{
			Bandwidth:            uint8(b.Uint("bandwidth")),
			CentreFrequency:      uint32(b.Uint("centre_frequency")),
			CodeRateHPStream:     uint8(b.Uint("code_rate_hp_stream")),
			CodeRateLPStream:     uint8(b.Uint("code_rate_lp_stream")),
			Constellation:        uint8(b.Uint("constellation")),
			GuardInterval:        uint8(b.Uint("guard_interval")),
			HierarchyInformation: uint8(b.Uint("hierarchy_information")),
			MPEFECIndicator:      b.Bool("mpe_fec_indicator"),
			OtherFrequency:       b.Bool("other_frequency_flag"),
			Priority:             b.Bool("priority"),
			TimeSlicingIndicator: b.Bool("time_slicing_indicator"),
			TransmissionMode:     uint8(b.Uint("transmission_mode")),
		}
	})
}

// DescriptorDataBroadcast represents a data broadcast descriptor
type DescriptorDataBroadcast struct {
	ComponentTag       uint8
	DataBroadcastID    uint16
	ISO639LanguageCode string
	Selector           []byte
	Text               string
}

var descriptorDataBroadcastRecord = descriptorRecord("data broadcast descriptor", DescriptorTagDataBroadcast,
	Fixed("data_broadcast_id", 16),
	Fixed("component_tag", 8),
	Fixed("selector_length", 8),
	Bytes("selector", "selector_length"),
	LanguageCode("iso_639_language_code"),
	Fixed("text_length", 8),
	Text("text", "text_length"),
)

func newDescriptorDataBroadcast(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorDataBroadcastRecord, func(d *Descriptor, b *Bindings) {
		d.DataBroadcast = &DescriptorDataBroadcast{
			ComponentTag:       uint8(b.Uint("component_tag")),
			DataBroadcastID:    uint16(b.Uint("data_broadcast_id")),
			ISO639LanguageCode: b.String("iso_639_language_code"),
			Selector:           b.Bytes("selector"),
			Text:               b.String("text"),
		}
	})
}

// DescriptorDataBroadcastID represents a data broadcast id descriptor
type DescriptorDataBroadcastID struct {
	DataBroadcastID uint16
	IDSelector      []byte
}

var descriptorDataBroadcastIDRecord = descriptorRecord("data broadcast id descriptor", DescriptorTagDataBroadcastID,
	Fixed("data_broadcast_id", 16),
	BytesToEnd("id_selector", DescriptorFraming),
)

func newDescriptorDataBroadcastID(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorDataBroadcastIDRecord, func(d *Descriptor, b *Bindings) {
		d.DataBroadcastID = &DescriptorDataBroadcastID{
			DataBroadcastID: uint16(b.Uint("data_broadcast_id")),
			IDSelector:      b.Bytes("id_selector"),
		}
	})
}

// DescriptorDSNG represents a DSNG descriptor
type DescriptorDSNG struct {
	Data []byte
}

var descriptorDSNGRecord = descriptorRecord("DSNG descriptor", DescriptorTagDSNG,
	BytesToEnd("data", DescriptorFraming),
)

func newDescriptorDSNG(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorDSNGRecord, func(d *Descriptor, b *Bindings) {
		d.DSNG = &DescriptorDSNG{Data: b.Bytes("data")}
	})
}

func optionalByte(name, flag string) Field {
	return Derived(name, func(c *Cursor, b *Bindings) (interface{}, error) {
		if !b.Bool(flag) {
			return uint8(0), nil
		}
		return readUint[uint8](c, 8)
	})
}

// DescriptorAC3 represents an AC3 descriptor
// Page: 165 | https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.11.01_60/en_300468v011101p.pdf
type DescriptorAC3 struct {
	AdditionalInfo   []byte
	ASVC             uint8
	BSID             uint8
	ComponentType    uint8
	HasASVC          bool
	HasBSID          bool
	HasComponentType bool
	HasMainID        bool
	MainID           uint8
}

var descriptorAC3Record = descriptorRecord("AC3 descriptor", DescriptorTagAC3,
	Flag("component_type_flag", 1),
	Flag("bsid_flag", 1),
	Flag("mainid_flag", 1),
	Flag("asvc_flag", 1),
	Fixed("reserved_flags", 4),
	optionalByte("component_type", "component_type_flag"),
	optionalByte("bsid", "bsid_flag"),
	optionalByte("mainid", "mainid_flag"),
	optionalByte("asvc", "asvc_flag"),
	BytesToEnd("additional_info", DescriptorFraming),
)

func newDescriptorAC3(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorAC3Record, func(d *Descriptor, b *Bindings) {
		d.AC3 = &DescriptorAC3{
			AdditionalInfo:   b.Bytes("additional_info"),
			ASVC:             Bound[uint8](b, "asvc"),
			BSID:             Bound[uint8](b, "bsid"),
			ComponentType:    Bound[uint8](b, "component_type"),
			HasASVC:          b.Bool("asvc_flag"),
			HasBSID:          b.Bool("bsid_flag"),
			HasComponentType: b.Bool("component_type_flag"),
			HasMainID:        b.Bool("mainid_flag"),
			MainID:           Bound[uint8](b, "mainid"),
		}
	})
}

// DescriptorAncillaryData represents an ancillary data descriptor
type DescriptorAncillaryData struct {
	AncillaryDataIdentifier uint8
}

var descriptorAncillaryDataRecord = descriptorRecord("ancillary data descriptor", DescriptorTagAncillaryData,
	Fixed("ancillary_data_identifier", 8),
)

func newDescriptorAncillaryData(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorAncillaryDataRecord, func(d *Descriptor, b *Bindings) {
		d.AncillaryData = &DescriptorAncillaryData{AncillaryDataIdentifier: uint8(b.Uint("ancillary_data_identifier"))}
	})
}

// DescriptorCellList represents a cell list descriptor
type DescriptorCellList struct {
	Cells []*DescriptorCellListCell
}

// DescriptorCellListCell represents a cell of a cell list descriptor
type DescriptorCellListCell struct {
	CellExtentOfLatitude  uint16
	CellExtentOfLongitude uint16
	CellID                uint16
	CellLatitude          uint16
	CellLongitude         uint16
	Subcells              []*DescriptorCellListSubcell
}

// DescriptorCellListSubcell represents a subcell of a cell list descriptor
type DescriptorCellListSubcell struct {
	CellIDExtension          uint8
	SubcellExtentOfLatitude  uint16
	SubcellExtentOfLongitude uint16
	SubcellLatitude          uint16
	SubcellLongitude         uint16
}

var descriptorCellListSubcellRecord = NewRecord("cell list subcell",
	Fixed("cell_id_extension", 8),
	Fixed("subcell_latitude", 16),
	Fixed("subcell_longitude", 16),
	Fixed("subcell_extent_of_latitude", 12),
	Fixed("subcell_extent_of_longitude", 12),
)

func newDescriptorCellListSubcell(c *Cursor) (*DescriptorCellListSubcell, error) {
	return decodeRecord(c, descriptorCellListSubcellRecord, func(b *Bindings) *DescriptorCellListSubcell {
		return &DescriptorCellListSubcell{
			CellIDExtension:          uint8(b.Uint("cell_id_extension")),
			SubcellExtentOfLatitude:  uint16(b.Uint("subcell_extent_of_latitude")),
			SubcellExtentOfLongitude: uint16(b.Uint("subcell_extent_of_longitude")),
			SubcellLatitude:          uint16(b.Uint("subcell_latitude")),
			SubcellLongitude:         uint16(b.Uint("subcell_longitude")),
		}
	})
}

var descriptorCellListCellRecord = NewRecord("cell list cell",
	Fixed("cell_id", 16),
	Fixed("cell_latitude", 16),
	Fixed("cell_longitude", 16),
	Fixed("cell_extent_of_latitude", 12),
	Fixed("cell_extent_of_longitude", 12),
	Fixed("subcell_info_loop_length", 8),
	Repeated("subcells", newDescriptorCellListSubcell, ForLength("subcell_info_loop_length")),
)

func newDescriptorCellListCell(c *Cursor) (*DescriptorCellListCell, error) {
	return decodeRecord(c, descriptorCellListCellRecord, func(b *Bindings) *DescriptorCellListCell {
		return &DescriptorCellListCell{
			CellExtentOfLatitude:  uint16(b.Uint("cell_extent_of_latitude")),
			CellExtentOfLongitude: uint16(b.Uint("cell_extent_of_longitude")),
			CellID:                uint16(b.Uint("cell_id")),
			CellLatitude:          uint16(b.Uint("cell_latitude")),
			CellLongitude:         uint16(b.Uint("cell_longitude")),
			Subcells:              Bound[[]*DescriptorCellListSubcell](b, "subcells"),
		}
	})
}

var descriptorCellListRecord = descriptorRecord("cell list descriptor", DescriptorTagCellList,
	Repeated("cells", newDescriptorCellListCell, UntilEnd(DescriptorFraming)),
)

func newDescriptorCellList(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorCellListRecord, func(d *Descriptor, b *Bindings) {
		d.CellList = &DescriptorCellList{Cells: Bound[[]*DescriptorCellListCell](b, "cells")}
	})
}

// DescriptorCellFrequencyLink represents a cell frequency link descriptor
type DescriptorCellFrequencyLink struct {
	Cells []*DescriptorCellFrequencyLinkCell
}

// DescriptorCellFrequencyLinkCell represents a cell of a cell frequency link descriptor
type DescriptorCellFrequencyLinkCell struct {
	CellID    uint16
	Frequency uint32 // In 10 Hz
	Subcells  []*DescriptorCellFrequencyLinkSubcell
}

// DescriptorCellFrequencyLinkSubcell represents a subcell of a cell frequency link descriptor
type DescriptorCellFrequencyLinkSubcell struct {
	CellIDExtension     uint8
	TransposerFrequency uint32 // In 10 Hz
}

var descriptorCellFrequencyLinkSubcellRecord = NewRecord("cell frequency link subcell",
	Fixed("cell_id_extension", 8),
	Fixed("transposer_frequency", 32),
)

func newDescriptorCellFrequencyLinkSubcell(c *Cursor) (*DescriptorCellFrequencyLinkSubcell, error) {
	return decodeRecord(c, descriptorCellFrequencyLinkSubcellRecord, func(b *Bindings) *DescriptorCellFrequencyLinkSubcell {
		return &DescriptorCellFrequencyLinkSubcell{
			CellIDExtension:     uint8(b.Uint("cell_id_extension")),
			TransposerFrequency: uint32(b.Uint("transposer_frequency")),
		}
	})
}

var descriptorCellFrequencyLinkCellRecord = NewRecord("cell frequency link cell",
	Fixed("cell_id", 16),
	Fixed("frequency", 32),
	Fixed("subcell_info_loop_length", 8),
	Repeated("subcells", newDescriptorCellFrequencyLinkSubcell, ForLength("subcell_info_loop_length")),
)

func newDescriptorCellFrequencyLinkCell(c *Cursor) (*DescriptorCellFrequencyLinkCell, error) {
	return decodeRecord(c, descriptorCellFrequencyLinkCellRecord, func(b *Bindings) *DescriptorCellFrequencyLinkCell {
		return &DescriptorCellFrequencyLinkCell{
			CellID:    uint16(b.Uint("cell_id")),
			Frequency: uint32(b.Uint("frequency")),
			Subcells:  Bound[[]*DescriptorCellFrequencyLinkSubcell](b, "subcells"),
		}
	})
}

var descriptorCellFrequencyLinkRecord = descriptorRecord("cell frequency link descriptor", DescriptorTagCellFrequencyLink,
	Repeated("cells", newDescriptorCellFrequencyLinkCell, UntilEnd(DescriptorFraming)),
)

func newDescriptorCellFrequencyLink(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorCellFrequencyLinkRecord, func(d *Descriptor, b *Bindings) {
		d.CellFrequencyLink = &DescriptorCellFrequencyLink{Cells: Bound[[]*DescriptorCellFrequencyLinkCell](b, "cells")}
	})
}

// DescriptorAnnouncementSupport represents an announcement support descriptor
type DescriptorAnnouncementSupport struct {
	AnnouncementSupportIndicator uint16
	Announcements                []*DescriptorAnnouncementSupportAnnouncement
}

// DescriptorAnnouncementSupportAnnouncement represents an announcement of an announcement support descriptor
type DescriptorAnnouncementSupportAnnouncement struct {
	AnnouncementType uint8
	ReferenceType    uint8
	Service          *DescriptorAnnouncementSupportService // Only set when ReferenceType is 1, 2 or 3
}

// DescriptorAnnouncementSupportService represents the service an announcement is broadcast on
type DescriptorAnnouncementSupportService struct {
	ComponentTag      uint8
	OriginalNetworkID uint16
	ServiceID         uint16
	TransportStreamID uint16
}

var descriptorAnnouncementSupportServiceRecord = NewRecord("announcement support service",
	Fixed("original_network_id", 16),
	Fixed("transport_stream_id", 16),
	Fixed("service_id", 16),
	Fixed("component_tag", 8),
)

func newDescriptorAnnouncementSupportService(c *Cursor) (*DescriptorAnnouncementSupportService, error) {
	return decodeRecord(c, descriptorAnnouncementSupportServiceRecord, func(b *Bindings) *DescriptorAnnouncementSupportService {
		return &DescriptorAnnouncementSupportService{
			ComponentTag:      uint8(b.Uint("component_tag")),
			OriginalNetworkID: uint16(b.Uint("original_network_id")),
			ServiceID:         uint16(b.Uint("service_id")),
			TransportStreamID: uint16(b.Uint("transport_stream_id")),
		}
	})
}

var descriptorAnnouncementSupportAnnouncementRecord = NewRecord("announcement support announcement",
	Fixed("announcement_type", 4),
	Reserved(1),
	Fixed("reference_type", 3),
	Optional("service", func(b *Bindings) bool {
		t := b.Uint("reference_type")
		return t >= 0x1 && t <= 0x3
	}, newDescriptorAnnouncementSupportService),
)

func newDescriptorAnnouncementSupportAnnouncement(c *Cursor) (*DescriptorAnnouncementSupportAnnouncement, error) {
	return decodeRecord(c, descriptorAnnouncementSupportAnnouncementRecord, func(b *Bindings) *DescriptorAnnouncementSupportAnnouncement {
		return &DescriptorAnnouncementSupportAnnouncement{
			AnnouncementType: uint8(b.Uint("announcement_type")),
			ReferenceType:    uint8(b.Uint("reference_type")),
			Service:          Bound[*DescriptorAnnouncementSupportService](b, "service"),
		}
	})
}

var descriptorAnnouncementSupportRecord = descriptorRecord("announcement support descriptor", DescriptorTagAnnouncementSupport,
	Fixed("announcement_support_indicator", 16),
	Repeated("announcements", newDescriptorAnnouncementSupportAnnouncement, UntilEnd(DescriptorFraming)),
)

func newDescriptorAnnouncementSupport(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorAnnouncementSupportRecord, func(d *Descriptor, b *Bindings) {
		d.AnnouncementSupport = &DescriptorAnnouncementSupport{
			AnnouncementSupportIndicator: uint16(b.Uint("announcement_support_indicator")),
			Announcements:                Bound[[]*DescriptorAnnouncementSupportAnnouncement](b, "announcements"),
		}
	})
}

// DescriptorAdaptationFieldData represents an adaptation field data descriptor
type DescriptorAdaptationFieldData struct {
	AdaptationFieldDataIdentifier uint8
}

var descriptorAdaptationFieldDataRecord = descriptorRecord("adaptation field data descriptor", DescriptorTagAdaptationFieldData,
	Fixed("adaptation_field_data_identifier", 8),
)

func newDescriptorAdaptationFieldData(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorAdaptationFieldDataRecord, func(d *Descriptor, b *Bindings) {
		d.AdaptationFieldData = &DescriptorAdaptationFieldData{AdaptationFieldDataIdentifier: uint8(b.Uint("adaptation_field_data_identifier"))}
	})
}

// DescriptorS2SatelliteDeliverySystem represents a S2 satellite delivery system descriptor
type DescriptorS2SatelliteDeliverySystem struct {
	BackwardsCompatibilityIndicator bool
	HasInputStreamIdentifier        bool
	HasScramblingSequenceIndex      bool
	InputStreamIdentifier           uint8
	ScramblingSequenceIndex         uint32
}

var descriptorS2SatelliteDeliverySystemRecord = descriptorRecord("S2 satellite delivery system descriptor", DescriptorTagS2SatelliteDeliverySystem,
	Flag("scrambling_sequence_selector", 1),
	Flag("multiple_input_stream_flag", 1),
	Flag("backwards_compatibility_indicator", 1),
	Reserved(5),
	Derived("scrambling_sequence_index", func(c *Cursor, b *Bindings) (interface{}, error) {
		if !b.Bool("scrambling_sequence_selector") {
			return uint32(0), nil
		}
		v, err := c.ReadUint(24)
		return uint32(v & 0x3ffff), err
	}),
	optionalByte("input_stream_identifier", "multiple_input_stream_flag"),
)

func newDescriptorS2SatelliteDeliverySystem(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorS2SatelliteDeliverySystemRecord, func(d *Descriptor, b *Bindings) {
		d.S2SatelliteDeliverySystem = &DescriptorS2SatelliteDeliverySystem{
			BackwardsCompatibilityIndicator: b.Bool("backwards_compatibility_indicator"),
			HasInputStreamIdentifier:        b.Bool("multiple_input_stream_flag"),
			HasScramblingSequenceIndex:      b.Bool("scrambling_sequence_selector"),
			InputStreamIdentifier:           Bound[uint8](b, "input_stream_identifier"),
			ScramblingSequenceIndex:         Bound[uint32](b, "scrambling_sequence_index"),
		}
	})
}

// DescriptorEnhancedAC3 represents an enhanced AC3 descriptor
// Page: 166 | https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.11.01_60/en_300468v011101p.pdf
type DescriptorEnhancedAC3 struct {
	AdditionalInfo   []byte
	ASVC             uint8
	BSID             uint8
	ComponentType    uint8
	HasASVC          bool
	HasBSID          bool
	HasComponentType bool
	HasMainID        bool
	HasSubStream1    bool
	HasSubStream2    bool
	HasSubStream3    bool
	MainID           uint8
	MixInfoExists    bool
	SubStream1       uint8
	SubStream2       uint8
	SubStream3       uint8
}

var descriptorEnhancedAC3Record = descriptorRecord("enhanced AC3 descriptor", DescriptorTagEnhancedAC3,
	Flag("component_type_flag", 1),
	Flag("bsid_flag", 1),
	Flag("mainid_flag", 1),
	Flag("asvc_flag", 1),
	Flag("mixinfoexists", 1),
	Flag("substream1_flag", 1),
	Flag("substream2_flag", 1),
	Flag("substream3_flag", 1),
	optionalByte("component_type", "component_type_flag"),
	optionalByte("bsid", "bsid_flag"),
	optionalByte("mainid", "mainid_flag"),
	optionalByte("asvc", "asvc_flag"),
	optionalByte("substream1", "substream1_flag"),
	optionalByte("substream2", "substream2_flag"),
	optionalByte("substream3", "substream3_flag"),
	BytesToEnd("additional_info", DescriptorFraming),
)

func newDescriptorEnhancedAC3(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorEnhancedAC3Record, func(d *Descriptor, b *Bindings) {
		d.EnhancedAC3 = &DescriptorEnhancedAC3{
			AdditionalInfo:   b.Bytes("additional_info"),
			ASVC:             Bound[uint8](b, "asvc"),
			BSID:             Bound[uint8](b, "bsid"),
			ComponentType:    Bound[uint8](b, "component_type"),
			HasASVC:          b.Bool("asvc_flag"),
			HasBSID:          b.Bool("bsid_flag"),
			HasComponentType: b.Bool("component_type_flag"),
			HasMainID:        b.Bool("mainid_flag"),
			HasSubStream1:    b.Bool("substream1_flag"),
			HasSubStream2:    b.Bool("substream2_flag"),
			HasSubStream3:    b.Bool("substream3_flag"),
			MainID:           Bound[uint8](b, "mainid"),
			MixInfoExists:    b.Bool("mixinfoexists"),
			SubStream1:       Bound[uint8](b, "substream1"),
			SubStream2:       Bound[uint8](b, "substream2"),
			SubStream3:       Bound[uint8](b, "substream3"),
		}
	})
}

// DescriptorExtension represents an extension descriptor
// Page: 72 | Chapter: 6.2.16 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorExtension struct {
	SupplementaryAudio *DescriptorExtensionSupplementaryAudio
	Tag                uint8
	Unknown            []byte // Selector bytes of unlisted extension tags
}

// DescriptorExtensionSupplementaryAudio represents a supplementary audio extension descriptor
// Page: 130 | Chapter: 6.4.10 | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
type DescriptorExtensionSupplementaryAudio struct {
	EditorialClassification uint8
	HasLanguageCode         bool
	LanguageCode            string
	MixType                 bool
	PrivateData             []byte
}

// The private data runs up to the end of the enclosing descriptor and is read by it
var descriptorExtensionSupplementaryAudioRecord = NewRecord("supplementary audio extension",
	Flag("mix_type", 1),
	Fixed("editorial_classification", 5),
	Reserved(1),
	Flag("language_code_present", 1),
	Derived("iso_639_language_code", func(c *Cursor, b *Bindings) (interface{}, error) {
		if !b.Bool("language_code_present") {
			return "", nil
		}
		return decodeLanguageCode(c)
	}),
)

func newDescriptorExtensionSupplementaryAudio(c *Cursor) (*DescriptorExtensionSupplementaryAudio, error) {
	return decodeRecord(c, descriptorExtensionSupplementaryAudioRecord, func(b *Bindings) *DescriptorExtensionSupplementaryAudio {
		return &DescriptorExtensionSupplementaryAudio{
			EditorialClassification: uint8(b.Uint("editorial_classification")),
			HasLanguageCode:         b.Bool("language_code_present"),
			LanguageCode:            b.String("iso_639_language_code"),
			MixType:                 b.Bool("mix_type"),
		}
	})
}

var descriptorExtensionRecord = descriptorRecord("extension descriptor", DescriptorTagExtension,
	Fixed("descriptor_tag_extension", 8),
	Optional("supplementary_audio", func(b *Bindings) bool {
		return b.Uint("descriptor_tag_extension") == DescriptorTagExtensionSupplementaryAudio
	}, newDescriptorExtensionSupplementaryAudio),
	BytesToEnd("selector", DescriptorFraming),
)

func newDescriptorExtension(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorExtensionRecord, func(d *Descriptor, b *Bindings) {
		e := &DescriptorExtension{
			SupplementaryAudio: Bound[*DescriptorExtensionSupplementaryAudio](b, "supplementary_audio"),
			Tag:                uint8(b.Uint("descriptor_tag_extension")),
		}
		switch {
		case e.SupplementaryAudio != nil:
			e.SupplementaryAudio.PrivateData = b.Bytes("selector")
		default:
			logger.Debugf("astipsi: unlisted extension descriptor tag 0x%x", e.Tag)
			e.Unknown = b.Bytes("selector")
		}
		d.Extension = e
	})
}

func decodeLanguageCode(c *Cursor) (string, error) {
	bs, err := c.ReadBytes(3)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}
