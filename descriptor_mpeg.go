package astipsi

// Audio types
// Page: 683 | https://books.google.fr/books?id=6dgWB3-rChYC&printsec=frontcover&hl=fr
const (
	AudioTypeCleanEffects             = 0x1
	AudioTypeHearingImpaired          = 0x2
	AudioTypeVisualImpairedCommentary = 0x3
)

// DescriptorVideoStream represents a video stream descriptor
// Chapter: 2.6.2 | Link: ISO/IEC 13818-1
type DescriptorVideoStream struct {
	ConstrainedParameter bool
	Extension            *DescriptorVideoStreamExtension // Only set when MPEG1Only is false
	FrameRateCode        uint8
	MPEG1Only            bool
	MultipleFrameRate    bool
	StillPicture         bool
}

// DescriptorVideoStreamExtension represents the MPEG-2 part of a video stream descriptor
type DescriptorVideoStreamExtension struct {
	ChromaFormat              uint8
	FrameRateExtension        bool
	ProfileAndLevelIndication uint8
}

var descriptorVideoStreamExtensionRecord = NewRecord("video stream descriptor extension",
	Fixed("profile_and_level_indication", 8),
	Fixed("chroma_format", 2),
	Flag("frame_rate_extension_flag", 1),
	Reserved(5),
)

func newDescriptorVideoStreamExtension(c *Cursor) (*DescriptorVideoStreamExtension, error) {
	return decodeRecord(c, descriptorVideoStreamExtensionRecord, func(b *Bindings) *DescriptorVideoStreamExtension {
		return &DescriptorVideoStreamExtension{
			ChromaFormat:              uint8(b.Uint("chroma_format")),
			FrameRateExtension:        b.Bool("frame_rate_extension_flag"),
			ProfileAndLevelIndication: uint8(b.Uint("profile_and_level_indication")),
		}
	})
}

var descriptorVideoStreamRecord = descriptorRecord("video stream descriptor", DescriptorTagVideoStream,
	Flag("multiple_frame_rate_flag", 1),
	Fixed("frame_rate_code", 4),
	Flag("mpeg_1_only_flag", 1),
	Flag("constrained_parameter_flag", 1),
	Flag("still_picture_flag", 1),
	Optional("extension", func(b *Bindings) bool { return !b.Bool("mpeg_1_only_flag") }, newDescriptorVideoStreamExtension),
)

func newDescriptorVideoStream(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorVideoStreamRecord, func(d *Descriptor, b *Bindings) {
		d.VideoStream = &DescriptorVideoStream{
			ConstrainedParameter: b.Bool("constrained_parameter_flag"),
			Extension:            Bound[*DescriptorVideoStreamExtension](b, "extension"),
			FrameRateCode:        uint8(b.Uint("frame_rate_code")),
			MPEG1Only:            b.Bool("mpeg_1_only_flag"),
			MultipleFrameRate:    b.Bool("multiple_frame_rate_flag"),
			StillPicture:         b.Bool("still_picture_flag"),
		}
	})
}

// DescriptorAudioStream represents an audio stream descriptor
// Chapter: 2.6.4 | Link: ISO/IEC 13818-1
type DescriptorAudioStream struct {
	FreeFormat        bool
	ID                uint8
	Layer             uint8
	VariableRateAudio bool
}

var descriptorAudioStreamRecord = descriptorRecord("audio stream descriptor", DescriptorTagAudioStream,
	Flag("free_format_flag", 1),
	Fixed("id", 1),
	Fixed("layer", 2),
	Flag("variable_rate_audio_indicator", 1),
	Reserved(3),
)

func newDescriptorAudioStream(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorAudioStreamRecord, func(d *Descriptor, b *Bindings) {
		d.AudioStream = &DescriptorAudioStream{
			FreeFormat:        b.Bool("free_format_flag"),
			ID:                uint8(b.Uint("id")),
			Layer:             uint8(b.Uint("layer")),
			VariableRateAudio: b.Bool("variable_rate_audio_indicator"),
		}
	})
}

// DescriptorHierarchy represents a hierarchy descriptor
// Chapter: 2.6.6 | Link: ISO/IEC 13818-1
type DescriptorHierarchy struct {
	HierarchyChannel            uint8
	HierarchyEmbeddedLayerIndex uint8
	HierarchyLayerIndex         uint8
	HierarchyType               uint8
}

var descriptorHierarchyRecord = descriptorRecord("hierarchy descriptor", DescriptorTagHierarchy,
	Reserved(4),
	Fixed("hierarchy_type", 4),
	Reserved(2),
	Fixed("hierarchy_layer_index", 6),
	Reserved(2),
	Fixed("hierarchy_embedded_layer_index", 6),
	Reserved(2),
	Fixed("hierarchy_channel", 6),
)

func newDescriptorHierarchy(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorHierarchyRecord, func(d *Descriptor, b *Bindings) {
		d.Hierarchy = &DescriptorHierarchy{
			HierarchyChannel:            uint8(b.Uint("hierarchy_channel")),
			HierarchyEmbeddedLayerIndex: uint8(b.Uint("hierarchy_embedded_layer_index")),
			HierarchyLayerIndex:         uint8(b.Uint("hierarchy_layer_index")),
			HierarchyType:               uint8(b.Uint("hierarchy_type")),
		}
	})
}

// DescriptorRegistration represents a registration descriptor
// Chapter: 2.6.8 | Link: ISO/IEC 13818-1
type DescriptorRegistration struct {
	AdditionalIdentificationInfo []byte
	FormatIdentifier             uint32
}

var descriptorRegistrationRecord = descriptorRecord("registration descriptor", DescriptorTagRegistration,
	Fixed("format_identifier", 32),
	BytesToEnd("additional_identification_info", DescriptorFraming),
)

func newDescriptorRegistration(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorRegistrationRecord, func(d *Descriptor, b *Bindings) {
		d.Registration = &DescriptorRegistration{
			AdditionalIdentificationInfo: b.Bytes("additional_identification_info"),
			FormatIdentifier:             uint32(b.Uint("format_identifier")),
		}
	})
}

// DescriptorDataStreamAlignment represents a data stream alignment descriptor
type DescriptorDataStreamAlignment struct {
	AlignmentType uint8
}

var descriptorDataStreamAlignmentRecord = descriptorRecord("data stream alignment descriptor", DescriptorTagDataStreamAlignment,
	Fixed("alignment_type", 8),
)

func newDescriptorDataStreamAlignment(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorDataStreamAlignmentRecord, func(d *Descriptor, b *Bindings) {
		d.DataStreamAlignment = &DescriptorDataStreamAlignment{AlignmentType: uint8(b.Uint("alignment_type"))}
	})
}

// DescriptorTargetBackgroundGrid represents a target background grid descriptor
type DescriptorTargetBackgroundGrid struct {
	AspectRatioInformation uint8
	HorizontalSize         uint16
	VerticalSize           uint16
}

var descriptorTargetBackgroundGridRecord = descriptorRecord("target background grid descriptor", DescriptorTagTargetBackgroundGrid,
	Fixed("horizontal_size", 14),
	Fixed("vertical_size", 14),
	Fixed("aspect_ratio_information", 4),
)

func newDescriptorTargetBackgroundGrid(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorTargetBackgroundGridRecord, func(d *Descriptor, b *Bindings) {
		d.TargetBackgroundGrid = &DescriptorTargetBackgroundGrid{
			AspectRatioInformation: uint8(b.Uint("aspect_ratio_information")),
			HorizontalSize:         uint16(b.Uint("horizontal_size")),
			VerticalSize:           uint16(b.Uint("vertical_size")),
		}
	})
}

// DescriptorVideoWindow represents a video window descriptor
type DescriptorVideoWindow struct {
	HorizontalOffset uint16
	VerticalOffset   uint16
	WindowPriority   uint8
}

var descriptorVideoWindowRecord = descriptorRecord("video window descriptor", DescriptorTagVideoWindow,
	Fixed("horizontal_offset", 14),
	Fixed("vertical_offset", 14),
	Fixed("window_priority", 4),
)

func newDescriptorVideoWindow(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorVideoWindowRecord, func(d *Descriptor, b *Bindings) {
		d.VideoWindow = &DescriptorVideoWindow{
			HorizontalOffset: uint16(b.Uint("horizontal_offset")),
			VerticalOffset:   uint16(b.Uint("vertical_offset")),
			WindowPriority:   uint8(b.Uint("window_priority")),
		}
	})
}

// DescriptorCA represents a conditional access descriptor
// Chapter: 2.6.16 | Link: ISO/IEC 13818-1
type DescriptorCA struct {
	CAPID       uint16
	CASystemID  uint16
	PrivateData []byte
}

var descriptorCARecord = descriptorRecord("CA descriptor", DescriptorTagCA,
	Fixed("ca_system_id", 16),
	Reserved(3),
	Fixed("ca_pid", 13),
	BytesToEnd("private_data", DescriptorFraming),
)

func newDescriptorCA(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorCARecord, func(d *Descriptor, b *Bindings) {
		d.CA = &DescriptorCA{
			CAPID:       uint16(b.Uint("ca_pid")),
			CASystemID:  uint16(b.Uint("ca_system_id")),
			PrivateData: b.Bytes("private_data"),
		}
	})
}

// DescriptorISO639LanguageAndAudioType represents an ISO639 language descriptor
// A descriptor may hold several languages. Language and Type mirror the first one.
type DescriptorISO639LanguageAndAudioType struct {
	Items    []*DescriptorISO639LanguageAndAudioTypeItem
	Language string
	Type     uint8
}

// DescriptorISO639LanguageAndAudioTypeItem represents one language of an ISO639 language descriptor
type DescriptorISO639LanguageAndAudioTypeItem struct {
	Language string
	Type     uint8
}

var descriptorISO639LanguageAndAudioTypeItemRecord = NewRecord("ISO639 language item",
	LanguageCode("iso_639_language_code"),
	Fixed("audio_type", 8),
)

func newDescriptorISO639LanguageAndAudioTypeItem(c *Cursor) (*DescriptorISO639LanguageAndAudioTypeItem, error) {
	return decodeRecord(c, descriptorISO639LanguageAndAudioTypeItemRecord, func(b *Bindings) *DescriptorISO639LanguageAndAudioTypeItem {
		return &DescriptorISO639LanguageAndAudioTypeItem{
			Language: b.String("iso_639_language_code"),
			Type:     uint8(b.Uint("audio_type")),
		}
	})
}

var descriptorISO639LanguageAndAudioTypeRecord = descriptorRecord("ISO639 language descriptor", DescriptorTagISO639LanguageAndAudioType,
	RepeatedFixed("items", 32, newDescriptorISO639LanguageAndAudioTypeItem, UntilEnd(DescriptorFraming)),
)

func newDescriptorISO639LanguageAndAudioType(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorISO639LanguageAndAudioTypeRecord, func(d *Descriptor, b *Bindings) {
		i := &DescriptorISO639LanguageAndAudioType{Items: Bound[[]*DescriptorISO639LanguageAndAudioTypeItem](b, "items")}
		if len(i.Items) > 0 {
			i.Language = i.Items[0].Language
			i.Type = i.Items[0].Type
		}
		d.ISO639LanguageAndAudioType = i
	})
}

// DescriptorSystemClock represents a system clock descriptor
type DescriptorSystemClock struct {
	ClockAccuracyExponent  uint8
	ClockAccuracyInteger   uint8
	ExternalClockReference bool
}

var descriptorSystemClockRecord = descriptorRecord("system clock descriptor", DescriptorTagSystemClock,
	Flag("external_clock_reference_indicator", 1),
	Reserved(1),
	Fixed("clock_accuracy_integer", 6),
	Fixed("clock_accuracy_exponent", 3),
	Reserved(5),
)

func newDescriptorSystemClock(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorSystemClockRecord, func(d *Descriptor, b *Bindings) {
		d.SystemClock = &DescriptorSystemClock{
			ClockAccuracyExponent:  uint8(b.Uint("clock_accuracy_exponent")),
			ClockAccuracyInteger:   uint8(b.Uint("clock_accuracy_integer")),
			ExternalClockReference: b.Bool("external_clock_reference_indicator"),
		}
	})
}

// DescriptorMultiplexBufferUtilization represents a multiplex buffer utilization descriptor
type DescriptorMultiplexBufferUtilization struct {
	BoundValid          bool
	LTWOffsetLowerBound uint16
	LTWOffsetUpperBound uint16
}

var descriptorMultiplexBufferUtilizationRecord = descriptorRecord("multiplex buffer utilization descriptor", DescriptorTagMultiplexBufferUtilization,
	Flag("bound_valid_flag", 1),
	Fixed("ltw_offset_lower_bound", 15),
	Reserved(1),
	Fixed("ltw_offset_upper_bound", 15),
)

func newDescriptorMultiplexBufferUtilization(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorMultiplexBufferUtilizationRecord, func(d *Descriptor, b *Bindings) {
		d.MultiplexBufferUtilization = &DescriptorMultiplexBufferUtilization{
			BoundValid:          b.Bool("bound_valid_flag"),
			LTWOffsetLowerBound: uint16(b.Uint("ltw_offset_lower_bound")),
			LTWOffsetUpperBound: uint16(b.Uint("ltw_offset_upper_bound")),
		}
	})
}

// DescriptorCopyright represents a copyright descriptor
type DescriptorCopyright struct {
	AdditionalCopyrightInfo []byte
	CopyrightIdentifier     uint32
}

var descriptorCopyrightRecord = descriptorRecord("copyright descriptor", DescriptorTagCopyright,
	Fixed("copyright_identifier", 32),
	BytesToEnd("additional_copyright_info", DescriptorFraming),
)

func newDescriptorCopyright(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorCopyrightRecord, func(d *Descriptor, b *Bindings) {
		d.Copyright = &DescriptorCopyright{
			AdditionalCopyrightInfo: b.Bytes("additional_copyright_info"),
			CopyrightIdentifier:     uint32(b.Uint("copyright_identifier")),
		}
	})
}

// DescriptorMaximumBitrate represents a maximum bitrate descriptor
type DescriptorMaximumBitrate struct {
	Bitrate uint32 // In bytes/second
}

var descriptorMaximumBitrateRecord = descriptorRecord("maximum bitrate descriptor", DescriptorTagMaximumBitrate,
	Reserved(2),
	Fixed("maximum_bitrate", 22),
)

func newDescriptorMaximumBitrate(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorMaximumBitrateRecord, func(d *Descriptor, b *Bindings) {
		// Coded in units of 50 bytes/second
		d.MaximumBitrate = &DescriptorMaximumBitrate{Bitrate: uint32(b.Uint("maximum_bitrate")) * 50}
	})
}

// DescriptorPrivateDataIndicator represents a private data indicator descriptor
type DescriptorPrivateDataIndicator struct {
	PrivateDataIndicator uint32
}

var descriptorPrivateDataIndicatorRecord = descriptorRecord("private data indicator descriptor", DescriptorTagPrivateDataIndicator,
	Fixed("private_data_indicator", 32),
)

func newDescriptorPrivateDataIndicator(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorPrivateDataIndicatorRecord, func(d *Descriptor, b *Bindings) {
		d.PrivateDataIndicator = &DescriptorPrivateDataIndicator{PrivateDataIndicator: uint32(b.Uint("private_data_indicator"))}
	})
}

// DescriptorSmoothingBuffer represents a smoothing buffer descriptor
type DescriptorSmoothingBuffer struct {
	SBLeakRate uint32 // In units of 400 bits/second
	SBSize     uint32 // In bytes
}

var descriptorSmoothingBufferRecord = descriptorRecord("smoothing buffer descriptor", DescriptorTagSmoothingBuffer,
	Reserved(2),
	Fixed("sb_leak_rate", 22),
	Reserved(2),
	Fixed("sb_size", 22),
)

func newDescriptorSmoothingBuffer(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorSmoothingBufferRecord, func(d *Descriptor, b *Bindings) {
		d.SmoothingBuffer = &DescriptorSmoothingBuffer{
			SBLeakRate: uint32(b.Uint("sb_leak_rate")),
			SBSize:     uint32(b.Uint("sb_size")),
		}
	})
}

// DescriptorSTD represents a STD descriptor
type DescriptorSTD struct {
	LeakValid bool
}

var descriptorSTDRecord = descriptorRecord("STD descriptor", DescriptorTagSTD,
	Reserved(7),
	Flag("leak_valid_flag", 1),
)

func newDescriptorSTD(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorSTDRecord, func(d *Descriptor, b *Bindings) {
		d.STD = &DescriptorSTD{LeakValid: b.Bool("leak_valid_flag")}
	})
}

// DescriptorIBP represents an IBP descriptor
type DescriptorIBP struct {
	ClosedGOP    bool
	IdenticalGOP bool
	MaxGOPLength uint16
}

var descriptorIBPRecord = descriptorRecord("IBP descriptor", DescriptorTagIBP,
	Flag("closed_gop_flag", 1),
	Flag("identical_gop_flag", 1),
	Fixed("max_gop_length", 14),
)

func newDescriptorIBP(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorIBPRecord, func(d *Descriptor, b *Bindings) {
		d.IBP = &DescriptorIBP{
			ClosedGOP:    b.Bool("closed_gop_flag"),
			IdenticalGOP: b.Bool("identical_gop_flag"),
			MaxGOPLength: uint16(b.Uint("max_gop_length")),
		}
	})
}

// DescriptorMPEG4Video represents a MPEG-4 video descriptor
type DescriptorMPEG4Video struct {
	VisualProfileAndLevel uint8
}

var descriptorMPEG4VideoRecord = descriptorRecord("MPEG-4 video descriptor", DescriptorTagMPEG4Video,
	Fixed("mpeg4_visual_profile_and_level", 8),
)

func newDescriptorMPEG4Video(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorMPEG4VideoRecord, func(d *Descriptor, b *Bindings) {
		d.MPEG4Video = &DescriptorMPEG4Video{VisualProfileAndLevel: uint8(b.Uint("mpeg4_visual_profile_and_level"))}
	})
}

// DescriptorMPEG4Audio represents a MPEG-4 audio descriptor
type DescriptorMPEG4Audio struct {
	AudioProfileAndLevel uint8
}

var descriptorMPEG4AudioRecord = descriptorRecord("MPEG-4 audio descriptor", DescriptorTagMPEG4Audio,
	Fixed("mpeg4_audio_profile_and_level", 8),
)

func newDescriptorMPEG4Audio(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorMPEG4AudioRecord, func(d *Descriptor, b *Bindings) {
		d.MPEG4Audio = &DescriptorMPEG4Audio{AudioProfileAndLevel: uint8(b.Uint("mpeg4_audio_profile_and_level"))}
	})
}

// DescriptorIOD represents an IOD descriptor
type DescriptorIOD struct {
	InitialObjectDescriptor []byte
	IODLabel                uint8
	ScopeOfIODLabel         uint8
}

var descriptorIODRecord = descriptorRecord("IOD descriptor", DescriptorTagIOD,
	Fixed("scope_of_iod_label", 8),
	Fixed("iod_label", 8),
	BytesToEnd("initial_object_descriptor", DescriptorFraming),
)

func newDescriptorIOD(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorIODRecord, func(d *Descriptor, b *Bindings) {
		d.IOD = &DescriptorIOD{
			InitialObjectDescriptor: b.Bytes("initial_object_descriptor"),
			IODLabel:                uint8(b.Uint("iod_label")),
			ScopeOfIODLabel:         uint8(b.Uint("scope_of_iod_label")),
		}
	})
}

// DescriptorSL represents a SL descriptor
type DescriptorSL struct {
	ESID uint16
}

var descriptorSLRecord = descriptorRecord("SL descriptor", DescriptorTagSL,
	Fixed("es_id", 16),
)

func newDescriptorSL(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorSLRecord, func(d *Descriptor, b *Bindings) {
		d.SL = &DescriptorSL{ESID: uint16(b.Uint("es_id"))}
	})
}

// DescriptorFMC represents a FMC descriptor
type DescriptorFMC struct {
	Items []*DescriptorFMCItem
}

// DescriptorFMCItem represents a FMC descriptor item
type DescriptorFMCItem struct {
	ESID           uint16
	FlexMuxChannel uint8
}

var descriptorFMCItemRecord = NewRecord("FMC item",
	Fixed("es_id", 16),
	Fixed("flex_mux_channel", 8),
)

func newDescriptorFMCItem(c *Cursor) (*DescriptorFMCItem, error) {
	return decodeRecord(c, descriptorFMCItemRecord, func(b *Bindings) *DescriptorFMCItem {
		return &DescriptorFMCItem{
			ESID:           uint16(b.Uint("es_id")),
			FlexMuxChannel: uint8(b.Uint("flex_mux_channel")),
		}
	})
}

var descriptorFMCRecord = descriptorRecord("FMC descriptor", DescriptorTagFMC,
	RepeatedFixed("items", 24, newDescriptorFMCItem, UntilEnd(DescriptorFraming)),
)

func newDescriptorFMC(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorFMCRecord, func(d *Descriptor, b *Bindings) {
		d.FMC = &DescriptorFMC{Items: Bound[[]*DescriptorFMCItem](b, "items")}
	})
}

// DescriptorExternalESID represents an external ES id descriptor
type DescriptorExternalESID struct {
	ExternalESID uint16
}

var descriptorExternalESIDRecord = descriptorRecord("external ES id descriptor", DescriptorTagExternalESID,
	Fixed("external_es_id", 16),
)

func newDescriptorExternalESID(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorExternalESIDRecord, func(d *Descriptor, b *Bindings) {
		d.ExternalESID = &DescriptorExternalESID{ExternalESID: uint16(b.Uint("external_es_id"))}
	})
}

// DescriptorMuxCode represents a mux code descriptor. Its mux code table entries are kept raw.
type DescriptorMuxCode struct {
	Data []byte
}

var descriptorMuxCodeRecord = descriptorRecord("mux code descriptor", DescriptorTagMuxCode,
	BytesToEnd("data", DescriptorFraming),
)

func newDescriptorMuxCode(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorMuxCodeRecord, func(d *Descriptor, b *Bindings) {
		d.MuxCode = &DescriptorMuxCode{Data: b.Bytes("data")}
	})
}

// DescriptorFmxBufferSize represents a FmxBufferSize descriptor. Its buffer descriptors are kept raw.
type DescriptorFmxBufferSize struct {
	Data []byte
}

var descriptorFmxBufferSizeRecord = descriptorRecord("FmxBufferSize descriptor", DescriptorTagFmxBufferSize,
	BytesToEnd("data", DescriptorFraming),
)

func newDescriptorFmxBufferSize(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorFmxBufferSizeRecord, func(d *Descriptor, b *Bindings) {
		d.FmxBufferSize = &DescriptorFmxBufferSize{Data: b.Bytes("data")}
	})
}

// DescriptorMultiplexBuffer represents a multiplex buffer descriptor
type DescriptorMultiplexBuffer struct {
	MBBufferSize uint32
	TBLeakRate   uint32
}

var descriptorMultiplexBufferRecord = descriptorRecord("multiplex buffer descriptor", DescriptorTagMultiplexBuffer,
	Fixed("mb_buffer_size", 24),
	Fixed("tb_leak_rate", 24),
)

func newDescriptorMultiplexBuffer(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorMultiplexBufferRecord, func(d *Descriptor, b *Bindings) {
		d.MultiplexBuffer = &DescriptorMultiplexBuffer{
			MBBufferSize: uint32(b.Uint("mb_buffer_size")),
			TBLeakRate:   uint32(b.Uint("tb_leak_rate")),
		}
	})
}
