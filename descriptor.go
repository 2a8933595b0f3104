package astipsi

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// DescriptorTag is the first byte of a descriptor
type DescriptorTag uint8

// Descriptor tags
// Chapter: 2.6 | Link: ISO/IEC 13818-1
const (
	DescriptorTagVideoStream                DescriptorTag = 0x2
	DescriptorTagAudioStream                DescriptorTag = 0x3
	DescriptorTagHierarchy                  DescriptorTag = 0x4
	DescriptorTagRegistration               DescriptorTag = 0x5
	DescriptorTagDataStreamAlignment        DescriptorTag = 0x6
	DescriptorTagTargetBackgroundGrid       DescriptorTag = 0x7
	DescriptorTagVideoWindow                DescriptorTag = 0x8
	DescriptorTagCA                         DescriptorTag = 0x9
	DescriptorTagISO639LanguageAndAudioType DescriptorTag = 0xa
	DescriptorTagSystemClock                DescriptorTag = 0xb
	DescriptorTagMultiplexBufferUtilization DescriptorTag = 0xc
	DescriptorTagCopyright                  DescriptorTag = 0xd
	DescriptorTagMaximumBitrate             DescriptorTag = 0xe
	DescriptorTagPrivateDataIndicator       DescriptorTag = 0xf
	DescriptorTagSmoothingBuffer            DescriptorTag = 0x10
	DescriptorTagSTD                        DescriptorTag = 0x11
	DescriptorTagIBP                        DescriptorTag = 0x12
	DescriptorTagMPEG4Video                 DescriptorTag = 0x1b
	DescriptorTagMPEG4Audio                 DescriptorTag = 0x1c
	DescriptorTagIOD                        DescriptorTag = 0x1d
	DescriptorTagSL                         DescriptorTag = 0x1e
	DescriptorTagFMC                        DescriptorTag = 0x1f
	DescriptorTagExternalESID               DescriptorTag = 0x20
	DescriptorTagMuxCode                    DescriptorTag = 0x21
	DescriptorTagFmxBufferSize              DescriptorTag = 0x22
	DescriptorTagMultiplexBuffer            DescriptorTag = 0x23
)

// Descriptor tags
// Chapter: 6.1 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
const (
	DescriptorTagNetworkName               DescriptorTag = 0x40
	DescriptorTagSatelliteDeliverySystem   DescriptorTag = 0x43
	DescriptorTagCableDeliverySystem       DescriptorTag = 0x44
	DescriptorTagBouquetName               DescriptorTag = 0x47
	DescriptorTagService                   DescriptorTag = 0x48
	DescriptorTagCountryAvailability       DescriptorTag = 0x49
	DescriptorTagShortEvent                DescriptorTag = 0x4d
	DescriptorTagExtendedEvent             DescriptorTag = 0x4e
	DescriptorTagComponent                 DescriptorTag = 0x50
	DescriptorTagStreamIdentifier          DescriptorTag = 0x52
	DescriptorTagCAIdentifier              DescriptorTag = 0x53
	DescriptorTagContent                   DescriptorTag = 0x54
	DescriptorTagParentalRating            DescriptorTag = 0x55
	DescriptorTagTeletext                  DescriptorTag = 0x56
	DescriptorTagLocalTimeOffset           DescriptorTag = 0x58
	DescriptorTagSubtitling                DescriptorTag = 0x59
	DescriptorTagTerrestrialDeliverySystem DescriptorTag = 0x5a
	DescriptorTagDataBroadcast             DescriptorTag = 0x64
	DescriptorTagDataBroadcastID           DescriptorTag = 0x66
	DescriptorTagDSNG                      DescriptorTag = 0x68
	DescriptorTagAC3                       DescriptorTag = 0x6a
	DescriptorTagAncillaryData             DescriptorTag = 0x6b
	DescriptorTagCellList                  DescriptorTag = 0x6c
	DescriptorTagCellFrequencyLink         DescriptorTag = 0x6d
	DescriptorTagAnnouncementSupport       DescriptorTag = 0x6e
	DescriptorTagAdaptationFieldData       DescriptorTag = 0x70
	DescriptorTagS2SatelliteDeliverySystem DescriptorTag = 0x79
	DescriptorTagEnhancedAC3               DescriptorTag = 0x7a
	DescriptorTagExtension                 DescriptorTag = 0x7f
)

// Descriptor represents a descriptor. Exactly one of the typed fields is set: the one matching the tag, or Unknown
// when the tag is not listed.
type Descriptor struct {
	AC3                        *DescriptorAC3
	AdaptationFieldData        *DescriptorAdaptationFieldData
	AncillaryData              *DescriptorAncillaryData
	AnnouncementSupport        *DescriptorAnnouncementSupport
	AudioStream                *DescriptorAudioStream
	BouquetName                *DescriptorBouquetName
	CA                         *DescriptorCA
	CAIdentifier               *DescriptorCAIdentifier
	CableDeliverySystem        *DescriptorCableDeliverySystem
	CellFrequencyLink          *DescriptorCellFrequencyLink
	CellList                   *DescriptorCellList
	Component                  *DescriptorComponent
	Content                    *DescriptorContent
	Copyright                  *DescriptorCopyright
	CountryAvailability        *DescriptorCountryAvailability
	DSNG                       *DescriptorDSNG
	DataBroadcast              *DescriptorDataBroadcast
	DataBroadcastID            *DescriptorDataBroadcastID
	DataStreamAlignment        *DescriptorDataStreamAlignment
	EnhancedAC3                *DescriptorEnhancedAC3
	ExtendedEvent              *DescriptorExtendedEvent
	Extension                  *DescriptorExtension
	ExternalESID               *DescriptorExternalESID
	FMC                        *DescriptorFMC
	FmxBufferSize              *DescriptorFmxBufferSize
	Hierarchy                  *DescriptorHierarchy
	IBP                        *DescriptorIBP
	IOD                        *DescriptorIOD
	ISO639LanguageAndAudioType *DescriptorISO639LanguageAndAudioType
	Length                     uint8
	LocalTimeOffset            *DescriptorLocalTimeOffset
	MPEG4Audio                 *DescriptorMPEG4Audio
	MPEG4Video                 *DescriptorMPEG4Video
	MaximumBitrate             *DescriptorMaximumBitrate
	MultiplexBuffer            *DescriptorMultiplexBuffer
	MultiplexBufferUtilization *DescriptorMultiplexBufferUtilization
	MuxCode                    *DescriptorMuxCode
	NetworkName                *DescriptorNetworkName
	ParentalRating             *DescriptorParentalRating
	PrivateDataIndicator       *DescriptorPrivateDataIndicator
	Registration               *DescriptorRegistration
	S2SatelliteDeliverySystem  *DescriptorS2SatelliteDeliverySystem
	SL                         *DescriptorSL
	STD                        *DescriptorSTD
	SatelliteDeliverySystem    *DescriptorSatelliteDeliverySystem
	Service                    *DescriptorService
	ShortEvent                 *DescriptorShortEvent
	SmoothingBuffer            *DescriptorSmoothingBuffer
	StreamIdentifier           *DescriptorStreamIdentifier
	Subtitling                 *DescriptorSubtitling
	SystemClock                *DescriptorSystemClock
	Tag                        DescriptorTag // the tag defines the structure of the contained data following the descriptor length.
	TargetBackgroundGrid       *DescriptorTargetBackgroundGrid
	Teletext                   *DescriptorTeletext
	TerrestrialDeliverySystem  *DescriptorTerrestrialDeliverySystem
	Unknown                    *DescriptorUnknown
	VideoStream                *DescriptorVideoStream
	VideoWindow                *DescriptorVideoWindow
}

type descriptorDecoder func(c *Cursor) (*Descriptor, error)

var descriptorRegistry = [256]descriptorDecoder{
	DescriptorTagVideoStream:                newDescriptorVideoStream,
	DescriptorTagAudioStream:                newDescriptorAudioStream,
	DescriptorTagHierarchy:                  newDescriptorHierarchy,
	DescriptorTagRegistration:               newDescriptorRegistration,
	DescriptorTagDataStreamAlignment:        newDescriptorDataStreamAlignment,
	DescriptorTagTargetBackgroundGrid:       newDescriptorTargetBackgroundGrid,
	DescriptorTagVideoWindow:                newDescriptorVideoWindow,
	DescriptorTagCA:                         newDescriptorCA,
	DescriptorTagISO639LanguageAndAudioType: newDescriptorISO639LanguageAndAudioType,
	DescriptorTagSystemClock:                newDescriptorSystemClock,
	DescriptorTagMultiplexBufferUtilization: newDescriptorMultiplexBufferUtilization,
	DescriptorTagCopyright:                  newDescriptorCopyright,
	DescriptorTagMaximumBitrate:             newDescriptorMaximumBitrate,
	DescriptorTagPrivateDataIndicator:       newDescriptorPrivateDataIndicator,
	DescriptorTagSmoothingBuffer:            newDescriptorSmoothingBuffer,
	DescriptorTagSTD:                        newDescriptorSTD,
	DescriptorTagIBP:                        newDescriptorIBP,
	DescriptorTagMPEG4Video:                 newDescriptorMPEG4Video,
	DescriptorTagMPEG4Audio:                 newDescriptorMPEG4Audio,
	DescriptorTagIOD:                        newDescriptorIOD,
	DescriptorTagSL:                         newDescriptorSL,
	DescriptorTagFMC:                        newDescriptorFMC,
	DescriptorTagExternalESID:               newDescriptorExternalESID,
	DescriptorTagMuxCode:                    newDescriptorMuxCode,
	DescriptorTagFmxBufferSize:              newDescriptorFmxBufferSize,
	DescriptorTagMultiplexBuffer:            newDescriptorMultiplexBuffer,
	DescriptorTagNetworkName:                newDescriptorNetworkName,
	DescriptorTagSatelliteDeliverySystem:    newDescriptorSatelliteDeliverySystem,
	DescriptorTagCableDeliverySystem:        newDescriptorCableDeliverySystem,
	DescriptorTagBouquetName:                newDescriptorBouquetName,
	DescriptorTagService:                    newDescriptorService,
	DescriptorTagCountryAvailability:        newDescriptorCountryAvailability,
	DescriptorTagShortEvent:                 newDescriptorShortEvent,
	DescriptorTagExtendedEvent:              newDescriptorExtendedEvent,
	DescriptorTagComponent:                  newDescriptorComponent,
	DescriptorTagStreamIdentifier:           newDescriptorStreamIdentifier,
	DescriptorTagCAIdentifier:               newDescriptorCAIdentifier,
	DescriptorTagContent:                    newDescriptorContent,
	DescriptorTagParentalRating:             newDescriptorParentalRating,
	DescriptorTagTeletext:                   newDescriptorTeletext,
	DescriptorTagLocalTimeOffset:            newDescriptorLocalTimeOffset,
	DescriptorTagSubtitling:                 newDescriptorSubtitling,
	DescriptorTagTerrestrialDeliverySystem:  newDescriptorTerrestrialDeliverySystem,
	DescriptorTagDataBroadcast:              newDescriptorDataBroadcast,
	DescriptorTagDataBroadcastID:            newDescriptorDataBroadcastID,
	DescriptorTagDSNG:                       newDescriptorDSNG,
	DescriptorTagAC3:                        newDescriptorAC3,
	DescriptorTagAncillaryData:              newDescriptorAncillaryData,
	DescriptorTagCellList:                   newDescriptorCellList,
	DescriptorTagCellFrequencyLink:          newDescriptorCellFrequencyLink,
	DescriptorTagAnnouncementSupport:        newDescriptorAnnouncementSupport,
	DescriptorTagAdaptationFieldData:        newDescriptorAdaptationFieldData,
	DescriptorTagS2SatelliteDeliverySystem:  newDescriptorS2SatelliteDeliverySystem,
	DescriptorTagEnhancedAC3:                newDescriptorEnhancedAC3,
	DescriptorTagExtension:                  newDescriptorExtension,
}

// registeredDescriptorTags lists the tags having a dedicated decoder. It is computed before init fills the
// remaining slots with the opaque decoder.
var registeredDescriptorTags = func() (ts []DescriptorTag) {
	for tag, d := range descriptorRegistry {
		if d != nil {
			ts = append(ts, DescriptorTag(tag))
		}
	}
	slices.Sort(ts)
	return
}()

func init() {
	for tag := range descriptorRegistry {
		if descriptorRegistry[tag] == nil {
			descriptorRegistry[tag] = newDescriptorUnknown
		}
	}
}

// RegisteredDescriptorTags returns the sorted list of tags that don't fall back to the opaque decoder
func RegisteredDescriptorTags() []DescriptorTag {
	return slices.Clone(registeredDescriptorTags)
}

// IsRegistered checks whether the tag has a dedicated decoder
func (t DescriptorTag) IsRegistered() bool {
	_, ok := slices.BinarySearch(registeredDescriptorTags, t)
	return ok
}

// DecodeDescriptor decodes the descriptor at the cursor position, picking the decoder matching its tag
func DecodeDescriptor(c *Cursor) (d *Descriptor, err error) {
	// Peek tag
	var tag uint8
	if tag, err = peekUint[uint8](c, 8); err != nil {
		err = fmt.Errorf("astipsi: peeking descriptor tag failed: %w", err)
		return
	}

	// Decode
	if d, err = descriptorRegistry[tag](c); err != nil {
		err = fmt.Errorf("astipsi: decoding descriptor 0x%x failed: %w", tag, err)
		return
	}
	return
}

// ParseDescriptor parses a single descriptor
func ParseDescriptor(bs []byte) (*Descriptor, error) {
	return DecodeDescriptor(NewCursor(bs))
}

// ParseDescriptors parses descriptors until the end of bs
func ParseDescriptors(bs []byte) (ds []*Descriptor, err error) {
	c := NewCursor(bs)
	for c.BitsLeft() > 0 {
		var d *Descriptor
		if d, err = DecodeDescriptor(c); err != nil {
			err = fmt.Errorf("astipsi: parsing descriptor #%d failed: %w", len(ds), err)
			return
		}
		ds = append(ds, d)
	}
	return
}

// descriptorRecord builds the record of a descriptor: its header, its fields and a skip to its declared end
func descriptorRecord(name string, tag DescriptorTag, fs ...Field) *Record {
	all := make([]Field, 0, len(fs)+3)
	all = append(all, ExpectOneOf("descriptor_tag", 8, uint64(tag)), Fixed("descriptor_length", 8))
	all = append(all, fs...)
	all = append(all, SkipToEnd(DescriptorFraming))
	return NewRecord(name, all...)
}

// decodeDescriptor decodes r and lets fill set the typed field of the descriptor
func decodeDescriptor(c *Cursor, r *Record, fill func(d *Descriptor, b *Bindings)) (*Descriptor, error) {
	return decodeRecord(c, r, func(b *Bindings) *Descriptor {
		d := &Descriptor{
			Length: uint8(b.Uint("descriptor_length")),
			Tag:    DescriptorTag(b.Uint("descriptor_tag")),
		}
		fill(d, b)
		return d
	})
}

// DescriptorUnknown represents a descriptor whose tag is not listed. Its payload is kept as is.
type DescriptorUnknown struct {
	Data []byte
}

var descriptorUnknownRecord = NewRecord("unknown descriptor",
	Fixed("descriptor_tag", 8),
	Fixed("descriptor_length", 8),
	Bytes("data", "descriptor_length"),
	SkipToEnd(DescriptorFraming),
)

func newDescriptorUnknown(c *Cursor) (*Descriptor, error) {
	return decodeDescriptor(c, descriptorUnknownRecord, func(d *Descriptor, b *Bindings) {
		logger.Debugf("astipsi: unlisted descriptor tag 0x%x", d.Tag)
		d.Unknown = &DescriptorUnknown{Data: b.Bytes("data")}
	})
}
