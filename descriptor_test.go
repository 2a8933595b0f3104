package astipsi

import (
	"bytes"
	"testing"
	"time"

	"github.com/asticode/go-astikit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDescriptorStreamIdentifier(t *testing.T) {
	c := NewCursor([]byte{0x52, 0x01, 0x07})
	d, err := DecodeDescriptor(c)
	require.NoError(t, err)
	assert.Equal(t, &Descriptor{
		Length:           1,
		StreamIdentifier: &DescriptorStreamIdentifier{ComponentTag: 7},
		Tag:              DescriptorTagStreamIdentifier,
	}, d)
	assert.Equal(t, int64(24), c.Position())

	// Trailing bytes added by a newer encoder
	c = NewCursor([]byte{0x52, 0x03, 0x07, 0xaa, 0xbb, 0x40})
	d, err = DecodeDescriptor(c)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), d.StreamIdentifier.ComponentTag)
	assert.Equal(t, int64(40), c.Position())

	// Declared length is too small
	_, err = DecodeDescriptor(NewCursor([]byte{0x52, 0x00, 0x07}))
	assert.ErrorIs(t, err, ErrReadTooMuch)
}

func TestDescriptorTagIsVerified(t *testing.T) {
	_, err := newDescriptorStreamIdentifier(NewCursor([]byte{0x53, 0x01, 0x07}))
	assert.ErrorIs(t, err, ErrUnexpectedValue)
}

func TestDescriptorRegistry(t *testing.T) {
	tags := RegisteredDescriptorTags()
	assert.Len(t, tags, 55)
	assert.IsIncreasing(t, tags)
	assert.True(t, DescriptorTagExtension.IsRegistered())
	assert.False(t, DescriptorTag(0x80).IsRegistered())

	// Every tag has a decoder and unlisted ones keep their payload
	for tag := 0; tag < 256; tag++ {
		assert.NotNil(t, descriptorRegistry[tag])
		if DescriptorTag(tag).IsRegistered() {
			continue
		}
		c := NewCursor([]byte{uint8(tag), 0x02, 0xaa, 0xbb})
		d, err := DecodeDescriptor(c)
		require.NoError(t, err)
		assert.Equal(t, &Descriptor{
			Length:  2,
			Tag:     DescriptorTag(tag),
			Unknown: &DescriptorUnknown{Data: []byte{0xaa, 0xbb}},
		}, d)
		assert.Equal(t, int64(32), c.Position())
	}
}

var descriptors = []*Descriptor{
	{
		AC3: &DescriptorAC3{
			AdditionalInfo:   []byte("info"),
			ASVC:             4,
			BSID:             2,
			ComponentType:    1,
			HasASVC:          true,
			HasBSID:          true,
			HasComponentType: true,
			HasMainID:        true,
			MainID:           3,
		},
		Length: 9,
		Tag:    DescriptorTagAC3,
	},
	{
		ISO639LanguageAndAudioType: &DescriptorISO639LanguageAndAudioType{
			Items: []*DescriptorISO639LanguageAndAudioTypeItem{
				{Language: "eng", Type: AudioTypeCleanEffects},
				{Language: "fra", Type: 0},
			},
			Language: "eng",
			Type:     AudioTypeCleanEffects,
		},
		Length: 8,
		Tag:    DescriptorTagISO639LanguageAndAudioType,
	},
	{
		Length:         3,
		MaximumBitrate: &DescriptorMaximumBitrate{Bitrate: 50},
		Tag:            DescriptorTagMaximumBitrate,
	},
	{
		Length:      4,
		NetworkName: &DescriptorNetworkName{Name: "name"},
		Tag:         DescriptorTagNetworkName,
	},
	{
		Length: 18,
		Service: &DescriptorService{
			Name:     "service",
			Provider: "provider",
			Type:     ServiceTypeDigitalTelevisionService,
		},
		Tag: DescriptorTagService,
	},
	{
		Length: 14,
		ShortEvent: &DescriptorShortEvent{
			EventName: "event",
			Language:  "eng",
			Text:      "text",
		},
		Tag: DescriptorTagShortEvent,
	},
	{
		ExtendedEvent: &DescriptorExtendedEvent{
			ISO639LanguageCode: "eng",
			Items: []*DescriptorExtendedEventItem{{
				Content:     "content",
				Description: "description",
			}},
			LastDescriptorNumber: 2,
			Number:               1,
			Text:                 "text",
		},
		Length: 30,
		Tag:    DescriptorTagExtendedEvent,
	},
	{
		Component: &DescriptorComponent{
			ComponentTag:       3,
			ComponentType:      2,
			ISO639LanguageCode: "eng",
			StreamContent:      1,
			StreamContentExt:   0xf,
			Text:               "text",
		},
		Length: 10,
		Tag:    DescriptorTagComponent,
	},
	{
		Content: &DescriptorContent{Items: []*DescriptorContentItem{{
			ContentNibbleLevel1: 1,
			ContentNibbleLevel2: 2,
			UserByte:            3,
		}}},
		Length: 2,
		Tag:    DescriptorTagContent,
	},
	{
		Length: 4,
		ParentalRating: &DescriptorParentalRating{Items: []*DescriptorParentalRatingItem{{
			CountryCode: "fra",
			Rating:      0xc,
		}}},
		Tag: DescriptorTagParentalRating,
	},
	{
		Length: 5,
		Tag:    DescriptorTagTeletext,
		Teletext: &DescriptorTeletext{Items: []*DescriptorTeletextItem{{
			Language: "fra",
			Magazine: 3,
			Page:     45,
			Type:     TeletextTypeInitialTeletextPage,
		}}},
	},
	{
		Length: 13,
		LocalTimeOffset: &DescriptorLocalTimeOffset{Items: []*DescriptorLocalTimeOffsetItem{{
			CountryCode:             "fra",
			CountryRegionID:         1,
			LocalTimeOffset:         time.Hour,
			LocalTimeOffsetPolarity: true,
			NextTimeOffset:          2 * time.Hour,
			TimeOfChange:            dvbTime,
		}}},
		Tag: DescriptorTagLocalTimeOffset,
	},
	{
		Length: 8,
		Subtitling: &DescriptorSubtitling{Items: []*DescriptorSubtitlingItem{{
			AncillaryPageID:   2,
			CompositionPageID: 1,
			Language:          "fra",
			Type:              0x10,
		}}},
		Tag: DescriptorTagSubtitling,
	},
	{
		CAIdentifier: &DescriptorCAIdentifier{CASystemIDs: []uint16{0x100, 0x500}},
		Length:       4,
		Tag:          DescriptorTagCAIdentifier,
	},
	{
		Extension: &DescriptorExtension{
			SupplementaryAudio: &DescriptorExtensionSupplementaryAudio{
				EditorialClassification: 1,
				HasLanguageCode:         true,
				LanguageCode:            "fra",
				MixType:                 true,
				PrivateData:             []byte("pv"),
			},
			Tag: DescriptorTagExtensionSupplementaryAudio,
		},
		Length: 7,
		Tag:    DescriptorTagExtension,
	},
	{
		Extension: &DescriptorExtension{
			Tag:     0x20,
			Unknown: []byte{0xaa, 0xbb},
		},
		Length: 3,
		Tag:    DescriptorTagExtension,
	},
	{
		Length: 1,
		Tag:    DescriptorTagVideoStream,
		VideoStream: &DescriptorVideoStream{
			FrameRateCode:     3,
			MPEG1Only:         true,
			MultipleFrameRate: true,
			StillPicture:      true,
		},
	},
	{
		Length: 3,
		Tag:    DescriptorTagVideoStream,
		VideoStream: &DescriptorVideoStream{
			Extension: &DescriptorVideoStreamExtension{
				ChromaFormat:              1,
				FrameRateExtension:        true,
				ProfileAndLevelIndication: 0x48,
			},
			FrameRateCode:     3,
			MultipleFrameRate: true,
			StillPicture:      true,
		},
	},
	{
		Length: 11,
		SatelliteDeliverySystem: &DescriptorSatelliteDeliverySystem{
			FECInner:         3,
			Frequency:        1175000,
			ModulationSystem: true,
			ModulationType:   1,
			OrbitalPosition:  192,
			Polarization:     1,
			SymbolRate:       275000,
			WestEastFlag:     true,
		},
		Tag: DescriptorTagSatelliteDeliverySystem,
	},
	{
		CA: &DescriptorCA{
			CAPID:       0x101,
			CASystemID:  0x100,
			PrivateData: []byte("pd"),
		},
		Length: 6,
		Tag:    DescriptorTagCA,
	},
	{
		Length: 6,
		Registration: &DescriptorRegistration{
			AdditionalIdentificationInfo: []byte("ab"),
			FormatIdentifier:             0x43554549,
		},
		Tag: DescriptorTagRegistration,
	},
	{
		DataBroadcastID: &DescriptorDataBroadcastID{
			DataBroadcastID: 0x123,
			IDSelector:      []byte("xy"),
		},
		Length: 4,
		Tag:    DescriptorTagDataBroadcastID,
	},
	{
		Length:  2,
		Tag:     0x80,
		Unknown: &DescriptorUnknown{Data: []byte{0xaa, 0xbb}},
	},
}

func descriptorsBytes(w *astikit.BitsWriter) {
	// AC3
	w.Write(uint8(DescriptorTagAC3)) // Tag
	w.Write(uint8(9))                // Length
	w.Write("1")                     // Component type flag
	w.Write("1")                     // BSID flag
	w.Write("1")                     // MainID flag
	w.Write("1")                     // ASVC flag
	w.Write("0000")                  // Reserved flags
	w.Write(uint8(1))                // Component type
	w.Write(uint8(2))                // BSID
	w.Write(uint8(3))                // MainID
	w.Write(uint8(4))                // ASVC
	w.Write([]byte("info"))          // Additional info
	// ISO639 language and audio type
	w.Write(uint8(DescriptorTagISO639LanguageAndAudioType)) // Tag
	w.Write(uint8(8))                                       // Length
	w.Write([]byte("eng"))                                  // Language #1
	w.Write(uint8(AudioTypeCleanEffects))                   // Audio type #1
	w.Write([]byte("fra"))                                  // Language #2
	w.Write(uint8(0))                                       // Audio type #2
	// Maximum bitrate
	w.Write(uint8(DescriptorTagMaximumBitrate)) // Tag
	w.Write(uint8(3))                           // Length
	w.Write("11")                               // Reserved
	w.Write("0000000000000000000001")           // Maximum bitrate
	// Network name
	w.Write(uint8(DescriptorTagNetworkName)) // Tag
	w.Write(uint8(4))                        // Length
	w.Write([]byte("name"))                  // Name
	// Service
	w.Write(uint8(DescriptorTagService))                // Tag
	w.Write(uint8(18))                                  // Length
	w.Write(uint8(ServiceTypeDigitalTelevisionService)) // Type
	w.Write(uint8(8))                                   // Provider name length
	w.Write([]byte("provider"))                         // Provider name
	w.Write(uint8(7))                                   // Service name length
	w.Write([]byte("service"))                          // Service name
	// Short event
	w.Write(uint8(DescriptorTagShortEvent)) // Tag
	w.Write(uint8(14))                      // Length
	w.Write([]byte("eng"))                  // Language code
	w.Write(uint8(5))                       // Event name length
	w.Write([]byte("event"))                // Event name
	w.Write(uint8(4))                       // Text length
	w.Write([]byte("text"))                 // Text
	// Extended event
	w.Write(uint8(DescriptorTagExtendedEvent)) // Tag
	w.Write(uint8(30))                         // Length
	w.Write("0001")                            // Number
	w.Write("0010")                            // Last descriptor number
	w.Write([]byte("eng"))                     // Language code
	w.Write(uint8(20))                         // Length of items
	w.Write(uint8(11))                         // Item #1 description length
	w.Write([]byte("description"))             // Item #1 description
	w.Write(uint8(7))                          // Item #1 content length
	w.Write([]byte("content"))                 // Item #1 content
	w.Write(uint8(4))                          // Text length
	w.Write([]byte("text"))                    // Text
	// Component
	w.Write(uint8(DescriptorTagComponent)) // Tag
	w.Write(uint8(10))                     // Length
	w.Write("1111")                        // Stream content ext
	w.Write("0001")                        // Stream content
	w.Write(uint8(2))                      // Component type
	w.Write(uint8(3))                      // Component tag
	w.Write([]byte("eng"))                 // Language code
	w.Write([]byte("text"))                // Text
	// Content
	w.Write(uint8(DescriptorTagContent)) // Tag
	w.Write(uint8(2))                    // Length
	w.Write("0001")                      // Item #1 content nibble level 1
	w.Write("0010")                      // Item #1 content nibble level 2
	w.Write(uint8(3))                    // Item #1 user byte
	// Parental rating
	w.Write(uint8(DescriptorTagParentalRating)) // Tag
	w.Write(uint8(4))                           // Length
	w.Write([]byte("fra"))                      // Item #1 country code
	w.Write(uint8(0xc))                         // Item #1 rating
	// Teletext
	w.Write(uint8(DescriptorTagTeletext)) // Tag
	w.Write(uint8(5))                     // Length
	w.Write([]byte("fra"))                // Item #1 language
	w.Write("00001")                      // Item #1 type
	w.Write("011")                        // Item #1 magazine
	w.Write(uint8(0x45))                  // Item #1 page
	// Local time offset
	w.Write(uint8(DescriptorTagLocalTimeOffset)) // Tag
	w.Write(uint8(13))                           // Length
	w.Write([]byte("fra"))                       // Item #1 country code
	w.Write("000001")                            // Item #1 country region ID
	w.Write("1")                                 // Item #1 reserved
	w.Write("1")                                 // Item #1 local time offset polarity
	w.Write([]byte{0x01, 0x00})                  // Item #1 local time offset
	w.Write(dvbTimeBytes)                        // Item #1 time of change
	w.Write([]byte{0x02, 0x00})                  // Item #1 next time offset
	// Subtitling
	w.Write(uint8(DescriptorTagSubtitling)) // Tag
	w.Write(uint8(8))                       // Length
	w.Write([]byte("fra"))                  // Item #1 language
	w.Write(uint8(0x10))                    // Item #1 type
	w.Write(uint16(1))                      // Item #1 composition page
	w.Write(uint16(2))                      // Item #1 ancillary page
	// CA identifier
	w.Write(uint8(DescriptorTagCAIdentifier)) // Tag
	w.Write(uint8(4))                         // Length
	w.Write(uint16(0x100))                    // CA system ID #1
	w.Write(uint16(0x500))                    // CA system ID #2
	// Supplementary audio extension
	w.Write(uint8(DescriptorTagExtension))                   // Tag
	w.Write(uint8(7))                                        // Length
	w.Write(uint8(DescriptorTagExtensionSupplementaryAudio)) // Extension tag
	w.Write("1")                                             // Mix type
	w.Write("00001")                                         // Editorial classification
	w.Write("1")                                             // Reserved
	w.Write("1")                                             // Language code present
	w.Write([]byte("fra"))                                   // Language code
	w.Write([]byte("pv"))                                    // Private data
	// Unlisted extension
	w.Write(uint8(DescriptorTagExtension)) // Tag
	w.Write(uint8(3))                      // Length
	w.Write(uint8(0x20))                   // Extension tag
	w.Write([]byte{0xaa, 0xbb})            // Selector
	// MPEG-1 only video stream
	w.Write(uint8(DescriptorTagVideoStream)) // Tag
	w.Write(uint8(1))                        // Length
	w.Write("1")                             // Multiple frame rate
	w.Write("0011")                          // Frame rate code
	w.Write("1")                             // MPEG-1 only
	w.Write("0")                             // Constrained parameter
	w.Write("1")                             // Still picture
	// Video stream
	w.Write(uint8(DescriptorTagVideoStream)) // Tag
	w.Write(uint8(3))                        // Length
	w.Write("1")                             // Multiple frame rate
	w.Write("0011")                          // Frame rate code
	w.Write("0")                             // MPEG-1 only
	w.Write("0")                             // Constrained parameter
	w.Write("1")                             // Still picture
	w.Write(uint8(0x48))                     // Profile and level indication
	w.Write("01")                            // Chroma format
	w.Write("1")                             // Frame rate extension
	w.Write("11111")                         // Reserved
	// Satellite delivery system
	w.Write(uint8(DescriptorTagSatelliteDeliverySystem)) // Tag
	w.Write(uint8(11))                                   // Length
	w.Write(uint32(0x01175000))                          // Frequency
	w.Write(uint16(0x0192))                              // Orbital position
	w.Write("1")                                         // West east flag
	w.Write("01")                                        // Polarization
	w.Write("00")                                        // Roll off
	w.Write("1")                                         // Modulation system
	w.Write("01")                                        // Modulation type
	w.Write(uint32(0x02750003))                          // Symbol rate and FEC inner
	// CA
	w.Write(uint8(DescriptorTagCA)) // Tag
	w.Write(uint8(6))               // Length
	w.Write(uint16(0x100))          // CA system ID
	w.Write("111")                  // Reserved
	w.WriteN(uint16(0x101), 13)     // CA PID
	w.Write([]byte("pd"))           // Private data
	// Registration
	w.Write(uint8(DescriptorTagRegistration)) // Tag
	w.Write(uint8(6))                         // Length
	w.Write([]byte("CUEI"))                   // Format identifier
	w.Write([]byte("ab"))                     // Additional identification info
	// Data broadcast ID
	w.Write(uint8(DescriptorTagDataBroadcastID)) // Tag
	w.Write(uint8(4))                            // Length
	w.Write(uint16(0x123))                       // Data broadcast ID
	w.Write([]byte("xy"))                        // ID selector
	// Unlisted
	w.Write(uint8(0x80))        // Tag
	w.Write(uint8(2))           // Length
	w.Write([]byte{0xaa, 0xbb}) // Data
}

func TestParseDescriptors(t *testing.T) {
	buf := &bytes.Buffer{}
	descriptorsBytes(astikit.NewBitsWriter(astikit.BitsWriterOptions{Writer: buf}))
	ds, err := ParseDescriptors(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, ds, len(descriptors))
	for idx, d := range descriptors {
		assert.Equal(t, d, ds[idx], "descriptor #%d", idx)
	}
	assert.Equal(t, 15, ds[9].ParentalRating.Items[0].MinimumAge())

	// Truncated
	_, err = ParseDescriptors(buf.Bytes()[:buf.Len()-1])
	assert.ErrorIs(t, err, ErrOutOfData)
}

func TestParseDescriptor(t *testing.T) {
	d, err := ParseDescriptor([]byte{0x40, 0x04, 'n', 'a', 'm', 'e', 0xff})
	require.NoError(t, err)
	assert.Equal(t, "name", d.NetworkName.Name)

	_, err = ParseDescriptor(nil)
	assert.ErrorIs(t, err, ErrOutOfData)
}

func BenchmarkParseDescriptors(b *testing.B) {
	b.ReportAllocs()
	buf := &bytes.Buffer{}
	descriptorsBytes(astikit.NewBitsWriter(astikit.BitsWriterOptions{Writer: buf}))
	bs := buf.Bytes()
	for i := 0; i < b.N; i++ {
		ParseDescriptors(bs) //nolint:errcheck
	}
}
