package main

import (
	"fmt"
	"strings"

	"github.com/asticode/go-astipsi"
)

func toString(r interface{}) string {
	switch v := r.(type) {
	case *astipsi.PSISection:
		return sectionToString(v)
	case *astipsi.PSIData:
		var os []string
		for idx, s := range v.Sections {
			os = append(os, fmt.Sprintf("#%d %s", idx+1, sectionToString(s)))
		}
		return fmt.Sprintf("PSI data | pointer field: %d\n", v.PointerField) + strings.Join(os, "\n")
	case []*astipsi.Descriptor:
		return descriptorsToString("", v)
	case string:
		return v
	}
	return fmt.Sprintf("%+v", r)
}

func sectionToString(s *astipsi.PSISection) string {
	o := fmt.Sprintf("%s (0x%x) | length: %d", s.Header.TableType, uint8(s.Header.TableID), s.Header.SectionLength)
	if h := s.Syntax.Header; h != nil {
		o += fmt.Sprintf(" | extension: %d | version: %d | section: %d/%d", h.TableIDExtension, h.VersionNumber, h.SectionNumber, h.LastSectionNumber)
	}
	if s.Header.TableID.IsRegistered() && s.Header.TableID != astipsi.PSITableTypeIdTDT {
		o += fmt.Sprintf(" | crc32: 0x%08x", s.CRC32)
	}

	d := s.Syntax.Data
	switch {
	case d.PAT != nil:
		o += fmt.Sprintf("\n  Transport Stream ID: %d", d.PAT.TransportStreamID)
		for _, p := range d.PAT.Programs {
			if p.IsNetworkPID() {
				o += fmt.Sprintf("\n  * NIT PID: %d", p.NetworkPID)
				continue
			}
			o += fmt.Sprintf("\n  * Program %d - Map ID: %d", p.ProgramNumber, p.ProgramMapID)
		}
	case d.CAT != nil:
		o += descriptorsToString("  ", d.CAT.Descriptors)
	case d.PMT != nil:
		o += fmt.Sprintf("\n  Program number: %d | PCR PID: %d", d.PMT.ProgramNumber, d.PMT.PCRPID)
		o += descriptorsToString("  ", d.PMT.ProgramDescriptors)
		for _, es := range d.PMT.ElementaryStreams {
			o += fmt.Sprintf("\n  * [%d] - Type: %s", es.ElementaryPID, streamTypeToString(es.StreamType))
			o += descriptorsToString("    ", es.ElementaryStreamDescriptors)
		}
	case d.NIT != nil:
		o += fmt.Sprintf("\n  Network ID: %d", d.NIT.NetworkID)
		o += descriptorsToString("  ", d.NIT.NetworkDescriptors)
		for _, ts := range d.NIT.TransportStreams {
			o += fmt.Sprintf("\n  * Transport stream %d - Original network ID: %d", ts.TransportStreamID, ts.OriginalNetworkID)
			o += descriptorsToString("    ", ts.TransportDescriptors)
		}
	case d.SDT != nil:
		o += fmt.Sprintf("\n  Transport Stream ID: %d | Original network ID: %d", d.SDT.TransportStreamID, d.SDT.OriginalNetworkID)
		for _, sv := range d.SDT.Services {
			o += fmt.Sprintf("\n  * Service %d - status: %s", sv.ServiceID, runningStatusToString(sv.RunningStatus))
			o += descriptorsToString("    ", sv.Descriptors)
		}
	case d.EIT != nil:
		o += fmt.Sprintf("\n  Service ID: %d", d.EIT.ServiceID)
		for idx, e := range d.EIT.Events {
			o += "\n" + eventToString(idx, e)
		}
	case d.TDT != nil:
		o += fmt.Sprintf("\n  UTC time: %s", d.TDT.UTCTime)
	case d.TOT != nil:
		o += fmt.Sprintf("\n  UTC time: %s", d.TOT.UTCTime)
		o += descriptorsToString("  ", d.TOT.Descriptors)
	case d.Unknown != nil:
		o += fmt.Sprintf("\n  %d unparsed bytes", len(d.Unknown.Data))
	}
	return o
}

func streamTypeToString(t uint8) string {
	switch t {
	case astipsi.StreamTypeMPEG1Video:
		return "MPEG-1 video"
	case astipsi.StreamTypeMPEG2Video:
		return "MPEG-2 video"
	case astipsi.StreamTypeMPEG1Audio:
		return "MPEG-1 audio"
	case astipsi.StreamTypeMPEG2HalvedSampleRateAudio:
		return "MPEG-2 halved sample rate audio"
	case astipsi.StreamTypeMPEG2PacketizedData:
		return "DVB subtitles/VBI or AC-3"
	case astipsi.StreamTypeADTS:
		return "ADTS"
	case astipsi.StreamTypeLowerBitrateVideo:
		return "H264 video"
	case astipsi.StreamTypeH265Video:
		return "H265 video"
	}
	return fmt.Sprintf("unlisted stream type %d", t)
}

func eventToString(idx int, e *astipsi.EITDataEvent) string {
	s := fmt.Sprintf("  - #%d | id: %d | start: %s | duration: %s | status: %s", idx+1, e.EventID, e.StartTime.Format("2006-01-02 15:04:05"), e.Duration, runningStatusToString(e.RunningStatus))
	return s + descriptorsToString("    ", e.Descriptors)
}

func runningStatusToString(s uint8) string {
	switch s {
	case astipsi.RunningStatusNotRunning:
		return "not running"
	case astipsi.RunningStatusStartsInAFewSeconds:
		return "starts in a few seconds"
	case astipsi.RunningStatusPausing:
		return "pausing"
	case astipsi.RunningStatusRunning:
		return "running"
	case astipsi.RunningStatusServiceOffAir:
		return "service off-air"
	}
	return "undefined"
}

func descriptorsToString(indent string, ds []*astipsi.Descriptor) (o string) {
	for _, d := range ds {
		o += "\n" + indent + "- " + descriptorToString(d)
	}
	return
}

func descriptorToString(d *astipsi.Descriptor) string {
	switch d.Tag {
	case astipsi.DescriptorTagAC3:
		return fmt.Sprintf("[AC3] ac3 asvc: %d | bsid: %d | component type: %d | mainid: %d | info: %x", d.AC3.ASVC, d.AC3.BSID, d.AC3.ComponentType, d.AC3.MainID, d.AC3.AdditionalInfo)
	case astipsi.DescriptorTagComponent:
		return fmt.Sprintf("[Component] language: %s | text: %s | component tag: %d | component type: %d | stream content: %d | stream content ext: %d", d.Component.ISO639LanguageCode, d.Component.Text, d.Component.ComponentTag, d.Component.ComponentType, d.Component.StreamContent, d.Component.StreamContentExt)
	case astipsi.DescriptorTagContent:
		var os []string
		for _, i := range d.Content.Items {
			os = append(os, fmt.Sprintf("content nibble 1: %d | content nibble 2: %d | user byte: %d", i.ContentNibbleLevel1, i.ContentNibbleLevel2, i.UserByte))
		}
		return "[Content] " + strings.Join(os, " - ")
	case astipsi.DescriptorTagExtendedEvent:
		s := fmt.Sprintf("[Extended event] language: %s | text: %s", d.ExtendedEvent.ISO639LanguageCode, d.ExtendedEvent.Text)
		for _, i := range d.ExtendedEvent.Items {
			s += fmt.Sprintf(" | %s: %s", i.Description, i.Content)
		}
		return s
	case astipsi.DescriptorTagISO639LanguageAndAudioType:
		var os []string
		for _, i := range d.ISO639LanguageAndAudioType.Items {
			os = append(os, fmt.Sprintf("language: %s | audio type: %d", i.Language, i.Type))
		}
		return "[ISO639 language and audio type] " + strings.Join(os, " - ")
	case astipsi.DescriptorTagMaximumBitrate:
		return fmt.Sprintf("[Maximum bitrate] maximum bitrate: %d", d.MaximumBitrate.Bitrate)
	case astipsi.DescriptorTagNetworkName:
		return fmt.Sprintf("[Network name] network name: %s", d.NetworkName.Name)
	case astipsi.DescriptorTagParentalRating:
		var os []string
		for _, i := range d.ParentalRating.Items {
			os = append(os, fmt.Sprintf("country: %s | rating: %d | minimum age: %d", i.CountryCode, i.Rating, i.MinimumAge()))
		}
		return "[Parental rating] " + strings.Join(os, " - ")
	case astipsi.DescriptorTagService:
		return fmt.Sprintf("[Service] service %s | provider: %s | type: %d", d.Service.Name, d.Service.Provider, d.Service.Type)
	case astipsi.DescriptorTagShortEvent:
		return fmt.Sprintf("[Short event] language: %s | name: %s | text: %s", d.ShortEvent.Language, d.ShortEvent.EventName, d.ShortEvent.Text)
	case astipsi.DescriptorTagStreamIdentifier:
		return fmt.Sprintf("[Stream identifier] stream identifier component tag: %d", d.StreamIdentifier.ComponentTag)
	case astipsi.DescriptorTagSubtitling:
		var os []string
		for _, i := range d.Subtitling.Items {
			os = append(os, fmt.Sprintf("subtitling composition page: %d | ancillary page %d: %s", i.CompositionPageID, i.AncillaryPageID, i.Language))
		}
		return "[Subtitling] " + strings.Join(os, " - ")
	case astipsi.DescriptorTagTeletext:
		var os []string
		for _, t := range d.Teletext.Items {
			os = append(os, fmt.Sprintf("Teletext page %01d%02d: %s", t.Magazine, t.Page, t.Language))
		}
		return "[Teletext] " + strings.Join(os, " - ")
	}
	if d.Unknown != nil {
		return fmt.Sprintf("unlisted descriptor tag 0x%x", uint8(d.Tag))
	}
	return fmt.Sprintf("descriptor tag 0x%x (%d bytes)", uint8(d.Tag), d.Length)
}
