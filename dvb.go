package astipsi

import (
	"fmt"
	"time"
)

// decodeDVBTime decodes a DVB time
// This field is coded as 16 bits giving the 16 LSBs of MJD
// followed by 24 bits coded as 6 digits in 4 - bit Binary
// Coded Decimal (BCD). If the start time is undefined
// (e.g. for an event in a NVOD reference service)
// all bits of the field are set to "1".
//
// Page: 160 | Annex C | Link:
// https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
func decodeDVBTime(c *Cursor) (time.Time, error) {
	// Date
	mjd, err := readUint[uint16](c, 16)
	if err != nil {
		return time.Time{}, fmt.Errorf("astipsi: reading MJD failed: %w", err)
	}
	yt := int((float32(mjd) - 15078.2) / 365.25)
	mt := int((float64(mjd) - 14956.1 - float64(uint16(float64(yt)*365.25))) / 30.6001)
	d := int(mjd - 14956 - uint16(float64(yt)*365.25) - uint16(float64(mt)*30.6001))
	var k int
	if mt == 14 || mt == 15 {
		k = 1
	}
	y := yt + k
	m := mt - 1 - k*12

	t := time.Date(1900+y, time.Month(m), d, 0, 0, 0, 0, time.UTC)

	s, err := decodeDVBDurationSeconds(c)
	if err != nil {
		return time.Time{}, fmt.Errorf("astipsi: decoding DVB duration seconds failed: %w", err)
	}
	return t.Add(s), nil
}

// decodeDVBDurationMinutes decodes a minutes duration.
// 16 bit field containing the duration of the event in
// hours, minutes. format: 4 digits, 4 - bit BCD = 18 bit.
func decodeDVBDurationMinutes(c *Cursor) (time.Duration, error) {
	bs, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	h, m := decodeDVBDurationByte(bs[0]), decodeDVBDurationByte(bs[1])
	return h*time.Hour + m*time.Minute, nil //nolint:durationcheck
}

// decodeDVBDurationSeconds decodes a seconds duration.
// 24 bit field containing the duration of the event in hours,
// minutes, seconds. format: 6 digits, 4 - bit BCD = 24 bit.
func decodeDVBDurationSeconds(c *Cursor) (time.Duration, error) {
	bs, err := c.ReadBytes(3)
	if err != nil {
		return 0, err
	}
	h, m, s := decodeDVBDurationByte(bs[0]), decodeDVBDurationByte(bs[1]), decodeDVBDurationByte(bs[2])
	return h*time.Hour + m*time.Minute + s*time.Second, nil //nolint:durationcheck
}

// decodeDVBDurationByte decodes a duration byte.
func decodeDVBDurationByte(i byte) time.Duration {
	return time.Duration(i>>4*10 + i&0xf)
}

// decodeBCD decodes n bits of packed BCD digits, most significant digit first
func decodeBCD(v uint64, n int) (o uint64) {
	for shift := n - 4; shift >= 0; shift -= 4 {
		o = o*10 + v>>uint(shift)&0xf
	}
	return
}

// DVBTime decodes a 40 bits DVB time
func DVBTime(name string) Field {
	return Derived(name, func(c *Cursor, _ *Bindings) (interface{}, error) { return decodeDVBTime(c) })
}

// DVBDurationMinutes decodes a 16 bits BCD hours/minutes duration
func DVBDurationMinutes(name string) Field {
	return Derived(name, func(c *Cursor, _ *Bindings) (interface{}, error) { return decodeDVBDurationMinutes(c) })
}

// DVBDurationSeconds decodes a 24 bits BCD hours/minutes/seconds duration
func DVBDurationSeconds(name string) Field {
	return Derived(name, func(c *Cursor, _ *Bindings) (interface{}, error) { return decodeDVBDurationSeconds(c) })
}
