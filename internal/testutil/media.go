package testutil

import (
	"encoding/binary"
	"math"
)

// MP4NoDuration is an MP4 file type header with no movie header.
var MP4NoDuration = []byte("\x00\x00\x00\x18ftypisom\x00\x00\x02\x00isomiso2\x00\x00\x00\x08free")

// MP4 returns a minimal MP4 (ftyp + moov/mvhd) declaring the given length.
func MP4(seconds float64) []byte {
	const timescale = 1000

	mvhd := make([]byte, 108)
	binary.BigEndian.PutUint32(mvhd[0:], 108)
	copy(mvhd[4:], "mvhd")
	// version 0, flags, creation and modification times stay zero
	binary.BigEndian.PutUint32(mvhd[20:], timescale)
	binary.BigEndian.PutUint32(mvhd[24:], uint32(seconds*timescale))
	binary.BigEndian.PutUint32(mvhd[28:], 0x00010000) // rate 1.0
	binary.BigEndian.PutUint16(mvhd[32:], 0x0100)     // volume 1.0
	binary.BigEndian.PutUint32(mvhd[104:], 2)         // next track id

	moov := make([]byte, 8, 8+len(mvhd))
	binary.BigEndian.PutUint32(moov[0:], uint32(8+len(mvhd)))
	copy(moov[4:], "moov")
	moov = append(moov, mvhd...)

	ftyp := []byte("\x00\x00\x00\x18ftypisom\x00\x00\x02\x00isomiso2")
	return append(ftyp, moov...)
}

// WebM returns a minimal WebM header whose segment info declares the given
// length. A negative value omits the Duration element.
func WebM(seconds float64) []byte {
	docType := ebml([]byte{0x42, 0x82}, []byte("webm"))
	header := ebml([]byte{0x1A, 0x45, 0xDF, 0xA3}, docType)

	// TimecodeScale 1ms
	info := ebml([]byte{0x2A, 0xD7, 0xB1}, []byte{0x0F, 0x42, 0x40})
	if seconds >= 0 {
		d := make([]byte, 8)
		binary.BigEndian.PutUint64(d, math.Float64bits(seconds*1000))
		info = append(info, ebml([]byte{0x44, 0x89}, d)...)
	}
	segment := ebml([]byte{0x18, 0x53, 0x80, 0x67}, ebml([]byte{0x15, 0x49, 0xA9, 0x66}, info))

	return append(header, segment...)
}

// ebml encodes one element with a one-byte size.
func ebml(id, payload []byte) []byte {
	if len(payload) > 126 {
		panic("testutil: ebml payload too large")
	}
	out := append([]byte{}, id...)
	out = append(out, 0x80|byte(len(payload)))
	return append(out, payload...)
}
