package dns

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed DNS header length in bytes.
const HeaderSize = 12

// Header is the 12-byte DNS message header (RFC 1035 Section 4.1.1).
// The transaction ID matches responses to the query that produced them
// and must be echoed back unchanged by the server.
type Header struct {
	ID      uint16
	Flags   uint16
	QDCount uint16 // questions
	ANCount uint16 // answer records
	NSCount uint16 // authority records
	ARCount uint16 // additional records
}

// Marshal serializes the header as six big-endian 16-bit words.
func (h Header) Marshal() []byte {
	b := make([]byte, HeaderSize)
	binary.BigEndian.PutUint16(b[0:2], h.ID)
	binary.BigEndian.PutUint16(b[2:4], h.Flags)
	binary.BigEndian.PutUint16(b[4:6], h.QDCount)
	binary.BigEndian.PutUint16(b[6:8], h.ANCount)
	binary.BigEndian.PutUint16(b[8:10], h.NSCount)
	binary.BigEndian.PutUint16(b[10:12], h.ARCount)
	return b
}

// ParseHeader reads a header from msg at *off and advances *off by
// HeaderSize on success.
func ParseHeader(msg []byte, off *int) (Header, error) {
	if *off+HeaderSize > len(msg) {
		return Header{}, fmt.Errorf("%w: message shorter than header", ErrProtocol)
	}
	h := Header{
		ID:      binary.BigEndian.Uint16(msg[*off : *off+2]),
		Flags:   binary.BigEndian.Uint16(msg[*off+2 : *off+4]),
		QDCount: binary.BigEndian.Uint16(msg[*off+4 : *off+6]),
		ANCount: binary.BigEndian.Uint16(msg[*off+6 : *off+8]),
		NSCount: binary.BigEndian.Uint16(msg[*off+8 : *off+10]),
		ARCount: binary.BigEndian.Uint16(msg[*off+10 : *off+12]),
	}
	*off += HeaderSize
	return h, nil
}

// IsResponse reports whether the QR bit marks this message as a response.
func (h Header) IsResponse() bool { return h.Flags&QRFlag != 0 }

// Authoritative reports whether the AA bit is set.
func (h Header) Authoritative() bool { return h.Flags&AAFlag != 0 }

// Truncated reports whether the TC bit is set. Truncated responses are
// not usable here; there is no TCP fallback.
func (h Header) Truncated() bool { return h.Flags&TCFlag != 0 }

// RCode returns the response code from the flags field.
func (h Header) RCode() RCode { return RCodeFromFlags(h.Flags) }
