package dns

// DNS header flag bits and masks (RFC 1035 Section 4.1.1).
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA|   Z    |   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
const (
	QRFlag     uint16 = 0x8000 // 0 = query, 1 = response
	OpcodeMask uint16 = 0x7800 // bits 14-11, shift right by 11 to extract
	AAFlag     uint16 = 0x0400 // authoritative answer
	TCFlag     uint16 = 0x0200 // truncation
	RDFlag     uint16 = 0x0100 // recursion desired
	RAFlag     uint16 = 0x0080 // recursion available
	RCodeMask  uint16 = 0x000F // bits 3-0, response code
)

// RecordType identifies a DNS resource record type.
type RecordType uint16

const (
	TypeA     RecordType = 1  // IPv4 address
	TypeNS    RecordType = 2  // delegation to a nameserver
	TypeCNAME RecordType = 5  // canonical name
	TypeSOA   RecordType = 6  // start of authority
	TypePTR   RecordType = 12 // reverse pointer
	TypeAAAA  RecordType = 28 // IPv6 address (RFC 3596)
)

// RecordClass identifies a DNS record class. Only IN is used here.
type RecordClass uint16

// ClassIN is the Internet class.
const ClassIN RecordClass = 1

// RCode is a DNS response code (RFC 1035).
type RCode uint16

const (
	RCodeNoError  RCode = 0
	RCodeFormErr  RCode = 1
	RCodeServFail RCode = 2
	RCodeNXDomain RCode = 3
	RCodeNotImp   RCode = 4
	RCodeRefused  RCode = 5
)

// RCodeFromFlags extracts the response code from the header flags.
func RCodeFromFlags(flags uint16) RCode {
	return RCode(flags & RCodeMask)
}
