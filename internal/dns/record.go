package dns

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/dkoster/rootwalk/internal/helpers"
)

// Record is a decoded resource record (RFC 1035 Section 4.1.3).
//
// Exactly one of the data fields is populated, chosen by Type:
//   - Addr for A (4 bytes) and AAAA (16 bytes)
//   - Target for NS, CNAME and PTR, whose rdata is a compressed name
//   - Data, the raw rdata, for every other type
type Record struct {
	Name  string
	Type  RecordType
	Class RecordClass
	TTL   uint32

	Addr   net.IP
	Target string
	Data   []byte
}

// ParseRecord reads one resource record from msg at *off and advances
// *off past it. The record's rdata must match its declared type: an A
// record with rdlength != 4 is a protocol error, and a name-typed rdata
// must consume exactly rdlength bytes.
func ParseRecord(msg []byte, off *int) (Record, error) {
	name, err := DecodeName(msg, off)
	if err != nil {
		return Record{}, err
	}
	if *off+10 > len(msg) {
		return Record{}, fmt.Errorf("%w: truncated record header", ErrProtocol)
	}
	r := Record{
		Name:  name,
		Type:  RecordType(binary.BigEndian.Uint16(msg[*off : *off+2])),
		Class: RecordClass(binary.BigEndian.Uint16(msg[*off+2 : *off+4])),
		TTL:   binary.BigEndian.Uint32(msg[*off+4 : *off+8]),
	}
	rdlen := int(binary.BigEndian.Uint16(msg[*off+8 : *off+10]))
	*off += 10

	start := *off
	if start+rdlen > len(msg) {
		return Record{}, fmt.Errorf("%w: rdata declares %d bytes, %d remain", ErrProtocol, rdlen, len(msg)-start)
	}

	switch r.Type {
	case TypeA, TypeAAAA:
		want := 4
		if r.Type == TypeAAAA {
			want = 16
		}
		if rdlen != want {
			return Record{}, fmt.Errorf("%w: %v record with rdlength %d (want %d)", ErrProtocol, r.Type, rdlen, want)
		}
		r.Addr = net.IP(append([]byte(nil), msg[start:start+rdlen]...))
		*off = start + rdlen

	case TypeNS, TypeCNAME, TypePTR:
		target, err := DecodeName(msg, off)
		if err != nil {
			return Record{}, err
		}
		if *off != start+rdlen {
			return Record{}, fmt.Errorf("%w: name rdata consumed %d bytes, rdlength is %d", ErrProtocol, *off-start, rdlen)
		}
		r.Target = target

	default:
		r.Data = append([]byte(nil), msg[start:start+rdlen]...)
		*off = start + rdlen
	}

	return r, nil
}

// Marshal serializes the record without compression. Used for building
// synthetic responses in tests; the resolver itself only ever encodes
// questions.
func (r Record) Marshal() ([]byte, error) {
	name, err := EncodeName(r.Name)
	if err != nil {
		return nil, err
	}

	var rdata []byte
	switch r.Type {
	case TypeA:
		ip4 := r.Addr.To4()
		if ip4 == nil {
			return nil, fmt.Errorf("%w: A record needs an IPv4 address", ErrProtocol)
		}
		rdata = ip4
	case TypeAAAA:
		ip6 := r.Addr.To16()
		if ip6 == nil {
			return nil, fmt.Errorf("%w: AAAA record needs an IPv6 address", ErrProtocol)
		}
		rdata = ip6
	case TypeNS, TypeCNAME, TypePTR:
		rdata, err = EncodeName(r.Target)
		if err != nil {
			return nil, err
		}
	default:
		rdata = r.Data
	}

	out := make([]byte, 0, len(name)+10+len(rdata))
	out = append(out, name...)
	fixed := make([]byte, 10)
	binary.BigEndian.PutUint16(fixed[0:2], uint16(r.Type))
	binary.BigEndian.PutUint16(fixed[2:4], uint16(r.Class))
	binary.BigEndian.PutUint32(fixed[4:8], r.TTL)
	binary.BigEndian.PutUint16(fixed[8:10], helpers.ClampIntToUint16(len(rdata)))
	out = append(out, fixed...)
	out = append(out, rdata...)
	return out, nil
}
