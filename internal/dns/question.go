package dns

import (
	"encoding/binary"
	"fmt"
)

// Question is a DNS question section entry (RFC 1035 Section 4.1.2).
type Question struct {
	Name  string
	Type  RecordType
	Class RecordClass
}

// Marshal serializes the question: encoded name, then QTYPE and QCLASS
// as big-endian 16-bit values.
func (q Question) Marshal() ([]byte, error) {
	name, err := EncodeName(q.Name)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(name)+4)
	copy(out, name)
	binary.BigEndian.PutUint16(out[len(name):], uint16(q.Type))
	binary.BigEndian.PutUint16(out[len(name)+2:], uint16(q.Class))
	return out, nil
}

// ParseQuestion reads a question from msg at *off and advances *off
// past it.
func ParseQuestion(msg []byte, off *int) (Question, error) {
	name, err := DecodeName(msg, off)
	if err != nil {
		return Question{}, err
	}
	if *off+4 > len(msg) {
		return Question{}, fmt.Errorf("%w: truncated question", ErrProtocol)
	}
	q := Question{
		Name:  name,
		Type:  RecordType(binary.BigEndian.Uint16(msg[*off : *off+2])),
		Class: RecordClass(binary.BigEndian.Uint16(msg[*off+2 : *off+4])),
	}
	*off += 4
	return q, nil
}
