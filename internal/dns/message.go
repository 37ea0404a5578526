package dns

import (
	"fmt"

	"github.com/dkoster/rootwalk/internal/helpers"
)

// Section count cap. A referral response legitimately carries a dozen or
// so records per section; hundreds means a hostile or broken server.
const maxRecordsPerSection = 64

// Message is a complete DNS message: header, question section and the
// three record sections in wire order.
type Message struct {
	Header      Header
	Questions   []Question
	Answers     []Record
	Authorities []Record
	Additionals []Record
}

// NewQuery builds an iterative A/IN query for name with the given
// transaction id. RD is left clear: requesting recursion would defeat
// the point of walking the hierarchy ourselves, and authoritative
// servers may refuse recursive queries outright.
func NewQuery(id uint16, name string) Message {
	return Message{
		Header: Header{ID: id}, // QR=0, opcode 0, all flags clear
		Questions: []Question{
			{Name: NormalizeName(name), Type: TypeA, Class: ClassIN},
		},
	}
}

// Marshal serializes the message. Section counts in the emitted header
// are derived from the actual slice lengths, not Header's counts.
func (m Message) Marshal() ([]byte, error) {
	h := m.Header
	h.QDCount = helpers.ClampIntToUint16(len(m.Questions))
	h.ANCount = helpers.ClampIntToUint16(len(m.Answers))
	h.NSCount = helpers.ClampIntToUint16(len(m.Authorities))
	h.ARCount = helpers.ClampIntToUint16(len(m.Additionals))

	out := h.Marshal()
	for _, q := range m.Questions {
		b, err := q.Marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	for _, section := range [][]Record{m.Answers, m.Authorities, m.Additionals} {
		for _, r := range section {
			b, err := r.Marshal()
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		}
	}
	return out, nil
}

// ParseMessage decodes a wire-format message. Exactly the header's
// declared number of questions and records must be decodable from the
// buffer; running out of bytes first is a protocol error, never a
// silently shortened message.
func ParseMessage(msg []byte) (Message, error) {
	off := 0
	h, err := ParseHeader(msg, &off)
	if err != nil {
		return Message{}, err
	}
	if err := checkCounts(h); err != nil {
		return Message{}, err
	}

	m := Message{Header: h}

	m.Questions = make([]Question, 0, h.QDCount)
	for range h.QDCount {
		q, err := ParseQuestion(msg, &off)
		if err != nil {
			return Message{}, err
		}
		m.Questions = append(m.Questions, q)
	}

	if m.Answers, err = parseSection(msg, &off, h.ANCount); err != nil {
		return Message{}, err
	}
	if m.Authorities, err = parseSection(msg, &off, h.NSCount); err != nil {
		return Message{}, err
	}
	if m.Additionals, err = parseSection(msg, &off, h.ARCount); err != nil {
		return Message{}, err
	}
	return m, nil
}

func parseSection(msg []byte, off *int, count uint16) ([]Record, error) {
	records := make([]Record, 0, count)
	for range count {
		r, err := ParseRecord(msg, off)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func checkCounts(h Header) error {
	for _, c := range []uint16{h.ANCount, h.NSCount, h.ARCount} {
		if c > maxRecordsPerSection {
			return fmt.Errorf("%w: section declares %d records (max %d)", ErrProtocol, c, maxRecordsPerSection)
		}
	}
	if h.QDCount > maxRecordsPerSection {
		return fmt.Errorf("%w: %d questions declared", ErrProtocol, h.QDCount)
	}
	return nil
}
