package dns_test

import (
	"encoding/binary"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoster/rootwalk/internal/dns"
)

// =============================================================================
// Query Construction Tests
// =============================================================================

func TestNewQuery_Shape(t *testing.T) {
	q := dns.NewQuery(0x1234, "CS.FIU.EDU")

	assert.Equal(t, uint16(0x1234), q.Header.ID)
	assert.False(t, q.Header.IsResponse())
	assert.Zero(t, q.Header.Flags&dns.RDFlag, "iterative queries must not request recursion")

	require.Len(t, q.Questions, 1)
	assert.Equal(t, "cs.fiu.edu", q.Questions[0].Name)
	assert.Equal(t, dns.TypeA, q.Questions[0].Type)
	assert.Equal(t, dns.ClassIN, q.Questions[0].Class)
	assert.Empty(t, q.Answers)
	assert.Empty(t, q.Authorities)
	assert.Empty(t, q.Additionals)
}

func TestNewQuery_MarshalWire(t *testing.T) {
	b, err := dns.NewQuery(0xABCD, "cs.fiu.edu").Marshal()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(b), dns.HeaderSize)
	assert.Equal(t, uint16(0xABCD), binary.BigEndian.Uint16(b[0:2]))
	assert.Equal(t, uint16(0), binary.BigEndian.Uint16(b[2:4]), "all flags clear")
	assert.Equal(t, uint16(1), binary.BigEndian.Uint16(b[4:6]), "QDCOUNT")
	assert.Equal(t, uint16(0), binary.BigEndian.Uint16(b[6:8]), "ANCOUNT")
	assert.Equal(t, uint16(0), binary.BigEndian.Uint16(b[8:10]), "NSCOUNT")
	assert.Equal(t, uint16(0), binary.BigEndian.Uint16(b[10:12]), "ARCOUNT")

	want := []byte{2, 'c', 's', 3, 'f', 'i', 'u', 3, 'e', 'd', 'u', 0, 0, 1, 0, 1}
	assert.Equal(t, want, b[dns.HeaderSize:])
}

func TestNewQuery_InvalidNameFailsMarshal(t *testing.T) {
	_, err := dns.NewQuery(1, "bad..name").Marshal()
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

// =============================================================================
// Message Round-Trip Tests
// =============================================================================

func TestParseMessage_RoundTrip(t *testing.T) {
	in := dns.Message{
		Header: dns.Header{ID: 42, Flags: dns.QRFlag | dns.AAFlag},
		Questions: []dns.Question{
			{Name: "cs.fiu.edu", Type: dns.TypeA, Class: dns.ClassIN},
		},
		Answers: []dns.Record{
			{Name: "cs.fiu.edu", Type: dns.TypeA, Class: dns.ClassIN, TTL: 300, Addr: net.IPv4(131, 94, 133, 20).To4()},
		},
		Authorities: []dns.Record{
			{Name: "fiu.edu", Type: dns.TypeNS, Class: dns.ClassIN, TTL: 3600, Target: "ns1.fiu.edu"},
		},
		Additionals: []dns.Record{
			{Name: "ns1.fiu.edu", Type: dns.TypeA, Class: dns.ClassIN, TTL: 3600, Addr: net.IPv4(192, 0, 2, 53).To4()},
		},
	}

	wire, err := in.Marshal()
	require.NoError(t, err)

	out, err := dns.ParseMessage(wire)
	require.NoError(t, err)

	assert.Equal(t, uint16(42), out.Header.ID)
	assert.True(t, out.Header.IsResponse())
	assert.True(t, out.Header.Authoritative())

	require.Len(t, out.Questions, 1)
	assert.Equal(t, "cs.fiu.edu", out.Questions[0].Name)

	require.Len(t, out.Answers, 1)
	assert.Equal(t, "cs.fiu.edu", out.Answers[0].Name)
	assert.Equal(t, "131.94.133.20", out.Answers[0].Addr.String())
	assert.Equal(t, uint32(300), out.Answers[0].TTL)

	require.Len(t, out.Authorities, 1)
	assert.Equal(t, "ns1.fiu.edu", out.Authorities[0].Target)

	require.Len(t, out.Additionals, 1)
	assert.Equal(t, "192.0.2.53", out.Additionals[0].Addr.String())
}

func TestParseMessage_CountsOverrideSlices(t *testing.T) {
	// Marshal derives counts from slices, ignoring whatever Header claims.
	m := dns.Message{
		Header:    dns.Header{ID: 7, ANCount: 99},
		Questions: []dns.Question{{Name: "example.com", Type: dns.TypeA, Class: dns.ClassIN}},
	}
	wire, err := m.Marshal()
	require.NoError(t, err)

	out, err := dns.ParseMessage(wire)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), out.Header.ANCount)
	assert.Empty(t, out.Answers)
}

// =============================================================================
// Malformed Message Tests
// =============================================================================

func TestParseMessage_TooShortForHeader(t *testing.T) {
	_, err := dns.ParseMessage(make([]byte, dns.HeaderSize-1))
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

func TestParseMessage_DeclaredCountUnderflow(t *testing.T) {
	// Header declares one answer but the buffer ends after the question.
	m := dns.Message{
		Header:    dns.Header{ID: 9},
		Questions: []dns.Question{{Name: "example.com", Type: dns.TypeA, Class: dns.ClassIN}},
	}
	wire, err := m.Marshal()
	require.NoError(t, err)
	binary.BigEndian.PutUint16(wire[6:8], 1) // ANCOUNT = 1

	_, err = dns.ParseMessage(wire)
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

func TestParseMessage_SectionCountCap(t *testing.T) {
	h := dns.Header{ID: 1, ANCount: 5000}
	_, err := dns.ParseMessage(h.Marshal())
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

func TestParseMessage_TrailingGarbageTolerated(t *testing.T) {
	// Bytes past the declared sections are ignored, matching how UDP
	// reads hand the full receive buffer to the parser.
	m := dns.Message{Header: dns.Header{ID: 3, Flags: dns.QRFlag}}
	wire, err := m.Marshal()
	require.NoError(t, err)
	wire = append(wire, 0xDE, 0xAD)

	out, err := dns.ParseMessage(wire)
	require.NoError(t, err)
	assert.Equal(t, uint16(3), out.Header.ID)
}
