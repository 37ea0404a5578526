package dns_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoster/rootwalk/internal/dns"
)

// =============================================================================
// Name Encoding Tests
// =============================================================================

func TestEncodeName_Simple(t *testing.T) {
	b, err := dns.EncodeName("cs.fiu.edu")
	require.NoError(t, err)

	want := []byte{2, 'c', 's', 3, 'f', 'i', 'u', 3, 'e', 'd', 'u', 0}
	assert.Equal(t, want, b)
}

func TestEncodeName_TrailingDot(t *testing.T) {
	withDot, err := dns.EncodeName("example.com.")
	require.NoError(t, err)
	withoutDot, err := dns.EncodeName("example.com")
	require.NoError(t, err)

	assert.Equal(t, withoutDot, withDot)
}

func TestEncodeName_Root(t *testing.T) {
	b, err := dns.EncodeName("")
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, b)

	b, err = dns.EncodeName(".")
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, b)
}

func TestEncodeName_LabelTooLong(t *testing.T) {
	label := strings.Repeat("a", 64)
	_, err := dns.EncodeName(label + ".com")
	require.Error(t, err)
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

func TestEncodeName_MaxLabelAccepted(t *testing.T) {
	label := strings.Repeat("a", 63)
	_, err := dns.EncodeName(label + ".com")
	assert.NoError(t, err)
}

func TestEncodeName_EmptyLabel(t *testing.T) {
	_, err := dns.EncodeName("a..b")
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

func TestEncodeName_NonASCII(t *testing.T) {
	_, err := dns.EncodeName("exämple.com")
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

func TestEncodeName_TotalLengthTooLong(t *testing.T) {
	labels := make([]string, 5)
	for i := range labels {
		labels[i] = strings.Repeat("a", 63)
	}
	_, err := dns.EncodeName(strings.Join(labels, "."))
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

// =============================================================================
// Name Decoding Tests
// =============================================================================

func TestDecodeName_Uncompressed(t *testing.T) {
	encoded, err := dns.EncodeName("www.example.com")
	require.NoError(t, err)

	off := 0
	name, err := dns.DecodeName(encoded, &off)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", name)
	assert.Equal(t, len(encoded), off, "offset should advance past the name")
}

func TestDecodeName_CompressionPointer(t *testing.T) {
	// Message layout: "example.com" at offset 0, then [3]www + pointer
	// back to offset 0.
	base, err := dns.EncodeName("example.com")
	require.NoError(t, err)

	msg := append([]byte{}, base...)
	ptrStart := len(msg)
	msg = append(msg, 3, 'w', 'w', 'w', 0xC0, 0x00)

	off := ptrStart
	name, err := dns.DecodeName(msg, &off)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", name)
	assert.Equal(t, len(msg), off, "offset stops after the 2-byte pointer")

	// Compression idempotence: equal to decoding the spelled-out form.
	full, err := dns.EncodeName("www.example.com")
	require.NoError(t, err)
	off = 0
	spelled, err := dns.DecodeName(full, &off)
	require.NoError(t, err)
	assert.Equal(t, spelled, name)
}

func TestDecodeName_PointerToPointer(t *testing.T) {
	// "com" at 0, pointer to 0 at 5, [7]example + pointer to 5 at 7.
	msg := []byte{3, 'c', 'o', 'm', 0}
	msg = append(msg, 0xC0, 0x00)
	start := len(msg)
	msg = append(msg, 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 0xC0, 0x05)

	off := start
	name, err := dns.DecodeName(msg, &off)
	require.NoError(t, err)
	assert.Equal(t, "example.com", name)
}

// TestDecodeName_PointerCycle must terminate with an error, never hang.
// The decode runs in a goroutine so a regression fails the test instead
// of wedging the suite.
func TestDecodeName_PointerCycle(t *testing.T) {
	cases := map[string][]byte{
		"self-reference":  {0xC0, 0x00},
		"two-node cycle":  {0xC0, 0x02, 0xC0, 0x00},
		"label then back": {3, 'f', 'o', 'o', 0xC0, 0x00},
	}

	for label, msg := range cases {
		t.Run(label, func(t *testing.T) {
			done := make(chan error, 1)
			go func() {
				off := 0
				_, err := dns.DecodeName(msg, &off)
				done <- err
			}()

			select {
			case err := <-done:
				assert.ErrorIs(t, err, dns.ErrProtocol)
			case <-time.After(2 * time.Second):
				t.Fatal("decoder did not terminate on a pointer cycle")
			}
		})
	}
}

func TestDecodeName_PointerOutOfRange(t *testing.T) {
	msg := []byte{0xC0, 0x7F} // offset 127 in a 2-byte message
	off := 0
	_, err := dns.DecodeName(msg, &off)
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

func TestDecodeName_TruncatedPointer(t *testing.T) {
	msg := []byte{0xC0} // second pointer byte missing
	off := 0
	_, err := dns.DecodeName(msg, &off)
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

func TestDecodeName_ReservedLabelType(t *testing.T) {
	for _, b := range []byte{0x40, 0x80} {
		msg := []byte{b, 'x', 0}
		off := 0
		_, err := dns.DecodeName(msg, &off)
		assert.ErrorIs(t, err, dns.ErrProtocol, "label byte %#02x", b)
	}
}

func TestDecodeName_TruncatedLabel(t *testing.T) {
	msg := []byte{5, 'a', 'b'} // declares 5 bytes, 2 present
	off := 0
	_, err := dns.DecodeName(msg, &off)
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

func TestDecodeName_MissingTerminator(t *testing.T) {
	msg := []byte{3, 'c', 'o', 'm'} // no zero label, no pointer
	off := 0
	_, err := dns.DecodeName(msg, &off)
	assert.ErrorIs(t, err, dns.ErrProtocol)
}

// =============================================================================
// Name Comparison Tests
// =============================================================================

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "example.com", dns.NormalizeName("EXAMPLE.COM."))
	assert.Equal(t, "example.com", dns.NormalizeName("example.com"))
	assert.Equal(t, "", dns.NormalizeName("."))
}

func TestEqualNames(t *testing.T) {
	assert.True(t, dns.EqualNames("A.EDU-Servers.example", "a.edu-servers.example"))
	assert.True(t, dns.EqualNames("example.com.", "example.com"))
	assert.False(t, dns.EqualNames("example.com", "example.org"))
}
