package dns

import (
	"fmt"
	"strings"
)

// Name encoding limits per RFC 1035 Section 3.1.
const (
	maxLabelLength = 63
	maxNameLength  = 255

	// maxPointerHops bounds compression pointer chains. Real messages use
	// one or two levels; anything deeper is treated as hostile.
	maxPointerHops = 16
)

// NormalizeName lowercases a domain name and strips trailing dots.
// DNS names compare case-insensitively (RFC 1035 Section 3.1, RFC 4343).
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimRight(name, "."))
}

// EqualNames reports whether two domain names are the same name under
// DNS comparison rules.
func EqualNames(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// EncodeName encodes a domain name as length-prefixed labels terminated
// by a zero-length label:
//
//	"cs.fiu.edu" -> [2]cs[3]fiu[3]edu[0]
//
// No compression pointers are emitted; queries are short and the encoder
// never needs back-references.
func EncodeName(name string) ([]byte, error) {
	name = strings.TrimRight(name, ".")
	if name == "" {
		return []byte{0}, nil // root
	}

	out := make([]byte, 0, len(name)+2)
	for label := range strings.SplitSeq(name, ".") {
		if label == "" {
			return nil, fmt.Errorf("%w: empty label in %q", ErrProtocol, name)
		}
		if len(label) > maxLabelLength {
			return nil, fmt.Errorf("%w: label %q exceeds %d bytes", ErrProtocol, label, maxLabelLength)
		}
		for i := range len(label) {
			if label[i] > 0x7F {
				return nil, fmt.Errorf("%w: non-ASCII byte in label %q", ErrProtocol, label)
			}
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	out = append(out, 0)

	if len(out) > maxNameLength {
		return nil, fmt.Errorf("%w: encoded name is %d bytes (max %d)", ErrProtocol, len(out), maxNameLength)
	}
	return out, nil
}

// DecodeName reads a possibly-compressed domain name from msg starting at
// *off and advances *off past it. Compression pointers (top two bits of a
// length byte set, RFC 1035 Section 4.1.4) hold a 14-bit absolute offset
// into msg; once a pointer is followed, *off no longer moves because the
// pointer terminates the literal label run.
//
// Visited pointer targets are tracked so cyclic or self-referencing
// pointers fail with ErrProtocol instead of looping.
func DecodeName(msg []byte, off *int) (string, error) {
	labels, err := readLabels(msg, off, 0, map[int]bool{})
	if err != nil {
		return "", err
	}
	return strings.Join(labels, "."), nil
}

func readLabels(msg []byte, off *int, hops int, visited map[int]bool) ([]string, error) {
	if hops > maxPointerHops {
		return nil, fmt.Errorf("%w: compression pointer chain too long", ErrProtocol)
	}

	var labels []string
	for {
		if *off < 0 || *off >= len(msg) {
			return nil, fmt.Errorf("%w: name runs past end of message", ErrProtocol)
		}
		length := msg[*off]
		*off++

		switch {
		case length == 0:
			return labels, nil

		case length&0xC0 == 0xC0:
			if *off >= len(msg) {
				return nil, fmt.Errorf("%w: truncated compression pointer", ErrProtocol)
			}
			target := int(length&0x3F)<<8 | int(msg[*off])
			*off++
			if target >= len(msg) {
				return nil, fmt.Errorf("%w: compression pointer offset %d out of range", ErrProtocol, target)
			}
			if visited[target] {
				return nil, fmt.Errorf("%w: compression pointer loop at offset %d", ErrProtocol, target)
			}
			visited[target] = true

			cursor := target
			rest, err := readLabels(msg, &cursor, hops+1, visited)
			if err != nil {
				return nil, err
			}
			return append(labels, rest...), nil

		case length&0xC0 != 0:
			// 01 and 10 label types are reserved (RFC 1035).
			return nil, fmt.Errorf("%w: reserved label type 0x%02x", ErrProtocol, length&0xC0)

		default:
			end := *off + int(length)
			if end > len(msg) {
				return nil, fmt.Errorf("%w: label runs past end of message", ErrProtocol)
			}
			labels = append(labels, string(msg[*off:end]))
			*off = end
		}
	}
}
