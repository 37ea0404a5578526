// Package resolvers implements iterative DNS resolution: starting from a
// root nameserver, it queries down the hierarchy (root, TLD,
// authoritative) until an answer-section A record is found or the walk
// cannot continue.
//
// The walk is strictly sequential: one query in flight, one hop at a
// time, no retries. Hop state (current server, target, hop counter) is
// replaced at each transition rather than mutated, so each hop's outcome
// is independently testable.
//
// Terminal failures stay distinguishable from protocol corruption:
// ErrNoGlue and ErrDepthExceeded describe a hierarchy that could not be
// walked with the information given, while dns.ErrProtocol means the
// response itself was untrustworthy.
package resolvers

import (
	"context"
	"errors"
	"net"
)

var (
	// ErrNoGlue means a response delegated to nameservers but supplied no
	// additional-section A record for any of them. Resolving a
	// nameserver's own address would need a second full walk, which is
	// deliberately out of scope.
	ErrNoGlue = errors.New("delegation without usable glue")

	// ErrDepthExceeded means the hop bound was hit, typically because
	// servers delegate in a loop.
	ErrDepthExceeded = errors.New("resolution depth exceeded")
)

// Transport delivers a wire-format query to a nameserver and returns the
// raw response bytes. Implementations own the socket, the receive buffer
// and the timeout; the engine treats transport failures as hop failures
// and never retries.
type Transport interface {
	Exchange(ctx context.Context, server string, query []byte) ([]byte, error)
}

// AddressRecord is an extracted (owner name, IPv4) pair from an A record.
type AddressRecord struct {
	Name string
	Addr net.IP
}

// NSRecord is an extracted (zone, nameserver host) pair from an
// authority-section NS record.
type NSRecord struct {
	Zone string
	Host string
}

// Hop describes one query of the iterative walk, kept for trace output.
type Hop struct {
	Server          string          // nameserver that was queried
	Answers         []AddressRecord // answer-section A records
	Nameservers     []NSRecord      // authority-section NS records
	Glue            []AddressRecord // additional-section A records
	AnswerCount     int             // raw section counts from the header
	AuthorityCount  int
	AdditionalCount int
	NextServer      string // server selected for the following hop, if any
}

// Resolution is the outcome of a successful walk.
type Resolution struct {
	Name string
	Addr net.IP
	Hops []Hop
}
