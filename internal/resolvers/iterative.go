package resolvers

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"

	"github.com/dkoster/rootwalk/internal/dns"
)

// DefaultMaxHops bounds the walk. The DNS hierarchy is rarely more than
// four levels deep; twenty leaves margin while still terminating fast
// when servers delegate in a loop.
const DefaultMaxHops = 20

// Iterative walks the DNS hierarchy one nameserver at a time.
type Iterative struct {
	transport Transport
	maxHops   int
	logger    *slog.Logger

	// newID supplies per-hop transaction ids; replaceable in tests.
	newID func() uint16
}

// Option configures an Iterative resolver.
type Option func(*Iterative)

// WithMaxHops overrides the hop bound.
func WithMaxHops(n int) Option {
	return func(r *Iterative) {
		if n > 0 {
			r.maxHops = n
		}
	}
}

// WithLogger sets the logger used for per-hop debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Iterative) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithIDSource replaces the transaction id generator.
func WithIDSource(fn func() uint16) Option {
	return func(r *Iterative) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewIterative creates a resolver over the given transport.
func NewIterative(t Transport, opts ...Option) *Iterative {
	r := &Iterative{
		transport: t,
		maxHops:   DefaultMaxHops,
		logger:    slog.Default(),
		newID:     func() uint16 { return uint16(rand.Uint32()) }, //nolint:gosec // txid, not a secret
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// hopState is the per-hop resolution state. Each transition produces a
// fresh value instead of mutating the previous one.
type hopState struct {
	server string
	target string
	hop    int
}

// Resolve walks from root toward an authoritative answer for name.
//
// Per hop: send an A query to the current server, require the echoed
// transaction id, take an answer-section A record for the target as the
// final answer, otherwise follow the first authority-section NS record
// that has an additional-section glue A record. A delegation with no
// usable glue fails with ErrNoGlue; exceeding the hop bound fails with
// ErrDepthExceeded. The returned Resolution carries the hop trace even
// when an error is returned.
func (r *Iterative) Resolve(ctx context.Context, name, root string) (Resolution, error) {
	res := Resolution{Name: dns.NormalizeName(name)}
	state := hopState{server: root, target: res.Name}

	for {
		if state.hop >= r.maxHops {
			return res, fmt.Errorf("%w: gave up after %d hops", ErrDepthExceeded, state.hop)
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		msg, err := r.queryHop(ctx, state)
		if err != nil {
			return res, err
		}

		hop := Hop{
			Server:          state.server,
			Answers:         Addresses(msg.Answers),
			Nameservers:     Nameservers(msg),
			Glue:            Addresses(msg.Additionals),
			AnswerCount:     int(msg.Header.ANCount),
			AuthorityCount:  int(msg.Header.NSCount),
			AdditionalCount: int(msg.Header.ARCount),
		}

		if addr, ok := answerFor(hop.Answers, state.target); ok {
			res.Hops = append(res.Hops, hop)
			res.Addr = addr
			r.logger.Debug("resolved", "name", state.target, "addr", addr.String(), "hops", state.hop+1)
			return res, nil
		}

		next, err := nextServer(msg, hop.Nameservers)
		if err != nil {
			res.Hops = append(res.Hops, hop)
			return res, err
		}
		hop.NextServer = next
		res.Hops = append(res.Hops, hop)

		r.logger.Debug("delegation",
			"name", state.target,
			"server", state.server,
			"next", next,
			"hop", state.hop,
		)
		state = hopState{server: next, target: state.target, hop: state.hop + 1}
	}
}

// queryHop performs the encode, exchange, decode and validation for one
// hop. The transaction id check comes before anything else in the
// response is trusted; UDP delivers reordered and spoofed datagrams.
func (r *Iterative) queryHop(ctx context.Context, state hopState) (dns.Message, error) {
	id := r.newID()
	query, err := dns.NewQuery(id, state.target).Marshal()
	if err != nil {
		return dns.Message{}, err
	}

	raw, err := r.transport.Exchange(ctx, state.server, query)
	if err != nil {
		return dns.Message{}, fmt.Errorf("hop %d (%s): %w", state.hop, state.server, err)
	}

	msg, err := dns.ParseMessage(raw)
	if err != nil {
		return dns.Message{}, fmt.Errorf("hop %d (%s): %w", state.hop, state.server, err)
	}
	if msg.Header.ID != id {
		return dns.Message{}, fmt.Errorf("%w: transaction id mismatch (sent %#04x, got %#04x)",
			dns.ErrProtocol, id, msg.Header.ID)
	}
	if !msg.Header.IsResponse() {
		return dns.Message{}, fmt.Errorf("%w: QR flag clear on response", dns.ErrProtocol)
	}
	if len(msg.Questions) > 0 && !dns.EqualNames(msg.Questions[0].Name, state.target) {
		return dns.Message{}, fmt.Errorf("%w: question name %q does not match query %q",
			dns.ErrProtocol, msg.Questions[0].Name, state.target)
	}
	return msg, nil
}

// answerFor returns the address of the first answer-section A record
// owned by target.
func answerFor(answers []AddressRecord, target string) (net.IP, bool) {
	for _, a := range answers {
		if dns.EqualNames(a.Name, target) {
			return a.Addr, true
		}
	}
	return nil, false
}

// nextServer picks the next hop: the first NS record, in section order,
// whose nameserver has a glue A record in the additional section.
// Nameservers without glue are skipped; if none has glue the walk ends.
// Resolving a glue-less nameserver would require a full second walk,
// which is out of scope.
func nextServer(msg dns.Message, nameservers []NSRecord) (string, error) {
	if len(nameservers) == 0 {
		return "", fmt.Errorf("%w: no NS records in authority section", ErrNoGlue)
	}
	for _, ns := range nameservers {
		if addr, ok := Glue(msg, ns.Host); ok {
			return addr.String(), nil
		}
	}
	return "", fmt.Errorf("%w: %d nameservers, none with an additional-section address", ErrNoGlue, len(nameservers))
}
