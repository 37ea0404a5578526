package resolvers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/dkoster/rootwalk/internal/pool"
)

// UDP transport defaults.
const (
	DefaultTimeout  = 5 * time.Second
	DefaultRecvSize = 4096
	DefaultPort     = 53
)

// recvBufPool reuses receive buffers across exchanges. Responses are
// copied out before the buffer is returned.
var recvBufPool = pool.New(func() []byte {
	return make([]byte, DefaultRecvSize)
})

// UDPTransport sends DNS queries over UDP with a bounded receive
// timeout. One exchange is one datagram out and one datagram in; there
// is no retry and no TCP fallback for truncated responses.
type UDPTransport struct {
	Timeout  time.Duration // per-exchange deadline, DefaultTimeout if zero
	Port     int           // destination port, DefaultPort if zero
	RecvSize int           // receive buffer size, DefaultRecvSize if zero
}

// NewUDPTransport returns a transport with the given timeout and the
// remaining fields defaulted.
func NewUDPTransport(timeout time.Duration) *UDPTransport {
	return &UDPTransport{Timeout: timeout}
}

// Exchange sends query to server (an IPv4 address in dotted-quad form)
// and waits for a single response datagram. The deadline is the sooner
// of the configured timeout and the context deadline.
func (t *UDPTransport) Exchange(ctx context.Context, server string, query []byte) ([]byte, error) {
	port := t.Port
	if port == 0 {
		port = DefaultPort
	}
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(server, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", server, err)
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", server, err)
	}
	defer conn.Close()

	timeout := t.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	if _, err := conn.Write(query); err != nil {
		return nil, fmt.Errorf("send to %s: %w", server, err)
	}

	buf, pooled := t.recvBuf()
	if pooled {
		defer recvBufPool.Put(buf)
	}

	n, err := conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("receive from %s: %w", server, err)
	}
	return append([]byte(nil), buf[:n]...), nil
}

// recvBuf returns a receive buffer and whether it came from the pool.
// Non-default sizes are allocated fresh so the pool stays uniform.
func (t *UDPTransport) recvBuf() ([]byte, bool) {
	if t.RecvSize > 0 && t.RecvSize != DefaultRecvSize {
		return make([]byte, t.RecvSize), false
	}
	return recvBufPool.Get(), true
}

// IsTimeout reports whether err is a network timeout, as opposed to an
// unreachable server or a local socket failure. Callers use this to
// phrase hop failures.
func IsTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
