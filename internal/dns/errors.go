// Package dns implements the subset of the DNS wire format (RFC 1035)
// needed for iterative resolution: query construction, message parsing,
// and compressed name decoding.
//
// Parsing is strictly bounds-checked. Every field read validates the
// remaining buffer length before consuming bytes, and a message whose
// declared section counts cannot be satisfied from the delivered bytes
// fails with ErrProtocol rather than yielding a partial message.
//
// All wire-format failures wrap ErrProtocol, so callers can classify with
// errors.Is while errors keep per-site context via fmt.Errorf("...: %w").
package dns

import "errors"

// ErrProtocol is the sentinel for malformed or untrustworthy DNS data:
// truncated fields, oversized labels, bad compression pointers, rdata
// that does not match its declared type, and transaction id mismatches.
var ErrProtocol = errors.New("dns protocol error")
