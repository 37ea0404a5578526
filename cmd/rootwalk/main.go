// Command rootwalk resolves a domain name to an IPv4 address by walking
// the DNS hierarchy iteratively from a caller-supplied root server.
//
// Usage:
//
//	rootwalk [flags] <domain> <root-server-ip>
//
// Exit codes: 0 answer found, 1 transport or protocol failure, 2 bad
// usage, 3 delegation without glue, 4 hop bound exceeded.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/dkoster/rootwalk/internal/dns"
	"github.com/dkoster/rootwalk/internal/history"
	"github.com/dkoster/rootwalk/internal/logging"
	"github.com/dkoster/rootwalk/internal/resolvers"
)

func main() {
	var (
		timeout     = flag.Duration("timeout", resolvers.DefaultTimeout, "Per-query receive timeout")
		maxHops     = flag.Int("max-hops", resolvers.DefaultMaxHops, "Maximum delegation hops")
		recvSize    = flag.Int("recv-size", resolvers.DefaultRecvSize, "UDP receive buffer size")
		port        = flag.Int("port", resolvers.DefaultPort, "Nameserver port")
		quiet       = flag.Bool("quiet", false, "Print only the resolved address")
		journalPath = flag.String("history", "", "Append the lookup to a SQLite journal at this path")
		debug       = flag.Bool("debug", false, "Enable per-hop debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <domain> <root-server-ip>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s cs.fiu.edu 198.41.0.4\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	domain := flag.Arg(0)
	root := flag.Arg(1)
	if ip := net.ParseIP(root); ip == nil || ip.To4() == nil {
		fmt.Fprintf(os.Stderr, "root server %q is not an IPv4 address\n", root)
		os.Exit(2)
	}

	level := "ERROR"
	if *debug {
		level = "DEBUG"
	}
	logger := logging.Configure(logging.Config{Level: level})

	transport := resolvers.NewUDPTransport(*timeout)
	transport.RecvSize = *recvSize
	transport.Port = *port

	resolver := resolvers.NewIterative(transport,
		resolvers.WithMaxHops(*maxHops),
		resolvers.WithLogger(logger),
	)

	start := time.Now()
	res, err := resolver.Resolve(context.Background(), domain, root)
	elapsed := time.Since(start)

	if !*quiet {
		printTrace(res)
	}
	if *journalPath != "" {
		journalLookup(*journalPath, res, root, err, elapsed)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", terminalState(err), err)
		os.Exit(exitCode(err))
	}

	if *quiet {
		fmt.Println(res.Addr.String())
		return
	}
	fmt.Println(strings.Repeat("-", 64))
	fmt.Printf("Resolved %s to %s in %d hops (%s)\n",
		res.Name, res.Addr, len(res.Hops), elapsed.Round(time.Millisecond))
}

// printTrace prints the per-hop response overview.
func printTrace(res resolvers.Resolution) {
	for _, hop := range res.Hops {
		fmt.Println(strings.Repeat("-", 64))
		fmt.Printf("DNS server to query: %s\n", hop.Server)
		fmt.Println("Reply received. Content overview:")
		fmt.Printf("  %d Answers.\n", hop.AnswerCount)
		fmt.Printf("  %d Intermediate Name Servers.\n", hop.AuthorityCount)
		fmt.Printf("  %d Additional Information Records.\n", hop.AdditionalCount)

		fmt.Println("Answers section:")
		for _, a := range hop.Answers {
			fmt.Printf("  Name: %s IP: %s\n", a.Name, a.Addr)
		}
		fmt.Println("Authority section:")
		for _, ns := range hop.Nameservers {
			fmt.Printf("  Name: %s Name Server: %s\n", ns.Zone, ns.Host)
		}
		fmt.Println("Additional information section:")
		for _, g := range hop.Glue {
			fmt.Printf("  Name: %s IP: %s\n", g.Name, g.Addr)
		}
	}
}

func journalLookup(path string, res resolvers.Resolution, root string, err error, elapsed time.Duration) {
	store, oerr := history.Open(path)
	if oerr != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", oerr)
		return
	}
	defer store.Close()

	entry := history.Entry{
		Domain:     res.Name,
		RootServer: root,
		Outcome:    terminalState(err),
		Hops:       len(res.Hops),
		DurationMs: elapsed.Milliseconds(),
	}
	if err == nil {
		entry.Address = res.Addr.String()
	}
	if werr := store.Record(entry); werr != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", werr)
	}
}

func terminalState(err error) string {
	switch {
	case err == nil:
		return history.OutcomeAnswered
	case errors.Is(err, resolvers.ErrNoGlue):
		return history.OutcomeNoGlue
	case errors.Is(err, resolvers.ErrDepthExceeded):
		return history.OutcomeDepthExceeded
	case errors.Is(err, dns.ErrProtocol):
		return history.OutcomeProtocolError
	default:
		return history.OutcomeTransportFail
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, resolvers.ErrNoGlue):
		return 3
	case errors.Is(err, resolvers.ErrDepthExceeded):
		return 4
	default:
		return 1
	}
}
