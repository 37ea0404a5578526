package resolvers

import (
	"net"

	"github.com/dkoster/rootwalk/internal/dns"
)

// Addresses returns the (name, IPv4) pairs of the A records in a section.
// AAAA and all other record types are skipped.
func Addresses(section []dns.Record) []AddressRecord {
	var out []AddressRecord
	for _, r := range section {
		if r.Type != dns.TypeA {
			continue
		}
		out = append(out, AddressRecord{Name: r.Name, Addr: r.Addr})
	}
	return out
}

// Nameservers returns the (zone, host) pairs of the NS records in the
// authority section, in section order. DNS promises no preference
// ordering among NS records, and none is imposed here.
func Nameservers(m dns.Message) []NSRecord {
	var out []NSRecord
	for _, r := range m.Authorities {
		if r.Type != dns.TypeNS {
			continue
		}
		out = append(out, NSRecord{Zone: r.Name, Host: r.Target})
	}
	return out
}

// Glue searches the additional section for an A record owned by host
// (case-insensitive per DNS name comparison) and returns the first
// match in section order.
func Glue(m dns.Message, host string) (net.IP, bool) {
	for _, r := range m.Additionals {
		if r.Type != dns.TypeA {
			continue
		}
		if dns.EqualNames(r.Name, host) {
			return r.Addr, true
		}
	}
	return nil, false
}
