package models

// AddressRow is an extracted (owner, IPv4) pair.
type AddressRow struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// NameserverRow is an extracted (zone, nameserver host) pair.
type NameserverRow struct {
	Zone string `json:"zone"`
	Host string `json:"host"`
}

// HopResponse describes one hop of an iterative walk.
type HopResponse struct {
	Server          string          `json:"server"`
	AnswerCount     int             `json:"answer_count"`
	AuthorityCount  int             `json:"authority_count"`
	AdditionalCount int             `json:"additional_count"`
	Answers         []AddressRow    `json:"answers,omitempty"`
	Nameservers     []NameserverRow `json:"nameservers,omitempty"`
	Glue            []AddressRow    `json:"glue,omitempty"`
	NextServer      string          `json:"next_server,omitempty"`
}

// ResolveResponse is a completed lookup with its hop trace.
type ResolveResponse struct {
	Name       string        `json:"name"`
	Address    string        `json:"address"`
	RootServer string        `json:"root_server"`
	Hops       []HopResponse `json:"hops"`
	DurationMs int64         `json:"duration_ms"`
}
