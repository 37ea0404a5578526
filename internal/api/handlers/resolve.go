package handlers

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkoster/rootwalk/internal/api/models"
	"github.com/dkoster/rootwalk/internal/history"
	"github.com/dkoster/rootwalk/internal/resolvers"
)

// Resolve godoc
// @Summary Iterative lookup
// @Description Resolves a domain name to an IPv4 address by walking the DNS hierarchy from a root server
// @Tags resolve
// @Produce json
// @Param name query string true "Domain name to resolve"
// @Param root query string false "Root nameserver IPv4 address (defaults to the configured root)"
// @Success 200 {object} models.ResolveResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /resolve [get]
func (h *Handler) Resolve(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name parameter is required"})
		return
	}

	root := c.Query("root")
	if root == "" {
		root = h.cfg.Resolver.RootServers[0]
	}
	if ip := net.ParseIP(root); ip == nil || ip.To4() == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "root must be an IPv4 address"})
		return
	}

	start := time.Now()
	res, err := h.resolver.Resolve(c.Request.Context(), name, root)
	elapsed := time.Since(start)

	h.stats.Record(err, elapsed.Nanoseconds())
	h.journalLookup(res, root, err, elapsed)

	if err != nil {
		state := outcomeLabel(err)
		status := http.StatusBadGateway
		if resolvers.IsTimeout(err) {
			status = http.StatusGatewayTimeout
		}
		h.logger.Warn("lookup failed", "name", name, "root", root, "state", state, "error", err)
		c.JSON(status, models.ErrorResponse{Error: err.Error(), State: state})
		return
	}

	c.JSON(http.StatusOK, models.ResolveResponse{
		Name:       res.Name,
		Address:    res.Addr.String(),
		RootServer: root,
		Hops:       hopResponses(res.Hops),
		DurationMs: elapsed.Milliseconds(),
	})
}

func (h *Handler) journalLookup(res resolvers.Resolution, root string, err error, elapsed time.Duration) {
	if h.journal == nil {
		return
	}
	entry := history.Entry{
		Domain:     res.Name,
		RootServer: root,
		Outcome:    outcomeLabel(err),
		Hops:       len(res.Hops),
		DurationMs: elapsed.Milliseconds(),
	}
	if err == nil {
		entry.Address = res.Addr.String()
	}
	if jerr := h.journal.Record(entry); jerr != nil {
		h.logger.Error("journal write failed", "error", jerr)
	}
}

func hopResponses(hops []resolvers.Hop) []models.HopResponse {
	out := make([]models.HopResponse, 0, len(hops))
	for _, hop := range hops {
		out = append(out, models.HopResponse{
			Server:          hop.Server,
			AnswerCount:     hop.AnswerCount,
			AuthorityCount:  hop.AuthorityCount,
			AdditionalCount: hop.AdditionalCount,
			Answers:         addressRows(hop.Answers),
			Nameservers:     nameserverRows(hop.Nameservers),
			Glue:            addressRows(hop.Glue),
			NextServer:      hop.NextServer,
		})
	}
	return out
}

func addressRows(records []resolvers.AddressRecord) []models.AddressRow {
	var out []models.AddressRow
	for _, r := range records {
		out = append(out, models.AddressRow{Name: r.Name, Address: r.Addr.String()})
	}
	return out
}

func nameserverRows(records []resolvers.NSRecord) []models.NameserverRow {
	var out []models.NameserverRow
	for _, r := range records {
		out = append(out, models.NameserverRow{Zone: r.Zone, Host: r.Host})
	}
	return out
}
