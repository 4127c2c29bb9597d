// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes certificate classification as [MCP] tools over stdio.
//
// Tools:
//   - classify_host: classify the certificate served by a hostname
//   - cache_stats: report certificate cache statistics
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var serverName = "Certificate Info" // MCP server name

// Resolver returns the classified record of a hostname's certificate.
type Resolver interface {
	GetOrFetch(ctx context.Context, hostname string) (certinfo.Record, error)
}

// StatsSource reports cache statistics.
type StatsSource interface {
	Stats() string
}

// tools holds the dependencies of the tool handlers.
type tools struct {
	resolver   Resolver
	stats      StatsSource
	thresholds certinfo.Thresholds
	now        func() time.Time
}

// New builds the MCP server with its tools registered.
//
// Parameters:
//   - resolver: Certificate lookup, usually a [cache.Cache]
//   - stats: Cache statistics source (may be nil to omit cache_stats)
//   - thresholds: Expiration windows applied to results
//   - version: Server version reported to clients
func New(resolver Resolver, stats StatsSource, thresholds certinfo.Thresholds, version string) *server.MCPServer {
	return newServer(&tools{resolver: resolver, stats: stats, thresholds: thresholds, now: time.Now}, version)
}

func newServer(t *tools, version string) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
	)

	classifyHostTool := mcp.NewTool("classify_host",
		mcp.WithDescription("Fetch the TLS certificate served by a hostname and classify its validation level (DV/IV) and expiration urgency"),
		mcp.WithString("hostname",
			mcp.Required(),
			mcp.Description("Hostname to classify, e.g. example.com"),
		),
	)
	s.AddTool(classifyHostTool, t.handleClassifyHost)

	if t.stats != nil {
		cacheStatsTool := mcp.NewTool("cache_stats",
			mcp.WithDescription("Report certificate cache size, hit rate and fetch outcomes"),
		)
		s.AddTool(cacheStatsTool, t.handleCacheStats)
	}

	return s
}

// Serve runs s over the given streams until ctx is done or input ends.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	stdioServer := server.NewStdioServer(s)
	if err := stdioServer.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func (t *tools) handleClassifyHost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hostname, err := request.RequireString("hostname")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("hostname parameter required: %v", err)), nil
	}

	rec, err := t.resolver.GetOrFetch(ctx, hostname)
	if err != nil {
		if certinfo.IsFetchError(err) {
			return mcp.NewToolResultText(fmt.Sprintf("Host: %s\nStatus: %s\nError: %v",
				hostname, certinfo.StatusFetchError, err)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatClassification(hostname, certinfo.Evaluate(rec, t.now(), t.thresholds))), nil
}

func (t *tools) handleCacheStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.stats.Stats()), nil
}

// formatClassification renders c as the classify_host tool text.
func formatClassification(hostname string, c certinfo.Classification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Host: %s\n", hostname)
	fmt.Fprintf(&b, "Status: %s\n", certinfo.StatusSuccess)
	fmt.Fprintf(&b, "Validation: %s (%s)\n", c.ValidationLevel.Title(), c.ValidationLevel.Short())
	if c.SubjectCommonName != "" {
		fmt.Fprintf(&b, "Subject: %s\n", c.SubjectCommonName)
	}
	if c.SubjectOrganization != "" {
		fmt.Fprintf(&b, "Organization: %s\n", c.SubjectOrganization)
	}
	if c.IssuerOrganization != "" || c.IssuerCommonName != "" {
		fmt.Fprintf(&b, "Issuer: %s\n", strings.TrimSpace(c.IssuerOrganization+" "+c.IssuerCommonName))
	}
	if !c.NotAfter.IsZero() {
		fmt.Fprintf(&b, "Expires: %s (%d days)\n", c.NotAfter.UTC().Format(time.RFC3339), c.DaysUntil)
	}
	if c.Expiration != certinfo.ExpirationNone {
		fmt.Fprintf(&b, "Expiration: %s\n", c.Expiration)
	}
	fmt.Fprintf(&b, "Message: %s", c.Message())
	return b.String()
}
